//go:build linux

package copybench

import (
	"os"

	"golang.org/x/sys/unix"
)

// Kernel-offloaded copies move data without bouncing it through userspace.
func platformStrategies() []Strategy {
	return []Strategy{
		{Name: "sendfile", Copy: sendfileCopy},
		{Name: "copy_file_range", Copy: copyFileRangeCopy},
	}
}

// chunk keeps each syscall's count within int range on 32-bit builds.
const chunk = 1 << 30

func sendfileCopy(src, dst string) error {
	return offloadCopy(src, dst, func(out, in int, remain int64) (int, error) {
		n := int(remain)
		if remain > chunk {
			n = chunk
		}
		return unix.Sendfile(out, in, nil, n)
	})
}

func copyFileRangeCopy(src, dst string) error {
	return offloadCopy(src, dst, func(out, in int, remain int64) (int, error) {
		n := int(remain)
		if remain > chunk {
			n = chunk
		}
		return unix.CopyFileRange(in, nil, out, nil, n, 0)
	})
}

func offloadCopy(src, dst string, xfer func(out, in int, remain int64) (int, error)) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	st, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	remain := st.Size()
	for remain > 0 {
		n, err := xfer(int(out.Fd()), int(in.Fd()), remain)
		if err != nil {
			out.Close()
			return err
		}
		if n == 0 {
			break
		}
		remain -= int64(n)
	}
	return out.Close()
}
