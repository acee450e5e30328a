// Package copybench benchmarks file-copy strategies against each other using
// the bench harness. It is an application of the harness, not part of it.
package copybench

import (
	"bytes"
	crand "crypto/rand"
	"fmt"
	"io"
	"os"
)

const (
	KiB = 1024
	MiB = 1024 * KiB
)

// Strategy is one way of copying a file.
type Strategy struct {
	Name string
	Copy func(src, dst string) error
}

// Strategies returns every copy strategy available on this platform.
func Strategies() []Strategy {
	base := []Strategy{
		Buffered(4 * KiB),
		Buffered(32 * KiB),
		Buffered(1 * MiB),
		Streamed(),
		WholeFile(),
	}
	return append(base, platformStrategies()...)
}

// Buffered copies through a read/write loop with a fixed buffer size.
func Buffered(bufSize int) Strategy {
	return Strategy{
		Name: fmt.Sprintf("buf_%s", sizeLabel(int64(bufSize))),
		Copy: func(src, dst string) error {
			in, err := os.Open(src)
			if err != nil {
				return err
			}
			defer in.Close()

			out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
			if err != nil {
				return err
			}

			buf := make([]byte, bufSize)
			for {
				n, err := in.Read(buf)
				if n > 0 {
					if _, werr := out.Write(buf[:n]); werr != nil {
						out.Close()
						return werr
					}
				}
				if err == io.EOF {
					break
				}
				if err != nil {
					out.Close()
					return err
				}
			}
			return out.Close()
		},
	}
}

// Streamed copies via io.Copy, which picks up kernel offload paths where the
// runtime supports them.
func Streamed() Strategy {
	return Strategy{
		Name: "io_copy",
		Copy: func(src, dst string) error {
			in, err := os.Open(src)
			if err != nil {
				return err
			}
			defer in.Close()

			out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
			if err != nil {
				return err
			}
			if _, err := io.Copy(out, in); err != nil {
				out.Close()
				return err
			}
			return out.Close()
		},
	}
}

// WholeFile reads the entire source into memory and writes it out in one
// call, the portable analogue of an mmap + memcpy copy.
func WholeFile() Strategy {
	return Strategy{
		Name: "whole_file",
		Copy: func(src, dst string) error {
			data, err := os.ReadFile(src)
			if err != nil {
				return err
			}
			return os.WriteFile(dst, data, 0o644)
		},
	}
}

// GenerateSource fills path with size random bytes.
func GenerateSource(path string, size int64) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	buf := make([]byte, 1*MiB)
	remain := size
	for remain > 0 {
		chunk := buf
		if remain < int64(len(buf)) {
			chunk = buf[:remain]
		}
		if _, err := crand.Read(chunk); err != nil {
			f.Close()
			return err
		}
		if _, err := f.Write(chunk); err != nil {
			f.Close()
			return err
		}
		remain -= int64(len(chunk))
	}
	return f.Close()
}

// Equal reports whether two files have identical contents.
func Equal(a, b string) (bool, error) {
	fa, err := os.Open(a)
	if err != nil {
		return false, err
	}
	defer fa.Close()
	fb, err := os.Open(b)
	if err != nil {
		return false, err
	}
	defer fb.Close()

	sa, err := fa.Stat()
	if err != nil {
		return false, err
	}
	sb, err := fb.Stat()
	if err != nil {
		return false, err
	}
	if sa.Size() != sb.Size() {
		return false, nil
	}

	bufA := make([]byte, 64*KiB)
	bufB := make([]byte, 64*KiB)
	for {
		na, errA := io.ReadFull(fa, bufA)
		nb, errB := io.ReadFull(fb, bufB)
		if na != nb || !bytes.Equal(bufA[:na], bufB[:nb]) {
			return false, nil
		}
		if errA == io.EOF || errA == io.ErrUnexpectedEOF {
			return errB == io.EOF || errB == io.ErrUnexpectedEOF, nil
		}
		if errA != nil {
			return false, errA
		}
		if errB != nil {
			return false, errB
		}
	}
}

func sizeLabel(size int64) string {
	switch {
	case size >= MiB && size%MiB == 0:
		return fmt.Sprintf("%dMiB", size/MiB)
	case size >= KiB && size%KiB == 0:
		return fmt.Sprintf("%dKiB", size/KiB)
	default:
		return fmt.Sprintf("%dB", size)
	}
}
