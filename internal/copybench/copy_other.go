//go:build !linux

package copybench

func platformStrategies() []Strategy {
	return nil
}
