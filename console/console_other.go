//go:build !windows

package console

func setOutputCodePage(uint32) error {
	return nil
}
