//go:build windows

package console

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func setOutputCodePage(cp uint32) error {
	if err := windows.SetConsoleOutputCP(cp); err != nil {
		return fmt.Errorf("set console output code page %d: %w", cp, err)
	}
	return nil
}
