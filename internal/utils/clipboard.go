package utils

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// SystemClipboard writes text to the operating system clipboard.
type SystemClipboard struct{}

func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// Available reports whether a clipboard backend (pbcopy, xclip, xsel,
// wl-copy, or the Windows API) was found.
func (c *SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}

// WriteText replaces the clipboard content with text.
func (c *SystemClipboard) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}
