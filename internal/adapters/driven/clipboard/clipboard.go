// Package clipboard adapts the system clipboard to the Clipboard port.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/hashmark-labs/hashmark-cli/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clipboard = (*System)(nil)

// System writes to the operating system clipboard.
type System struct{}

// NewSystem creates a new system clipboard adapter.
func NewSystem() *System {
	return &System{}
}

// Write places text on the clipboard.
func (c *System) Write(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not available on this platform")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing to clipboard: %w", err)
	}
	return nil
}
