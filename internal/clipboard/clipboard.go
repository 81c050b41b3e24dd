// Package clipboard copies report text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Messages shown to the user after a copy attempt.
const (
	MessageCopied = "コピーしました!"
	MessageFailed = "コピーに失敗しました。"
)

// Copier puts text on a clipboard.
type Copier interface {
	Copy(text string) error
}

// writeAll is a package-level variable to allow mocking in tests.
var writeAll = clipboard.WriteAll

// System copies through the OS clipboard utility. When none is available
// (for example over SSH) and Terminal is set, it falls back to an OSC 52
// escape sequence written to Terminal.
type System struct {
	Terminal io.Writer
}

// Copy implements Copier.
func (c System) Copy(text string) error {
	err := writeAll(text)
	if err == nil {
		return nil
	}
	if c.Terminal == nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}

	if _, oscErr := osc52.New(text).WriteTo(c.Terminal); oscErr != nil {
		return fmt.Errorf("copying to clipboard: %w", errors.Join(err, oscErr))
	}
	return nil
}

// Message returns the user notice for a copy result.
func Message(err error) string {
	if err != nil {
		return MessageFailed
	}
	return MessageCopied
}
