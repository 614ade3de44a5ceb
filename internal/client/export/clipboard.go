package export

import (
	"context"

	"github.com/atotto/clipboard"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
)

var writeClipboard = clipboard.WriteAll

// Clipboard writes text to the system clipboard.
type Clipboard struct{}

func (Clipboard) WriteAll(text string) error {
	return writeClipboard(text)
}

// Export copies the result text and reports "clipboard" as its location.
func (c Clipboard) Export(_ context.Context, r models.GenerationResult) (string, error) {
	if err := c.WriteAll(r.Text); err != nil {
		return "", err
	}
	return "clipboard", nil
}
