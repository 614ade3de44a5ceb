package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/client/services"
	"github.com/dmitrijs2005/creatorpilot/internal/common"
)

const previewLen = 60

var errNoS3 = common.Notice(common.ErrValidation, "S3 export is not configured.")

// Generate runs the chapters tool. A file argument is loaded as the
// transcript; otherwise a pending transcript (kept after a failure or picked
// with "recent") is resubmitted, or one is read from the prompt.
func (a *App) Generate(ctx context.Context, args []string) error {
	return a.generate(ctx, a.chapters, args)
}

// Titles runs the titles tool with the same input rules as Generate.
func (a *App) Titles(ctx context.Context, args []string) error {
	return a.generate(ctx, a.titles, args)
}

func (a *App) generate(ctx context.Context, c *services.Controller, args []string) error {
	a.active = c

	switch {
	case len(args) > 0:
		if err := c.LoadFile(strings.Join(args, " ")); err != nil {
			return err
		}
	case strings.TrimSpace(c.Transcript()) != "":
		a.info("Submitting the pending transcript.")
	default:
		text, err := getMultiline(a.reader, "Paste the transcript", a.out)
		if err != nil {
			return err
		}
		c.SetTranscript(text)
	}

	a.info("Generating %s...", c.Tool())
	res, err := c.Generate(ctx)
	if err != nil {
		return err
	}

	a.println(a.palette.accent.Sprintf("%s (%s)", strings.ToUpper(string(res.Tool)), res.Format))
	a.println(res.Text)
	return nil
}

// SetFormat changes the chapters output format. Without an argument it
// lists the choices.
func (a *App) SetFormat(_ context.Context, args []string) error {
	if len(args) == 0 {
		names := make([]string, len(models.Formats))
		for i, f := range models.Formats {
			names[i] = string(f)
		}
		a.info("Format: %s (choices: %s)", a.chapters.Format(), strings.Join(names, ", "))
		return nil
	}

	f, err := models.ParseFormat(strings.Join(args, " "))
	if err != nil {
		return common.Notice(common.ErrValidation, "Unknown format: "+strings.Join(args, " "))
	}
	a.chapters.SetFormat(f)
	a.success("Format set to %s.", f)
	return nil
}

// Copy puts the latest result on the clipboard.
func (a *App) Copy(ctx context.Context) error {
	if _, ok := a.active.Result(); !ok {
		return common.ErrNoResult
	}
	if a.active.CopyResult(ctx) {
		a.success("Copied to clipboard.")
	} else {
		a.info("Clipboard is not available.")
	}
	return nil
}

// Export writes the latest result to the export directory, or to S3 with
// the "s3" argument.
func (a *App) Export(ctx context.Context, args []string) error {
	exp := a.files
	if len(args) > 0 && args[0] == "s3" {
		if a.s3 == nil {
			return errNoS3
		}
		exp = a.s3
	}

	loc, err := a.active.ExportResult(ctx, exp)
	if err != nil {
		return err
	}
	a.success("Exported to %s", loc)
	return nil
}

// Recent lists the last submitted transcripts; "recent <n>" makes the n-th
// one the pending transcript of the last used tool.
func (a *App) Recent(ctx context.Context, args []string) error {
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return common.Notice(common.ErrValidation, "Usage: recent [n]")
		}
		if err := a.active.UseRecent(ctx, n); err != nil {
			return err
		}
		a.success("Loaded recent transcript #%d. Run '%s' to submit it.", n, commandFor(a.active.Tool()))
		return nil
	}

	list, err := a.active.Recent(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.info("No recent transcripts.")
		return nil
	}
	for i, t := range list {
		a.println(fmt.Sprintf("%d. %s", i+1, preview(t)))
	}
	return nil
}

func commandFor(t models.Tool) string {
	if t == models.ToolTitles {
		return "titles"
	}
	return "generate"
}

// preview flattens s to one line of at most previewLen runes.
func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) > previewLen {
		return string(r[:previewLen-3]) + "..."
	}
	return s
}
