package cli

import (
	"context"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/common"
)

// palette holds the notice colours of one theme.
type palette struct {
	ok     *color.Color
	err    *color.Color
	warn   *color.Color
	info   *color.Color
	accent *color.Color
	muted  *color.Color
}

func paletteFor(t models.Theme) palette {
	if t == models.ThemeLight {
		return palette{
			ok:     color.New(color.FgGreen),
			err:    color.New(color.FgRed),
			warn:   color.New(color.FgYellow),
			info:   color.New(color.FgBlue),
			accent: color.New(color.FgBlack, color.Bold),
			muted:  color.New(color.FgHiBlack),
		}
	}
	return palette{
		ok:     color.New(color.FgHiGreen),
		err:    color.New(color.FgHiRed),
		warn:   color.New(color.FgHiYellow),
		info:   color.New(color.FgHiCyan),
		accent: color.New(color.FgHiWhite, color.Bold),
		muted:  color.New(color.FgWhite, color.Faint),
	}
}

func (a *App) applyTheme(t models.Theme) {
	a.theme = t
	a.palette = paletteFor(t)
}

// Theme toggles the colour theme, or sets it when named, and stores it.
func (a *App) Theme(ctx context.Context, args []string) error {
	next := a.theme.Toggle()
	if len(args) > 0 {
		switch models.Theme(args[0]) {
		case models.ThemeDark, models.ThemeLight:
			next = models.Theme(args[0])
		default:
			return common.Notice(common.ErrValidation, "Usage: theme [dark|light]")
		}
	}

	if err := a.prefs.SetTheme(ctx, next); err != nil {
		return err
	}
	a.applyTheme(next)
	a.success("Theme: %s", next)
	return nil
}
