package cli

import (
	"context"

	"github.com/dmitrijs2005/creatorpilot/internal/common"
)

// Profile prints the current profile; "profile edit" prompts for new values,
// keeping a field when its answer is empty.
func (a *App) Profile(ctx context.Context, args []string) error {
	p, err := a.profiles.Load(ctx)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		if args[0] != "edit" {
			return common.Notice(common.ErrValidation, "Usage: profile [edit]")
		}

		name, err := getSimpleText(a.reader, "Name ["+p.Name+"]", a.out)
		if err != nil {
			return err
		}
		bio, err := getSimpleText(a.reader, "Bio ["+p.Bio+"]", a.out)
		if err != nil {
			return err
		}
		if name != "" {
			p.Name = name
		}
		if bio != "" {
			p.Bio = bio
		}

		if p, err = a.profiles.Save(ctx, p); err != nil {
			return err
		}
		a.success("Profile saved.")
	}

	a.println(a.palette.accent.Sprint("Name: ") + p.Name)
	a.println(a.palette.accent.Sprint("Bio:  ") + p.Bio)
	return nil
}
