package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/creatorpilot/internal/common"
)

// Admin shows the user directory and toggles the admin flag.
func (a *App) Admin(ctx context.Context, args []string) error {
	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "":
		if len(a.admin.Users()) == 0 {
			if err := a.admin.Refresh(ctx); err != nil {
				return err
			}
		}
	case "refresh":
		if err := a.admin.Refresh(ctx); err != nil {
			return err
		}
	case "toggle":
		if len(args) < 2 {
			return common.Notice(common.ErrValidation, "Usage: admin toggle <id>")
		}
		u, err := a.admin.ToggleAdmin(ctx, args[1], a)
		if err != nil {
			return err
		}
		a.success("%s is now %s.", u.Email, u.RoleLabel())
		return nil
	default:
		return common.Notice(common.ErrValidation, "Unknown admin command: "+sub)
	}

	users := a.admin.Users()
	if len(users) == 0 {
		a.info("No users.")
		return nil
	}

	// Only the last column is coloured; escape codes would skew the padding.
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tROLE")
	for _, u := range users {
		role := u.RoleLabel()
		if !a.admin.CanToggle(u) {
			role = a.palette.muted.Sprint(role)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", u.ID, u.Email, role)
	}
	return w.Flush()
}
