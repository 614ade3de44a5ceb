package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/common"
)

// History shows and manages past generations.
//
//	history                 current page (loads the list on first use)
//	history refresh         reload from the server
//	history search <q>      filter; an empty query clears the filter
//	history page <n>        jump to page n
//	history delete <id>     delete after confirmation
//	history groups          records grouped by tool
func (a *App) History(ctx context.Context, args []string) error {
	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "":
		if len(a.history.Records()) == 0 {
			if err := a.history.Refresh(ctx); err != nil {
				return err
			}
		}
	case "refresh":
		if err := a.history.Refresh(ctx); err != nil {
			return err
		}
	case "search":
		a.history.SetQuery(strings.Join(args[1:], " "))
	case "page":
		if len(args) < 2 {
			return common.Notice(common.ErrValidation, "Usage: history page <n>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return common.Notice(common.ErrValidation, "Usage: history page <n>")
		}
		a.history.SetPage(n)
	case "delete":
		if len(args) < 2 {
			return common.Notice(common.ErrValidation, "Usage: history delete <id>")
		}
		if err := a.history.Delete(ctx, args[1], a); err != nil {
			return err
		}
		a.success("Deleted.")
	case "groups":
		a.printGroups()
		return nil
	default:
		return common.Notice(common.ErrValidation, "Unknown history command: "+sub)
	}

	a.printHistoryPage()
	return nil
}

func (a *App) printHistoryPage() {
	recs, page, total := a.history.Current()
	if total == 0 {
		if q := a.history.Query(); q != "" {
			a.info("No history matches %q.", q)
		} else {
			a.info("No history yet.")
		}
		return
	}

	for _, r := range recs {
		a.printRecord(r)
	}
	a.info("Page %d of %d", page, total)
}

func (a *App) printRecord(r models.HistoryRecord) {
	head := fmt.Sprintf("[%s] %s", r.ID, r.Tool)
	if r.Format != "" {
		head += " / " + r.Format
	}
	if !r.CreatedAt.IsZero() {
		head += "  " + r.CreatedAt.Local().Format("2006-01-02 15:04")
	}
	a.println(a.palette.accent.Sprint(head))
	a.println("  " + preview(r.Text))
	a.println("  -> " + preview(r.Result))
}

func (a *App) printGroups() {
	groups := a.history.GroupByTool()
	if len(groups) == 0 {
		a.info("No history yet.")
		return
	}
	for _, g := range groups {
		a.println(a.palette.accent.Sprintf("%s (%d)", g.Tool, len(g.Records)))
		for _, r := range g.Records {
			a.println(fmt.Sprintf("  [%s] %s", r.ID, preview(r.Text)))
		}
	}
}
