package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	canView(v models.View) bool
	reportError(err error)

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Generate(ctx context.Context, args []string) error
	Titles(ctx context.Context, args []string) error
	SetFormat(ctx context.Context, args []string) error
	Copy(ctx context.Context) error
	Export(ctx context.Context, args []string) error
	Recent(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	Admin(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	Theme(ctx context.Context, args []string) error
}

type command struct {
	// view gates the command; empty means always available.
	view  models.View
	usage string
	run   func(a execIface, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"login": {view: models.ViewLogin, usage: "login",
		run: func(a execIface, ctx context.Context, _ []string) error { return a.Login(ctx) }},
	"register": {view: models.ViewLogin, usage: "register",
		run: func(a execIface, ctx context.Context, _ []string) error { return a.Register(ctx) }},
	"logout": {view: models.ViewDashboard, usage: "logout",
		run: func(a execIface, ctx context.Context, _ []string) error { return a.Logout(ctx) }},
	"whoami": {view: models.ViewDashboard, usage: "whoami",
		run: func(a execIface, ctx context.Context, _ []string) error { return a.WhoAmI(ctx) }},
	"generate": {view: models.ViewDashboard, usage: "generate [file]",
		run: execIface.Generate},
	"format": {view: models.ViewDashboard, usage: "format [markdown|plain|youtube|timestamps]",
		run: execIface.SetFormat},
	"copy": {view: models.ViewDashboard, usage: "copy",
		run: func(a execIface, ctx context.Context, _ []string) error { return a.Copy(ctx) }},
	"export": {view: models.ViewDashboard, usage: "export [s3]",
		run: execIface.Export},
	"recent": {view: models.ViewDashboard, usage: "recent [n]",
		run: execIface.Recent},
	"titles": {view: models.ViewTitles, usage: "titles [file]",
		run: execIface.Titles},
	"history": {view: models.ViewHistory, usage: "history [refresh|search <q>|page <n>|delete <id>|groups]",
		run: execIface.History},
	"profile": {view: models.ViewProfile, usage: "profile [edit]",
		run: execIface.Profile},
	"admin": {view: models.ViewAdmin, usage: "admin [refresh|toggle <id>]",
		run: execIface.Admin},
	"theme": {usage: "theme [dark|light]",
		run: execIface.Theme},
}

// helpText lists the commands available to the current session.
func helpText(a execIface) string {
	var lines []string
	for _, c := range commands {
		if c.view == "" || a.canView(c.view) {
			lines = append(lines, "  "+c.usage)
		}
	}
	sort.Strings(lines)
	return "Available commands:\n" + strings.Join(lines, "\n") + "\n  help\n  exit"
}

// runREPL starts a simple read–eval–print loop for the CreatorPilot CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches through the command table. A command whose view the session
// cannot see is rejected like an unknown one. Each command runs under its
// own interrupt context, so Ctrl-C cancels the in-flight request and returns
// to the prompt. Handler errors are shown as a single notice and the loop
// keeps going. It exits on EOF or when the user types "exit" or "quit".
//
// Prompt input and command prompts share reader.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("cp %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printlnFn(helpText(a))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		cmd, ok := commands[name]
		if !ok || (cmd.view != "" && !a.canView(cmd.view)) {
			printlnFn("Unknown command:", name)
			continue
		}

		cctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		if err := cmd.run(a, cctx, args); err != nil {
			a.reportError(err)
		}
		stop()

		if ctx.Err() != nil {
			return
		}
	}
}
