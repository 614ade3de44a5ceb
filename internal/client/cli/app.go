package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/creatorpilot/internal/client/client"
	"github.com/dmitrijs2005/creatorpilot/internal/client/config"
	"github.com/dmitrijs2005/creatorpilot/internal/client/export"
	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/client/services"
	"github.com/dmitrijs2005/creatorpilot/internal/client/session"
	"github.com/dmitrijs2005/creatorpilot/internal/client/storage"
	"github.com/dmitrijs2005/creatorpilot/internal/common"
	"github.com/dmitrijs2005/creatorpilot/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	prefs   *storage.Prefs
	session *session.Manager

	chapters *services.Controller
	titles   *services.Controller
	active   *services.Controller
	history  *services.History
	admin    *services.Directory
	profiles *services.Profiles

	files services.Exporter
	s3    services.Exporter

	email   string
	theme   models.Theme
	palette palette

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens local storage and builds every component on top of it.
// The caller must call Close.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop{}
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	a := &App{
		config:  c,
		log:     log,
		db:      db,
		prefs:   storage.NewPrefs(db),
		theme:   models.ThemeDark,
		palette: paletteFor(models.ThemeDark),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	api, err := client.NewHTTPClient(c.APIBaseURL, client.TokenFunc(a.token), c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a.session = session.NewManager(api, a.prefs, log)
	a.history = services.NewHistory(api, c.HistoryPageSize, log)
	a.admin = services.NewDirectory(api, a.session, log)
	a.profiles = services.NewProfiles(api, log)

	opts := []services.ControllerOption{
		services.WithRecent(a.prefs),
		services.WithClipboard(export.Clipboard{}),
		services.OnSuccess(a.refreshHistory),
	}
	a.chapters = services.NewController(models.ToolChapters, api, log, opts...)
	a.titles = services.NewController(models.ToolTitles, api, log, opts...)
	a.active = a.chapters

	a.files = export.NewFileExporter(c.ExportDir, true)
	if c.S3Enabled() {
		a.s3 = &export.S3Exporter{
			Bucket:    c.S3Bucket,
			Region:    c.S3Region,
			Endpoint:  c.S3Endpoint,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
		}
	}

	a.session.OnChange(a.onSessionChange)
	return a, nil
}

func (a *App) token() string {
	if a.session == nil {
		return ""
	}
	return a.session.Token()
}

// Run restores the stored session and theme, then serves the REPL until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}
	if t, err := a.prefs.Theme(ctx); err == nil {
		a.applyTheme(t)
	}

	printlnFn(a.palette.accent.Sprint("Welcome to CreatorPilot CLI (type 'help' for commands)"))
	runREPL(ctx, a, a.status, a.reader)
	return nil
}

// Close waits for background history refreshes and releases the database.
func (a *App) Close() error {
	a.chapters.Wait()
	a.titles.Wait()
	return a.db.Close()
}

func (a *App) canView(v models.View) bool {
	return a.session.CanView(v)
}

func (a *App) status() string {
	s := a.session.Current()
	if !s.Authenticated() {
		return "(signed out)"
	}
	role := "user"
	switch {
	case s.IsOwner:
		role = "owner"
	case s.IsAdmin:
		role = "admin"
	}
	if a.email != "" {
		return fmt.Sprintf("(%s %s)", a.email, role)
	}
	return fmt.Sprintf("(%s)", role)
}

func (a *App) onSessionChange(s models.Session) {
	if s.Authenticated() {
		return
	}
	a.email = ""
	a.chapters.Reset()
	a.titles.Reset()
	a.active = a.chapters
	a.history.Clear()
	a.admin.Clear()
}

func (a *App) refreshHistory(ctx context.Context) {
	if err := a.history.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "history refresh after generation failed", "error", err)
	}
}

// Confirm asks a yes/no question. Only "y" and "yes" accept.
func (a *App) Confirm(_ context.Context, prompt string) (bool, error) {
	ans, err := getSimpleText(a.reader, a.palette.warn.Sprint(prompt)+" [y/N]", a.out)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(ans)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (a *App) reportError(err error) {
	if errors.Is(err, common.ErrCancelled) {
		a.info("Cancelled.")
		return
	}
	fmt.Fprintln(a.out, a.palette.err.Sprint(common.UserMessage(err)))
}

func (a *App) success(format string, args ...any) {
	fmt.Fprintln(a.out, a.palette.ok.Sprintf(format, args...))
}

func (a *App) info(format string, args ...any) {
	fmt.Fprintln(a.out, a.palette.info.Sprintf(format, args...))
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}
