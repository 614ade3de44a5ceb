package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/creatorpilot/internal/client/config"
	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/fakeapi"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func testConfig(t *testing.T, url string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = url
	cfg.DatabasePath = "file:" + t.Name() + "?mode=memory&cache=shared"
	cfg.ExportDir = t.TempDir()
	return cfg
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func newTestApp(t *testing.T) (*App, *fakeapi.Server, *bytes.Buffer) {
	t.Helper()
	srv := fakeapi.NewServer(fakeapi.Options{SecretKey: []byte("cli-test")})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	a, err := NewApp(context.Background(), testConfig(t, ts.URL), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	out := &bytes.Buffer{}
	a.out = out
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) { return fmt.Fprintln(out, args...) }
	t.Cleanup(func() { printlnFn = orig })
	stubPassword(t, "secret")
	return a, srv, out
}

// feed runs the REPL over lines; prompts read from the same input.
func feed(a *App, lines ...string) {
	a.reader = rdr(strings.Join(lines, "\n") + "\n")
	runREPL(context.Background(), a, a.status, a.reader)
}

func TestApp_RegisterGenerateAndBrowseHistory(t *testing.T) {
	a, _, out := newTestApp(t)

	feed(a,
		"register", "owner@example.com",
		"generate", "welcome to the show", "first topic", ".",
	)
	a.chapters.Wait()

	assert.Contains(t, out.String(), "Account created. Welcome, owner@example.com!")
	assert.Contains(t, out.String(), "CHAPTERS (markdown)")
	assert.Contains(t, out.String(), "- **00:00** Welcome To The Show")
	assert.Empty(t, a.chapters.Transcript())
	assert.Equal(t, "(owner@example.com owner)", a.status())

	out.Reset()
	feed(a, "history")
	assert.Contains(t, out.String(), "chapters / markdown")
	assert.Contains(t, out.String(), "Page 1 of 1")

	out.Reset()
	feed(a, "history groups")
	assert.Contains(t, out.String(), "chapters (1)")
}

func TestApp_AdminDirectoryOnlyForPrivileged(t *testing.T) {
	a, _, out := newTestApp(t)

	feed(a,
		"register", "owner@example.com",
		"logout",
		"register", "member@example.com",
		"admin",
	)
	assert.Contains(t, out.String(), "Unknown command: admin")
	assert.False(t, a.session.IsPrivileged())

	out.Reset()
	feed(a, "logout", "login", "owner@example.com", "admin")
	assert.Contains(t, out.String(), "Logged in as owner@example.com.")
	require.Len(t, a.admin.Users(), 2)

	member := a.admin.Users()[1]
	require.Equal(t, "member@example.com", member.Email)
	assert.Regexp(t, `(?m)^ID {2,}EMAIL {2,}ROLE$`, out.String())
	assert.Regexp(t, `(?m)^`+regexp.QuoteMeta(member.ID)+` {2,}member@example\.com {2,}User$`, out.String())
	assert.Regexp(t, `(?m)^\S+ {2,}owner@example\.com {2,}Owner$`, out.String())

	out.Reset()
	feed(a, "admin toggle "+member.ID, "n")
	assert.Contains(t, out.String(), "Cancelled.")
	assert.False(t, a.admin.Users()[1].IsAdmin)

	out.Reset()
	feed(a, "admin toggle "+member.ID, "yes")
	assert.Contains(t, out.String(), "Grant admin rights to member@example.com?")
	assert.Contains(t, out.String(), "member@example.com is now Admin.")
	assert.True(t, a.admin.Users()[1].IsAdmin)

	out.Reset()
	feed(a, "admin toggle "+a.admin.Users()[0].ID)
	assert.Contains(t, out.String(), "owner accounts cannot be changed")
}

func TestApp_LogoutClearsCachedData(t *testing.T) {
	a, srv, out := newTestApp(t)

	feed(a, "register", "owner@example.com", "generate", "secret owner transcript", ".")
	a.chapters.Wait()
	srv.FailNext(http.StatusInternalServerError, "Model overloaded")
	feed(a, "titles", "pending titles text", ".")
	require.Equal(t, "pending titles text", a.titles.Transcript())
	feed(a, "history", "admin")
	require.NotEmpty(t, a.history.Records())
	require.NotEmpty(t, a.admin.Users())

	feed(a, "logout")
	assert.False(t, a.session.IsAuthenticated())
	assert.Empty(t, a.history.Records())
	assert.Empty(t, a.admin.Users())
	assert.Equal(t, "(signed out)", a.status())

	feed(a, "register", "second@example.com")
	require.True(t, a.session.IsAuthenticated())
	_, ok := a.chapters.Result()
	assert.False(t, ok)
	assert.Empty(t, a.titles.Transcript())
	assert.Same(t, a.chapters, a.active)

	out.Reset()
	feed(a, "copy", "export")
	assert.NotContains(t, out.String(), "Secret Owner Transcript")
	assert.Contains(t, out.String(), "nothing generated yet")
	files, err := filepath.Glob(filepath.Join(a.config.ExportDir, "*"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestApp_BlankLineInsidePasteIsNotACommand(t *testing.T) {
	a, _, out := newTestApp(t)

	feed(a, "register", "owner@example.com",
		"generate", "first paragraph", "", "logout", "", "second paragraph", ".",
		"whoami",
	)
	a.chapters.Wait()

	assert.True(t, a.session.IsAuthenticated())
	assert.NotContains(t, out.String(), "Logged out.")
	assert.Contains(t, out.String(), "First Paragraph")
	assert.Contains(t, out.String(), "Second Paragraph")
	assert.Contains(t, out.String(), "owner@example.com")
}

func TestApp_GenerationFailureKeepsTranscript(t *testing.T) {
	a, srv, out := newTestApp(t)

	feed(a, "register", "owner@example.com")
	srv.FailNext(http.StatusInternalServerError, "Model overloaded")
	feed(a, "generate", "a transcript worth keeping", ".")

	assert.Contains(t, out.String(), "Model overloaded")
	assert.Equal(t, "a transcript worth keeping", a.chapters.Transcript())
	_, ok := a.chapters.Result()
	assert.False(t, ok)

	out.Reset()
	feed(a, "generate")
	assert.Contains(t, out.String(), "Submitting the pending transcript.")
	assert.Contains(t, out.String(), "A Transcript Worth Keeping")
}

func TestApp_EmptyTranscriptNotices(t *testing.T) {
	a, _, out := newTestApp(t)

	feed(a, "register", "owner@example.com", "generate", ".", "titles", ".")
	assert.Contains(t, out.String(), "Please paste or upload a transcript.")
	assert.Contains(t, out.String(), "Please enter a transcript first.")
}

func TestApp_GenerateFromFile(t *testing.T) {
	a, _, out := newTestApp(t)

	path := filepath.Join(t.TempDir(), "talk.txt")
	require.NoError(t, os.WriteFile(path, []byte("opening remarks\nthe main part\n"), 0o600))

	feed(a, "register", "owner@example.com", "format youtube", "generate "+path)
	assert.Contains(t, out.String(), "Format set to youtube.")
	assert.Contains(t, out.String(), "00:00 - Opening Remarks")
	assert.Contains(t, out.String(), "01:00 - The Main Part")

	out.Reset()
	feed(a, "format pdf", "titles "+filepath.Join(t.TempDir(), "missing.txt"))
	assert.Contains(t, out.String(), "Unknown format: pdf")
	assert.Equal(t, models.FormatYouTube, a.chapters.Format())
}

func TestApp_TitlesCopyAndExport(t *testing.T) {
	a, _, out := newTestApp(t)

	feed(a, "register", "owner@example.com", "export", "titles", "baking bread at home", ".")
	assert.Contains(t, out.String(), "nothing generated yet")
	assert.Contains(t, out.String(), "1. Baking Bread At Home")

	out.Reset()
	feed(a, "export", "export s3")
	assert.Contains(t, out.String(), "Exported to "+a.config.ExportDir)
	assert.Contains(t, out.String(), "S3 export is not configured.")

	files, err := filepath.Glob(filepath.Join(a.config.ExportDir, "titles-*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestApp_RecentTranscripts(t *testing.T) {
	a, _, out := newTestApp(t)

	feed(a, "register", "owner@example.com", "recent")
	assert.Contains(t, out.String(), "No recent transcripts.")

	feed(a, "generate", "first", ".", "generate", "second", ".")
	out.Reset()
	feed(a, "recent")
	assert.Contains(t, out.String(), "1. second\n2. first")

	out.Reset()
	feed(a, "recent 2", "recent 9", "recent x")
	assert.Contains(t, out.String(), "Loaded recent transcript #2. Run 'generate' to submit it.")
	assert.Contains(t, out.String(), "no recent transcript #9")
	assert.Contains(t, out.String(), "Usage: recent [n]")
	assert.Equal(t, "first", a.chapters.Transcript())
}

func TestApp_HistorySearchPageAndDelete(t *testing.T) {
	a, _, out := newTestApp(t)

	feed(a, "register", "owner@example.com", "generate", "alpha topic", ".", "titles", "beta topic", ".")
	a.chapters.Wait()
	a.titles.Wait()
	feed(a, "history refresh")
	require.Len(t, a.history.Records(), 2)

	out.Reset()
	feed(a, "history search BETA")
	assert.Contains(t, out.String(), "titles")
	assert.NotContains(t, out.String(), "chapters /")

	out.Reset()
	feed(a, "history search nothing-like-this")
	assert.Contains(t, out.String(), `No history matches "nothing-like-this".`)

	feed(a, "history search")
	id := a.history.Records()[0].ID

	out.Reset()
	feed(a, "history delete "+id, "y", "history page x", "history bogus")
	assert.Contains(t, out.String(), "Delete this history item?")
	assert.Contains(t, out.String(), "Deleted.")
	assert.Contains(t, out.String(), "Usage: history page <n>")
	assert.Contains(t, out.String(), "Unknown history command: bogus")
	assert.Len(t, a.history.Records(), 1)
}

func TestApp_ProfileEdit(t *testing.T) {
	a, _, out := newTestApp(t)

	feed(a, "register", "owner@example.com", "profile edit", "Ann", "", "profile")
	assert.Contains(t, out.String(), "Profile saved.")
	assert.Equal(t, 2, strings.Count(out.String(), "Name: Ann"))
}

func TestApp_RunRestoresSessionAndTheme(t *testing.T) {
	srv := fakeapi.NewServer(fakeapi.Options{SecretKey: []byte("cli-test")})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	capturePrints(t)
	stubPassword(t, "secret")

	cfg := testConfig(t, ts.URL)
	cfg.DatabasePath = filepath.Join(t.TempDir(), "creatorpilot.db")

	first, err := NewApp(context.Background(), cfg, nil)
	require.NoError(t, err)
	first.out = io.Discard
	first.reader = rdr("register\nowner@example.com\ntheme light\nexit\n")
	require.NoError(t, first.Run(context.Background()))

	second, err := NewApp(context.Background(), cfg, nil)
	require.NoError(t, err)
	var out bytes.Buffer
	second.out = &out
	second.reader = rdr("whoami\ntheme\nexit\n")
	require.NoError(t, second.Run(context.Background()))

	assert.Contains(t, out.String(), "restored session, role: Owner")
	assert.Contains(t, out.String(), "Theme: dark")
	assert.Equal(t, models.ThemeDark, second.theme)
}
