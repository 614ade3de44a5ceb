package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
)

// fakeAPI implements every backend interface used by the services.
type fakeAPI struct {
	mu sync.Mutex

	chaptersRet string
	titlesRet   string
	genErr      error
	genCalls    int
	lastFormat  models.Format
	lastText    string
	block       chan struct{}
	started     chan struct{}

	history     []models.HistoryRecord
	historyErr  error
	listBlock   chan struct{}
	listStarted chan struct{}
	deleteErr   error
	deleteCalls []string

	users      []models.UserSummary
	usersErr   error
	usersCalls int
	toggleRet  models.UserSummary
	toggleErr  error
	toggleIDs  []string

	profile    models.Profile
	profileErr error
}

func (f *fakeAPI) GenerateChapters(ctx context.Context, transcript string, format models.Format) (string, error) {
	f.enter(transcript)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFormat = format
	return f.chaptersRet, f.genErr
}

func (f *fakeAPI) GenerateTitles(ctx context.Context, transcript string) (string, error) {
	f.enter(transcript)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.titlesRet, f.genErr
}

func (f *fakeAPI) enter(transcript string) {
	f.mu.Lock()
	f.genCalls++
	f.lastText = transcript
	started, block := f.started, f.block
	f.mu.Unlock()
	if started != nil {
		close(started)
	}
	if block != nil {
		<-block
	}
}

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.genCalls
}

func (f *fakeAPI) ListHistory(ctx context.Context) ([]models.HistoryRecord, error) {
	f.mu.Lock()
	started, block := f.listStarted, f.listBlock
	f.mu.Unlock()
	if started != nil {
		close(started)
	}
	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return append([]models.HistoryRecord(nil), f.history...), nil
}

func (f *fakeAPI) DeleteHistory(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

func (f *fakeAPI) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	f.usersCalls++
	return append([]models.UserSummary(nil), f.users...), f.usersErr
}

func (f *fakeAPI) ToggleAdmin(ctx context.Context, id string) (models.UserSummary, error) {
	f.toggleIDs = append(f.toggleIDs, id)
	return f.toggleRet, f.toggleErr
}

func (f *fakeAPI) GetProfile(ctx context.Context) (models.Profile, error) {
	return f.profile, f.profileErr
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, p models.Profile) (models.Profile, error) {
	if f.profileErr != nil {
		return models.Profile{}, f.profileErr
	}
	f.profile = p
	return p, nil
}

type memRecent struct {
	list []string
	err  error
}

func (m *memRecent) RecentTranscripts(context.Context) ([]string, error) { return m.list, m.err }
func (m *memRecent) PushRecentTranscript(_ context.Context, s string) error {
	if m.err != nil {
		return m.err
	}
	m.list = append([]string{s}, m.list...)
	return nil
}

type fakeClip struct {
	text string
	err  error
}

func (c *fakeClip) WriteAll(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}

type fakeExporter struct {
	got models.GenerationResult
	loc string
	err error
}

func (e *fakeExporter) Export(_ context.Context, r models.GenerationResult) (string, error) {
	e.got = r
	return e.loc, e.err
}

type fakePriv bool

func (p fakePriv) IsPrivileged() bool { return bool(p) }

func answer(yes bool) (Confirmer, *[]string) {
	var prompts []string
	return ConfirmFunc(func(_ context.Context, p string) (bool, error) {
		prompts = append(prompts, p)
		return yes, nil
	}), &prompts
}
