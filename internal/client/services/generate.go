package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/common"
	"github.com/dmitrijs2005/creatorpilot/internal/filex"
	"github.com/dmitrijs2005/creatorpilot/internal/logging"
)

// Generator is the generation half of the backend API.
type Generator interface {
	GenerateChapters(ctx context.Context, transcript string, format models.Format) (string, error)
	GenerateTitles(ctx context.Context, transcript string) (string, error)
}

// RecentStore keeps the short list of recently submitted transcripts.
type RecentStore interface {
	RecentTranscripts(ctx context.Context) ([]string, error)
	PushRecentTranscript(ctx context.Context, text string) error
}

// Copier writes text to the system clipboard.
type Copier interface {
	WriteAll(text string) error
}

// Exporter turns a result into an artifact and returns where it went.
type Exporter interface {
	Export(ctx context.Context, r models.GenerationResult) (string, error)
}

// State of a Controller.
type State int32

const (
	StateIdle State = iota
	StateGenerating
)

func (s State) String() string {
	if s == StateGenerating {
		return "generating"
	}
	return "idle"
}

const (
	msgEmptyChapters = "Please paste or upload a transcript."
	msgEmptyTitles   = "Please enter a transcript first."
)

// Controller runs the transcript-to-result workflow for one tool. At most
// one generation is in flight at a time.
type Controller struct {
	tool   models.Tool
	api    Generator
	recent RecentStore
	clip   Copier
	log    logging.Logger

	onSuccess   func(ctx context.Context)
	maxFileSize int64
	now         func() time.Time

	state atomic.Int32
	hooks sync.WaitGroup

	mu         sync.Mutex
	transcript string
	format     models.Format
	result     *models.GenerationResult
	// epoch is bumped by Reset; a generation started before it is dropped.
	epoch uint64
}

// ControllerOption customizes a Controller.
type ControllerOption func(*Controller)

// WithRecent records every submitted transcript in s.
func WithRecent(s RecentStore) ControllerOption {
	return func(c *Controller) { c.recent = s }
}

// WithClipboard sets the clipboard used by CopyResult.
func WithClipboard(cp Copier) ControllerOption {
	return func(c *Controller) { c.clip = cp }
}

// OnSuccess registers a hook run in its own goroutine after each successful
// generation. The hook's context is detached from the caller's cancellation.
func OnSuccess(fn func(ctx context.Context)) ControllerOption {
	return func(c *Controller) { c.onSuccess = fn }
}

// WithMaxFileSize overrides the upload ceiling used by LoadFile.
func WithMaxFileSize(n int64) ControllerOption {
	return func(c *Controller) { c.maxFileSize = n }
}

func NewController(tool models.Tool, api Generator, log logging.Logger, opts ...ControllerOption) *Controller {
	if log == nil {
		log = logging.Nop{}
	}
	c := &Controller{
		tool:        tool,
		api:         api,
		log:         log.With("component", "generate", "tool", string(tool)),
		format:      models.FormatMarkdown,
		maxFileSize: common.MaxTranscriptFileSize,
		now:         time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) Tool() models.Tool { return c.tool }

func (c *Controller) SetTranscript(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transcript = text
}

func (c *Controller) Transcript() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transcript
}

// LoadFile replaces the transcript with the contents of path. A rejected
// file leaves the current transcript alone.
func (c *Controller) LoadFile(path string) error {
	text, err := filex.ReadTranscript(path, c.maxFileSize)
	if err != nil {
		return err
	}
	c.SetTranscript(text)
	return nil
}

// SetFormat selects the chapters output format. Titles ignore it.
func (c *Controller) SetFormat(f models.Format) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.format = f
}

func (c *Controller) Format() models.Format {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.format
}

func (c *Controller) State() State {
	return State(c.state.Load())
}

// Reset returns the controller to its initial state: no transcript, no
// result, default format. A generation in flight finishes with ErrCancelled
// and its output is dropped.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transcript = ""
	c.result = nil
	c.format = models.FormatMarkdown
	c.epoch++
}

// Result returns the latest successful result, if any.
func (c *Controller) Result() (models.GenerationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return models.GenerationResult{}, false
	}
	return *c.result, true
}

// Generate submits the current transcript. On success the result replaces
// the previous one and the transcript is cleared. On failure the transcript
// and any previous result are kept so the user can retry.
func (c *Controller) Generate(ctx context.Context) (models.GenerationResult, error) {
	if !c.state.CompareAndSwap(int32(StateIdle), int32(StateGenerating)) {
		return models.GenerationResult{}, common.ErrGenerationInProgress
	}
	defer c.state.Store(int32(StateIdle))

	c.mu.Lock()
	transcript, format, epoch := c.transcript, c.format, c.epoch
	c.mu.Unlock()

	if strings.TrimSpace(transcript) == "" {
		return models.GenerationResult{}, common.Notice(common.ErrEmptyTranscript, c.emptyMessage())
	}

	if c.recent != nil {
		if err := c.recent.PushRecentTranscript(ctx, transcript); err != nil {
			c.log.Warn(ctx, "failed to remember transcript", "error", err)
		}
	}

	text, err := c.call(ctx, transcript, format)
	if err != nil {
		c.log.Warn(ctx, "generation failed", "error", err)
		return models.GenerationResult{}, err
	}

	res := models.GenerationResult{Tool: c.tool, Format: format, Text: text, CreatedAt: c.now()}
	if c.tool == models.ToolTitles {
		res.Format = models.FormatPlain
	}

	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		c.log.Info(ctx, "generation result dropped after reset")
		return models.GenerationResult{}, common.ErrCancelled
	}
	c.result = &res
	c.transcript = ""
	c.mu.Unlock()

	c.log.Info(ctx, "generation finished", "format", string(res.Format), "bytes", len(text))

	if c.onSuccess != nil {
		hookCtx := context.WithoutCancel(ctx)
		c.hooks.Add(1)
		go func() {
			defer c.hooks.Done()
			c.onSuccess(hookCtx)
		}()
	}

	return res, nil
}

// Wait blocks until every success hook started so far has returned.
func (c *Controller) Wait() {
	c.hooks.Wait()
}

func (c *Controller) call(ctx context.Context, transcript string, format models.Format) (string, error) {
	if c.tool == models.ToolTitles {
		return c.api.GenerateTitles(ctx, transcript)
	}
	return c.api.GenerateChapters(ctx, transcript, format)
}

func (c *Controller) emptyMessage() string {
	if c.tool == models.ToolTitles {
		return msgEmptyTitles
	}
	return msgEmptyChapters
}

// CopyResult puts the current result on the clipboard. It is best effort:
// failures are logged and reported only through the return value.
func (c *Controller) CopyResult(ctx context.Context) bool {
	res, ok := c.Result()
	if !ok || c.clip == nil {
		return false
	}
	if err := c.clip.WriteAll(res.Text); err != nil {
		c.log.Warn(ctx, "clipboard write failed", "error", err)
		return false
	}
	return true
}

// ExportResult hands the current result to exp.
func (c *Controller) ExportResult(ctx context.Context, exp Exporter) (string, error) {
	res, ok := c.Result()
	if !ok {
		return "", common.ErrNoResult
	}
	loc, err := exp.Export(ctx, res)
	if err != nil {
		return "", fmt.Errorf("export %s: %w", c.tool, err)
	}
	c.log.Info(ctx, "result exported", "location", loc)
	return loc, nil
}

// Recent lists recently submitted transcripts, most recent first.
func (c *Controller) Recent(ctx context.Context) ([]string, error) {
	if c.recent == nil {
		return nil, nil
	}
	return c.recent.RecentTranscripts(ctx)
}

// UseRecent loads the n-th (1-based) recent transcript as the input.
func (c *Controller) UseRecent(ctx context.Context, n int) error {
	list, err := c.Recent(ctx)
	if err != nil {
		return err
	}
	if n < 1 || n > len(list) {
		return fmt.Errorf("%w: no recent transcript #%d", common.ErrValidation, n)
	}
	c.SetTranscript(list[n-1])
	return nil
}
