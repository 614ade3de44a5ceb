package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/common"
	"github.com/dmitrijs2005/creatorpilot/internal/logging"
)

// DefaultPageSize is the number of history records per page.
const DefaultPageSize = 5

// UnknownTool groups records the server stored without a tool.
const UnknownTool = "unknown"

// HistoryClient is the history half of the backend API.
type HistoryClient interface {
	ListHistory(ctx context.Context) ([]models.HistoryRecord, error)
	DeleteHistory(ctx context.Context, id string) error
}

// HistoryGroup is the records produced by one tool.
type HistoryGroup struct {
	Tool    string
	Records []models.HistoryRecord
}

// History is the locally held list of past generations with a search filter
// and pagination. It is safe for concurrent use; Refresh may run from a
// generation success hook while the user is paging.
type History struct {
	api      HistoryClient
	log      logging.Logger
	pageSize int

	mu      sync.RWMutex
	records []models.HistoryRecord
	query   string
	page    int
	// epoch is bumped by Clear; a refresh started before it is discarded.
	epoch uint64
}

func NewHistory(api HistoryClient, pageSize int, log logging.Logger) *History {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if log == nil {
		log = logging.Nop{}
	}
	return &History{api: api, pageSize: pageSize, log: log.With("component", "history"), page: 1}
}

// Refresh reloads the list from the server. On failure the previous list is
// kept.
func (h *History) Refresh(ctx context.Context) error {
	h.mu.RLock()
	epoch := h.epoch
	h.mu.RUnlock()

	list, err := h.api.ListHistory(ctx)
	if err != nil {
		h.log.Warn(ctx, "history refresh failed", "error", err)
		return err
	}

	h.mu.Lock()
	if h.epoch != epoch {
		h.mu.Unlock()
		h.log.Debug(ctx, "history refresh discarded after clear")
		return nil
	}
	h.records = list
	h.page = clampPage(h.page, pageCount(len(h.filteredLocked()), h.pageSize))
	h.mu.Unlock()

	h.log.Debug(ctx, "history refreshed", "records", len(list))
	return nil
}

// Clear drops the cached records and search state, e.g. after logout.
// A refresh still in flight will not repopulate the list.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records, h.query, h.page = nil, "", 1
	h.epoch++
}

// Records returns the unfiltered list.
func (h *History) Records() []models.HistoryRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]models.HistoryRecord(nil), h.records...)
}

// SetQuery changes the search string. A different query moves back to the
// first page.
func (h *History) SetQuery(q string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if q == h.query {
		return
	}
	h.query = q
	h.page = 1
}

func (h *History) Query() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.query
}

// Filtered returns the records matching the query in format, text or result,
// ignoring case.
func (h *History) Filtered() []models.HistoryRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.filteredLocked()
}

func (h *History) filteredLocked() []models.HistoryRecord {
	q := strings.ToLower(h.query)
	out := make([]models.HistoryRecord, 0, len(h.records))
	for _, r := range h.records {
		if q == "" ||
			strings.Contains(strings.ToLower(r.Format), q) ||
			strings.Contains(strings.ToLower(r.Text), q) ||
			strings.Contains(strings.ToLower(r.Result), q) {
			out = append(out, r)
		}
	}
	return out
}

func (h *History) PageSize() int { return h.pageSize }

// PageCount is the number of pages of the filtered list; zero when empty.
func (h *History) PageCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return pageCount(len(h.filteredLocked()), h.pageSize)
}

// Page returns page n (1-based, clamped to the valid range) of the filtered
// list and the total page count.
func (h *History) Page(n int) ([]models.HistoryRecord, int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.pageLocked(n)
}

func (h *History) pageLocked(n int) ([]models.HistoryRecord, int) {
	filtered := h.filteredLocked()
	total := pageCount(len(filtered), h.pageSize)
	n = clampPage(n, total)

	start := (n - 1) * h.pageSize
	if start >= len(filtered) {
		return nil, total
	}
	end := min(start+h.pageSize, len(filtered))
	return filtered[start:end], total
}

// SetPage moves to page n, clamped.
func (h *History) SetPage(n int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.page = clampPage(n, pageCount(len(h.filteredLocked()), h.pageSize))
	return h.page
}

// Current returns the records of the current page with its number and the
// page count.
func (h *History) Current() ([]models.HistoryRecord, int, int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	recs, total := h.pageLocked(h.page)
	return recs, clampPage(h.page, total), total
}

// GroupByTool splits the filtered list by tool, sorted by tool name.
func (h *History) GroupByTool() []HistoryGroup {
	byTool := make(map[string][]models.HistoryRecord)
	for _, r := range h.Filtered() {
		tool := strings.TrimSpace(r.Tool)
		if tool == "" {
			tool = UnknownTool
		}
		byTool[tool] = append(byTool[tool], r)
	}

	groups := make([]HistoryGroup, 0, len(byTool))
	for tool, recs := range byTool {
		groups = append(groups, HistoryGroup{Tool: tool, Records: recs})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Tool < groups[j].Tool })
	return groups
}

// Delete removes record id after the user confirms and the server agrees.
func (h *History) Delete(ctx context.Context, id string, c Confirmer) error {
	if !h.has(id) {
		return fmt.Errorf("%w: %s", common.ErrUnknownRecord, id)
	}

	ok, err := confirm(ctx, c, "Delete this history item?")
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrCancelled
	}

	if err := h.api.DeleteHistory(ctx, id); err != nil {
		h.log.Warn(ctx, "history delete failed", "id", id, "error", err)
		return err
	}

	h.mu.Lock()
	out := h.records[:0:0]
	for _, r := range h.records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	h.records = out
	h.page = clampPage(h.page, pageCount(len(h.filteredLocked()), h.pageSize))
	h.mu.Unlock()

	h.log.Info(ctx, "history record deleted", "id", id)
	return nil
}

func (h *History) has(id string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, r := range h.records {
		if r.ID == id {
			return true
		}
	}
	return false
}

func pageCount(n, size int) int {
	return (n + size - 1) / size
}

func clampPage(n, total int) int {
	if n > total {
		n = total
	}
	if n < 1 {
		n = 1
	}
	return n
}
