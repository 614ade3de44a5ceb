// Package storage keeps the client's durable preferences (session token,
// theme and recent transcripts) on top of the metadata key-value table.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/creatorpilot/internal/common"
	"github.com/dmitrijs2005/creatorpilot/internal/dbx"
)

// Prefs is a typed view over metadata.Repository.
type Prefs struct {
	db   *sql.DB
	repo metadata.Repository

	// newRepo builds a repository bound to a transaction handle.
	newRepo func(dbx.DBTX) metadata.Repository
}

// NewPrefs returns Prefs backed by the sqlite metadata table in db.
func NewPrefs(db *sql.DB) *Prefs {
	newRepo := func(tx dbx.DBTX) metadata.Repository { return metadata.NewSQLiteRepository(tx) }
	return &Prefs{db: db, repo: newRepo(db), newRepo: newRepo}
}

// Token returns the persisted session token or "" when none is stored.
func (p *Prefs) Token(ctx context.Context) (string, error) {
	v, err := p.repo.Get(ctx, common.TokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (p *Prefs) SetToken(ctx context.Context, token string) error {
	return p.repo.Set(ctx, common.TokenKey, []byte(token))
}

func (p *Prefs) ClearToken(ctx context.Context) error {
	return p.repo.Delete(ctx, common.TokenKey)
}

// Theme returns the persisted theme, dark when unset.
func (p *Prefs) Theme(ctx context.Context) (models.Theme, error) {
	v, err := p.repo.Get(ctx, common.ThemeKey)
	if err != nil {
		return models.ThemeDark, err
	}
	return models.ParseTheme(string(v)), nil
}

func (p *Prefs) SetTheme(ctx context.Context, t models.Theme) error {
	return p.repo.Set(ctx, common.ThemeKey, []byte(t))
}

// RecentTranscripts returns up to common.MaxRecentTranscripts entries, most
// recent first.
func (p *Prefs) RecentTranscripts(ctx context.Context) ([]string, error) {
	return readRecent(ctx, p.repo)
}

// PushRecentTranscript moves text to the front of the recent list, dropping
// duplicates and anything past the limit. Read and write share a transaction.
func (p *Prefs) PushRecentTranscript(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := p.newRepo(tx)
		list, err := readRecent(ctx, repo)
		if err != nil {
			return err
		}
		list = pushFront(list, text, common.MaxRecentTranscripts)
		raw, err := json.Marshal(list)
		if err != nil {
			return fmt.Errorf("encode recent transcripts: %w", err)
		}
		return repo.Set(ctx, common.RecentTranscriptsKey, raw)
	})
}

func readRecent(ctx context.Context, repo metadata.Repository) ([]string, error) {
	raw, err := repo.Get(ctx, common.RecentTranscriptsKey)
	if err != nil || raw == nil {
		return nil, err
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		// A corrupt list is not worth failing a generation over.
		return nil, nil
	}
	if len(list) > common.MaxRecentTranscripts {
		list = list[:common.MaxRecentTranscripts]
	}
	return list, nil
}

func pushFront(list []string, text string, limit int) []string {
	out := make([]string, 0, limit)
	out = append(out, text)
	for _, s := range list {
		if s == text {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, s)
	}
	return out
}
