package client

import (
	"context"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
)

// Client is the full CreatorPilot backend API.
type Client interface {
	Login(ctx context.Context, email string, password []byte) (string, error)
	Register(ctx context.Context, email string, password []byte) (string, error)
	GenerateChapters(ctx context.Context, transcript string, format models.Format) (string, error)
	GenerateTitles(ctx context.Context, transcript string) (string, error)
	GetProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, p models.Profile) (models.Profile, error)
	ListHistory(ctx context.Context) ([]models.HistoryRecord, error)
	DeleteHistory(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	ToggleAdmin(ctx context.Context, id string) (models.UserSummary, error)
}

// TokenSource supplies the bearer credential for authenticated calls.
// An empty token means no Authorization header is sent.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }
