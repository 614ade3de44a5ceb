package services

import (
	"context"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/logging"
)

// ProfileClient is the profile half of the backend API.
type ProfileClient interface {
	GetProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, p models.Profile) (models.Profile, error)
}

// Profiles loads and saves the current user's profile.
type Profiles struct {
	api ProfileClient
	log logging.Logger
}

func NewProfiles(api ProfileClient, log logging.Logger) *Profiles {
	if log == nil {
		log = logging.Nop{}
	}
	return &Profiles{api: api, log: log.With("component", "profile")}
}

func (p *Profiles) Load(ctx context.Context) (models.Profile, error) {
	return p.api.GetProfile(ctx)
}

// Save stores pr and returns the profile as the server now holds it.
func (p *Profiles) Save(ctx context.Context, pr models.Profile) (models.Profile, error) {
	out, err := p.api.UpdateProfile(ctx, pr)
	if err != nil {
		p.log.Warn(ctx, "profile update failed", "error", err)
		return models.Profile{}, err
	}
	p.log.Info(ctx, "profile updated")
	return out, nil
}
