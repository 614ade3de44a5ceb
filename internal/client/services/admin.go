package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/common"
	"github.com/dmitrijs2005/creatorpilot/internal/logging"
)

// AdminClient is the admin half of the backend API.
type AdminClient interface {
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	ToggleAdmin(ctx context.Context, id string) (models.UserSummary, error)
}

// Privileges reports whether the acting session is admin or owner.
type Privileges interface {
	IsPrivileged() bool
}

// Directory is the admin view of all accounts.
type Directory struct {
	api   AdminClient
	actor Privileges
	log   logging.Logger

	mu    sync.RWMutex
	users []models.UserSummary
}

func NewDirectory(api AdminClient, actor Privileges, log logging.Logger) *Directory {
	if log == nil {
		log = logging.Nop{}
	}
	return &Directory{api: api, actor: actor, log: log.With("component", "admin")}
}

// Visible reports whether the directory may be shown at all.
func (d *Directory) Visible() bool {
	return d.actor.IsPrivileged()
}

// Refresh reloads the user list. Non-privileged sessions are refused
// without a request.
func (d *Directory) Refresh(ctx context.Context) error {
	if !d.Visible() {
		return common.ErrForbidden
	}
	list, err := d.api.ListUsers(ctx)
	if err != nil {
		d.log.Warn(ctx, "user list refresh failed", "error", err)
		return err
	}
	d.mu.Lock()
	d.users = list
	d.mu.Unlock()
	return nil
}

func (d *Directory) Clear() {
	d.mu.Lock()
	d.users = nil
	d.mu.Unlock()
}

func (d *Directory) Users() []models.UserSummary {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.UserSummary(nil), d.users...)
}

// CanToggle reports whether the toggle action is offered for u. Owners are
// never toggled, whoever asks.
func (d *Directory) CanToggle(u models.UserSummary) bool {
	return d.Visible() && !u.IsOwner
}

// ToggleAdmin flips the admin flag of user id after confirmation. The local
// record is replaced by the one the server returns.
func (d *Directory) ToggleAdmin(ctx context.Context, id string, c Confirmer) (models.UserSummary, error) {
	u, ok := d.find(id)
	if !ok {
		return models.UserSummary{}, fmt.Errorf("%w: %s", common.ErrUnknownUser, id)
	}
	if !d.Visible() {
		return models.UserSummary{}, common.ErrForbidden
	}
	if u.IsOwner {
		return models.UserSummary{}, common.ErrOwnerLocked
	}

	prompt := fmt.Sprintf("Grant admin rights to %s?", u.Email)
	if u.IsAdmin {
		prompt = fmt.Sprintf("Remove admin rights from %s?", u.Email)
	}
	yes, err := confirm(ctx, c, prompt)
	if err != nil {
		return models.UserSummary{}, err
	}
	if !yes {
		return models.UserSummary{}, common.ErrCancelled
	}

	updated, err := d.api.ToggleAdmin(ctx, id)
	if err != nil {
		d.log.Warn(ctx, "toggle admin failed", "id", id, "error", err)
		return models.UserSummary{}, err
	}

	d.mu.Lock()
	for i := range d.users {
		if d.users[i].ID == id {
			d.users[i] = updated
			break
		}
	}
	d.mu.Unlock()

	d.log.Info(ctx, "admin flag updated", "id", id, "isAdmin", updated.IsAdmin)
	return updated, nil
}

func (d *Directory) find(id string) (models.UserSummary, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.UserSummary{}, false
}
