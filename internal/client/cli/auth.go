package cli

import (
	"context"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/common"
)

// Register prompts the user for an email and password and creates a new
// account. The new session becomes current on success.
func (a *App) Register(ctx context.Context) error {
	return a.authenticate(ctx, models.ModeRegister)
}

// Login prompts the user for credentials and tries to authenticate.
//
// The password is wiped before returning. A failed attempt leaves the
// previous (signed-out) session in place.
func (a *App) Login(ctx context.Context) error {
	return a.authenticate(ctx, models.ModeLogin)
}

func (a *App) authenticate(ctx context.Context, mode models.AuthMode) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Authenticate(ctx, email, password, mode); err != nil {
		return err
	}

	a.email = email
	if mode == models.ModeRegister {
		a.success("Account created. Welcome, %s!", email)
	} else {
		a.success("Logged in as %s.", email)
	}
	return nil
}

// Logout forgets the stored token. Cached history and users go with it.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.success("Logged out.")
	return nil
}

func (a *App) WhoAmI(_ context.Context) error {
	s := a.session.Current()
	who := a.email
	if who == "" {
		who = "restored session"
	}
	role := models.UserSummary{IsAdmin: s.IsAdmin, IsOwner: s.IsOwner}.RoleLabel()
	a.info("%s, role: %s", who, role)
	return nil
}
