// Package models defines client-side data models used by the CreatorPilot CLI.
package models

// Roles are the privilege claims embedded in a session token.
type Roles struct {
	IsAdmin bool
	IsOwner bool
}

// Privileged reports whether the roles grant access to the admin directory.
func (r Roles) Privileged() bool {
	return r.IsAdmin || r.IsOwner
}

// Session is a snapshot of the current authentication state.
type Session struct {
	Token string
	Roles
}

// Authenticated reports whether a token is held.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// AuthMode selects the endpoint used by Authenticate.
type AuthMode string

const (
	ModeLogin    AuthMode = "login"
	ModeRegister AuthMode = "register"
)

// View is one screen of the client; the session decides which are visible.
type View string

const (
	ViewLogin     View = "login"
	ViewDashboard View = "dashboard"
	ViewTitles    View = "titles"
	ViewHistory   View = "history"
	ViewProfile   View = "profile"
	ViewAdmin     View = "admin"
)
