package models

// UserSummary is a directory entry returned to admins and owners.
type UserSummary struct {
	ID      string `json:"_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	IsOwner bool   `json:"isOwner"`
}

// RoleLabel returns the highest role held by the user.
func (u UserSummary) RoleLabel() string {
	switch {
	case u.IsOwner:
		return "Owner"
	case u.IsAdmin:
		return "Admin"
	default:
		return "User"
	}
}

// Profile is the editable part of the current user's account.
type Profile struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}
