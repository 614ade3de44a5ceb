package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/common"
)

var parser = jwt.NewParser()

// DeriveRoles reads the isAdmin and isOwner claims of token. The signature
// is not checked: the client holds no key and the server re-authorizes every
// call. An empty token yields zero roles.
func DeriveRoles(token string) (models.Roles, error) {
	if token == "" {
		return models.Roles{}, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return models.Roles{}, fmt.Errorf("%w: %v", common.ErrDecode, err)
	}

	return models.Roles{
		IsAdmin: boolClaim(claims, "isAdmin"),
		IsOwner: boolClaim(claims, "isOwner"),
	}, nil
}

func boolClaim(c jwt.MapClaims, name string) bool {
	v, _ := c[name].(bool)
	return v
}
