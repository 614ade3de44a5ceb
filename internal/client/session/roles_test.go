package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/common"
)

func TestDeriveRoles(t *testing.T) {
	tests := []struct {
		name  string
		admin bool
		owner bool
	}{
		{"plain", false, false},
		{"admin", true, false},
		{"owner", false, true},
		{"both", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := DeriveRoles(signToken(t, tt.admin, tt.owner))
			require.NoError(t, err)
			assert.Equal(t, models.Roles{IsAdmin: tt.admin, IsOwner: tt.owner}, r)
		})
	}
}

func TestDeriveRoles_Empty(t *testing.T) {
	r, err := DeriveRoles("")
	require.NoError(t, err)
	assert.Equal(t, models.Roles{}, r)
}

func TestDeriveRoles_Garbage(t *testing.T) {
	r, err := DeriveRoles("a.b")
	require.ErrorIs(t, err, common.ErrDecode)
	assert.Equal(t, models.Roles{}, r)
}

func TestDeriveRoles_NonBoolClaimsIgnored(t *testing.T) {
	// header {"alg":"none"}, payload {"isAdmin":"yes","isOwner":1}
	tok := "eyJhbGciOiJub25lIn0.eyJpc0FkbWluIjoieWVzIiwiaXNPd25lciI6MX0."
	r, err := DeriveRoles(tok)
	require.NoError(t, err)
	assert.Equal(t, models.Roles{}, r)
}
