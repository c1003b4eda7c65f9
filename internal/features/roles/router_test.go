package roles

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carbonsentinel/api/internal/features/identity"
)

func TestRouter_DefaultsToCitizen(t *testing.T) {
	r := NewRouter()
	require.Equal(t, ViewCitizen, r.Mode())
}

func TestRouter_SetMode(t *testing.T) {
	r := NewRouter()
	r.SetMode(ViewCouncil)
	require.Equal(t, ViewCouncil, r.Mode())
}

func TestParseViewMode(t *testing.T) {
	mode, err := ParseViewMode("council")
	require.NoError(t, err)
	require.Equal(t, ViewCouncil, mode)

	_, err = ParseViewMode("admin")
	require.Error(t, err)
}

func TestCanTriage(t *testing.T) {
	r := NewRouter()

	require.False(t, r.CanTriage(nil))
	require.True(t, r.CanTriage(&identity.Principal{UID: "u1"}))

	// A record with only a uid still counts as signed in.
	require.True(t, r.CanTriage(&identity.Principal{UID: "u2", Email: ""}))
}

func TestCanTriage_IndependentOfViewMode(t *testing.T) {
	r := NewRouter()
	r.SetMode(ViewCitizen)

	// Switching surfaces never grants or revokes the capability.
	require.True(t, r.CanTriage(&identity.Principal{UID: "u1"}))
	require.False(t, r.CanTriage(nil))
}
