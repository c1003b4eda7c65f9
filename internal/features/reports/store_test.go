package reports

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carbonsentinel/api/internal/features/identity"
	"github.com/carbonsentinel/api/internal/pkg/geo"
	apperrors "github.com/carbonsentinel/api/pkg/errors"
)

// allowAll grants triage to anyone, signed in or not.
type allowAll struct{}

func (allowAll) CanTriage(*identity.Principal) bool { return true }

// signedInOnly mirrors the production policy: any non-nil principal.
type signedInOnly struct{}

func (signedInOnly) CanTriage(p *identity.Principal) bool { return p != nil }

func council() *identity.Principal {
	return &identity.Principal{UID: "council-1", Email: "warden@nairobi.go.ke"}
}

func TestSubmit_Valid(t *testing.T) {
	store := NewStore(signedInOnly{})

	report, err := store.Submit(SubmitInput{
		Title:       "Waste Burn in Kibera",
		Description: "Heavy black smoke daily",
		Location:    &geo.Coordinates{Latitude: -1.28, Longitude: 36.82},
	}, nil)

	require.NoError(t, err)
	require.NotEmpty(t, report.ID)
	require.Equal(t, StatusPending, report.Status)
	require.Equal(t, GuestSubmitter, report.SubmittedBy)
	require.Equal(t, "Waste Burn in Kibera", report.Title)
	require.False(t, report.CreatedAt.IsZero())
	require.Equal(t, 1, store.Len())
}

func TestSubmit_TrimsWhitespace(t *testing.T) {
	store := NewStore(signedInOnly{})

	report, err := store.Submit(SubmitInput{
		Title:       "  Open burning  ",
		Description: "\tconstant smoke\n",
	}, nil)

	require.NoError(t, err)
	require.Equal(t, "Open burning", report.Title)
	require.Equal(t, "constant smoke", report.Description)
	require.Nil(t, report.Location)
}

func TestSubmit_AttributesPrincipal(t *testing.T) {
	store := NewStore(signedInOnly{})

	report, err := store.Submit(SubmitInput{
		Title:       "Diesel generators",
		Description: "Running all night",
	}, council())

	require.NoError(t, err)
	require.Equal(t, "council-1", report.SubmittedBy)
}

func TestSubmit_RejectsBlankFields(t *testing.T) {
	store := NewStore(signedInOnly{})

	cases := []SubmitInput{
		{Title: "", Description: "something"},
		{Title: "something", Description: ""},
		{Title: "   ", Description: "something"},
		{Title: "something", Description: " \t\n"},
		{Title: "", Description: ""},
	}

	for _, input := range cases {
		_, err := store.Submit(input, nil)
		require.ErrorIs(t, err, apperrors.ErrValidation)
	}

	// Collection untouched by any failed submission.
	require.Equal(t, 0, store.Len())
}

func TestSubmit_RejectsOutOfRangeCoordinates(t *testing.T) {
	store := NewStore(signedInOnly{})

	_, err := store.Submit(SubmitInput{
		Title:       "Bad pin",
		Description: "coords are junk",
		Location:    &geo.Coordinates{Latitude: 91, Longitude: 0},
	}, nil)

	require.ErrorIs(t, err, apperrors.ErrValidation)
	require.Equal(t, 0, store.Len())
}

func TestSubmit_UniqueIDs(t *testing.T) {
	store := NewStore(signedInOnly{})

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		report, err := store.Submit(SubmitInput{Title: "t", Description: "d"}, nil)
		require.NoError(t, err)
		require.False(t, seen[report.ID])
		seen[report.ID] = true
	}
}

func TestToggleStatus_Involution(t *testing.T) {
	store := NewStore(signedInOnly{})
	report, err := store.Submit(SubmitInput{Title: "t", Description: "d"}, nil)
	require.NoError(t, err)

	flipped, err := store.ToggleStatus(report.ID, council())
	require.NoError(t, err)
	require.Equal(t, StatusResolved, flipped.Status)

	restored, err := store.ToggleStatus(report.ID, council())
	require.NoError(t, err)
	require.Equal(t, StatusPending, restored.Status)
}

func TestToggleStatus_UnknownID(t *testing.T) {
	store := NewStore(signedInOnly{})
	_, err := store.Submit(SubmitInput{Title: "t", Description: "d"}, nil)
	require.NoError(t, err)

	_, err = store.ToggleStatus("no-such-id", council())
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.Equal(t, 1, store.Len())
}

func TestToggleStatus_AnonymousForbidden(t *testing.T) {
	store := NewStore(signedInOnly{})
	report, err := store.Submit(SubmitInput{Title: "t", Description: "d"}, nil)
	require.NoError(t, err)

	_, err = store.ToggleStatus(report.ID, nil)
	require.ErrorIs(t, err, apperrors.ErrForbidden)

	// Status unchanged after the refused call.
	for r := range store.List() {
		require.Equal(t, StatusPending, r.Status)
	}
}

func TestList_InsertionOrder(t *testing.T) {
	store := NewStore(allowAll{})

	titles := []string{"first", "second", "third"}
	var ids []string
	for _, title := range titles {
		report, err := store.Submit(SubmitInput{Title: title, Description: "d"}, nil)
		require.NoError(t, err)
		ids = append(ids, report.ID)
	}

	// Resolving a report must not move it.
	_, err := store.ToggleStatus(ids[0], nil)
	require.NoError(t, err)

	var got []string
	for r := range store.List() {
		got = append(got, r.Title)
	}
	require.Equal(t, titles, got)
}

func TestList_Restartable(t *testing.T) {
	store := NewStore(allowAll{})
	for i := 0; i < 3; i++ {
		_, err := store.Submit(SubmitInput{Title: "t", Description: "d"}, nil)
		require.NoError(t, err)
	}

	seq := store.List()

	var first, second int
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	require.Equal(t, 3, first)
	require.Equal(t, 3, second)
}

func TestList_SnapshotIsolation(t *testing.T) {
	store := NewStore(allowAll{})
	report, err := store.Submit(SubmitInput{
		Title:       "t",
		Description: "d",
		Location:    &geo.Coordinates{Latitude: 1, Longitude: 2},
	}, nil)
	require.NoError(t, err)

	for r := range store.List() {
		r.Location.Latitude = 99
	}
	_, err = store.ToggleStatus(report.ID, nil)
	require.NoError(t, err)

	for r := range store.List() {
		require.Equal(t, 1.0, r.Location.Latitude)
	}
}
