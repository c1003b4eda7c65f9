package reports

import (
	"fmt"
	"iter"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carbonsentinel/api/internal/features/identity"
	"github.com/carbonsentinel/api/internal/pkg/geo"
	apperrors "github.com/carbonsentinel/api/pkg/errors"
)

// TriagePolicy answers whether a principal may toggle report status. The
// role router implements it.
type TriagePolicy interface {
	CanTriage(p *identity.Principal) bool
}

// SubmitInput is the validated-at-the-store submission payload.
type SubmitInput struct {
	Title       string
	Description string
	Location    *geo.Coordinates
}

// Store is the authoritative in-memory collection of reports. All mutations
// go through Submit and ToggleStatus; both are atomic under the store's
// lock, so no caller ever observes a partially-applied change. Reports are
// never deleted.
type Store struct {
	policy TriagePolicy
	now    func() time.Time
	newID  func() string

	mu    sync.Mutex
	order []*Report
	byID  map[string]*Report
}

func NewStore(policy TriagePolicy) *Store {
	return &Store{
		policy: policy,
		now:    time.Now,
		newID:  uuid.NewString,
		byID:   make(map[string]*Report),
	}
}

// Submit validates the input and appends a new pending report. Anonymous
// principals are allowed; the report is attributed to the guest sentinel.
func (s *Store) Submit(input SubmitInput, p *identity.Principal) (*Report, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)

	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description are required", apperrors.ErrValidation)
	}
	if input.Location != nil && !input.Location.Valid() {
		return nil, fmt.Errorf("%w: coordinates out of range", apperrors.ErrValidation)
	}

	submittedBy := GuestSubmitter
	if p != nil {
		submittedBy = p.UID
	}

	report := &Report{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Status:      StatusPending,
		SubmittedBy: submittedBy,
		CreatedAt:   s.now(),
	}
	if input.Location != nil {
		loc := *input.Location
		report.Location = &loc
	}

	s.mu.Lock()
	s.order = append(s.order, report)
	s.byID[report.ID] = report
	s.mu.Unlock()

	return report.clone(), nil
}

// ToggleStatus flips pending to resolved and back. Triage is a council
// capability: the policy check happens here, at the store, so the rule holds
// no matter which surface issued the call. Two consecutive toggles restore
// the original status.
func (s *Store) ToggleStatus(id string, p *identity.Principal) (*Report, error) {
	if !s.policy.CanTriage(p) {
		return nil, fmt.Errorf("%w: triage requires the council capability", apperrors.ErrForbidden)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	report, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: report %s", apperrors.ErrNotFound, id)
	}

	if report.Status == StatusPending {
		report.Status = StatusResolved
	} else {
		report.Status = StatusPending
	}

	return report.clone(), nil
}

// List returns a restartable sequence over a snapshot of the collection, in
// insertion order regardless of status.
func (s *Store) List() iter.Seq[Report] {
	s.mu.Lock()
	snapshot := make([]Report, len(s.order))
	for i, r := range s.order {
		snapshot[i] = *r.clone()
	}
	s.mu.Unlock()

	return func(yield func(Report) bool) {
		for _, r := range snapshot {
			if !yield(r) {
				return
			}
		}
	}
}

// Len returns the collection size.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
