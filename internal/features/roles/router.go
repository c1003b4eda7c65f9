package roles

import (
	"fmt"
	"sync"

	"github.com/carbonsentinel/api/internal/features/identity"
)

// ViewMode selects which surface the client is looking at.
type ViewMode string

const (
	ViewCitizen ViewMode = "citizen"
	ViewCouncil ViewMode = "council"
)

// ParseViewMode validates a raw mode string.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewCitizen, ViewCouncil:
		return ViewMode(s), nil
	default:
		return "", fmt.Errorf("unknown view mode %q", s)
	}
}

// Router couples two independent concerns: the navigation-driven view mode,
// and the capability check that gates triage. The view mode has no bearing
// on CanTriage.
type Router struct {
	mu   sync.Mutex
	mode ViewMode
}

func NewRouter() *Router {
	return &Router{mode: ViewCitizen}
}

func (r *Router) Mode() ViewMode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

func (r *Router) SetMode(mode ViewMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mode = mode
}

// CanTriage grants the council capability to any authenticated principal.
// There is no finer-grained role claim; being signed in is deliberately
// equated with council membership.
func (r *Router) CanTriage(p *identity.Principal) bool {
	return p != nil
}
