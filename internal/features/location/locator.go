package location

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/carbonsentinel/api/internal/pkg/geo"
	apperrors "github.com/carbonsentinel/api/pkg/errors"
)

const (
	// acquireTimeout bounds how long a single position fix may take.
	acquireTimeout = 10 * time.Second

	// maxCacheAge is how stale a cached position may be before a fresh fix
	// is forced.
	maxCacheAge = 60 * time.Second
)

var (
	ErrPermissionDenied    = fmt.Errorf("%w: permission denied", apperrors.ErrLocationUnavailable)
	ErrPositionUnavailable = fmt.Errorf("%w: position unavailable", apperrors.ErrLocationUnavailable)
	ErrTimeout             = fmt.Errorf("%w: timed out", apperrors.ErrLocationUnavailable)
)

// Position is one acquired fix.
type Position struct {
	Coordinates geo.Coordinates
	AcquiredAt  time.Time
}

// Provider acquires a one-shot position fix. Implementations map their own
// failure modes onto the package errors above where they can.
type Provider interface {
	CurrentPosition(ctx context.Context) (*Position, error)
}

// Resolver wraps a Provider with the acquisition contract: a bounded wait,
// tolerance for a recent cached fix, and a generation guard that discards a
// fix completing after Invalidate (the stale-callback hazard: a caller that
// went away must not have its late result applied).
type Resolver struct {
	provider Provider
	now      func() time.Time

	mu     sync.Mutex
	cached *Position
	gen    uint64
}

func NewResolver(provider Provider) *Resolver {
	return &Resolver{
		provider: provider,
		now:      time.Now,
	}
}

// Resolve returns coordinates, serving a cached position up to maxCacheAge
// old rather than always forcing a fresh fix.
func (r *Resolver) Resolve(ctx context.Context) (*geo.Coordinates, error) {
	r.mu.Lock()
	if r.cached != nil && r.now().Sub(r.cached.AcquiredAt) <= maxCacheAge {
		coords := r.cached.Coordinates
		r.mu.Unlock()
		return &coords, nil
	}
	gen := r.gen
	r.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, acquireTimeout)
	defer cancel()

	pos, err := r.provider.CurrentPosition(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		if errors.Is(err, apperrors.ErrLocationUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrLocationUnavailable, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen {
		// Invalidate ran while the fix was in flight; do not apply it.
		return nil, ErrPositionUnavailable
	}

	if pos.AcquiredAt.IsZero() {
		pos.AcquiredAt = r.now()
	}
	r.cached = pos

	coords := pos.Coordinates
	return &coords, nil
}

// Invalidate drops the cache and marks any in-flight fix stale.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.cached = nil
}
