package identity

import (
	"context"
	"fmt"
	"sync"

	"github.com/carbonsentinel/api/internal/pkg/logger"
	apperrors "github.com/carbonsentinel/api/pkg/errors"
)

// Provider bridges to the external identity provider.
type Provider interface {
	// VerifySignIn validates the outcome of an interactive sign-in (the ID
	// token the client obtained) and returns the principal it certifies. The
	// provider may populate only UID and Email.
	VerifySignIn(ctx context.Context, idToken string) (*Principal, error)

	// SignOut revokes the provider-side session for the given user.
	SignOut(ctx context.Context, uid string) error
}

// Gate owns the session's current principal and notifies subscribers on
// every sign-in and sign-out. All principal changes flow through SignIn and
// SignOut; nothing else mutates the slot.
type Gate struct {
	provider Provider
	log      *logger.Logger

	mu      sync.Mutex
	current *Principal
	subs    map[int]func(*Principal)
	nextSub int
}

func NewGate(provider Provider, log *logger.Logger) *Gate {
	return &Gate{
		provider: provider,
		log:      log,
		subs:     make(map[int]func(*Principal)),
	}
}

// Current returns the signed-in principal, or nil when anonymous.
func (g *Gate) Current() *Principal {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == nil {
		return nil
	}
	p := *g.current
	return &p
}

// Subscribe registers a callback for principal changes. The callback is
// invoked immediately with the current principal, then again on every
// subsequent sign-in and sign-out (nil on sign-out). The returned function
// releases the registration and must be called exactly once, at teardown.
func (g *Gate) Subscribe(fn func(*Principal)) func() {
	g.mu.Lock()
	id := g.nextSub
	g.nextSub++
	g.subs[id] = fn
	current := g.current
	g.mu.Unlock()

	fn(current)

	return func() {
		g.mu.Lock()
		delete(g.subs, id)
		g.mu.Unlock()
	}
}

// SignIn verifies the sign-in result with the provider and installs the
// certified principal as current. Provider failures (cancelled popup,
// network error, bad token) surface with the provider's error code; the gate
// never retries on its own.
func (g *Gate) SignIn(ctx context.Context, idToken string) (*Principal, error) {
	if g.provider == nil {
		return nil, fmt.Errorf("%w: no provider configured", apperrors.ErrIdentityProvider)
	}

	principal, err := g.provider.VerifySignIn(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrIdentityProvider, err)
	}

	g.mu.Lock()
	g.current = principal
	subs := g.snapshotSubsLocked()
	g.mu.Unlock()

	g.log.Info("principal signed in: %s", principal.Label())
	notify(subs, principal)
	return principal, nil
}

// SignOut clears the current principal and revokes the provider session. A
// provider failure leaves the principal in place so the caller may retry.
func (g *Gate) SignOut(ctx context.Context) error {
	g.mu.Lock()
	current := g.current
	g.mu.Unlock()

	if current == nil {
		return nil
	}

	if err := g.provider.SignOut(ctx, current.UID); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrIdentityProvider, err)
	}

	g.mu.Lock()
	g.current = nil
	subs := g.snapshotSubsLocked()
	g.mu.Unlock()

	g.log.Info("principal signed out: %s", current.Label())
	notify(subs, nil)
	return nil
}

func (g *Gate) snapshotSubsLocked() []func(*Principal) {
	subs := make([]func(*Principal), 0, len(g.subs))
	for _, fn := range g.subs {
		subs = append(subs, fn)
	}
	return subs
}

// notify runs outside the gate's lock so callbacks may call back into it.
func notify(subs []func(*Principal), p *Principal) {
	for _, fn := range subs {
		if p == nil {
			fn(nil)
			continue
		}
		cp := *p
		fn(&cp)
	}
}
