package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/carbonsentinel/api/internal/config"
)

// FirebaseProvider verifies sign-ins through the Firebase Admin SDK. The
// interactive part (popup, federated Google/GitHub providers) happens on the
// client; the server only ever sees the resulting ID token.
type FirebaseProvider struct {
	client *auth.Client
}

// NewFirebaseProvider initializes the Firebase Admin SDK and returns the
// provider backed by its Auth client.
func NewFirebaseProvider(ctx context.Context, cfg *config.Config) (*FirebaseProvider, error) {
	opt := option.WithCredentialsFile(cfg.FirebaseServiceAccountPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %v", err)
	}

	return &FirebaseProvider{client: client}, nil
}

// VerifySignIn validates the Firebase ID token and extracts the principal.
// Tokens routinely arrive with only uid and email populated (e.g. GitHub
// accounts without a public name), so every claim beyond Subject is optional.
func (p *FirebaseProvider) VerifySignIn(ctx context.Context, idToken string) (*Principal, error) {
	tok, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("invalid id token: %v", err)
	}

	principal := &Principal{UID: tok.UID}

	if email, ok := tok.Claims["email"].(string); ok {
		principal.Email = email
	}
	if name, ok := tok.Claims["name"].(string); ok {
		principal.DisplayName = name
	}

	return principal, nil
}

// SignOut revokes the user's refresh tokens so no new ID tokens can be
// minted for the old session.
func (p *FirebaseProvider) SignOut(ctx context.Context, uid string) error {
	return p.client.RevokeRefreshTokens(ctx, uid)
}
