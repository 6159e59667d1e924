package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Account is the minimal record the identity provider hands back after a
// successful authentication.
type Account struct {
	UID         string
	Email       string
	DisplayName string
}

// Gateway abstracts the external identity provider. Resume reports a session
// that survived a previous process, or (nil, nil) when there is none.
type Gateway interface {
	SignUp(ctx context.Context, email, password string) (*Account, error)
	SignIn(ctx context.Context, email, password string) (*Account, error)
	SignInWithProvider(ctx context.Context) (*Account, error)
	SignOut(ctx context.Context) error
	Resume(ctx context.Context) (*Account, error)
}

// ErrRejected is returned when the provider refuses the credentials
// (duplicate email, wrong password, cancelled federated flow).
var ErrRejected = errors.New("identity provider rejected credentials")

type restGateway struct {
	apiKey    string
	baseURL   string
	projectID string
	http      *http.Client
}

// NewRESTGateway talks to an identity-toolkit style REST provider keyed by
// apiKey. domain is the provider host, e.g. "identitytoolkit.googleapis.com".
func NewRESTGateway(apiKey, domain, projectID string) Gateway {
	return &restGateway{
		apiKey:    apiKey,
		baseURL:   fmt.Sprintf("https://%s/v1", domain),
		projectID: projectID,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

type authResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IDToken     string `json:"idToken"`
}

func (g *restGateway) SignUp(ctx context.Context, email, password string) (*Account, error) {
	return g.passwordCall(ctx, "accounts:signUp", email, password)
}

func (g *restGateway) SignIn(ctx context.Context, email, password string) (*Account, error) {
	return g.passwordCall(ctx, "accounts:signInWithPassword", email, password)
}

// SignInWithProvider needs the provider's interactive redirect flow, which a
// headless process cannot drive. The provider treats it as a rejection.
func (g *restGateway) SignInWithProvider(ctx context.Context) (*Account, error) {
	return nil, fmt.Errorf("%w: federated sign-in requires an interactive flow", ErrRejected)
}

// SignOut is local-only for a REST provider: the ID token is simply dropped.
func (g *restGateway) SignOut(ctx context.Context) error { return nil }

// Resume always reports no session: the REST provider keeps no state in this
// process between runs.
func (g *restGateway) Resume(ctx context.Context) (*Account, error) { return nil, nil }

func (g *restGateway) passwordCall(ctx context.Context, endpoint, email, password string) (*Account, error) {
	payload, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s?key=%s", g.baseURL, endpoint, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s (%d)", ErrRejected, endpoint, resp.StatusCode)
	}

	var ar authResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return nil, fmt.Errorf("decode provider response: %w", err)
	}

	acct := &Account{UID: ar.LocalID, Email: ar.Email, DisplayName: ar.DisplayName}
	fillFromToken(acct, ar.IDToken)
	return acct, nil
}

// fillFromToken backfills missing account fields from the ID token claims.
// The token is decoded, not verified: verification is the provider's job and
// we only ever read tokens it just issued to us.
func fillFromToken(acct *Account, idToken string) {
	if idToken == "" {
		return
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return
	}
	if acct.UID == "" {
		if sub, ok := claims["sub"].(string); ok {
			acct.UID = sub
		}
	}
	if acct.Email == "" {
		if email, ok := claims["email"].(string); ok {
			acct.Email = email
		}
	}
	if acct.DisplayName == "" {
		if name, ok := claims["name"].(string); ok {
			acct.DisplayName = name
		}
	}
}
