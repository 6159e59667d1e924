package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"ecowise/internal/identity"
	"ecowise/internal/record"

	"github.com/zeromicro/go-zero/core/logx"
)

var (
	// ErrValidation marks missing required input, detected before any
	// network call.
	ErrValidation = errors.New("validation failed")
	// ErrAuth marks an identity provider rejection.
	ErrAuth = errors.New("authentication failed")
)

// Identity is the authenticated user's minimal credential record. Exactly one
// instance is live per process; it is immutable for the session and cleared
// on logout.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Result reports a completed auth operation. Synced is false when the primary
// action succeeded but the backend profile side effect did not; the identity
// is valid either way.
type Result struct {
	Identity Identity `json:"identity"`
	Synced   bool     `json:"synced"`
}

// Snapshot is what subscribers receive on every state change.
type Snapshot struct {
	Identity *Identity
	Profile  *record.Profile
	Ready    bool
}

// Container owns the current identity and the cached profile record. Screens
// read it through Current/Subscribe; all mutation goes through the four auth
// operations. Mutating operations are serialized by an internal mutex.
type Container struct {
	gateway identity.Gateway
	records *record.Client

	mu       sync.Mutex
	identity *Identity
	profile  *record.Profile
	ready    bool
	subs     []func(Snapshot)
}

func NewContainer(gateway identity.Gateway, records *record.Client) *Container {
	return &Container{gateway: gateway, records: records}
}

// Init performs the first identity-resolution attempt. Whatever the outcome,
// the container is ready afterwards; consumers must not render protected
// content before that.
func (c *Container) Init(ctx context.Context) {
	acct, err := c.gateway.Resume(ctx)
	if err != nil {
		logx.WithContext(ctx).Errorf("session resume failed: %v", err)
	}

	c.mu.Lock()
	if acct != nil {
		c.identity = accountIdentity(acct)
	}
	c.ready = true
	c.mu.Unlock()

	if acct != nil {
		c.refreshProfile(ctx, acct.UID)
	}
	c.notify()
}

// SignUp creates a new identity with the provider, then registers a matching
// profile upstream with zero points. A failed profile registration is logged
// and reported through Result.Synced, never as an error: the identity is
// already valid locally.
func (c *Container) SignUp(ctx context.Context, email, password, name string) (*Result, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" || strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: email, password and name are required", ErrValidation)
	}

	acct, err := c.gateway.SignUp(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	id := accountIdentity(acct)
	if id.DisplayName == "" {
		id.DisplayName = name
	}
	c.setIdentity(id)

	synced := c.registerProfile(ctx, id, name)
	c.notify()
	return &Result{Identity: *id, Synced: synced}, nil
}

// LogIn resolves the identity only. The profile fetch is the provider-driven
// side effect, kicked off here the way the resumed-session path does it.
func (c *Container) LogIn(ctx context.Context, email, password string) (*Identity, error) {
	acct, err := c.gateway.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	id := accountIdentity(acct)
	c.setIdentity(id)
	c.refreshProfile(ctx, id.ID)
	c.notify()
	return id, nil
}

// LogInWithProvider delegates to the federated flow. First-time use triggers
// the same profile registration as signup.
func (c *Container) LogInWithProvider(ctx context.Context) (*Result, error) {
	acct, err := c.gateway.SignInWithProvider(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	id := accountIdentity(acct)
	c.setIdentity(id)
	synced := c.registerProfile(ctx, id, id.DisplayName)
	c.notify()
	return &Result{Identity: *id, Synced: synced}, nil
}

// LogOut clears identity and profile unconditionally. It never fails; a
// provider error on sign-out is logged only.
func (c *Container) LogOut(ctx context.Context) {
	if err := c.gateway.SignOut(ctx); err != nil {
		logx.WithContext(ctx).Errorf("provider sign-out failed: %v", err)
	}

	c.mu.Lock()
	c.identity = nil
	c.profile = nil
	c.mu.Unlock()
	c.notify()
}

// Current returns the present state of the container.
func (c *Container) Current() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{Identity: c.identity, Profile: c.profile, Ready: c.ready}
}

// Ready reports whether the first identity-resolution attempt has completed.
func (c *Container) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Subscribe registers fn to run on every state change. Subscribers are
// invoked synchronously before the mutating operation returns.
func (c *Container) Subscribe(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// RefreshProfile re-fetches the cached profile for the current identity.
// A failure leaves the cache untouched and is logged only.
func (c *Container) RefreshProfile(ctx context.Context) {
	c.mu.Lock()
	id := c.identity
	c.mu.Unlock()
	if id == nil {
		return
	}
	c.refreshProfile(ctx, id.ID)
	c.notify()
}

func (c *Container) setIdentity(id *Identity) {
	c.mu.Lock()
	c.identity = id
	c.ready = true
	c.mu.Unlock()
}

// registerProfile creates the upstream record and caches the result. Returns
// false when the backend call failed; the caller's primary action stands.
func (c *Container) registerProfile(ctx context.Context, id *Identity, name string) bool {
	if name == "" {
		name = "User"
	}
	created, err := c.records.CreateUser(ctx, record.Profile{
		ID:           id.ID,
		Email:        id.Email,
		Name:         name,
		EcoPoints:    0,
		Achievements: []string{},
	})
	if err != nil {
		logx.WithContext(ctx).Errorf("profile registration failed for %s: %v", id.ID, err)
		return false
	}

	c.mu.Lock()
	c.profile = created
	c.mu.Unlock()
	return true
}

func (c *Container) refreshProfile(ctx context.Context, userID string) {
	p, err := c.records.GetUser(ctx, userID)
	if err != nil {
		logx.WithContext(ctx).Errorf("profile fetch failed for %s: %v", userID, err)
		return
	}
	c.mu.Lock()
	c.profile = p
	c.mu.Unlock()
}

func (c *Container) notify() {
	c.mu.Lock()
	subs := make([]func(Snapshot), len(c.subs))
	copy(subs, c.subs)
	snap := Snapshot{Identity: c.identity, Profile: c.profile, Ready: c.ready}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func accountIdentity(acct *identity.Account) *Identity {
	return &Identity{ID: acct.UID, Email: acct.Email, DisplayName: acct.DisplayName}
}
