package identity

import "context"

// Placeholder account, used whenever the real provider is not configured so
// the rest of the system stays exercisable. The id is fixed so repeated
// logins in this mode stay deterministic.
const (
	PlaceholderUID   = "local-user-001"
	PlaceholderEmail = "demo@ecowise.app"
	PlaceholderName  = "Demo User"
)

type placeholderGateway struct{}

// NewPlaceholderGateway returns the degraded-mode gateway: every sign-in and
// sign-up resolves to the same local account and nothing ever fails.
func NewPlaceholderGateway() Gateway {
	return placeholderGateway{}
}

func placeholderAccount() *Account {
	return &Account{UID: PlaceholderUID, Email: PlaceholderEmail, DisplayName: PlaceholderName}
}

func (placeholderGateway) SignUp(ctx context.Context, email, password string) (*Account, error) {
	return placeholderAccount(), nil
}

func (placeholderGateway) SignIn(ctx context.Context, email, password string) (*Account, error) {
	return placeholderAccount(), nil
}

func (placeholderGateway) SignInWithProvider(ctx context.Context) (*Account, error) {
	return placeholderAccount(), nil
}

func (placeholderGateway) SignOut(ctx context.Context) error { return nil }

func (placeholderGateway) Resume(ctx context.Context) (*Account, error) { return nil, nil }
