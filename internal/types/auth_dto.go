package types

// SignupReq defines the request body for creating a new account.
type SignupReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginReq defines the request body for password login.
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IdentityView is the identity record returned to the caller.
type IdentityView struct {
	Id          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// AuthResp is returned by signup and federated login. Synced is false when
// the identity was created but the backend profile registration failed.
type AuthResp struct {
	Identity IdentityView `json:"identity"`
	Synced   bool         `json:"synced"`
}

// LoginResp is returned by password login.
type LoginResp struct {
	Identity IdentityView `json:"identity"`
}

// ProfileView mirrors the backend profile record cached by the session.
type ProfileView struct {
	Id            string   `json:"id"`
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	WalletAddress string   `json:"wallet_address,omitempty"`
	EcoPoints     int      `json:"eco_points"`
	Achievements  []string `json:"achievements"`
}

// SessionResp describes the current session state. Identity and Profile are
// null until a login succeeds; Ready is false until the first resolution
// attempt completes.
type SessionResp struct {
	Ready    bool          `json:"ready"`
	Identity *IdentityView `json:"identity"`
	Profile  *ProfileView  `json:"profile"`
}
