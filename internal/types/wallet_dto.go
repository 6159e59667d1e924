package types

// WalletInitResp defines the response for generating a new wallet. Only the
// public address leaves the process; the secret key stays in local storage.
type WalletInitResp struct {
	Address string `json:"address"`
}

// WalletStatusResp describes the wallet container's current state.
type WalletStatusResp struct {
	Exists    bool    `json:"exists"`
	Address   string  `json:"address,omitempty"`
	Balance   float64 `json:"balance"`
	EcoTokens int64   `json:"eco_tokens"`
	Busy      bool    `json:"busy"`
}

// BalanceReq queries a balance, defaulting to the loaded wallet's address.
type BalanceReq struct {
	Address string `form:"address,optional"`
}

type BalanceResp struct {
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
}

// AirdropReq requests test funds in display units.
type AirdropReq struct {
	Amount float64 `json:"amount,default=1"`
}

type AirdropResp struct {
	Signature string  `json:"signature"`
	Balance   float64 `json:"balance"`
}

// SendReq submits a native transfer in display units.
type SendReq struct {
	ToAddress string  `json:"to_address"`
	Amount    float64 `json:"amount"`
}

type SendResp struct {
	Signature string  `json:"signature"`
	Balance   float64 `json:"balance"`
}

// TokensResp reports the client-local reward-token counter.
type TokensResp struct {
	EcoTokens int64 `json:"eco_tokens"`
}

// TokenUpdateReq earns or spends reward tokens. Amount is always positive;
// the route decides the sign.
type TokenUpdateReq struct {
	Amount int64 `json:"amount"`
}
