package config

import "github.com/zeromicro/go-zero/rest"

// IdentityConf holds the identity provider credentials. All three fields must
// be present for the real provider to be used; otherwise the session container
// runs in placeholder mode.
type IdentityConf struct {
	ApiKey    string `json:",optional"`
	Domain    string `json:",optional"`
	ProjectId string `json:",optional"`
}

type Config struct {
	rest.RestConf
	Backend struct {
		BaseUrl string
	}
	Ledger struct {
		// RpcUrl defaults to the public devnet endpoint.
		RpcUrl string `json:",default=https://api.devnet.solana.com"`
	}
	Identity IdentityConf
	Storage  struct {
		// Dir is where the wallet keypair and token counter files live.
		Dir string `json:",default=./data"`
	}
}

// IdentityConfigured reports whether a real identity provider is available.
func (c Config) IdentityConfigured() bool {
	return c.Identity.ApiKey != "" && c.Identity.Domain != "" && c.Identity.ProjectId != ""
}
