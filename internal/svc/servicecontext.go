package svc

import (
	"context"
	"log"

	"ecowise/internal/chain"
	"ecowise/internal/config"
	"ecowise/internal/identity"
	"ecowise/internal/record"
	"ecowise/internal/session"
	"ecowise/internal/store"
	"ecowise/internal/wallet"

	"github.com/zeromicro/go-zero/core/logx"
)

type ServiceContext struct {
	Config  config.Config
	Session *session.Container
	Wallet  *wallet.Container
	Records *record.Client
}

func NewServiceContext(c config.Config) *ServiceContext {
	st, err := store.New(c.Storage.Dir)
	if err != nil {
		log.Fatalf("failed to init local store: %v", err)
	}

	records := record.NewClient(c.Backend.BaseUrl)

	var gateway identity.Gateway
	if c.IdentityConfigured() {
		gateway = identity.NewRESTGateway(c.Identity.ApiKey, c.Identity.Domain, c.Identity.ProjectId)
	} else {
		// Supported degraded mode: every auth call resolves to the local
		// placeholder identity.
		logx.Info("identity provider not configured, running with placeholder identity")
		gateway = identity.NewPlaceholderGateway()
	}

	sess := session.NewContainer(gateway, records)
	wal := wallet.NewContainer(chain.NewSolanaClient(c.Ledger.RpcUrl), st, sess, records)

	ctx := context.Background()
	sess.Init(ctx)
	wal.Init(ctx)

	return &ServiceContext{
		Config:  c,
		Session: sess,
		Wallet:  wal,
		Records: records,
	}
}
