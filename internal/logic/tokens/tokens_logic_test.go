package tokens

import (
	"context"
	"testing"

	"ecowise/internal/config"
	"ecowise/internal/identity"
	"ecowise/internal/record"
	"ecowise/internal/session"
	"ecowise/internal/store"
	"ecowise/internal/svc"
	"ecowise/internal/types"
	"ecowise/internal/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChain struct{}

func (stubChain) Balance(ctx context.Context, address string) (uint64, error) { return 0, nil }
func (stubChain) RequestAirdrop(ctx context.Context, address string, lamports uint64) (string, error) {
	return "", nil
}
func (stubChain) Transfer(ctx context.Context, secretKey []byte, toAddress string, lamports uint64) (string, error) {
	return "", nil
}

func newTestSvc(t *testing.T) *svc.ServiceContext {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	records := record.NewClient("http://127.0.0.1:1")
	sess := session.NewContainer(identity.NewPlaceholderGateway(), records)
	return &svc.ServiceContext{
		Config:  config.Config{},
		Session: sess,
		Wallet:  wallet.NewContainer(stubChain{}, st, sess, records),
		Records: records,
	}
}

func TestEarnThenSpend(t *testing.T) {
	l := NewTokensLogic(context.Background(), newTestSvc(t))

	resp, err := l.Earn(&types.TokenUpdateReq{Amount: 50})
	require.NoError(t, err)
	assert.EqualValues(t, 50, resp.EcoTokens)

	resp, err = l.Spend(&types.TokenUpdateReq{Amount: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 30, resp.EcoTokens)
}

func TestSpendRejectsOverdraft(t *testing.T) {
	svcCtx := newTestSvc(t)
	l := NewTokensLogic(context.Background(), svcCtx)

	_, err := l.Earn(&types.TokenUpdateReq{Amount: 10})
	require.NoError(t, err)

	_, err = l.Spend(&types.TokenUpdateReq{Amount: 11})
	assert.ErrorIs(t, err, ErrInsufficientTokens)

	// The counter is untouched by the rejected spend.
	assert.EqualValues(t, 10, svcCtx.Wallet.EcoTokens())
}

func TestNonPositiveAmountsRejected(t *testing.T) {
	l := NewTokensLogic(context.Background(), newTestSvc(t))

	_, err := l.Earn(&types.TokenUpdateReq{Amount: 0})
	assert.Error(t, err)
	_, err = l.Spend(&types.TokenUpdateReq{Amount: -5})
	assert.Error(t, err)
}
