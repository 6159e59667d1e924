package scan

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func newTestSvc(t *testing.T, backendURL string) *svc.ServiceContext {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	records := record.NewClient(backendURL)
	sess := session.NewContainer(identity.NewPlaceholderGateway(), records)
	return &svc.ServiceContext{
		Config:  config.Config{},
		Session: sess,
		Wallet:  wallet.NewContainer(stubChain{}, st, sess, records),
		Records: records,
	}
}

func TestScanForwardsToBackendAndCredits(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/scan-waste", r.URL.Path)
		_ = json.NewEncoder(w).Encode(record.ScanResult{
			DetectedType:    "glass",
			DisposalMethod:  "Rinse and place in glass recycling container.",
			EcoPointsEarned: 15,
		})
	}))
	defer backend.Close()

	svcCtx := newTestSvc(t, backend.URL)
	l := NewScanLogic(context.Background(), svcCtx)

	resp, err := l.Scan(&types.ScanReq{
		Filename:    "jar.jpg",
		ImageBase64: base64.StdEncoding.EncodeToString([]byte{1, 2, 3}),
	})
	require.NoError(t, err)
	assert.Equal(t, "backend", resp.Source)
	assert.Equal(t, "glass", resp.DetectedType)
	assert.EqualValues(t, 15, svcCtx.Wallet.EcoTokens())
}

func TestScanFallsBackOfflineAndStillCredits(t *testing.T) {
	svcCtx := newTestSvc(t, "http://127.0.0.1:1")
	l := NewScanLogic(context.Background(), svcCtx)

	image := []byte{10, 20, 30, 40}
	resp, err := l.Scan(&types.ScanReq{
		ImageBase64: base64.StdEncoding.EncodeToString(image),
	})
	require.NoError(t, err)
	assert.Equal(t, "local", resp.Source)
	assert.Contains(t, fallbackDisposal, resp.DetectedType)
	assert.Equal(t, fallbackDisposal[resp.DetectedType], resp.DisposalMethod)
	assert.Positive(t, resp.EcoPointsEarned)
	assert.EqualValues(t, resp.EcoPointsEarned, svcCtx.Wallet.EcoTokens())

	// Same photo, same answer.
	again, err := l.Scan(&types.ScanReq{
		ImageBase64: base64.StdEncoding.EncodeToString(image),
	})
	require.NoError(t, err)
	assert.Equal(t, resp.DetectedType, again.DetectedType)
	assert.Equal(t, resp.EcoPointsEarned, again.EcoPointsEarned)
}

func TestScanRejectsBadPayload(t *testing.T) {
	l := NewScanLogic(context.Background(), newTestSvc(t, "http://127.0.0.1:1"))

	_, err := l.Scan(&types.ScanReq{ImageBase64: "not-base64!!"})
	assert.Error(t, err)
}
