package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecowise/internal/identity"
	"ecowise/internal/record"
	"ecowise/internal/session"
	"ecowise/internal/svc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSvc(backendURL string) *svc.ServiceContext {
	records := record.NewClient(backendURL)
	return &svc.ServiceContext{
		Session: session.NewContainer(identity.NewPlaceholderGateway(), records),
		Records: records,
	}
}

func TestStatsFromBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(record.Stats{
			TotalItemsRecycled: 42,
			EcoPoints:          900,
			StreakDays:         3,
		})
	}))
	defer backend.Close()

	l := NewStatsLogic(context.Background(), newTestSvc(backend.URL))

	resp := l.Stats()
	assert.Equal(t, 42, resp.Stats.TotalItemsRecycled)
	assert.Equal(t, 900, resp.Stats.EcoPoints)
}

func TestStatsFallbackOffline(t *testing.T) {
	l := NewStatsLogic(context.Background(), newTestSvc("http://127.0.0.1:1"))

	resp := l.Stats()
	require.NotNil(t, resp)
	assert.Equal(t, fallbackStats.TotalItemsRecycled, resp.Stats.TotalItemsRecycled)
	assert.NotEmpty(t, resp.Stats.WasteBreakdown)
}
