package community

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecowise/internal/identity"
	"ecowise/internal/record"
	"ecowise/internal/session"
	"ecowise/internal/svc"
	"ecowise/internal/types"

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

func TestChallengesServesDemoSetOffline(t *testing.T) {
	l := NewCommunityLogic(context.Background(), newTestSvc("http://127.0.0.1:1"))

	resp := l.Challenges()
	require.Len(t, resp.Challenges, len(fallbackChallenges))
	assert.Equal(t, "Plastic Free Week", resp.Challenges[0].Title)
}

func TestLeaderboardFallbackHonorsLimit(t *testing.T) {
	l := NewCommunityLogic(context.Background(), newTestSvc("http://127.0.0.1:1"))

	resp := l.Leaderboard(&types.LeaderboardReq{Limit: 3})
	require.Len(t, resp.Entries, 3)
	assert.Equal(t, 1, resp.Entries[0].Rank)
}

func TestJoinSendsUserToBackend(t *testing.T) {
	var gotUser string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = r.URL.Query().Get("user_id")
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	l := NewCommunityLogic(context.Background(), newTestSvc(backend.URL))

	resp, err := l.Join(&types.JoinChallengeReq{ChallengeId: "2"})
	require.NoError(t, err)
	assert.Equal(t, "Successfully joined challenge", resp.Message)
	assert.Equal(t, identity.PlaceholderUID, gotUser)
}

func TestJoinSurfacesBackendFailure(t *testing.T) {
	l := NewCommunityLogic(context.Background(), newTestSvc("http://127.0.0.1:1"))

	_, err := l.Join(&types.JoinChallengeReq{ChallengeId: "2"})
	assert.Error(t, err)
}
