package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecowise/internal/record"
	"ecowise/internal/svc"
	"ecowise/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSvc(backendURL string) *svc.ServiceContext {
	return &svc.ServiceContext{Records: record.NewClient(backendURL)}
}

func TestChatUsesBackendWhenAvailable(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(record.ChatReply{Message: "Great question about composting!"})
	}))
	defer backend.Close()

	l := NewChatLogic(context.Background(), newTestSvc(backend.URL))

	resp, err := l.Chat(&types.ChatReq{Message: "how do I compost?"})
	require.NoError(t, err)
	assert.Equal(t, "backend", resp.Source)
	assert.Equal(t, "Great question about composting!", resp.Message)
}

func TestChatFallsBackToScriptedReplies(t *testing.T) {
	l := NewChatLogic(context.Background(), newTestSvc("http://127.0.0.1:1"))

	resp, err := l.Chat(&types.ChatReq{Message: "Can I recycle PLASTIC bottles?"})
	require.NoError(t, err)
	assert.Equal(t, "local", resp.Source)
	assert.Contains(t, resp.Message, "recycling number")
}

func TestChatScriptedDefault(t *testing.T) {
	l := NewChatLogic(context.Background(), newTestSvc("http://127.0.0.1:1"))

	resp, err := l.Chat(&types.ChatReq{Message: "hello there"})
	require.NoError(t, err)
	assert.Equal(t, fallbackDefault, resp.Message)
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	l := NewChatLogic(context.Background(), newTestSvc("http://127.0.0.1:1"))

	_, err := l.Chat(&types.ChatReq{Message: "   "})
	assert.Error(t, err)
}
