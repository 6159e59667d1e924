package record

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRoundtrip(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/users", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var p Profile
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		p.QRCode = "qr-123"
		_ = json.NewEncoder(w).Encode(p)
	}))
	defer backend.Close()

	c := NewClient(backend.URL)
	created, err := c.CreateUser(context.Background(), Profile{
		ID:           "u1",
		Email:        "a@b.com",
		Name:         "Anna",
		Achievements: []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", created.ID)
	assert.Equal(t, "qr-123", created.QRCode)
}

func TestUpdateWalletSendsRawAddressString(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/users/u1/wallet", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		// The contract is the bare address as a JSON string, not an object.
		assert.JSONEq(t, `"SoLAddr111"`, string(body))
	}))
	defer backend.Close()

	c := NewClient(backend.URL)
	require.NoError(t, c.UpdateWallet(context.Background(), "u1", "SoLAddr111"))
}

func TestMarketplaceCategoryFilter(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sustainable", r.URL.Query().Get("category"))
		_ = json.NewEncoder(w).Encode([]MarketplaceItem{{ID: "2", Category: "sustainable"}})
	}))
	defer backend.Close()

	c := NewClient(backend.URL)
	items, err := c.Marketplace(context.Background(), "sustainable")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)
}

func TestJoinChallengeCarriesUser(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/challenges/ch1/join", r.URL.Path)
		assert.Equal(t, "u1", r.URL.Query().Get("user_id"))
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer backend.Close()

	c := NewClient(backend.URL)
	require.NoError(t, c.JoinChallenge(context.Background(), "ch1", "u1"))
}

func TestScanWasteUploadsMultipart(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		assert.Equal(t, "u1", r.FormValue("user_id"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "bottle.jpg", header.Filename)

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xFF, 0xD8}, data)

		_ = json.NewEncoder(w).Encode(ScanResult{DetectedType: "plastic", EcoPointsEarned: 12})
	}))
	defer backend.Close()

	c := NewClient(backend.URL)
	result, err := c.ScanWaste(context.Background(), "u1", "bottle.jpg", []byte{0xFF, 0xD8})
	require.NoError(t, err)
	assert.Equal(t, "plastic", result.DetectedType)
	assert.Equal(t, 12, result.EcoPointsEarned)
}

func TestNonSuccessStatusIsAnError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer backend.Close()

	c := NewClient(backend.URL)
	_, err := c.GetUser(context.Background(), "missing")
	assert.Error(t, err)
}
