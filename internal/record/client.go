package record

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// Profile is the server-held user record mirrored locally after identity
// resolution.
type Profile struct {
	ID            string   `json:"id"`
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	WalletAddress string   `json:"wallet_address,omitempty"`
	EcoPoints     int      `json:"eco_points"`
	Achievements  []string `json:"achievements"`
	QRCode        string   `json:"qr_code,omitempty"`
}

type Stats struct {
	TotalItemsRecycled int            `json:"total_items_recycled"`
	EcoPoints          int            `json:"eco_points"`
	PointsThisMonth    int            `json:"points_this_month"`
	WasteBreakdown     map[string]int `json:"waste_breakdown"`
	AchievementsCount  int            `json:"achievements_count"`
	StreakDays         int            `json:"streak_days"`
}

type MarketplaceItem struct {
	ID          string `json:"id"`
	SellerID    string `json:"seller_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url,omitempty"`
	Category    string `json:"category"`
	IsAvailable bool   `json:"is_available"`
}

type Challenge struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	TargetCount  int      `json:"target_count"`
	RewardPoints int      `json:"reward_points"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Participants []string `json:"participants"`
}

type LeaderboardEntry struct {
	Rank              int    `json:"rank"`
	Name              string `json:"name"`
	EcoPoints         int    `json:"eco_points"`
	AchievementsCount int    `json:"achievements_count"`
}

type ScanResult struct {
	DetectedType        string `json:"detected_type"`
	DisposalMethod      string `json:"disposal_method"`
	EcoPointsEarned     int    `json:"eco_points_earned"`
	EnvironmentalImpact string `json:"environmental_impact"`
}

type ChatReply struct {
	Message string `json:"message"`
}

// Client is a typed HTTP client for the backend record service. Every call is
// best-effort from the containers' point of view: callers decide whether a
// failure is surfaced or only logged.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateUser registers a fresh profile upstream. Called once after signup or
// first federated login, with zero points and no achievements.
func (c *Client) CreateUser(ctx context.Context, p Profile) (*Profile, error) {
	var created Profile
	if err := c.doJSON(ctx, http.MethodPost, "/api/users", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*Profile, error) {
	var p Profile
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateWallet pushes the wallet's public address upstream. The body is the
// raw address as a JSON string, matching the record service contract.
func (c *Client) UpdateWallet(ctx context.Context, id, address string) error {
	path := fmt.Sprintf("/api/users/%s/wallet", url.PathEscape(id))
	return c.doJSON(ctx, http.MethodPut, path, address, nil)
}

func (c *Client) UserStats(ctx context.Context, id string) (*Stats, error) {
	var s Stats
	path := fmt.Sprintf("/api/users/%s/stats", url.PathEscape(id))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Marketplace lists available items, optionally filtered by category.
func (c *Client) Marketplace(ctx context.Context, category string) ([]MarketplaceItem, error) {
	path := "/api/marketplace"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var items []MarketplaceItem
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Challenges(ctx context.Context) ([]Challenge, error) {
	var challenges []Challenge
	if err := c.doJSON(ctx, http.MethodGet, "/api/challenges", nil, &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

func (c *Client) JoinChallenge(ctx context.Context, challengeID, userID string) error {
	path := fmt.Sprintf("/api/challenges/%s/join?user_id=%s",
		url.PathEscape(challengeID), url.QueryEscape(userID))
	return c.doJSON(ctx, http.MethodPost, path, nil, nil)
}

func (c *Client) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	path := fmt.Sprintf("/api/leaderboard?limit=%d", limit)
	var entries []LeaderboardEntry
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ScanWaste uploads an image for classification. The backend credits the
// points on its side; the returned result carries what it decided.
func (c *Client) ScanWaste(ctx context.Context, userID, filename string, image []byte) (*ScanResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(image); err != nil {
		return nil, err
	}
	if err := mw.WriteField("user_id", userID); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/scan-waste", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var result ScanResult
	if err := c.send(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Chat(ctx context.Context, message string) (*ChatReply, error) {
	var reply ChatReply
	body := map[string]string{"message": message}
	if err := c.doJSON(ctx, http.MethodPost, "/api/chatbot", body, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backend returned %d for %s %s", resp.StatusCode, req.Method, req.URL.Path)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}
