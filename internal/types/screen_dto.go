package types

import "ecowise/internal/record"

// ScanReq carries a waste photo for classification, base64-encoded.
type ScanReq struct {
	Filename    string `json:"filename,optional"`
	ImageBase64 string `json:"image_base64"`
}

// ScanResp is the classification outcome. Source is "backend" when the
// classifier answered, "local" when the canned fallback table did.
type ScanResp struct {
	DetectedType        string `json:"detected_type"`
	DisposalMethod      string `json:"disposal_method"`
	EcoPointsEarned     int    `json:"eco_points_earned"`
	EnvironmentalImpact string `json:"environmental_impact"`
	Source              string `json:"source"`
}

// MarketplaceReq optionally filters the catalog by category.
type MarketplaceReq struct {
	Category string `form:"category,optional"`
}

type MarketplaceResp struct {
	Items []record.MarketplaceItem `json:"items"`
}

// RedeemReq spends reward tokens on a marketplace item.
type RedeemReq struct {
	ItemId string `json:"item_id"`
}

type RedeemResp struct {
	Item      record.MarketplaceItem `json:"item"`
	EcoTokens int64                  `json:"eco_tokens"`
}

type ChallengesResp struct {
	Challenges []record.Challenge `json:"challenges"`
}

// JoinChallengeReq joins the challenge named in the path for the current
// session identity.
type JoinChallengeReq struct {
	ChallengeId string `path:"id"`
}

type JoinChallengeResp struct {
	Message string `json:"message"`
}

type LeaderboardReq struct {
	Limit int `form:"limit,default=10"`
}

type LeaderboardResp struct {
	Entries []record.LeaderboardEntry `json:"entries"`
}

type StatsResp struct {
	Stats record.Stats `json:"stats"`
}

// ChatReq sends one message to the recycling assistant.
type ChatReq struct {
	Message string `json:"message"`
}

type ChatResp struct {
	Message string `json:"message"`
	Source  string `json:"source"`
}
