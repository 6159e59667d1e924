package community

import (
	"context"

	"ecowise/internal/identity"
	"ecowise/internal/record"
	"ecowise/internal/svc"
	"ecowise/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

// Demo challenges shown when the backend is unreachable.
var fallbackChallenges = []record.Challenge{
	{ID: "1", Title: "Plastic Free Week", Description: "Recycle 20 plastic items this week and help reduce plastic waste", TargetCount: 20, RewardPoints: 300, StartDate: "2024-09-20", EndDate: "2024-09-27", Participants: []string{"user1", "user2", "user3"}},
	{ID: "2", Title: "Glass Guardian", Description: "Collect and recycle 50 glass items to become a Glass Guardian", TargetCount: 50, RewardPoints: 500, StartDate: "2024-09-15", EndDate: "2024-10-15", Participants: []string{"user1", "user4", "user5"}},
	{ID: "3", Title: "Paper Trail", Description: "Recycle 15 paper items and learn about sustainable forestry", TargetCount: 15, RewardPoints: 200, StartDate: "2024-09-22", EndDate: "2024-09-29", Participants: []string{"user1"}},
	{ID: "4", Title: "Metal Detector", Description: "Find and recycle 10 metal items to complete this challenge", TargetCount: 10, RewardPoints: 250, StartDate: "2024-09-10", EndDate: "2024-09-25", Participants: []string{}},
}

var fallbackLeaderboard = []record.LeaderboardEntry{
	{Rank: 1, Name: "EcoWarrior23", EcoPoints: 2850},
	{Rank: 2, Name: "GreenThumb", EcoPoints: 2650},
	{Rank: 3, Name: "RecycleKing", EcoPoints: 2400},
	{Rank: 4, Name: "Demo User", EcoPoints: 1250},
	{Rank: 5, Name: "PlasticFree", EcoPoints: 1100},
}

type CommunityLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCommunityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CommunityLogic {
	return &CommunityLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *CommunityLogic) Challenges() *types.ChallengesResp {
	challenges, err := l.svcCtx.Records.Challenges(l.ctx)
	if err != nil {
		l.Errorf("challenges fetch failed, serving demo set: %v", err)
		challenges = fallbackChallenges
	}
	return &types.ChallengesResp{Challenges: challenges}
}

// Join enrolls the current identity in a challenge. Unlike the list
// endpoints this is a mutating action, so a backend failure is surfaced.
func (l *CommunityLogic) Join(req *types.JoinChallengeReq) (*types.JoinChallengeResp, error) {
	userID := identity.PlaceholderUID
	if snap := l.svcCtx.Session.Current(); snap.Identity != nil {
		userID = snap.Identity.ID
	}

	if err := l.svcCtx.Records.JoinChallenge(l.ctx, req.ChallengeId, userID); err != nil {
		return nil, err
	}
	return &types.JoinChallengeResp{Message: "Successfully joined challenge"}, nil
}

func (l *CommunityLogic) Leaderboard(req *types.LeaderboardReq) *types.LeaderboardResp {
	entries, err := l.svcCtx.Records.Leaderboard(l.ctx, req.Limit)
	if err != nil {
		l.Errorf("leaderboard fetch failed, serving demo board: %v", err)
		entries = fallbackLeaderboard
		if req.Limit > 0 && req.Limit < len(entries) {
			entries = entries[:req.Limit]
		}
	}
	return &types.LeaderboardResp{Entries: entries}
}
