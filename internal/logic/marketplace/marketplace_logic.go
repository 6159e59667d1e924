package marketplace

import (
	"context"
	"fmt"

	"ecowise/internal/logic/tokens"
	"ecowise/internal/record"
	"ecowise/internal/svc"
	"ecowise/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

// Demo catalogue shown when the backend is unreachable.
var fallbackItems = []record.MarketplaceItem{
	{ID: "1", Title: "Recycled Plastic Water Bottle", Description: "Eco-friendly water bottle made from 100% recycled materials", Price: 50, Category: "eco-products", IsAvailable: true},
	{ID: "2", Title: "Bamboo Phone Case", Description: "Sustainable phone case made from bamboo fiber", Price: 75, Category: "sustainable", IsAvailable: true},
	{ID: "3", Title: "Upcycled Tote Bag", Description: "Stylish tote bag made from recycled fabric", Price: 40, Category: "upcycled", IsAvailable: true},
	{ID: "4", Title: "Solar Power Bank", Description: "Portable charger powered by solar energy", Price: 120, Category: "eco-products", IsAvailable: true},
	{ID: "5", Title: "Recycled Paper Notebook", Description: "Beautiful notebook made from 100% recycled paper", Price: 25, Category: "recycled", IsAvailable: true},
	{ID: "6", Title: "Organic Cotton T-Shirt", Description: "Comfortable t-shirt made from organic cotton", Price: 60, Category: "sustainable", IsAvailable: true},
}

type MarketplaceLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewMarketplaceLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MarketplaceLogic {
	return &MarketplaceLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *MarketplaceLogic) List(req *types.MarketplaceReq) *types.MarketplaceResp {
	items, err := l.svcCtx.Records.Marketplace(l.ctx, req.Category)
	if err != nil {
		l.Errorf("marketplace fetch failed, serving demo catalogue: %v", err)
		items = filterByCategory(fallbackItems, req.Category)
	}
	return &types.MarketplaceResp{Items: items}
}

// Redeem spends reward tokens on an item. Sufficiency is validated here,
// before the counter is touched.
func (l *MarketplaceLogic) Redeem(req *types.RedeemReq) (*types.RedeemResp, error) {
	item, err := l.findItem(req.ItemId)
	if err != nil {
		return nil, err
	}
	if !item.IsAvailable {
		return nil, fmt.Errorf("item %s is no longer available", item.ID)
	}

	spend := tokens.NewTokensLogic(l.ctx, l.svcCtx)
	resp, err := spend.Spend(&types.TokenUpdateReq{Amount: int64(item.Price)})
	if err != nil {
		return nil, err
	}

	l.Infof("redeemed %s for %d eco tokens", item.Title, item.Price)
	return &types.RedeemResp{Item: *item, EcoTokens: resp.EcoTokens}, nil
}

func (l *MarketplaceLogic) findItem(id string) (*record.MarketplaceItem, error) {
	items, err := l.svcCtx.Records.Marketplace(l.ctx, "")
	if err != nil {
		l.Errorf("marketplace fetch failed during redeem, using demo catalogue: %v", err)
		items = fallbackItems
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("unknown marketplace item %q", id)
}

func filterByCategory(items []record.MarketplaceItem, category string) []record.MarketplaceItem {
	if category == "" {
		return items
	}
	var out []record.MarketplaceItem
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}
