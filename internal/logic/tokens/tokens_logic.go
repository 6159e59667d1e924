package tokens

import (
	"context"
	"errors"
	"fmt"

	"ecowise/internal/svc"
	"ecowise/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

// ErrInsufficientTokens rejects a spend that would overdraw the counter. The
// container itself does not validate; this layer is the caller that must.
var ErrInsufficientTokens = errors.New("insufficient eco tokens")

type TokensLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewTokensLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TokensLogic {
	return &TokensLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *TokensLogic) Get() *types.TokensResp {
	return &types.TokensResp{EcoTokens: l.svcCtx.Wallet.EcoTokens()}
}

func (l *TokensLogic) Earn(req *types.TokenUpdateReq) (*types.TokensResp, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("earn amount must be positive, got %d", req.Amount)
	}
	if err := l.svcCtx.Wallet.UpdateEcoTokenBalance(l.ctx, req.Amount); err != nil {
		return nil, err
	}
	return l.Get(), nil
}

func (l *TokensLogic) Spend(req *types.TokenUpdateReq) (*types.TokensResp, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("spend amount must be positive, got %d", req.Amount)
	}
	if l.svcCtx.Wallet.EcoTokens() < req.Amount {
		return nil, ErrInsufficientTokens
	}
	if err := l.svcCtx.Wallet.UpdateEcoTokenBalance(l.ctx, -req.Amount); err != nil {
		return nil, err
	}
	return l.Get(), nil
}
