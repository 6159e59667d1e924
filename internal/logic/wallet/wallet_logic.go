package wallet

import (
	"context"

	"ecowise/internal/svc"
	"ecowise/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type WalletLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewWalletLogic(ctx context.Context, svcCtx *svc.ServiceContext) *WalletLogic {
	return &WalletLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Init generates a fresh keypair, replacing any existing one.
func (l *WalletLogic) Init() (*types.WalletInitResp, error) {
	kp, err := l.svcCtx.Wallet.GenerateWallet(l.ctx)
	if err != nil {
		return nil, err
	}
	l.Infof("generated wallet %s", kp.PublicKey)
	return &types.WalletInitResp{Address: kp.PublicKey}, nil
}

// Status reports the container state for the wallet screen.
func (l *WalletLogic) Status() *types.WalletStatusResp {
	w := l.svcCtx.Wallet
	resp := &types.WalletStatusResp{
		Balance:   w.CachedBalance(),
		EcoTokens: w.EcoTokens(),
		Busy:      w.Busy(),
	}
	if kp := w.Keypair(); kp != nil {
		resp.Exists = true
		resp.Address = kp.PublicKey
	}
	return resp
}

// Balance refreshes the on-chain balance. With no address given it uses the
// loaded wallet; the query itself never fails the caller.
func (l *WalletLogic) Balance(req *types.BalanceReq) *types.BalanceResp {
	address := req.Address
	if address == "" {
		if kp := l.svcCtx.Wallet.Keypair(); kp != nil {
			address = kp.PublicKey
		}
	}
	return &types.BalanceResp{
		Address: address,
		Balance: l.svcCtx.Wallet.GetBalance(l.ctx, address),
	}
}

func (l *WalletLogic) Airdrop(req *types.AirdropReq) (*types.AirdropResp, error) {
	sig, err := l.svcCtx.Wallet.RequestAirdrop(l.ctx, req.Amount)
	if err != nil {
		return nil, err
	}
	return &types.AirdropResp{Signature: sig, Balance: l.svcCtx.Wallet.CachedBalance()}, nil
}

func (l *WalletLogic) Send(req *types.SendReq) (*types.SendResp, error) {
	sig, err := l.svcCtx.Wallet.SendTransaction(l.ctx, req.ToAddress, req.Amount)
	if err != nil {
		return nil, err
	}
	l.Infof("transfer %f to %s confirmed: %s", req.Amount, req.ToAddress, sig)
	return &types.SendResp{Signature: sig, Balance: l.svcCtx.Wallet.CachedBalance()}, nil
}
