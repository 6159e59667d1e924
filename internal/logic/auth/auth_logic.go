package auth

import (
	"context"

	"ecowise/internal/session"
	"ecowise/internal/svc"
	"ecowise/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type AuthLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewAuthLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AuthLogic {
	return &AuthLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *AuthLogic) Signup(req *types.SignupReq) (*types.AuthResp, error) {
	result, err := l.svcCtx.Session.SignUp(l.ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return nil, err
	}
	if !result.Synced {
		l.Infof("signup for %s succeeded without backend profile", result.Identity.ID)
	}
	return &types.AuthResp{Identity: identityView(&result.Identity), Synced: result.Synced}, nil
}

func (l *AuthLogic) Login(req *types.LoginReq) (*types.LoginResp, error) {
	id, err := l.svcCtx.Session.LogIn(l.ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return &types.LoginResp{Identity: identityView(id)}, nil
}

func (l *AuthLogic) LoginWithProvider() (*types.AuthResp, error) {
	result, err := l.svcCtx.Session.LogInWithProvider(l.ctx)
	if err != nil {
		return nil, err
	}
	return &types.AuthResp{Identity: identityView(&result.Identity), Synced: result.Synced}, nil
}

func (l *AuthLogic) Logout() {
	l.svcCtx.Session.LogOut(l.ctx)
}

// Session reports the container state so the caller can gate protected
// content on Ready.
func (l *AuthLogic) Session() *types.SessionResp {
	snap := l.svcCtx.Session.Current()
	resp := &types.SessionResp{Ready: snap.Ready}
	if snap.Identity != nil {
		view := identityView(snap.Identity)
		resp.Identity = &view
	}
	if snap.Profile != nil {
		resp.Profile = &types.ProfileView{
			Id:            snap.Profile.ID,
			Email:         snap.Profile.Email,
			Name:          snap.Profile.Name,
			WalletAddress: snap.Profile.WalletAddress,
			EcoPoints:     snap.Profile.EcoPoints,
			Achievements:  snap.Profile.Achievements,
		}
	}
	return resp
}

func identityView(id *session.Identity) types.IdentityView {
	return types.IdentityView{Id: id.ID, Email: id.Email, DisplayName: id.DisplayName}
}
