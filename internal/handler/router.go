package handler

import (
	"net/http"
	"time"

	"ecowise/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			// --- Auth Routes ---
			{
				Method:  http.MethodPost,
				Path:    "/auth/signup",
				Handler: SignupHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/auth/login",
				Handler: LoginHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/auth/google",
				Handler: FederatedLoginHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/auth/logout",
				Handler: LogoutHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/auth/session",
				Handler: SessionHandler(serverCtx),
			},
			// --- Wallet Routes ---
			{
				Method:  http.MethodPost,
				Path:    "/wallet/init",
				Handler: WalletInitHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/wallet",
				Handler: WalletStatusHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/wallet/balance",
				Handler: BalanceHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/wallet/airdrop",
				Handler: AirdropHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/wallet/send",
				Handler: SendHandler(serverCtx),
			},
			// --- Token Routes ---
			{
				Method:  http.MethodGet,
				Path:    "/tokens",
				Handler: TokensHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/tokens/earn",
				Handler: EarnTokensHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/tokens/spend",
				Handler: SpendTokensHandler(serverCtx),
			},
			// --- Screen Routes ---
			{
				Method:  http.MethodPost,
				Path:    "/scan",
				Handler: ScanHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/marketplace",
				Handler: MarketplaceHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/marketplace/redeem",
				Handler: RedeemHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/challenges",
				Handler: ChallengesHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/challenges/:id/join",
				Handler: JoinChallengeHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/leaderboard",
				Handler: LeaderboardHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/stats",
				Handler: StatsHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/chat",
				Handler: ChatHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/"),
		rest.WithTimeout(90000*time.Millisecond),
	)
}
