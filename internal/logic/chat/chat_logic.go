package chat

import (
	"context"
	"fmt"
	"strings"

	"ecowise/internal/svc"
	"ecowise/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

// Scripted answers keyed on material keywords, used when the backend
// assistant is unreachable.
var fallbackResponses = []struct {
	keyword string
	answer  string
}{
	{"plastic", "Plastic items should be cleaned before recycling. Check the recycling number on the bottom - numbers 1, 2, and 5 are most commonly recycled. Remove caps and labels when possible!"},
	{"glass", "Glass is 100% recyclable and can be recycled endlessly! Rinse containers clean and remove metal lids. Different colored glass should be separated if your area requires it."},
	{"paper", "Paper products are great for recycling! Make sure they're clean and dry. Remove any plastic windows from envelopes and separate newspaper from cardboard."},
	{"batteries", "Batteries contain hazardous materials and need special handling! Never put them in regular recycling. Take them to designated battery collection points at stores or recycling centers."},
	{"electronics", "E-waste should go to certified recycling centers, not regular bins. Many components contain valuable materials that can be recovered and reused safely."},
}

const fallbackDefault = "I'm here to help with recycling questions! You can ask me about specific materials like plastic, glass, paper, electronics, or general recycling tips. What would you like to know?"

type ChatLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *ChatLogic) Chat(req *types.ChatReq) (*types.ChatResp, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("message is required")
	}

	reply, err := l.svcCtx.Records.Chat(l.ctx, req.Message)
	if err != nil {
		l.Errorf("assistant backend failed, using scripted reply: %v", err)
		return &types.ChatResp{Message: scriptedReply(req.Message), Source: "local"}, nil
	}
	return &types.ChatResp{Message: reply.Message, Source: "backend"}, nil
}

func scriptedReply(message string) string {
	lower := strings.ToLower(message)
	for _, r := range fallbackResponses {
		if strings.Contains(lower, r.keyword) {
			return r.answer
		}
	}
	return fallbackDefault
}
