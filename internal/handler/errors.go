package handler

import (
	"context"
	"errors"
	"net/http"

	"ecowise/internal/logic/tokens"
	"ecowise/internal/session"
	"ecowise/internal/wallet"
)

type errorBody struct {
	Error string `json:"error"`
}

// MapError translates the error taxonomy into HTTP statuses. Registered with
// httpx at startup so every handler's ErrorCtx call goes through it.
func MapError(_ context.Context, err error) (int, any) {
	code := http.StatusBadRequest
	switch {
	case errors.Is(err, session.ErrValidation):
		code = http.StatusBadRequest
	case errors.Is(err, session.ErrAuth):
		code = http.StatusUnauthorized
	case errors.Is(err, wallet.ErrNoWallet):
		code = http.StatusPreconditionFailed
	case errors.Is(err, tokens.ErrInsufficientTokens):
		code = http.StatusConflict
	case errors.Is(err, wallet.ErrAirdrop), errors.Is(err, wallet.ErrTransfer):
		code = http.StatusBadGateway
	}
	return code, errorBody{Error: err.Error()}
}
