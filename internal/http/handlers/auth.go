package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"server/internal/domain"
	"server/internal/middleware"
)

type loginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  accountDTO `json:"user"`
}

// Login authenticates by email alone. Unknown emails get a fresh FREE account;
// blocked accounts are rejected before a token is ever minted.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "email required")
		return
	}

	account, err := a.Directory.LoginOrCreate(r.Context(), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountBlocked) {
			a.error(w, http.StatusForbidden, "account_blocked", "this account has been blocked by an administrator")
			return
		}
		a.Logger.Error().Err(err).Msg("login failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to log in")
		return
	}

	token, err := middleware.SignJWT(a.JWTSecret, middleware.TokenClaims{
		Sub:      account.ID,
		Name:     account.Name,
		Role:     string(account.Role),
		Plan:     string(account.Plan),
		Locale:   middleware.LocaleFromContext(r.Context()),
		Exp:      time.Now().Add(24 * time.Hour).Unix(),
		Issuer:   "creator-studio",
		Audience: "creator-clients",
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign jwt failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to sign token")
		return
	}

	a.json(w, http.StatusOK, loginResponse{Token: token, User: toAccountDTO(account)})
}
