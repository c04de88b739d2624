package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"server/internal/directory"
	"server/internal/domain"
	"server/internal/infra"
	"server/internal/ledger"
	"server/internal/middleware"
	"server/internal/providers/genai"
	"server/internal/schedule"
)

// App carries every dependency the HTTP handlers need.
type App struct {
	Config    *infra.Config
	Logger    infra.Logger
	Ledger    *ledger.Service
	Directory *directory.Service
	Schedule  *schedule.Service
	Scripts   domain.ScriptRepository
	Audit     domain.AuditRepository
	Generator genai.Generator
	Metrics   *infra.Metrics
	JWTSecret string
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

// accountDTO is the wire shape of an account as the dashboard renders it.
type accountDTO struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Plan     string    `json:"plan"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
	Credits  creditDTO `json:"credits"`
	JoinedAt time.Time `json:"joined_at"`
}

type creditDTO struct {
	Daily      int `json:"daily"`
	MaxDaily   int `json:"max_daily"`
	Monthly    int `json:"monthly"`
	MaxMonthly int `json:"max_monthly"`
}

func toAccountDTO(account *domain.Account) accountDTO {
	return accountDTO{
		ID:     account.ID,
		Name:   account.Name,
		Email:  account.Email,
		Plan:   string(account.Plan),
		Role:   string(account.Role),
		Status: string(account.Status),
		Credits: creditDTO{
			Daily:      account.Credits.Daily,
			MaxDaily:   account.Credits.MaxDaily,
			Monthly:    account.Credits.Monthly,
			MaxMonthly: account.Credits.MaxMonthly,
		},
		JoinedAt: account.JoinedAt,
	}
}
