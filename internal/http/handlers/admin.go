package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
)

func (a *App) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	accounts, err := a.Directory.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list accounts failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to list accounts")
		return
	}
	out := make([]accountDTO, 0, len(accounts))
	for i := range accounts {
		out = append(out, toAccountDTO(&accounts[i]))
	}
	a.json(w, http.StatusOK, out)
}

// AdminResetCredits restores both pools of the target account to their
// ceilings. Idempotent; the audit trail records consumption only, not grants.
func (a *App) AdminResetCredits(w http.ResponseWriter, r *http.Request) {
	account, err := a.Ledger.ResetToMax(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "account not found")
			return
		}
		a.Logger.Error().Err(err).Msg("reset credits failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to reset credits")
		return
	}
	a.json(w, http.StatusOK, toAccountDTO(account))
}

type blockRequest struct {
	// Blocked is optional; omitting it toggles the current status.
	Blocked *bool `json:"blocked"`
}

func (a *App) AdminBlockUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == a.currentUserID(r) {
		a.error(w, http.StatusBadRequest, "bad_request", "cannot block your own account")
		return
	}
	var req blockRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	var account *domain.Account
	var err error
	if req.Blocked != nil {
		account, err = a.Directory.SetBlocked(r.Context(), id, *req.Blocked)
	} else {
		account, err = a.Directory.ToggleBlocked(r.Context(), id)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "account not found")
			return
		}
		a.Logger.Error().Err(err).Msg("block account failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to update account status")
		return
	}
	a.json(w, http.StatusOK, toAccountDTO(account))
}

// AdminAudit returns the platform-wide consumption log, newest first. An
// optional ?limit= caps the page size.
func (a *App) AdminAudit(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			a.error(w, http.StatusBadRequest, "bad_request", "invalid limit")
			return
		}
		limit = parsed
	}
	entries, err := a.Audit.ListAll(r.Context(), limit)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list audit failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load audit log")
		return
	}
	a.json(w, http.StatusOK, historyResponse{
		Entries:       toAuditDTOs(entries),
		TotalConsumed: domain.TotalConsumed(entries),
	})
}

func (a *App) AdminGetCosts(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.Schedule.Active())
}

// AdminPutCosts replaces the whole cost schedule. A schedule missing any
// feature or carrying a negative cost is rejected and the previous one stays
// in effect.
func (a *App) AdminPutCosts(w http.ResponseWriter, r *http.Request) {
	var next domain.CostSchedule
	if err := json.NewDecoder(r.Body).Decode(&next); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Schedule.Update(r.Context(), next); err != nil {
		if errors.Is(err, domain.ErrInvalidCostSchedule) {
			a.error(w, http.StatusUnprocessableEntity, "invalid_schedule", "schedule must cover every feature with a non-negative cost")
			return
		}
		a.Logger.Error().Err(err).Msg("update cost schedule failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to update cost schedule")
		return
	}
	a.json(w, http.StatusOK, a.Schedule.Active())
}
