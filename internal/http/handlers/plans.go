package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"server/internal/domain"
)

type upgradeRequest struct {
	Plan string `json:"plan"`
}

// UpgradePlan simulates a checkout: the account moves to the new tier and both
// pools hard-reset to the tier's ceilings. Remaining credits never carry over.
func (a *App) UpgradePlan(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req upgradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	plan := domain.Plan(req.Plan)
	if !domain.ValidPlan(plan) {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown plan")
		return
	}
	account, err := a.Ledger.ApplyPlanChange(r.Context(), userID, plan)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusUnauthorized, "unauthorized", "account not found")
			return
		}
		a.Logger.Error().Err(err).Str("account_id", userID).Msg("plan change failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to change plan")
		return
	}
	a.json(w, http.StatusOK, toAccountDTO(account))
}
