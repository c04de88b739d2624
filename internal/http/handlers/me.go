package handlers

import (
	"net/http"
	"time"

	"server/internal/domain"
)

type auditEntryDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Action    string    `json:"action"`
	Cost      int       `json:"cost"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Country   string    `json:"country,omitempty"`
}

type historyResponse struct {
	Entries       []auditEntryDTO `json:"entries"`
	TotalConsumed int             `json:"total_consumed"`
}

func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	account, err := a.Directory.Get(r.Context(), userID)
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "account not found")
		return
	}
	a.json(w, http.StatusOK, toAccountDTO(account))
}

// MeHistory returns the caller's consumption attempts, newest first, with the
// total of successfully spent credits.
func (a *App) MeHistory(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	entries, err := a.Ledger.History(r.Context(), userID, 0)
	if err != nil {
		a.Logger.Error().Err(err).Msg("load history failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load history")
		return
	}
	a.json(w, http.StatusOK, historyResponse{
		Entries:       toAuditDTOs(entries),
		TotalConsumed: domain.TotalConsumed(entries),
	})
}

func toAuditDTOs(entries []domain.AuditEntry) []auditEntryDTO {
	out := make([]auditEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, auditEntryDTO{
			ID:        e.ID,
			UserID:    e.UserID,
			UserName:  e.UserName,
			Action:    e.Action,
			Cost:      e.Cost,
			Timestamp: e.Timestamp,
			Status:    string(e.Status),
			Country:   e.Country,
		})
	}
	return out
}
