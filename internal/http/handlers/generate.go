package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"server/internal/domain"
	"server/internal/ledger"
	"server/internal/middleware"
)

const (
	actionStrategy  = "Strategy Generation"
	actionScript    = "Script Generation"
	actionThumbnail = "Thumbnail Generation"
	actionChannel   = "Channel Analysis"
)

type strategyRequest struct {
	Brief domain.ProjectBrief `json:"brief"`
}

type scriptRequest struct {
	Idea  domain.ContentIdea  `json:"idea"`
	Brief domain.ProjectBrief `json:"brief"`
}

type thumbnailRequest struct {
	Prompt string `json:"prompt"`
}

type channelRequest struct {
	Brief domain.ProjectBrief `json:"brief"`
}

// charge resolves the feature's cost and runs it through the ledger. It writes
// the HTTP error itself when the attempt cannot proceed; the returned account
// carries the post-consumption balances.
func (a *App) charge(w http.ResponseWriter, r *http.Request, feature domain.Feature, action string) (*domain.Account, bool) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return nil, false
	}
	cost, err := a.Schedule.Cost(feature)
	if err != nil {
		a.Logger.Error().Err(err).Str("feature", string(feature)).Msg("cost lookup failed")
		a.error(w, http.StatusInternalServerError, "internal", "cost schedule misconfigured")
		return nil, false
	}
	account, err := a.Ledger.Consume(r.Context(), ledger.ConsumeRequest{
		AccountID: userID,
		Feature:   feature,
		Action:    action,
		Cost:      cost,
		Country:   middleware.CountryFromContext(r.Context()),
	})
	if err != nil {
		var insufficient *domain.InsufficientCreditsError
		if errors.As(err, &insufficient) {
			a.json(w, http.StatusPaymentRequired, map[string]any{
				"error": map[string]any{
					"code":    "insufficient_credits",
					"message": "not enough credits in either pool for this action",
					"daily":   insufficient.Daily,
					"monthly": insufficient.Monthly,
					"needed":  insufficient.Needed,
					"hint":    "upgrade your plan to raise both credit pools",
				},
			})
			return nil, false
		}
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusUnauthorized, "unauthorized", "account not found")
			return nil, false
		}
		a.Logger.Error().Err(err).Str("account_id", userID).Msg("consume failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to meter action")
		return nil, false
	}
	return account, true
}

func (a *App) generationContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := a.Config.GenerationTimeout
	if timeout <= 0 {
		return r.Context(), func() {}
	}
	return context.WithTimeout(r.Context(), timeout)
}

func (a *App) countGeneration(feature domain.Feature, err error) {
	if a.Metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	a.Metrics.GenerationCalls.WithLabelValues(string(feature), outcome).Inc()
}

// providerError maps a failed generation to the wire. Credits deducted before
// the call stay deducted; a timeout is just another provider failure.
func (a *App) providerError(w http.ResponseWriter, feature domain.Feature, err error) {
	a.Logger.Error().Err(err).Str("feature", string(feature)).Msg("generation failed")
	a.error(w, http.StatusBadGateway, "provider_failure", "content generation failed")
}

func (a *App) GenerateStrategy(w http.ResponseWriter, r *http.Request) {
	var req strategyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	account, ok := a.charge(w, r, domain.FeatureStrategyGeneration, actionStrategy)
	if !ok {
		return
	}
	ctx, cancel := a.generationContext(r)
	defer cancel()
	strategy, err := a.Generator.GenerateStrategy(ctx, req.Brief)
	a.countGeneration(domain.FeatureStrategyGeneration, err)
	if err != nil {
		a.providerError(w, domain.FeatureStrategyGeneration, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"strategy": strategy,
		"credits":  toAccountDTO(account).Credits,
	})
}

func (a *App) GenerateScript(w http.ResponseWriter, r *http.Request) {
	var req scriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	account, ok := a.charge(w, r, domain.FeatureScriptGeneration, actionScript)
	if !ok {
		return
	}
	ctx, cancel := a.generationContext(r)
	defer cancel()
	script, err := a.Generator.GenerateScript(ctx, req.Idea, req.Brief)
	a.countGeneration(domain.FeatureScriptGeneration, err)
	if err != nil {
		a.providerError(w, domain.FeatureScriptGeneration, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"script":  script,
		"credits": toAccountDTO(account).Credits,
	})
}

func (a *App) GenerateChannel(w http.ResponseWriter, r *http.Request) {
	var req channelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	account, ok := a.charge(w, r, domain.FeatureChannelAnalysis, actionChannel)
	if !ok {
		return
	}
	ctx, cancel := a.generationContext(r)
	defer cancel()
	identity, err := a.Generator.GenerateChannelIdentity(ctx, req.Brief)
	a.countGeneration(domain.FeatureChannelAnalysis, err)
	if err != nil {
		a.providerError(w, domain.FeatureChannelAnalysis, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"identity": identity,
		"credits":  toAccountDTO(account).Credits,
	})
}

// GenerateThumbnail is gated behind the paid tiers before any credits move.
func (a *App) GenerateThumbnail(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req thumbnailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Prompt == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "prompt required")
		return
	}
	account, err := a.Directory.Get(r.Context(), userID)
	if err != nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "account not found")
		return
	}
	if account.Plan == domain.PlanFree && !account.IsAdmin() {
		a.error(w, http.StatusForbidden, "plan_required", "thumbnail generation requires the PRO or PREMIUM plan")
		return
	}
	account, ok := a.charge(w, r, domain.FeatureThumbnailGeneration, actionThumbnail)
	if !ok {
		return
	}
	ctx, cancel := a.generationContext(r)
	defer cancel()
	thumb, err := a.Generator.GenerateThumbnail(ctx, req.Prompt)
	a.countGeneration(domain.FeatureThumbnailGeneration, err)
	if err != nil {
		a.providerError(w, domain.FeatureThumbnailGeneration, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"thumbnail": thumb,
		"credits":   toAccountDTO(account).Credits,
	})
}
