package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"server/internal/domain"
)

type scriptProjectDTO struct {
	ID                  string                 `json:"id"`
	Title               string                 `json:"title"`
	Platform            string                 `json:"platform"`
	Description         string                 `json:"description,omitempty"`
	Sections            []domain.ScriptSection `json:"sections"`
	Hashtags            []string               `json:"hashtags,omitempty"`
	ThumbnailSuggestion string                 `json:"thumbnail_suggestion,omitempty"`
	ThumbnailURL        string                 `json:"thumbnail_url,omitempty"`
	Analytics           domain.ScriptAnalytics `json:"analytics"`
	CreatedAt           time.Time              `json:"created_at"`
	LastModified        time.Time              `json:"last_modified"`
}

func toScriptDTO(p *domain.ScriptProject) scriptProjectDTO {
	return scriptProjectDTO{
		ID:                  p.ID,
		Title:               p.Title,
		Platform:            p.Platform,
		Description:         p.Description,
		Sections:            p.Sections,
		Hashtags:            p.Hashtags,
		ThumbnailSuggestion: p.ThumbnailSuggestion,
		ThumbnailURL:        p.ThumbnailURL,
		Analytics:           p.Analytics,
		CreatedAt:           p.CreatedAt,
		LastModified:        p.LastModified,
	}
}

func (a *App) ListScripts(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	projects, err := a.Scripts.ListByUser(r.Context(), userID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list scripts failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to list scripts")
		return
	}
	out := make([]scriptProjectDTO, 0, len(projects))
	for i := range projects {
		out = append(out, toScriptDTO(&projects[i]))
	}
	a.json(w, http.StatusOK, out)
}

// SaveScript stores a generated script in the caller's library. Saving is
// free; only the generation itself is metered.
func (a *App) SaveScript(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req scriptProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "title required")
		return
	}
	now := time.Now()
	project := &domain.ScriptProject{
		ID:                  req.ID,
		UserID:              userID,
		Title:               req.Title,
		Platform:            req.Platform,
		Description:         req.Description,
		Sections:            req.Sections,
		Hashtags:            req.Hashtags,
		ThumbnailSuggestion: req.ThumbnailSuggestion,
		ThumbnailURL:        req.ThumbnailURL,
		Analytics:           req.Analytics,
		CreatedAt:           now,
		LastModified:        now,
	}
	if project.ID == "" {
		project.ID = uuid.NewString()
	} else if existing, err := a.Scripts.GetByID(r.Context(), userID, project.ID); err == nil {
		project.CreatedAt = existing.CreatedAt
	}
	if err := a.Scripts.Save(r.Context(), project); err != nil {
		a.Logger.Error().Err(err).Msg("save script failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to save script")
		return
	}
	a.json(w, http.StatusCreated, toScriptDTO(project))
}

func (a *App) GetScript(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	project, err := a.Scripts.GetByID(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "script not found")
			return
		}
		a.Logger.Error().Err(err).Msg("load script failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load script")
		return
	}
	a.json(w, http.StatusOK, toScriptDTO(project))
}

func (a *App) DeleteScript(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	if err := a.Scripts.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "script not found")
			return
		}
		a.Logger.Error().Err(err).Msg("delete script failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete script")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
