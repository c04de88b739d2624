// Package genai talks to the external generation collaborator. The ledger
// decides whether an action may run; this package only turns briefs into
// structured content, or fails.
package genai

import (
	"context"

	"server/internal/domain"
)

const (
	ProviderGemini = "gemini"
	ProviderStatic = "static"
)

// Generator is the contract every generation backend satisfies. All calls
// honor context cancellation; a timeout is reported as a plain generation
// failure and never rolls back credits already spent on the attempt.
type Generator interface {
	GenerateStrategy(ctx context.Context, brief domain.ProjectBrief) (*domain.Strategy, error)
	GenerateScript(ctx context.Context, idea domain.ContentIdea, brief domain.ProjectBrief) (*domain.Script, error)
	GenerateChannelIdentity(ctx context.Context, brief domain.ProjectBrief) (*domain.ChannelIdentity, error)
	GenerateThumbnail(ctx context.Context, prompt string) (*domain.Thumbnail, error)
}
