package genai

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"server/internal/domain"
)

// Static is a deterministic offline generator. It keeps demo mode and CI fully
// operational without an API key and serves as the fallback when the remote
// provider fails.
type Static struct{}

// NewStatic returns the offline generator.
func NewStatic() *Static {
	return &Static{}
}

func (s *Static) GenerateStrategy(ctx context.Context, brief domain.ProjectBrief) (*domain.Strategy, error) {
	niche := briefNiche(brief)
	titler := cases.Title(language.Und)
	ideas := make([]domain.ContentIdea, 0, 4)
	angles := []string{"Beginner Mistakes", "Behind The Scenes", "Myths Debunked", "30-Day Challenge"}
	for _, angle := range angles {
		title := fmt.Sprintf("%s: %s", titler.String(niche), angle)
		idea := domain.ContentIdea{
			Title:       title,
			SEOTitle:    fmt.Sprintf("%s (%s guide)", title, brief.Platform),
			Description: fmt.Sprintf("A %s take on %s for the %s audience.", strings.ToLower(angle), niche, brief.Platform),
			Hashtags:    []string{"#" + slug(niche), "#" + slug(brief.Platform), "#creator"},
		}
		if brief.ContentLength == domain.ContentLong {
			idea.ThumbnailSuggestion = fmt.Sprintf("Close-up with bold text reading %q", angle)
		}
		ideas = append(ideas, idea)
	}

	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	calendar := make([]domain.CalendarEntry, 0, len(days))
	for i, day := range days {
		calendar = append(calendar, domain.CalendarEntry{
			Day:          day,
			ContentTitle: ideas[i%len(ideas)].Title,
			Type:         pick(i, "Main video", "Short", "Community post"),
		})
	}

	return &domain.Strategy{
		Ideas:    ideas,
		Calendar: calendar,
		Trends: []string{
			fmt.Sprintf("%s challenges", titler.String(niche)),
			"Faceless narration formats",
			"Serialized mini-documentaries",
		},
		StrategySummary: fmt.Sprintf("Focus %s content on %s with a consistent 7-day cadence, leading with %s.", brief.Platform, niche, ideas[0].Title),
	}, nil
}

func (s *Static) GenerateScript(ctx context.Context, idea domain.ContentIdea, brief domain.ProjectBrief) (*domain.Script, error) {
	title := idea.Title
	if title == "" {
		title = briefNiche(brief)
	}
	return &domain.Script{
		Sections: []domain.ScriptSection{
			{
				Label:     "Hook",
				Content:   fmt.Sprintf("Stop scrolling - here is what nobody tells you about %s.", title),
				VisualCue: "Fast cut to presenter, direct eye contact",
				AudioCue:  "Percussive sting, then silence",
			},
			{
				Label:     "Development",
				Content:   fmt.Sprintf("Let's break down %s step by step, in the %s style your audience expects.", title, brief.Style),
				VisualCue: "B-roll illustrating each step with on-screen captions",
				AudioCue:  "Low-key lo-fi background track",
			},
			{
				Label:     "CTA",
				Content:   "If this helped, follow for the next part and tell me in the comments what to cover next.",
				VisualCue: "End card with subscribe animation",
				AudioCue:  "Track swells and cuts on the last word",
			},
		},
		Analytics: domain.ScriptAnalytics{
			EstimatedEngagement: "Medium",
			RetentionScore:      72,
			KeywordDensity:      slug(briefNiche(brief)),
		},
	}, nil
}

func (s *Static) GenerateChannelIdentity(ctx context.Context, brief domain.ProjectBrief) (*domain.ChannelIdentity, error) {
	niche := briefNiche(brief)
	titler := cases.Title(language.Und)
	name := fmt.Sprintf("%s Lab", titler.String(niche))
	return &domain.ChannelIdentity{
		Name:        name,
		Handle:      "@" + slug(name),
		Description: fmt.Sprintf("Practical %s content for %s, in a %s voice.", niche, brief.Platform, strings.ToLower(brief.Style)),
		AvatarIdea:  fmt.Sprintf("Minimal monogram of %q on a two-tone background", initials(name)),
		BannerIdea:  fmt.Sprintf("Wide shot of a %s workspace with the tagline overlaid", niche),
		InitialTips: []string{
			"Publish on a fixed weekly schedule before optimizing anything else",
			"Reply to every comment in the first hour after upload",
			"Repurpose each long video into three shorts",
		},
		MonetizationTips: []string{
			fmt.Sprintf("Affiliate links for %s tools you already use on camera", niche),
			"A paid community tier once past 1k subscribers",
			"A digital starter guide sold through the channel bio",
		},
	}, nil
}

func (s *Static) GenerateThumbnail(ctx context.Context, prompt string) (*domain.Thumbnail, error) {
	// Deterministic solid-color placeholder derived from the prompt, 16:9.
	sum := sha256.Sum256([]byte(prompt))
	fill := color.RGBA{R: sum[0], G: sum[1], B: sum[2], A: 255}
	img := image.NewRGBA(image.Rect(0, 0, 640, 360))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: fill}, image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encode placeholder: %v", domain.ErrProviderFailure, err)
	}
	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return &domain.Thumbnail{
		Mime:    "image/png",
		DataURL: "data:image/png;base64," + encoded,
	}, nil
}

func briefNiche(brief domain.ProjectBrief) string {
	if strings.TrimSpace(brief.Niche) != "" {
		return strings.TrimSpace(brief.Niche)
	}
	return "your niche"
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, s)
}

func initials(s string) string {
	var out []rune
	for _, word := range strings.Fields(s) {
		runes := []rune(word)
		if len(runes) > 0 {
			out = append(out, runes[0])
		}
	}
	return strings.ToUpper(string(out))
}

func pick(i int, options ...string) string {
	return options[i%len(options)]
}
