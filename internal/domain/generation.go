package domain

// ContentLength distinguishes short-form from long-form video projects.
type ContentLength string

const (
	ContentShort ContentLength = "SHORT"
	ContentLong  ContentLength = "LONG"
)

// ProjectBrief is the creator-supplied context every generation starts from.
type ProjectBrief struct {
	Niche         string        `json:"niche"`
	Platform      string        `json:"platform"`
	Objective     string        `json:"objective"`
	ContentLength ContentLength `json:"content_length"`
	Style         string        `json:"style"`
}

// ContentIdea is one suggested video concept inside a strategy.
type ContentIdea struct {
	Title               string   `json:"title"`
	SEOTitle            string   `json:"seoTitle"`
	Description         string   `json:"description"`
	ThumbnailSuggestion string   `json:"thumbnailSuggestion,omitempty"`
	Hashtags            []string `json:"hashtags"`
}

// CalendarEntry is one slot of the suggested seven-day posting plan.
type CalendarEntry struct {
	Day          string `json:"day"`
	ContentTitle string `json:"contentTitle"`
	Type         string `json:"type"`
}

// Strategy is the structured result of a strategy generation.
type Strategy struct {
	Ideas           []ContentIdea   `json:"ideas"`
	Calendar        []CalendarEntry `json:"calendar"`
	Trends          []string        `json:"trends"`
	StrategySummary string          `json:"strategySummary"`
}

// ScriptSection is one spoken block of a full script with production cues.
type ScriptSection struct {
	Label     string `json:"label"`
	Content   string `json:"content"`
	VisualCue string `json:"visualCue,omitempty"`
	AudioCue  string `json:"audioCue,omitempty"`
}

// ScriptAnalytics is the simulated potential assessment attached to a script.
type ScriptAnalytics struct {
	EstimatedEngagement string `json:"estimatedEngagement"`
	RetentionScore      int    `json:"retentionScore"`
	KeywordDensity      string `json:"keywordDensity"`
}

// Script is the structured result of a full-script generation.
type Script struct {
	Sections  []ScriptSection `json:"sections"`
	Analytics ScriptAnalytics `json:"analytics"`
}

// ChannelIdentity is the structured result of a channel analysis.
type ChannelIdentity struct {
	Name             string   `json:"name"`
	Handle           string   `json:"handle"`
	Description      string   `json:"description"`
	AvatarIdea       string   `json:"avatarIdea"`
	BannerIdea       string   `json:"bannerIdea"`
	InitialTips      []string `json:"initialTips"`
	MonetizationTips []string `json:"monetizationTips"`
}

// Thumbnail is the result of a thumbnail image generation. DataURL embeds the
// image as a base64 data URI, matching what the dashboard renders directly.
type Thumbnail struct {
	DataURL string `json:"dataUrl"`
	Mime    string `json:"mime"`
}
