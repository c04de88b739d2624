package domain

import "time"

// ScriptProject is a generated script saved to the creator's library.
type ScriptProject struct {
	ID                  string
	UserID              string
	Title               string
	Platform            string
	Description         string
	Sections            []ScriptSection
	Hashtags            []string
	ThumbnailSuggestion string
	ThumbnailURL        string
	Analytics           ScriptAnalytics
	CreatedAt           time.Time
	LastModified        time.Time
}
