package genai

import (
	"fmt"
	"strings"

	"server/internal/domain"
)

func buildStrategyPrompt(brief domain.ProjectBrief) string {
	format := "Short-form video (TikTok/Reels)"
	thumbnailLine := "For short-form, skip thumbnail suggestions."
	if brief.ContentLength == domain.ContentLong {
		format = "Long-form video (YouTube/courses)"
		thumbnailLine = "Include a descriptive thumbnail suggestion per idea."
	}
	var b strings.Builder
	b.WriteString("Act as a senior digital content strategist.\n\n")
	fmt.Fprintf(&b, "# PROJECT\n- Niche: %q\n- Platform: %q\n- Objective: %q\n- Style/tone: %q\n- Format: %s\n\n", brief.Niche, brief.Platform, brief.Objective, brief.Style, format)
	b.WriteString("# TASK\nProduce a content strategy as JSON with:\n")
	b.WriteString("1. ideas: 4 video concepts, each with title, seoTitle, description, hashtags. ")
	b.WriteString(thumbnailLine)
	b.WriteString("\n2. calendar: a 7-day posting plan (day, contentTitle, type).\n")
	b.WriteString("3. trends: 3 rising trends for the niche.\n")
	b.WriteString("4. strategySummary: one paragraph.\n\n")
	b.WriteString("Do not write full scripts. Return valid JSON only.")
	return b.String()
}

func buildScriptPrompt(idea domain.ContentIdea, brief domain.ProjectBrief) string {
	var b strings.Builder
	b.WriteString("Write a complete, professional video script.\n\n")
	fmt.Fprintf(&b, "# VIDEO\n- Title: %q\n- Description: %q\n- Platform: %q\n- Tone: %q\n\n", idea.Title, idea.Description, brief.Platform, brief.Style)
	b.WriteString("# TASK\n")
	b.WriteString("1. sections: 3 to 5 script sections, each with label, content (spoken text), visualCue (b-roll/action), audioCue (music or sound effects).\n")
	b.WriteString("2. analytics: simulated potential with estimatedEngagement, retentionScore (0-100), keywordDensity.\n\n")
	b.WriteString("Return valid JSON only.")
	return b.String()
}

func buildChannelPrompt(brief domain.ProjectBrief) string {
	var b strings.Builder
	b.WriteString("Create a visual identity, strategy and monetization plan for a new channel.\n\n")
	fmt.Fprintf(&b, "- Niche: %s\n- Platform: %s\n- Style: %s\n\n", brief.Niche, brief.Platform, brief.Style)
	b.WriteString("Return JSON with: name, handle, description (optimized bio), avatarIdea, bannerIdea, ")
	b.WriteString("initialTips (3 growth tips), monetizationTips (3 niche-specific monetization strategies).")
	return b.String()
}
