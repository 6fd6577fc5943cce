// Package insights builds course-title suggestions and a feedback summary on
// top of the generative backend, with fixed fallbacks when the backend is
// absent or failing.
package insights

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"leadership-academy-go/internal/genai"
	"leadership-academy-go/internal/store"
)

const (
	// NoFeedbackSummary is returned when nothing has been submitted yet or
	// no backend is configured.
	NoFeedbackSummary = "No feedback available for summary."
	// SummaryUnavailable is returned when the backend call fails.
	SummaryUnavailable = "Unable to generate feedback summary at this time."

	suggestionCount       = 4
	suggestionMaxTokens   = 150
	suggestionTemperature = 0.8
	feedbackSummaryWindow = 10
	summaryMaxTokens      = 200
	summaryTemperature    = 0.5
)

// FallbackTitles are served whenever the backend cannot produce suggestions.
func FallbackTitles() []string {
	return []string{
		"Advanced Leadership Communication",
		"Digital Transformation for Leaders",
		"Emotional Intelligence in Leadership",
		"Strategic Decision Making Workshop",
	}
}

type Service struct {
	store     store.Store
	generator genai.Generator
}

func NewService(st store.Store, generator genai.Generator) *Service {
	return &Service{
		store:     st,
		generator: generator,
	}
}

// SuggestTitles asks the backend for course title candidates, optionally
// focused on a category. It never fails: backend absence or errors yield the
// fixed fallback list.
func (s *Service) SuggestTitles(ctx context.Context, category string) []string {
	if s.generator == nil {
		return FallbackTitles()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate %d creative course title suggestions for Ascent Leadership Academy.\n", suggestionCount)
	sb.WriteString("Focus on women's leadership development and empowerment.\n")
	if strings.TrimSpace(category) != "" {
		fmt.Fprintf(&sb, "Category focus: %s\n", category)
	}
	sb.WriteString("\nReturn only the course titles, one per line.")

	out, err := s.generator.Generate(ctx, genai.Request{
		Prompt:      sb.String(),
		MaxTokens:   suggestionMaxTokens,
		Temperature: suggestionTemperature,
	})
	if err != nil {
		log.Warnf("generating course suggestions: %v", err)
		return FallbackTitles()
	}

	titles := parseTitles(out)
	if len(titles) == 0 {
		return FallbackTitles()
	}

	return titles
}

// parseTitles splits model output into clean title lines, dropping bullet
// markers, list numbering, and blank lines.
func parseTitles(out string) []string {
	var titles []string

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•0123456789.) ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		titles = append(titles, line)
	}

	return titles
}

// SummarizeFeedback asks the backend for a thematic summary of the most
// recent feedback window, in chronological order.
func (s *Service) SummarizeFeedback(ctx context.Context) string {
	recent := s.store.RecentFeedback(feedbackSummaryWindow)
	if len(recent) == 0 || s.generator == nil {
		return NoFeedbackSummary
	}

	lines := make([]string, 0, len(recent))
	for _, entry := range recent {
		lines = append(lines, fmt.Sprintf("Rating: %d/5 - %s", entry.Rating, entry.Comment))
	}

	prompt := "Summarize the following student feedback for Ascent Leadership Academy programs.\n" +
		"Provide key insights, common themes, and overall sentiment:\n\n" +
		strings.Join(lines, "\n")

	summary, err := s.generator.Generate(ctx, genai.Request{
		Prompt:      prompt,
		MaxTokens:   summaryMaxTokens,
		Temperature: summaryTemperature,
	})
	if err != nil {
		log.Warnf("generating feedback summary: %v", err)
		return SummaryUnavailable
	}

	return strings.TrimSpace(summary)
}
