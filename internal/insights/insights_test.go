package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadership-academy-go/internal/genai"
	"leadership-academy-go/internal/store"
)

type stubGenerator struct {
	reply   string
	err     error
	lastReq genai.Request
}

func (s *stubGenerator) Generate(_ context.Context, req genai.Request) (string, error) {
	s.lastReq = req
	return s.reply, s.err
}

func addFeedback(st store.Store, rating int, comment string) {
	st.AddFeedback(store.FeedbackFields{
		Name:    "Asha",
		Email:   "asha@example.com",
		Course:  "Women in Leadership Bootcamp",
		Rating:  rating,
		Comment: comment,
	})
}

func TestSuggestTitlesWithoutBackend(t *testing.T) {
	s := NewService(store.New(), nil)

	assert.Equal(t, FallbackTitles(), s.SuggestTitles(context.Background(), ""))
}

func TestSuggestTitlesFallsBackOnError(t *testing.T) {
	s := NewService(store.New(), &stubGenerator{err: errors.New("boom")})

	assert.Equal(t, FallbackTitles(), s.SuggestTitles(context.Background(), "Executive"))
}

func TestSuggestTitlesParsesBulletedOutput(t *testing.T) {
	gen := &stubGenerator{reply: "- Leading Through Change\n• Negotiation for Women Leaders\n3. Boardroom Presence\n\n* Coaching Teams at Scale\n"}
	s := NewService(store.New(), gen)

	titles := s.SuggestTitles(context.Background(), "")

	assert.Equal(t, []string{
		"Leading Through Change",
		"Negotiation for Women Leaders",
		"Boardroom Presence",
		"Coaching Teams at Scale",
	}, titles)
}

func TestSuggestTitlesIncludesCategoryHint(t *testing.T) {
	gen := &stubGenerator{reply: "A Title"}
	s := NewService(store.New(), gen)

	s.SuggestTitles(context.Background(), "Executive")

	assert.Contains(t, gen.lastReq.Prompt, "Category focus: Executive")
	assert.Equal(t, suggestionMaxTokens, gen.lastReq.MaxTokens)
	assert.InDelta(t, suggestionTemperature, gen.lastReq.Temperature, 0.001)
}

func TestSuggestTitlesOmitsCategoryHintWhenBlank(t *testing.T) {
	gen := &stubGenerator{reply: "A Title"}
	s := NewService(store.New(), gen)

	s.SuggestTitles(context.Background(), "  ")

	assert.NotContains(t, gen.lastReq.Prompt, "Category focus")
}

func TestSuggestTitlesFallsBackOnBlankOutput(t *testing.T) {
	s := NewService(store.New(), &stubGenerator{reply: "\n  \n"})

	assert.Equal(t, FallbackTitles(), s.SuggestTitles(context.Background(), ""))
}

func TestSummarizeFeedbackNoEntries(t *testing.T) {
	s := NewService(store.New(), &stubGenerator{reply: "unused"})

	assert.Equal(t, NoFeedbackSummary, s.SummarizeFeedback(context.Background()))
}

func TestSummarizeFeedbackWithoutBackend(t *testing.T) {
	st := store.New()
	addFeedback(st, 5, "loved the mentoring")

	s := NewService(st, nil)

	assert.Equal(t, NoFeedbackSummary, s.SummarizeFeedback(context.Background()))
}

func TestSummarizeFeedback(t *testing.T) {
	st := store.New()
	addFeedback(st, 5, "loved the mentoring")
	addFeedback(st, 3, "sessions ran long")

	gen := &stubGenerator{reply: "Mostly positive, pacing could improve."}
	s := NewService(st, gen)

	summary := s.SummarizeFeedback(context.Background())

	assert.Equal(t, "Mostly positive, pacing could improve.", summary)
	assert.Contains(t, gen.lastReq.Prompt, "Rating: 5/5 - loved the mentoring")
	assert.Contains(t, gen.lastReq.Prompt, "Rating: 3/5 - sessions ran long")
	assert.Equal(t, summaryMaxTokens, gen.lastReq.MaxTokens)
	assert.InDelta(t, summaryTemperature, gen.lastReq.Temperature, 0.001)
}

func TestSummarizeFeedbackUsesRecentWindow(t *testing.T) {
	st := store.New()
	for i := 1; i <= 12; i++ {
		addFeedback(st, 4, fmt.Sprintf("comment %d", i))
	}

	gen := &stubGenerator{reply: "ok"}
	s := NewService(st, gen)

	s.SummarizeFeedback(context.Background())

	assert.NotContains(t, gen.lastReq.Prompt, "comment 1\n")
	assert.NotContains(t, gen.lastReq.Prompt, "comment 2\n")
	assert.Contains(t, gen.lastReq.Prompt, "comment 3")
	assert.Contains(t, gen.lastReq.Prompt, "comment 12")

	// Chronological order within the window.
	require.Less(t,
		strings.Index(gen.lastReq.Prompt, "comment 3"),
		strings.Index(gen.lastReq.Prompt, "comment 12"))
}

func TestSummarizeFeedbackBackendError(t *testing.T) {
	st := store.New()
	addFeedback(st, 2, "too theoretical")

	s := NewService(st, &stubGenerator{err: errors.New("timeout")})

	assert.Equal(t, SummaryUnavailable, s.SummarizeFeedback(context.Background()))
}
