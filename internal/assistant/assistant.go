package assistant

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"leadership-academy-go/internal/genai"
)

// EmptyInputReply is returned for empty or whitespace-only queries.
const EmptyInputReply = "Please ask me something about our leadership programs!"

// MenuReply is the last resort when no topic matched and no generated reply
// is available.
const MenuReply = `I'd be happy to help you learn about Ascent Leadership Academy!

You can ask me about:
• What programs are offered
• Program duration and format
• Online/offline availability
• Certification details
• Our mentors and coaches

What would you like to know?`

const persona = `You are a helpful assistant for Ascent Leadership Academy.
You should provide accurate, encouraging, and professional responses about leadership development.
Keep responses concise but informative. Always maintain a supportive and empowering tone.

Available Programs Context:
- Executive Leadership Development (6 months)
- Women in Leadership Bootcamp (3 months)
- Corporate Mentorship Program (4 months)
- Leadership Skills Workshop (2 months)
- Personal Branding Program (3 months)
- Strategic Thinking Course (2 months)

All programs are hybrid (70% online, 30% offline) with expert mentors and certificates provided.`

const (
	replyMaxTokens   = 300
	replyTemperature = 0.7
)

// Responder answers a single FAQ query. It keeps no state between requests.
type Responder struct {
	topics    []Topic
	generator genai.Generator
}

// NewResponder builds a responder over the default topic table. A nil
// generator is valid and means canned answers only.
func NewResponder(generator genai.Generator) *Responder {
	return &Responder{
		topics:    DefaultTopics(),
		generator: generator,
	}
}

// Respond runs the fallback chain: generated reply, then canned answer, then
// the topic menu. It always returns a non-empty reply and never an error; a
// failing backend only degrades the answer.
func (r *Responder) Respond(ctx context.Context, input string) string {
	if strings.TrimSpace(input) == "" {
		return EmptyInputReply
	}

	var canned string
	if topic, ok := r.resolveIntent(input); ok {
		canned = topic.Answer
	}

	if generated := r.generate(ctx, input, canned); generated != "" {
		return generated
	}
	if canned != "" {
		return canned
	}

	return MenuReply
}

// resolveIntent returns the first topic, in table order, with a keyword that
// appears as a substring of the lowercased input.
func (r *Responder) resolveIntent(input string) (Topic, bool) {
	lowered := strings.ToLower(input)

	for _, topic := range r.topics {
		for _, keyword := range topic.Keywords {
			if strings.Contains(lowered, keyword) {
				return topic, true
			}
		}
	}

	return Topic{}, false
}

func (r *Responder) generate(ctx context.Context, input, canned string) string {
	if r.generator == nil {
		return ""
	}

	system := persona
	if canned != "" {
		system += "\n\nRelevant FAQ context: " + canned
	}

	reply, err := r.generator.Generate(ctx, genai.Request{
		System:      system,
		Prompt:      input,
		MaxTokens:   replyMaxTokens,
		Temperature: replyTemperature,
	})
	if err != nil {
		log.Warnf("generating assistant reply: %v", err)
		return ""
	}

	return strings.TrimSpace(reply)
}
