package safety

import (
	"context"
	"regexp"
	"strings"

	"ai-therapist/pkg/log"
)

type category struct {
	name     string
	patterns []*regexp.Regexp
}

var categories = []category{
	{
		name: CrisisSuicide,
		patterns: compile(
			`\b(?:suicide|kill\s*(?:my)?self|end\s*(?:my)?\s*life)\b`,
			`\b(?:don't|do\s*not)\s*want\s*to\s*(?:live|be\s*alive)\b`,
			`\b(?:planning|planned)\s*(?:my)?\s*(?:death|suicide)\b`,
		),
	},
	{
		name: CrisisSelfHarm,
		patterns: compile(
			`\b(?:cut|harm|hurt)\s*(?:my)?self\b`,
			`\b(?:inflict|causing)\s*(?:pain|damage)\b`,
			`\bself[\s-]harm\b`,
		),
	},
	{
		name: CrisisImmediateDanger,
		patterns: compile(
			`\b(?:going|about)\s*to\s*(?:kill|harm|hurt)\b`,
			`\b(?:right|ready)\s*now\b.*(?:suicide|kill|harm)\b`,
			`\b(?:have|got)\s*(?:the|a)?\s*(?:pills|weapon|knife|gun)\b`,
		),
	},
}

var resources = []Resource{
	{Name: "National Suicide Prevention Lifeline", Phone: "988", Text: "HOME to 741741", Website: "https://988lifeline.org/"},
	{Name: "Samaritans", Phone: "116 123", Website: "https://www.samaritans.org/"},
	{Name: "International Association for Suicide Prevention", Website: "https://www.iasp.info/resources/Crisis_Centres/"},
}

var baseRecommendations = []string{
	"Encourage seeking immediate professional help",
	"Provide crisis hotline numbers",
	"Do not leave the person alone if possible",
	"Take all mentions of suicide or self-harm seriously",
}

var specificRecommendations = map[string][]string{
	CrisisSuicide: {
		"Ask directly about suicide plans",
		"Remove access to lethal means if possible",
		"Contact emergency services if immediate risk",
		"Help create a safety plan",
	},
	CrisisSelfHarm: {
		"Discuss alternative coping strategies",
		"Recommend professional counseling",
		"Focus on harm reduction if needed",
		"Help identify triggers",
	},
	CrisisImmediateDanger: {
		"Call emergency services immediately",
		"Stay on the line until help arrives",
		"Get location information if possible",
		"Alert trusted contacts/family members",
	},
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// Checker screens user messages for crisis language. It never blocks a turn.
type Checker struct {
	l log.Logger
}

// New returns a Checker.
func New(l log.Logger) *Checker {
	return &Checker{l: l}
}

// Check scores text against each category in order and reports the first one that matches.
// Confidence is 0.4 per matching pattern, capped at 1.
func (c *Checker) Check(ctx context.Context, text string) Assessment {
	lower := strings.ToLower(text)

	for _, cat := range categories {
		matches := 0
		for _, p := range cat.patterns {
			if p.MatchString(lower) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}

		a := Assessment{
			IsCrisis:        true,
			CrisisType:      cat.name,
			Confidence:      min(1.0, float64(matches)*0.4),
			Resources:       append([]Resource(nil), resources...),
			Recommendations: append(append([]string(nil), baseRecommendations...), specificRecommendations[cat.name]...),
		}
		c.l.Warnf(ctx, "safety.Check: crisis content detected: %s (confidence: %.2f)", a.CrisisType, a.Confidence)
		return a
	}

	return Assessment{}
}
