// Package rules holds the read-only rule tables shared by every analyzer.
//
// A Set is built once with Default and handed to analyzer constructors. Nothing
// mutates a Set after construction, so one value is safe for concurrent use.
package rules

import (
	"regexp"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
)

// HookDivisor selects how matched hook scores are averaged.
type HookDivisor int

const (
	// DivideByCategories divides the matched score sum by the total number of
	// hook categories, which dilutes titles that match a single hook.
	DivideByCategories HookDivisor = iota
	// DivideByMatched divides by the number of categories that matched.
	DivideByMatched
)

// ParseHookDivisor maps a config value to a HookDivisor. Unknown values fall
// back to DivideByCategories.
func ParseHookDivisor(s string) HookDivisor {
	if s == "matched" {
		return DivideByMatched
	}
	return DivideByCategories
}

// TitlePattern tags a lowercased title when Expr matches it.
type TitlePattern struct {
	Name models.PatternName
	Expr *regexp.Regexp
}

// HookCategory is a hook type, its base score and the expressions that detect it.
type HookCategory struct {
	Type     string
	Score    int
	Patterns []*regexp.Regexp
}

// EmotionLexicon lists the trigger words for one emotion.
type EmotionLexicon struct {
	Emotion string
	Words   []string
}

// Set is the complete collection of rule tables.
type Set struct {
	TitlePatterns   []TitlePattern
	PowerWords      []string
	CTAPhrases      []string
	TopicStopWords  map[string]bool
	CommonStopWords map[string]bool
	HookCategories  []HookCategory
	EmotionLexicons []EmotionLexicon
	InsightWords    []string
	GapPatterns     []models.PatternName
	TitleFormulas   []models.TitleFormula
	HookDivisor     HookDivisor
}

// Option customizes a Set during construction.
type Option func(*Set)

// WithHookDivisor overrides the hook effectiveness divisor.
func WithHookDivisor(d HookDivisor) Option {
	return func(s *Set) {
		s.HookDivisor = d
	}
}

// Default builds the standard rule tables.
func Default(opts ...Option) *Set {
	s := &Set{
		TitlePatterns:   titlePatterns(),
		PowerWords:      powerWords,
		CTAPhrases:      ctaPhrases,
		TopicStopWords:  wordSet(topicStopWords),
		CommonStopWords: wordSet(commonStopWords),
		HookCategories:  hookCategories(),
		EmotionLexicons: emotionLexicons,
		InsightWords:    insightWords,
		GapPatterns:     gapPatterns,
		TitleFormulas:   titleFormulas,
		HookDivisor:     DivideByCategories,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func titlePatterns() []TitlePattern {
	defs := []struct {
		name models.PatternName
		expr string
	}{
		{models.PatternQuestion, `^(how|what|why|when|where|who|which|can|should|will|does|is)(?:[^\p{L}\p{N}_]|$)`},
		{models.PatternNumberList, `\d+\s*(tips|ways|reasons|steps|things|secrets|hacks|tricks)`},
		{models.PatternUltimateGuide, `(ultimate|complete|definitive|comprehensive)\s+guide`},
		{models.PatternBeginner, `(beginner|newbie|starter|basic|101|intro)`},
		{models.PatternAdvanced, `(advanced|expert|pro|master|professional)`},
		{models.PatternTutorial, `(tutorial|how\s+to|step\s+by\s+step|guide)`},
		{models.PatternReview, `(review|unboxing|first\s+look|hands\s+on|tested)`},
		{models.PatternComparison, `(vs\.|versus|compared|comparison|better)`},
		{models.PatternEmotional, `(amazing|incredible|shocking|unbelievable|insane|crazy|mind\s+blowing)`},
		{models.PatternUrgency, `(now|today|quick|fast|instant|immediately)`},
	}

	patterns := make([]TitlePattern, 0, len(defs))
	for _, d := range defs {
		patterns = append(patterns, TitlePattern{Name: d.name, Expr: regexp.MustCompile(d.expr)})
	}
	return patterns
}

func hookCategories() []HookCategory {
	defs := []struct {
		hookType string
		score    int
		exprs    []string
	}{
		{"curiosity_gap", 90, []string{
			`why\s+[\p{L}\p{N}_]+\s+(is|are|was|were)`,
			`the\s+(secret|truth|reason)`,
			`what\s+(nobody|everyone|they)`,
			`you\s+(won't|wouldn't)\s+believe`,
			`this\s+is\s+why`,
			`the\s+real\s+reason`,
		}},
		{"challenge", 85, []string{
			`i\s+(tried|tested|spent)`,
			`(24|48|72)\s+hours`,
			`for\s+\d+\s+days`,
			`challenge\s+accepted`,
			`can\s+you`,
			`impossible`,
		}},
		{"revelation", 88, []string{
			`(exposed|revealed|uncovered)`,
			`the\s+dark\s+(side|truth)`,
			`what\s+they\s+don't`,
			`finally\s+revealed`,
			`shocking\s+truth`,
		}},
		{"transformation", 82, []string{
			`how\s+to`,
			`from\s+.+\s+to\s+`,
			`transform`,
			`changed?\s+my\s+life`,
			`before\s+and\s+after`,
			`in\s+just\s+\d+`,
		}},
		{"controversy", 87, []string{
			`(unpopular|controversial)\s+opinion`,
			`is\s+(dead|dying|over)`,
			`why\s+i\s+(quit|stopped|left)`,
			`the\s+problem\s+with`,
			`we\s+need\s+to\s+talk`,
		}},
		{"fomo", 83, []string{
			`(everyone|nobody)\s+is`,
			`you're\s+(missing|doing)\s+.+\s+wrong`,
			`before\s+it's\s+too\s+late`,
			`last\s+chance`,
			`don't\s+miss`,
			`right\s+now`,
		}},
	}

	categories := make([]HookCategory, 0, len(defs))
	for _, d := range defs {
		c := HookCategory{Type: d.hookType, Score: d.score}
		for _, e := range d.exprs {
			c.Patterns = append(c.Patterns, regexp.MustCompile(e))
		}
		categories = append(categories, c)
	}
	return categories
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
