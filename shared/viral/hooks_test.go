package viral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/shared/rules"
)

func newTestEngine(opts ...rules.Option) *Engine {
	return NewEngine(rules.Default(opts...))
}

func TestAnalyzeHooksCountsCategoryOnce(t *testing.T) {
	// Three curiosity_gap patterns match; only the first is recorded.
	got := newTestEngine().AnalyzeHooks("The secret truth: the real reason this is why")

	require.Len(t, got.HooksFound, 1)
	assert.Equal(t, models.HookMatch{
		Type:           "curiosity_gap",
		Score:          90,
		PatternMatched: `the\s+(secret|truth|reason)`,
	}, got.HooksFound[0])
	assert.Equal(t, []models.EmotionTrigger{{Emotion: "curiosity", TriggerWord: "secret"}}, got.EmotionsTriggered)
	assert.Equal(t, []string{
		"Increase curiosity: add a question or incomplete thought",
		"Consider adding urgency or FOMO elements",
		"Show transformation or results to increase appeal",
	}, got.Recommendations)
	assert.Len(t, got.Takeaways, 2)
}

func TestAnalyzeHooksAccentedWords(t *testing.T) {
	got := newTestEngine().AnalyzeHooks("Why Café is Overrated")
	require.NotEmpty(t, got.HooksFound)
	assert.Equal(t, "curiosity_gap", got.HooksFound[0].Type)
	assert.Equal(t, `why\s+[\p{L}\p{N}_]+\s+(is|are|was|were)`, got.HooksFound[0].PatternMatched)
}

func TestAnalyzeHooksDivisorModes(t *testing.T) {
	tests := []struct {
		name      string
		divisor   rules.HookDivisor
		title     string
		wantScore float64
		wantPower bool
	}{
		{"categories single hook", rules.DivideByCategories, "The secret truth: the real reason this is why", 15, false},
		{"matched single hook", rules.DivideByMatched, "The secret truth: the real reason this is why", 90, true},
		{"categories with curiosity", rules.DivideByCategories, "I Tried Cold Showers for 30 Days... Is It Worth It?", 59.17, false},
		{"matched with curiosity is capped", rules.DivideByMatched, "I Tried Cold Showers for 30 Days... Is It Worth It?", 100, true},
		{"no hooks", rules.DivideByMatched, "Cooking rice at home", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newTestEngine(rules.WithHookDivisor(tt.divisor)).AnalyzeHooks(tt.title)
			assert.Equal(t, tt.wantScore, got.HookEffectivenessScore)
			assert.Equal(t, tt.wantPower, got.HasPowerHook)
		})
	}
}

func TestAnalyzeHooksCuriosityElements(t *testing.T) {
	got := newTestEngine().AnalyzeHooks("I Tried Cold Showers for 30 Days... Is It Worth It?")

	require.Len(t, got.HooksFound, 1)
	assert.Equal(t, "challenge", got.HooksFound[0].Type)
	assert.Equal(t, []string{"question", "incomplete_thought", "specific_number"}, got.CuriosityElements)
	assert.Equal(t, 45, got.CuriosityScore)
	assert.Len(t, got.Takeaways, 3)
	assert.Empty(t, got.EmotionsTriggered)
}

func TestAnalyzeHooksNothingFound(t *testing.T) {
	got := newTestEngine().AnalyzeHooks("Cooking rice at home")

	assert.Empty(t, got.HooksFound)
	assert.Len(t, got.Recommendations, 4)
	assert.Equal(t, []string{
		"Consider adding stronger hooks - curiosity gaps, transformations, or controversial angles work best.",
	}, got.Takeaways)
}

func TestAnalyzeHooksTakeawaysCapAtTwoHooks(t *testing.T) {
	// curiosity_gap, challenge and transformation all match.
	got := newTestEngine().AnalyzeHooks("The truth: i tried how to cook")

	require.Len(t, got.HooksFound, 3)
	assert.Equal(t, []string{
		"Creates information gap - viewers MUST click to close the mental loop. The brain hates incomplete information.",
		"Triggers competitive instinct - people want to see if they could do it too. Makes content relatable and achievable.",
	}, got.Takeaways)
}

func TestAnalyzeHooksIsIdempotent(t *testing.T) {
	e := newTestEngine()
	title := "Why Everyone Is Wrong About Sourdough... Right Now?"
	assert.Equal(t, e.AnalyzeHooks(title), e.AnalyzeHooks(title))
}
