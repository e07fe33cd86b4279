package viral

import (
	"math"
	"strings"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/internal/textutil"
	"github.com/aref-vc/youtube-content-analyzer/shared/rules"
)

const powerHookThreshold = 70

var hookTakeaways = map[string]string{
	"curiosity_gap":  "Creates information gap - viewers MUST click to close the mental loop. The brain hates incomplete information.",
	"challenge":      "Triggers competitive instinct - people want to see if they could do it too. Makes content relatable and achievable.",
	"revelation":     "Promises insider knowledge - humans are wired to want exclusive information others don't have.",
	"transformation": "Shows clear before/after - people crave improvement and want to know the exact steps.",
	"controversy":    "Challenges beliefs - triggers emotional response and comment engagement. People click to agree or argue.",
	"fomo":           "Fear of missing out - creates urgency and social pressure. Nobody wants to be left behind.",
}

var emotionTakeaways = map[string]string{
	"excitement": "High-energy words create anticipation - viewers expect something extraordinary.",
	"curiosity":  "Mystery words activate the brain's reward center - the unknown is irresistible.",
	"urgency":    "Time-sensitive language triggers immediate action - prevents procrastination.",
}

// AnalyzeHooks detects hook categories, curiosity elements and emotional
// triggers in a title. Each category counts at most once: its first matching
// pattern wins.
func (e *Engine) AnalyzeHooks(title string) models.HookAnalysis {
	lower := strings.ToLower(title)

	hooks := []models.HookMatch{}
	total := 0
	for _, category := range e.rules.HookCategories {
		for _, p := range category.Patterns {
			if p.MatchString(lower) {
				hooks = append(hooks, models.HookMatch{
					Type:           category.Type,
					Score:          category.Score,
					PatternMatched: p.String(),
				})
				total += category.Score
				break
			}
		}
	}

	curiosity := 0
	elements := []string{}
	if strings.Contains(title, "?") {
		curiosity += 20
		elements = append(elements, "question")
	}
	if strings.Contains(title, "...") {
		curiosity += 15
		elements = append(elements, "incomplete_thought")
	}
	if numberRe.MatchString(title) {
		curiosity += 10
		elements = append(elements, "specific_number")
	}

	emotions := []models.EmotionTrigger{}
	for _, lex := range e.rules.EmotionLexicons {
		for _, word := range lex.Words {
			if strings.Contains(lower, word) {
				emotions = append(emotions, models.EmotionTrigger{Emotion: lex.Emotion, TriggerWord: word})
			}
		}
	}

	var hookBase float64
	if len(hooks) > 0 {
		divisor := len(e.rules.HookCategories)
		if e.rules.HookDivisor == rules.DivideByMatched {
			divisor = len(hooks)
		}
		hookBase = float64(total) / float64(divisor)
	}
	effectiveness := math.Min(100, hookBase+float64(curiosity))

	return models.HookAnalysis{
		HooksFound:             hooks,
		HookEffectivenessScore: textutil.Round2(effectiveness),
		CuriosityElements:      elements,
		CuriosityScore:         curiosity,
		EmotionsTriggered:      emotions,
		HasPowerHook:           effectiveness > powerHookThreshold,
		Recommendations:        hookRecommendations(hooks, curiosity),
		Takeaways:              hookTakeawaysFor(hooks, elements, emotions),
	}
}

func hasHook(hooks []models.HookMatch, hookType string) bool {
	for _, h := range hooks {
		if h.Type == hookType {
			return true
		}
	}
	return false
}

func hasElement(elements []string, element string) bool {
	for _, el := range elements {
		if el == element {
			return true
		}
	}
	return false
}

func hookRecommendations(hooks []models.HookMatch, curiosity int) []string {
	recs := []string{}

	if len(hooks) == 0 {
		recs = append(recs, "Add a strong hook: try curiosity gap or transformation promise")
	}
	if curiosity < 20 {
		recs = append(recs, "Increase curiosity: add a question or incomplete thought")
	}
	if !hasHook(hooks, "fomo") {
		recs = append(recs, "Consider adding urgency or FOMO elements")
	}
	if !hasHook(hooks, "transformation") {
		recs = append(recs, "Show transformation or results to increase appeal")
	}

	return recs
}

// hookTakeawaysFor explains why the detected elements work, covering at most
// the first two hooks and the first emotional trigger.
func hookTakeawaysFor(hooks []models.HookMatch, elements []string, emotions []models.EmotionTrigger) []string {
	takeaways := []string{}

	for i, h := range hooks {
		if i == 2 {
			break
		}
		if text, ok := hookTakeaways[h.Type]; ok {
			takeaways = append(takeaways, text)
		}
	}

	if hasElement(elements, "question") {
		takeaways = append(takeaways, "Direct question engages viewer's brain - they automatically start thinking of the answer, creating investment.")
	}
	if hasElement(elements, "specific_number") {
		takeaways = append(takeaways, "Specific numbers build trust and set clear expectations - viewers know exactly what they'll get.")
	}

	if len(emotions) > 0 {
		if text, ok := emotionTakeaways[emotions[0].Emotion]; ok {
			takeaways = append(takeaways, text)
		}
	}

	if len(takeaways) == 0 {
		takeaways = append(takeaways, "Consider adding stronger hooks - curiosity gaps, transformations, or controversial angles work best.")
	}

	return takeaways
}
