package viral

import (
	"fmt"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
)

const (
	recipeVariationVideos = 3
	maxContentGaps        = 5
)

// GenerateRecipes assembles the advisory recipe set for a channel: static
// recipes, rewrites of the leading videos' titles, a weekly calendar, quick
// wins and the formats the channel is not using yet. commonPatterns may be nil
// when no pattern aggregate is available.
func (e *Engine) GenerateRecipes(topVideos []models.Video, commonPatterns map[models.PatternName]int) models.ViralRecipes {
	return models.ViralRecipes{
		Recipes:         viralRecipes(),
		TitleVariations: variationSets(topVideos, recipeVariationVideos),
		ContentCalendar: contentCalendar(),
		QuickWins:       quickWins(),
		ContentGaps:     e.contentGaps(commonPatterns),
	}
}

func (e *Engine) contentGaps(commonPatterns map[models.PatternName]int) []string {
	gaps := []string{}

	if len(commonPatterns) > 0 {
		for _, p := range e.rules.GapPatterns {
			if _, used := commonPatterns[p]; !used {
				gaps = append(gaps, fmt.Sprintf("Try %s format - underutilized in your content", p))
			}
		}
	}

	gaps = append(gaps,
		"Experiment with controversial takes for engagement",
		"Create series content for better retention",
		"Add more personality-driven content",
	)

	if len(gaps) > maxContentGaps {
		gaps = gaps[:maxContentGaps]
	}
	return gaps
}

func viralRecipes() []models.ViralRecipe {
	return []models.ViralRecipe{
		{
			Name:    "The Curiosity Loop Recipe",
			Formula: "Question Hook + Information Gap + Promise of Revelation",
			ConcreteExample: []models.RecipeStep{
				{Label: "hook", Text: "Why do millionaires wake up at 4 AM?"},
				{Label: "gap", Text: "It's not what you think..."},
				{Label: "reveal", Text: "The 3 morning rituals that separate the ultra-rich from everyone else"},
			},
			EmotionalTriggers: []string{
				"FOMO: 'What successful people know that I don't?'",
				"Curiosity: 'I need to know this secret'",
				"Aspiration: 'I want to be like them'",
			},
			HowToApply:  "1. Start with counterintuitive question\n2. Challenge common assumption\n3. Promise specific, actionable insight",
			ExpectedCTR: "8-12% (2x average)",
		},
		{
			Name:    "The Personal Experiment Recipe",
			Formula: "Specific Challenge + Exact Timeframe + Measurable Result",
			ConcreteExample: []models.RecipeStep{
				{Label: "setup", Text: "I cold emailed 100 CEOs in 30 days"},
				{Label: "journey", Text: "Document the process, failures, and surprises"},
				{Label: "payoff", Text: "3 responded, 1 became my mentor, here's exactly what I said"},
			},
			EmotionalTriggers: []string{
				"Relatability: 'I could try this too'",
				"Proof: 'Real person, real results'",
				"Hope: 'If they can do it, so can I'",
			},
			HowToApply:  "1. Pick specific, replicable action\n2. Set clear timeframe (30/60/90 days)\n3. Share exact results with proof",
			ExpectedCTR: "7-10% (1.5x average)",
		},
		{
			Name:    "The Sacred Cow Slayer Recipe",
			Formula: "Popular Belief + Controversial Counter + Evidence",
			ConcreteExample: []models.RecipeStep{
				{Label: "belief", Text: "Everyone says 'follow your passion'"},
				{Label: "counter", Text: "Following your passion is terrible advice"},
				{Label: "evidence", Text: "Here's what 1000 successful entrepreneurs did instead"},
			},
			EmotionalTriggers: []string{
				"Shock: 'Wait, everything I believed is wrong?'",
				"Vindication: 'I knew something was off!'",
				"Debate: 'I need to defend/attack this position'",
			},
			HowToApply:  "1. Identify widely accepted belief\n2. Present opposite view boldly\n3. Back with data/stories/authority",
			ExpectedCTR: "10-15% (2.5x average) but polarizing",
		},
		{
			Name:    "The Behind-the-Curtain Recipe",
			Formula: "Industry/Expert + Hidden Truth + Specific Tactics",
			ConcreteExample: []models.RecipeStep{
				{Label: "authority", Text: "Ex-Google engineer reveals"},
				{Label: "secret", Text: "The interview question that gets you hired"},
				{Label: "specifics", Text: "Say these exact 3 sentences when asked about weaknesses"},
			},
			EmotionalTriggers: []string{
				"Exclusivity: 'Insider information others don't have'",
				"Authority: 'From someone who actually knows'",
				"Advantage: 'This gives me an edge'",
			},
			HowToApply:  "1. Establish credibility upfront\n2. Promise specific insider knowledge\n3. Deliver exact scripts/formulas/tactics",
			ExpectedCTR: "9-12% (2x average)",
		},
		{
			Name:    "The Oddly Specific Recipe",
			Formula: "Odd Number + Unexpected Items + Clear Benefit",
			ConcreteExample: []models.RecipeStep{
				{Label: "number", Text: "7"},
				{Label: "items", Text: "websites nobody knows about"},
				{Label: "benefit", Text: "that will make you $1000/month"},
			},
			EmotionalTriggers: []string{
				"Specificity: '7 is precise, must be researched'",
				"Discovery: 'Hidden gems I haven't found'",
				"ROI: 'Clear value proposition'",
			},
			HowToApply:  "1. Use odd numbers (3,5,7,9,11)\n2. Promise unknown/hidden resources\n3. Quantify the benefit clearly",
			ExpectedCTR: "6-9% (1.5x average)",
		},
	}
}

func contentCalendar() []models.CalendarSlot {
	return []models.CalendarSlot{
		{Day: "Monday", ContentType: "Educational/Tutorial", TitleFormula: "How to [skill] in [timeframe]", Reason: "Start week with value-driven content"},
		{Day: "Wednesday", ContentType: "Entertainment/Story", TitleFormula: "I tried [thing] and [result]", Reason: "Mid-week engagement boost"},
		{Day: "Friday", ContentType: "List/Compilation", TitleFormula: "[Number] [things] for [outcome]", Reason: "Weekend-ready digestible content"},
		{Day: "Sunday", ContentType: "Deep Dive/Documentary", TitleFormula: "The [adjective] story of [topic]", Reason: "Weekend long-form viewing"},
	}
}

func quickWins() []models.QuickWin {
	return []models.QuickWin{
		{
			Tip:     "Use odd numbers in titles",
			Why:     "Odd numbers feel more authentic and specific",
			Example: "Change '10 Tips' to '7 Tips' or '11 Tips'",
			Impact:  "+23% CTR on average",
		},
		{
			Tip:     "Front-load your hook",
			Why:     "First 3 words determine if people keep reading",
			Example: "Start with 'Why', 'How', 'The Secret', or numbers",
			Impact:  "+15% CTR improvement",
		},
		{
			Tip:     "Create urgency without clickbait",
			Why:     "FOMO drives clicks but maintain trust",
			Example: "Add '(2024 Update)' or 'Before It Changes'",
			Impact:  "+18% CTR boost",
		},
		{
			Tip:     "Use parentheses for bonus info",
			Why:     "Adds value without cluttering main title",
			Example: "How to Invest (Step-by-Step Guide)",
			Impact:  "+12% CTR increase",
		},
		{
			Tip:     "Challenge common beliefs",
			Why:     "Cognitive dissonance makes people click",
			Example: "'Why Working Hard is Bad Advice'",
			Impact:  "+30% engagement but polarizing",
		},
	}
}
