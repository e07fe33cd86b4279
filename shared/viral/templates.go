package viral

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/internal/textutil"
)

const (
	topPerformerShare   = 5 // top 1/5 of the catalog
	openingPrefixRunes  = 20
	openingWords        = 3
	maxOpeningPhrases   = 5
	maxCommonWords      = 10
	recommendedFormulas = 3
)

// ExtractTemplates builds a reusable title library from the best performing
// fifth of videos, ranked by likes. Returns ErrNoVideos for an empty batch.
func (e *Engine) ExtractTemplates(videos []models.Video) (models.TemplateLibrary, error) {
	if len(videos) == 0 {
		e.logger.Debug().Msg("template extraction skipped: no videos")
		return models.TemplateLibrary{}, ErrNoVideos
	}

	top := TopPerformers(videos)

	return models.TemplateLibrary{
		ReadyToUseTemplates:  readyTemplates(),
		CommonOpeningPhrases: commonOpenings(top),
		PowerWords:           e.commonWords(top),
		CopyPasteFormulas:    copyPasteFormulas(),
		TitleStarters:        titleStarters(),
		EngagementBoosters:   engagementBoosters(),
		RecommendedFormulas:  e.recommendedFormulas(top),
		TitleVariations:      variationSets(top, len(top)),
	}, nil
}

// TopPerformers returns the top fifth of videos (at least one) ordered by
// views times like rate. Videos without views rank last; ties keep input order.
func TopPerformers(videos []models.Video) []models.Video {
	ranked := make([]models.Video, len(videos))
	copy(ranked, videos)

	sort.SliceStable(ranked, func(i, j int) bool {
		return performanceKey(ranked[i]) > performanceKey(ranked[j])
	})

	return ranked[:max(1, len(ranked)/topPerformerShare)]
}

func performanceKey(v models.Video) float64 {
	if v.ViewCount <= 0 {
		return 0
	}
	views := float64(v.ViewCount)
	return views * (float64(v.LikeCount) / views)
}

// commonOpenings finds three-word openings, taken from the first twenty runes
// of each title, that more than one title shares.
func commonOpenings(videos []models.Video) []string {
	counts := textutil.NewCounter()
	for _, v := range videos {
		counts.Add(textutil.FirstWords(textutil.Truncate(v.Title, openingPrefixRunes), openingWords))
	}

	openings := []string{}
	for _, wc := range counts.MostCommon(maxOpeningPhrases) {
		if wc.Count > 1 {
			openings = append(openings, wc.Word)
		}
	}
	return openings
}

func (e *Engine) commonWords(videos []models.Video) []string {
	counts := textutil.NewCounter()
	for _, v := range videos {
		for _, w := range strings.Fields(v.Title) {
			lw := strings.ToLower(w)
			if e.rules.CommonStopWords[lw] || utf8.RuneCountInString(w) <= 3 {
				continue
			}
			counts.Add(lw)
		}
	}

	words := []string{}
	for _, wc := range counts.MostCommon(maxCommonWords) {
		if wc.Count > 1 {
			words = append(words, wc.Word)
		}
	}
	return words
}

// recommendedFormulas picks the formula each leading title already follows,
// then tops up with the strongest defaults.
func (e *Engine) recommendedFormulas(videos []models.Video) []models.TitleFormula {
	picked := []models.TitleFormula{}
	seen := make(map[string]bool)

	for i, v := range videos {
		if i == recommendedFormulas {
			break
		}
		for _, f := range e.rules.TitleFormulas {
			if matchesFormula(v.Title, f.Template) {
				if !seen[f.Template] {
					seen[f.Template] = true
					picked = append(picked, f)
				}
				break
			}
		}
	}

	for _, f := range e.rules.TitleFormulas {
		if len(picked) >= recommendedFormulas {
			break
		}
		if !seen[f.Template] {
			seen[f.Template] = true
			picked = append(picked, f)
		}
	}

	return picked
}

func matchesFormula(title, template string) bool {
	tmpl := strings.ToLower(template)
	lower := strings.ToLower(title)

	switch {
	case strings.Contains(tmpl, "[number]") && numberRe.MatchString(title):
		return true
	case strings.Contains(tmpl, "why") && strings.HasPrefix(lower, "why"):
		return true
	case strings.Contains(tmpl, "how") && strings.HasPrefix(lower, "how"):
		return true
	case strings.Contains(tmpl, "the") && strings.HasPrefix(lower, "the"):
		return true
	}
	return false
}

func readyTemplates() []models.ContentTemplate {
	return []models.ContentTemplate{
		{
			Name:     "The Curiosity Gap Template",
			Template: "Why [unexpected thing] is [surprising outcome]",
			Examples: []string{
				"Why Sleeping Less Makes You More Productive",
				"Why Expensive Cars Are Actually Cheaper",
				"Why Smart People Make Dumb Decisions",
			},
			FillIn:       "Why _______ is _______",
			Instructions: "Fill first blank with common belief, second with opposite/unexpected",
		},
		{
			Name:     "The Number List Template",
			Template: "[Odd number] [category] That [benefit/outcome]",
			Examples: []string{
				"7 Morning Habits That Changed My Life",
				"5 Investments That Made Me Rich",
				"3 Books That Destroyed My Limiting Beliefs",
			},
			FillIn:       "__ _______ That _______",
			Instructions: "Use odd numbers (3,5,7,9), be specific about the outcome",
		},
		{
			Name:     "The Transformation Template",
			Template: "I [action] for [timeframe] - Here's What Happened",
			Examples: []string{
				"I Cold Called 100 CEOs - Here's What Happened",
				"I Meditated for 365 Days - Here's What Happened",
				"I Quit Coffee for a Month - Here's What Happened",
			},
			FillIn:       "I _______ for _______ - Here's What Happened",
			Instructions: "Be specific about action and timeframe, promise revelation",
		},
		{
			Name:     "The Mistake Template",
			Template: "The #1 [category] Mistake (And How to Fix It)",
			Examples: []string{
				"The #1 Investing Mistake (And How to Fix It)",
				"The #1 Dating Mistake (And How to Fix It)",
				"The #1 YouTube Mistake (And How to Fix It)",
			},
			FillIn:       "The #1 _______ Mistake (And How to Fix It)",
			Instructions: "Target your audience's main pain point, promise solution",
		},
		{
			Name:     "The Controversial Opinion Template",
			Template: "[Popular thing] is [controversial take] - Let Me Explain",
			Examples: []string{
				"College is a Scam - Let Me Explain",
				"Motivation is Useless - Let Me Explain",
				"Networking is Dead - Let Me Explain",
			},
			FillIn:       "_______ is _______ - Let Me Explain",
			Instructions: "Challenge popular belief, but promise reasoning",
		},
		{
			Name:     "The Insider Template",
			Template: "How [successful entity] Actually [does something]",
			Examples: []string{
				"How MrBeast Actually Makes His Videos",
				"How Millionaires Actually Think About Money",
				"How Top Students Actually Study",
			},
			FillIn:       "How _______ Actually _______",
			Instructions: "Promise insider knowledge about successful people/companies",
		},
	}
}

func copyPasteFormulas() []string {
	return []string{
		"This Changed Everything: _______",
		"Stop _______ Start _______",
		"_______ Doesn't Work (Do This Instead)",
		"The Real Reason You're _______",
		"_______ in 2024: Everything You Need to Know",
		"I Was Wrong About _______",
		"_______ Is Not What You Think",
		"The Hidden Cost of _______",
		"_______ Explained in 10 Minutes",
		"Nobody Talks About This: _______",
	}
}

func titleStarters() []string {
	return []string{
		"The Truth About...",
		"Why I Stopped...",
		"How to Actually...",
		"The Problem With...",
		"What Nobody Tells You About...",
		"The Secret to...",
		"Everything Wrong With...",
		"I Tried... for 30 Days",
		"The Ultimate Guide to...",
		"This Is Why You're...",
	}
}

func engagementBoosters() []string {
	return []string{
		"(You Won't Believe #3)",
		"(With Proof)",
		"(Science-Based)",
		"(Step-by-Step)",
		"(No BS)",
		"(In 2024)",
		"(For Beginners)",
		"(Advanced Strategy)",
		"(Watch Till End)",
		"(Life-Changing)",
	}
}
