package content

import (
	"regexp"
	"strings"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/internal/textutil"
)

const previewLength = 125

var (
	linkRe      = regexp.MustCompile(`https?://[^\s]+`)
	hashtagRe   = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
	timestampRe = regexp.MustCompile(`\d{1,2}:\d{2}`)
	sectionRe   = regexp.MustCompile(`\n\n|\n-|\n\d+\.`)
)

// AnalyzeDescription scores a description for discoverability. An empty
// description returns ErrNoDescription.
func (a *Analyzer) AnalyzeDescription(description string) (models.DescriptionAnalysis, error) {
	if description == "" {
		a.logger.Debug().Msg("description analysis skipped: empty description")
		return models.DescriptionAnalysis{}, ErrNoDescription
	}

	lower := strings.ToLower(description)

	ctas := []string{}
	for _, cta := range a.rules.CTAPhrases {
		if strings.Contains(lower, cta) {
			ctas = append(ctas, cta)
		}
	}

	keywords := textutil.NewCounter()
	for _, w := range textutil.Words(lower) {
		keywords.Add(w)
	}

	analysis := models.DescriptionAnalysis{
		WordCount:     len(strings.Fields(description)),
		LineCount:     strings.Count(description, "\n") + 1,
		LinkCount:     len(linkRe.FindAllString(description, -1)),
		HashtagCount:  len(hashtagRe.FindAllString(description, -1)),
		HasTimestamps: timestampRe.MatchString(description),
		CTAsFound:     ctas,
		PreviewText:   textutil.Truncate(description, previewLength),
		TopKeywords:   keywords.MostCommon(10),
		HasSections:   sectionRe.MatchString(description),
	}
	analysis.SEOScore = seoScore(analysis)

	return analysis, nil
}

func seoScore(d models.DescriptionAnalysis) float64 {
	score := 40.0

	switch {
	case d.WordCount >= 200 && d.WordCount <= 300:
		score += 20
	case d.WordCount >= 100 && d.WordCount < 200:
		score += 10
	case d.WordCount > 500:
		score -= 5
	}

	switch {
	case d.HashtagCount >= 3 && d.HashtagCount <= 5:
		score += 15
	case d.HashtagCount >= 1 && d.HashtagCount <= 10:
		score += 5
	}

	if d.HasTimestamps {
		score += 15
	}
	if n := len(d.CTAsFound); n >= 1 && n <= 3 {
		score += 10
	}

	return textutil.Clamp(score, 0, 100)
}
