package content

import (
	"sort"
	"strings"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/internal/textutil"
)

const (
	topPatterns     = 5
	topPerformers   = 5
	topTopics       = 10
	minTopicLetters = 4
)

// FindContentPatterns aggregates title patterns, topics and consistency across
// a batch. Records with an empty title or description are left out of the text
// statistics; records without views are left out of the performance ranking.
func (a *Analyzer) FindContentPatterns(videos []models.Video) (models.PatternAggregate, error) {
	if len(videos) == 0 {
		a.logger.Debug().Msg("pattern search skipped: no videos")
		return models.PatternAggregate{}, ErrNoVideos
	}

	var titles, descriptions []string
	for _, v := range videos {
		if v.Title != "" {
			titles = append(titles, v.Title)
		}
		if v.Description != "" {
			descriptions = append(descriptions, v.Description)
		}
	}

	patternCounts := textutil.NewCounter()
	totalWords := 0
	for _, title := range titles {
		for _, p := range a.AnalyzeTitle(title).Patterns {
			patternCounts.Add(string(p))
		}
		totalWords += len(strings.Fields(title))
	}

	common := []models.PatternCount{}
	for _, wc := range patternCounts.MostCommon(topPatterns) {
		common = append(common, models.PatternCount{Pattern: models.PatternName(wc.Word), Count: wc.Count})
	}

	avgLength := 0.0
	if len(titles) > 0 {
		avgLength = float64(totalWords) / float64(len(titles))
	}

	return models.PatternAggregate{
		CommonPatterns:      common,
		AverageTitleLength:  avgLength,
		PerformancePatterns: a.performancePatterns(videos),
		MainTopics:          a.extractTopics(append(titles, descriptions...)),
		ContentConsistency:  a.contentConsistency(titles),
	}, nil
}

// performancePatterns ranks each title pattern by the mean views of the
// videos showing it.
func (a *Analyzer) performancePatterns(videos []models.Video) []models.PatternPerformance {
	views := make(map[models.PatternName][]int64)
	var order []models.PatternName

	for _, v := range videos {
		if v.ViewCount == 0 {
			continue
		}
		for _, p := range a.AnalyzeTitle(v.Title).Patterns {
			if _, seen := views[p]; !seen {
				order = append(order, p)
			}
			views[p] = append(views[p], v.ViewCount)
		}
	}

	results := make([]models.PatternPerformance, 0, len(order))
	for _, p := range order {
		var sum float64
		for _, n := range views[p] {
			sum += float64(n)
		}
		results = append(results, models.PatternPerformance{
			Pattern:    p,
			AvgViews:   int64(sum / float64(len(views[p]))),
			VideoCount: len(views[p]),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AvgViews > results[j].AvgViews
	})
	if len(results) > topPerformers {
		results = results[:topPerformers]
	}
	return results
}

// extractTopics counts purely alphabetic lower-case words that are not stop
// words and have at least four letters.
func (a *Analyzer) extractTopics(texts []string) []models.WordCount {
	counts := textutil.NewCounter()
	for _, text := range texts {
		for _, w := range textutil.Words(strings.ToLower(text)) {
			if !isASCIILower(w) || len(w) < minTopicLetters || a.rules.TopicStopWords[w] {
				continue
			}
			counts.Add(w)
		}
	}
	return counts.MostCommon(topTopics)
}

func isASCIILower(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return w != ""
}

// contentConsistency is the mean pairwise similarity of titles scaled to
// 0-100. Fewer than two titles are trivially consistent.
func (a *Analyzer) contentConsistency(titles []string) float64 {
	if len(titles) < 2 {
		return 100
	}

	var sum float64
	pairs := 0
	for i := 0; i < len(titles); i++ {
		for j := i + 1; j < len(titles); j++ {
			sum += a.similarity.Similarity(titles[i], titles[j])
			pairs++
		}
	}

	return sum / float64(pairs) * 100
}
