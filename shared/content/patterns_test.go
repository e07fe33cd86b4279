package content

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
)

func TestFindContentPatternsEmpty(t *testing.T) {
	_, err := newTestAnalyzer().FindContentPatterns(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoVideos))
	assert.Equal(t, "No videos provided", err.Error())
}

func TestFindContentPatternsConsistency(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
		want   float64
	}{
		{"single title", []string{"How to bake bread"}, 100},
		{"identical titles", []string{"How to bake bread", "How to bake bread"}, 100},
		{"partial overlap", []string{"How to bake bread", "how to bake CAKE"}, 60},
		{"disjoint", []string{"alpha beta", "gamma delta"}, 0},
	}

	a := newTestAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			videos := make([]models.Video, 0, len(tt.titles))
			for _, title := range tt.titles {
				videos = append(videos, models.Video{Title: title})
			}

			got, err := a.FindContentPatterns(videos)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.ContentConsistency, 1e-9)
		})
	}
}

func TestFindContentPatternsAggregates(t *testing.T) {
	videos := []models.Video{
		{Title: "7 Tips for Sourdough Bread", ViewCount: 1000, Description: "Sourdough starter recipe"},
		{Title: "5 Tips for Fluffy Pancakes", ViewCount: 3000},
		{Title: "How to Cook Rice", ViewCount: 0, Description: "Rice cooking basics"},
		{Title: "", Description: "sourdough"},
	}

	got, err := newTestAnalyzer().FindContentPatterns(videos)
	require.NoError(t, err)

	assert.Equal(t, []models.PatternCount{
		{Pattern: models.PatternNumberList, Count: 2},
		{Pattern: models.PatternQuestion, Count: 1},
		{Pattern: models.PatternTutorial, Count: 1},
	}, got.CommonPatterns)
	assert.InDelta(t, 14.0/3.0, got.AverageTitleLength, 1e-9)

	require.Len(t, got.PerformancePatterns, 1, "zero-view videos are not ranked")
	assert.Equal(t, models.PatternPerformance{
		Pattern:    models.PatternNumberList,
		AvgViews:   2000,
		VideoCount: 2,
	}, got.PerformancePatterns[0])

	require.NotEmpty(t, got.MainTopics)
	assert.Equal(t, models.WordCount{Word: "sourdough", Count: 3}, got.MainTopics[0])
	for _, topic := range got.MainTopics {
		assert.GreaterOrEqual(t, len(topic.Word), 4)
		assert.NotEqual(t, "for", topic.Word)
	}
}

func TestFindContentPatternsPerformanceRanking(t *testing.T) {
	videos := []models.Video{
		{Title: "Amazing sunset", ViewCount: 100},
		{Title: "Honest review", ViewCount: 900},
		{Title: "Quick lunch", ViewCount: 500},
		{Title: "Amazing review", ViewCount: 301},
	}

	got, err := newTestAnalyzer().FindContentPatterns(videos)
	require.NoError(t, err)

	var order []models.PatternName
	for _, p := range got.PerformancePatterns {
		order = append(order, p.Pattern)
	}
	assert.Equal(t, []models.PatternName{models.PatternReview, models.PatternUrgency, models.PatternEmotional}, order)
	assert.Equal(t, int64(600), got.PerformancePatterns[0].AvgViews)
	assert.Equal(t, int64(200), got.PerformancePatterns[2].AvgViews)
}

func TestFindContentPatternsTopicsSkipMixedTokens(t *testing.T) {
	got, err := newTestAnalyzer().FindContentPatterns([]models.Video{
		{Title: "café café python3 golang golang"},
	})
	require.NoError(t, err)

	assert.Equal(t, []models.WordCount{{Word: "golang", Count: 2}}, got.MainTopics)
}

type constantScorer float64

func (c constantScorer) Similarity(string, string) float64 { return float64(c) }

func TestFindContentPatternsCustomScorer(t *testing.T) {
	a := NewAnalyzer(newTestAnalyzer().rules, WithSimilarityScorer(constantScorer(0.25)))

	got, err := a.FindContentPatterns([]models.Video{{Title: "a"}, {Title: "b"}, {Title: "c"}})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, got.ContentConsistency, 1e-9)
}

func TestJaccardScorer(t *testing.T) {
	var s JaccardScorer
	assert.Equal(t, 1.0, s.Similarity("Go Go gadget", "gadget go"))
	assert.Equal(t, 0.0, s.Similarity("", "anything"))
	assert.Equal(t, 0.0, s.Similarity("   ", "anything"))
	assert.InDelta(t, 1.0/3.0, s.Similarity("a b", "b c"), 1e-9)
}

func TestCommonPatternsKeepRankOnTheWire(t *testing.T) {
	videos := []models.Video{
		{Title: "Amazing Review of the Best Phone"},
		{Title: "Quick Review: 5 Tips"},
		{Title: "Honest Review Today"},
		{Title: "Crazy Amazing Results"},
	}

	got, err := newTestAnalyzer().FindContentPatterns(videos)
	require.NoError(t, err)
	require.NotEmpty(t, got.CommonPatterns)
	assert.Equal(t, models.PatternReview, got.CommonPatterns[0].Pattern)
	assert.Equal(t, 3, got.CommonPatterns[0].Count)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	body := string(data)
	assert.Less(t, strings.Index(body, `"pattern":"review"`), strings.Index(body, `"pattern":"emotional"`),
		"most frequent pattern must come first in the encoded aggregate")
	assert.Equal(t, 3, got.PatternCounts()[models.PatternReview])
}
