package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
)

func TestPredictEngagement(t *testing.T) {
	tests := []struct {
		name        string
		video       models.Video
		wantScore   float64
		wantTier    string
		wantFactors []string
		wantRecs    int
	}{
		{
			name: "like ratio bonus",
			video: models.Video{
				Title:     "7 Tips That Changed My Life",
				ViewCount: 1000,
				LikeCount: 50,
			},
			wantScore:   39.5,
			wantTier:    models.TierNeedsImprovement,
			wantFactors: []string{"High like ratio"},
			wantRecs:    3,
		},
		{
			name: "comments and tags",
			video: models.Video{
				Title:        "7 Tips That Changed My Life",
				ViewCount:    1000,
				LikeCount:    50,
				CommentCount: 10,
				Tags:         []string{"a", "b", "c", "d", "e", "f"},
			},
			wantScore:   64.5,
			wantTier:    models.TierGood,
			wantFactors: []string{"High like ratio", "High comment engagement", "Optimal tag usage"},
			wantRecs:    3,
		},
		{
			name: "likes without views are ignored",
			video: models.Video{
				Title:     "7 Tips That Changed My Life",
				LikeCount: 50,
			},
			wantScore:   19.5,
			wantTier:    models.TierNeedsImprovement,
			wantFactors: []string{},
			wantRecs:    3,
		},
		{
			name: "ratio at threshold does not count",
			video: models.Video{
				Title:     "7 Tips That Changed My Life",
				ViewCount: 1000,
				LikeCount: 40,
			},
			wantScore:   19.5,
			wantTier:    models.TierNeedsImprovement,
			wantFactors: []string{},
			wantRecs:    3,
		},
	}

	a := newTestAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.PredictEngagement(tt.video)
			assert.InDelta(t, tt.wantScore, got.EngagementScore, 1e-9)
			assert.Equal(t, tt.wantTier, got.PerformanceTier)
			assert.Equal(t, tt.wantFactors, got.PositiveFactors)
			assert.Len(t, got.Recommendations, tt.wantRecs)
		})
	}
}

func TestPredictEngagementRecommendations(t *testing.T) {
	a := newTestAnalyzer()

	got := a.PredictEngagement(models.Video{Title: "hi"})
	assert.Equal(t, []string{
		"Improve title with questions or numbered lists",
		"Optimize description with timestamps and relevant hashtags",
		"Add timestamps to improve viewer retention",
		"Expand description to 200-300 words for better SEO",
	}, got.Recommendations)
}

func TestPredictEngagementNoRecommendationsWhenStrong(t *testing.T) {
	a := newTestAnalyzer()

	video := models.Video{
		Title:        "7 Tips That Changed My Life",
		Description:  descriptionWith(220, "#one", "#two", "#three", "12:34", "subscribe"),
		ViewCount:    1000,
		LikeCount:    100,
		CommentCount: 20,
		Tags:         []string{"a", "b", "c", "d", "e"},
	}

	got := a.PredictEngagement(video)
	// 65*0.3 + 100*0.2 + 20 + 15 + 10
	assert.InDelta(t, 84.5, got.EngagementScore, 1e-9)
	assert.Equal(t, models.TierExcellent, got.PerformanceTier)
	assert.Contains(t, got.PositiveFactors, "Good SEO optimization")
	assert.Empty(t, got.Recommendations)
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, models.TierExcellent},
		{80, models.TierExcellent},
		{79.9, models.TierGood},
		{60, models.TierGood},
		{40, models.TierAverage},
		{39.99, models.TierNeedsImprovement},
		{0, models.TierNeedsImprovement},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tierFor(tt.score), "score %v", tt.score)
	}
}
