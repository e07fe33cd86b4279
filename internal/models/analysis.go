package models

// PatternName identifies one of the fixed title pattern categories.
type PatternName string

const (
	PatternQuestion      PatternName = "question"
	PatternNumberList    PatternName = "number_list"
	PatternUltimateGuide PatternName = "ultimate_guide"
	PatternBeginner      PatternName = "beginner"
	PatternAdvanced      PatternName = "advanced"
	PatternTutorial      PatternName = "tutorial"
	PatternReview        PatternName = "review"
	PatternComparison    PatternName = "comparison"
	PatternEmotional     PatternName = "emotional"
	PatternUrgency       PatternName = "urgency"
)

type TitleAnalysis struct {
	Patterns           []PatternName `json:"patterns"`
	PowerWordCount     int           `json:"power_word_count"`
	WordCount          int           `json:"word_count"`
	CharCount          int           `json:"char_count"`
	HasEmoji           bool          `json:"has_emoji"`
	HasCaps            bool          `json:"has_caps"`
	Readability        float64       `json:"readability"`
	EffectivenessScore float64       `json:"effectiveness_score"` // 0-100
	Suggestions        []string      `json:"suggestions"`
}

// HasPattern reports whether the title matched the named category.
func (t TitleAnalysis) HasPattern(name PatternName) bool {
	for _, p := range t.Patterns {
		if p == name {
			return true
		}
	}
	return false
}

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type DescriptionAnalysis struct {
	WordCount     int         `json:"word_count"`
	LineCount     int         `json:"line_count"`
	LinkCount     int         `json:"link_count"`
	HashtagCount  int         `json:"hashtag_count"`
	HasTimestamps bool        `json:"has_timestamps"`
	CTAsFound     []string    `json:"ctas_found"`
	PreviewText   string      `json:"preview_text"`
	TopKeywords   []WordCount `json:"top_keywords"`
	HasSections   bool        `json:"has_sections"`
	SEOScore      float64     `json:"seo_score"` // 0-100
}

type SentimentScore struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Compound float64 `json:"compound"`
}

type SentimentDistribution struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

type CommentsSentiment struct {
	AverageSentiment      SentimentScore        `json:"average_sentiment"`
	SentimentDistribution SentimentDistribution `json:"sentiment_distribution"`
	TotalAnalyzed         int                   `json:"total_comments_analyzed"`
	OverallTone           string                `json:"overall_tone"`
}

// Performance tiers assigned by the engagement predictor.
const (
	TierExcellent        = "Excellent"
	TierGood             = "Good"
	TierAverage          = "Average"
	TierNeedsImprovement = "Needs Improvement"
)

type EngagementPrediction struct {
	EngagementScore float64  `json:"engagement_score"` // 0-100
	PerformanceTier string   `json:"performance_tier"`
	PositiveFactors []string `json:"positive_factors"`
	Recommendations []string `json:"recommendations"`
}

type PatternPerformance struct {
	Pattern    PatternName `json:"pattern"`
	AvgViews   int64       `json:"avg_views"`
	VideoCount int         `json:"video_count"`
}

// PatternCount is a title pattern and how many titles show it.
type PatternCount struct {
	Pattern PatternName `json:"pattern"`
	Count   int         `json:"count"`
}

type PatternAggregate struct {
	// CommonPatterns is ranked by count, most frequent first.
	CommonPatterns      []PatternCount       `json:"common_patterns"`
	AverageTitleLength  float64              `json:"average_title_length"`
	PerformancePatterns []PatternPerformance `json:"performance_patterns"`
	MainTopics          []WordCount          `json:"main_topics"`
	ContentConsistency  float64              `json:"content_consistency"` // 0-100
}

// PatternCounts indexes CommonPatterns by pattern name.
func (a PatternAggregate) PatternCounts() map[PatternName]int {
	counts := make(map[PatternName]int, len(a.CommonPatterns))
	for _, pc := range a.CommonPatterns {
		counts[pc.Pattern] = pc.Count
	}
	return counts
}
