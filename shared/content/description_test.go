package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
)

// descriptionWith builds a single-line description of filler words followed by
// the given extra tokens, totalling n whitespace-separated words.
func descriptionWith(n int, extra ...string) string {
	words := make([]string, 0, n)
	for i := 0; i < n-len(extra); i++ {
		words = append(words, "lorem")
	}
	return strings.Join(append(words, extra...), " ")
}

func TestAnalyzeDescriptionEmpty(t *testing.T) {
	_, err := newTestAnalyzer().AnalyzeDescription("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoDescription))
	assert.Equal(t, "No description provided", err.Error())
}

func TestAnalyzeDescriptionSEOScore(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want float64
	}{
		{
			name: "word range, hashtags and timestamp",
			desc: descriptionWith(220, "#one", "#two", "#three", "12:34"),
			want: 90,
		},
		{
			name: "plus a call to action",
			desc: descriptionWith(220, "#one", "#two", "#three", "12:34", "subscribe"),
			want: 100,
		},
		{
			name: "mid length with one hashtag",
			desc: descriptionWith(150, "#solo"),
			want: 55,
		},
		{
			name: "very long description",
			desc: descriptionWith(600),
			want: 35,
		},
		{
			name: "too many hashtags",
			desc: descriptionWith(20, "#a", "#b", "#c", "#d", "#e", "#f", "#g", "#h", "#i", "#j", "#k"),
			want: 40,
		},
	}

	a := newTestAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.AnalyzeDescription(tt.desc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.SEOScore)
			assert.GreaterOrEqual(t, got.SEOScore, 0.0)
			assert.LessOrEqual(t, got.SEOScore, 100.0)
		})
	}
}

func TestAnalyzeDescriptionExtraction(t *testing.T) {
	desc := "Check out https://example.com/gear and http://b.io today!\n\n" +
		"1. Intro\n- Like and subscribe\n#cooking #rice"

	got, err := newTestAnalyzer().AnalyzeDescription(desc)
	require.NoError(t, err)

	assert.Equal(t, 2, got.LinkCount)
	assert.Equal(t, 2, got.HashtagCount)
	assert.Equal(t, 5, got.LineCount)
	assert.True(t, got.HasSections)
	assert.False(t, got.HasTimestamps)
	assert.Equal(t, []string{"subscribe", "like", "check out"}, got.CTAsFound)
	assert.Equal(t, desc, got.PreviewText)
}

func TestAnalyzeDescriptionPreviewAndKeywords(t *testing.T) {
	desc := strings.Repeat("é", 200) + " rice rice beans"

	got, err := newTestAnalyzer().AnalyzeDescription(desc)
	require.NoError(t, err)

	assert.Equal(t, strings.Repeat("é", 125), got.PreviewText)
	require.NotEmpty(t, got.TopKeywords)
	assert.Equal(t, models.WordCount{Word: "rice", Count: 2}, got.TopKeywords[0])
	assert.LessOrEqual(t, len(got.TopKeywords), 10)
}

func TestAnalyzeDescriptionUnicodeHashtags(t *testing.T) {
	got, err := newTestAnalyzer().AnalyzeDescription("Recette #crêpes #日本")
	require.NoError(t, err)
	assert.Equal(t, 2, got.HashtagCount)
}
