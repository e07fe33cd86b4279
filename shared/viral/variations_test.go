package viral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
)

func TestTitleVariations(t *testing.T) {
	got := TitleVariations("How I Built a Cabin in the Woods")

	require.Len(t, got, 5)
	assert.Equal(t, models.TitleVariation{
		Type:  "curiosity_gap",
		Title: "The Truth About Built a Cabin Nobody Tells You",
	}, got[0])
	assert.Equal(t, "Watch This Before Built a Cabin Changes Forever", got[4].Title)
}

func TestTitleVariationsShortTitle(t *testing.T) {
	got := TitleVariations("Hello World")
	assert.Equal(t, "Why Hello World Is Not What You Think", got[3].Title)

	got = TitleVariations("One two three")
	assert.Equal(t, "How three Changed Everything", got[2].Title)
}

func TestVariationSetsLimit(t *testing.T) {
	videos := []models.Video{{Title: "a"}, {Title: "b"}, {Title: "c"}}
	assert.Len(t, variationSets(videos, 2), 2)
	assert.Len(t, variationSets(videos, 10), 3)
	assert.Empty(t, variationSets(nil, 3))
}
