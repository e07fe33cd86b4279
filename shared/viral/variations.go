package viral

import (
	"strings"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
)

// TitleVariations rewrites a title in five proven styles around its topic,
// taken as words three to five. Titles of two words or fewer are used whole.
func TitleVariations(title string) []models.TitleVariation {
	topic := title
	if words := strings.Fields(title); len(words) > 2 {
		topic = strings.Join(words[2:min(5, len(words))], " ")
	}

	return []models.TitleVariation{
		{Type: "curiosity_gap", Title: "The Truth About " + topic + " Nobody Tells You"},
		{Type: "numbered_list", Title: "7 Things About " + topic + " You Need to Know"},
		{Type: "transformation", Title: "How " + topic + " Changed Everything"},
		{Type: "controversy", Title: "Why " + topic + " Is Not What You Think"},
		{Type: "urgency", Title: "Watch This Before " + topic + " Changes Forever"},
	}
}

func variationSets(videos []models.Video, limit int) []models.VariationSet {
	sets := []models.VariationSet{}
	for i, v := range videos {
		if i == limit {
			break
		}
		sets = append(sets, models.VariationSet{
			Original:      v.Title,
			Variations:    TitleVariations(v.Title),
			OriginalViews: v.ViewCount,
		})
	}
	return sets
}
