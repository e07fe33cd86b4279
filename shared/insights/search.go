package insights

import (
	"context"
	"fmt"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/internal/textutil"
)

const (
	SearchTopic   = "topic"
	SearchChannel = "channel"

	DefaultSearchResults = 20
	MaxSearchResults     = 50

	analyzedSearchHits = 10
	sampledChannels    = 3
	sampleVideos       = 5
	maxTopicChannels   = 10
)

type SearchOptions struct {
	Query          string
	Type           string
	MaxResults     int
	AnalyzeContent bool
}

// Search runs a topic or channel search. Topic searches return the matching
// videos, the first few with title analysis, plus the channels that appear
// most often among them. Channel searches return matching channels, the top
// ones with a sample of recent uploads.
func (e *Engine) Search(ctx context.Context, catalog Catalog, opts SearchOptions) (*models.SearchResult, error) {
	limit := opts.MaxResults
	if limit <= 0 {
		limit = DefaultSearchResults
	}
	limit = min(limit, MaxSearchResults)

	switch opts.Type {
	case SearchChannel:
		return e.searchChannels(ctx, catalog, opts.Query, limit)
	case SearchTopic, "":
		return e.searchTopic(ctx, catalog, opts.Query, limit, opts.AnalyzeContent)
	default:
		return nil, fmt.Errorf("unknown search type %q", opts.Type)
	}
}

func (e *Engine) searchTopic(ctx context.Context, src Searcher, query string, limit int, analyze bool) (*models.SearchResult, error) {
	nChannels := min(maxTopicChannels, max(1, limit/2))
	fetch := min(MaxSearchResults, max(limit, nChannels*5))

	videos, err := src.SearchVideos(ctx, query, fetch)
	if err != nil {
		return nil, fmt.Errorf("failed to search videos for %q: %w", query, err)
	}

	hits := make([]models.SearchHit, 0, min(len(videos), limit))
	for i, v := range videos[:min(len(videos), limit)] {
		hit := models.SearchHit{Video: v}
		if analyze && i < analyzedSearchHits {
			ta := e.content.AnalyzeTitle(v.Title)
			hit.TitleAnalysis = &ta
		}
		hits = append(hits, hit)
	}

	e.logger.Info().Str("query", query).Int("videos", len(hits)).Msg("topic search complete")

	return &models.SearchResult{
		Query:        query,
		SearchType:   SearchTopic,
		Videos:       hits,
		TopChannels:  TopicChannels(videos, nChannels),
		TotalResults: len(hits),
	}, nil
}

func (e *Engine) searchChannels(ctx context.Context, src Catalog, query string, limit int) (*models.SearchResult, error) {
	channels, err := src.SearchChannels(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search channels for %q: %w", query, err)
	}

	matches := make([]models.ChannelMatch, len(channels))
	for i, ch := range channels {
		matches[i] = models.ChannelMatch{Channel: ch}
		if i >= sampledChannels {
			continue
		}
		sample, err := src.GetChannelVideos(ctx, ch.ID, sampleVideos)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			e.logger.Warn().Err(err).Str("channel_id", ch.ID).Msg("sample videos unavailable")
			continue
		}
		matches[i].SampleVideos = sample
	}

	e.logger.Info().Str("query", query).Int("channels", len(matches)).Msg("channel search complete")

	return &models.SearchResult{
		Query:        query,
		SearchType:   SearchChannel,
		Channels:     matches,
		TotalResults: len(matches),
	}, nil
}

// TopicChannels ranks the channels behind a set of videos by how many of the
// videos each published, ties in first-seen order.
func TopicChannels(videos []models.Video, n int) []models.TopicChannel {
	counter := textutil.NewCounter()
	names := make(map[string]string)
	for _, v := range videos {
		if v.ChannelID == "" {
			continue
		}
		counter.Add(v.ChannelID)
		if _, ok := names[v.ChannelID]; !ok {
			names[v.ChannelID] = v.ChannelTitle
		}
	}

	ranked := counter.MostCommon(n)
	out := make([]models.TopicChannel, len(ranked))
	for i, wc := range ranked {
		out[i] = models.TopicChannel{
			ChannelID:   wc.Word,
			ChannelName: names[wc.Word],
			ChannelURL:  channelURL(wc.Word),
			VideoCount:  wc.Count,
		}
	}
	return out
}
