package youtube

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/youtube/v3"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
)

// SearchVideos returns up to limit videos matching query, in search rank
// order, with full statistics.
func (c *Client) SearchVideos(ctx context.Context, query string, limit int) ([]models.Video, error) {
	ids, err := c.search(ctx, query, "video", limit, func(id *youtube.ResourceId) string { return id.VideoId })
	if err != nil {
		return nil, err
	}
	return c.videosByID(ctx, ids)
}

// SearchChannels returns up to limit channels matching query, in search rank
// order, with statistics and uploads playlist.
func (c *Client) SearchChannels(ctx context.Context, query string, limit int) ([]models.Channel, error) {
	ids, err := c.search(ctx, query, "channel", limit, func(id *youtube.ResourceId) string { return id.ChannelId })
	if err != nil {
		return nil, err
	}
	return c.channelsByID(ctx, ids)
}

// search pages through search.list collecting the IDs of one resource kind.
func (c *Client) search(ctx context.Context, query, kind string, limit int, idOf func(*youtube.ResourceId) string) ([]string, error) {
	if limit <= 0 || strings.TrimSpace(query) == "" {
		return []string{}, nil
	}

	ids := []string{}
	seen := make(map[string]bool)
	pageToken := ""
	for len(ids) < limit {
		call := c.service.Search.List([]string{"id"}).
			Q(query).
			Type(kind).
			MaxResults(int64(min(batchSize, limit-len(ids)))).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to search %ss for %q: %w", kind, query, err)
		}
		for _, item := range resp.Items {
			if item.Id == nil {
				continue
			}
			if id := idOf(item.Id); id != "" && !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" || len(resp.Items) == 0 {
			break
		}
	}

	if len(ids) > limit {
		ids = ids[:limit]
	}

	c.logger.Debug().Str("query", query).Str("kind", kind).Int("results", len(ids)).Msg("search finished")
	return ids, nil
}

// channelsByID fetches channels in batches of 50, keeping the order of ids.
func (c *Client) channelsByID(ctx context.Context, ids []string) ([]models.Channel, error) {
	channels := make([]models.Channel, 0, len(ids))

	for i := 0; i < len(ids); i += batchSize {
		batch := ids[i:min(i+batchSize, len(ids))]

		resp, err := c.service.Channels.List([]string{"snippet", "statistics", "contentDetails"}).
			Id(strings.Join(batch, ",")).
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("failed to get channel details: %w", err)
		}

		byID := make(map[string]*youtube.Channel, len(resp.Items))
		for _, item := range resp.Items {
			byID[item.Id] = item
		}
		for _, id := range batch {
			if item, ok := byID[id]; ok {
				channels = append(channels, *channelFromItem(item))
			}
		}
	}

	return channels, nil
}
