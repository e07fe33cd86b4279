package youtube

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/youtube/v3"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/shared/insights"
)

const (
	batchSize       = 50
	commentPageSize = 100
)

var (
	ErrChannelNotFound = insights.ErrChannelNotFound
	ErrVideoNotFound   = insights.ErrVideoNotFound
)

var _ insights.Catalog = (*Client)(nil)

// GetChannel resolves a channel ID, @handle or channel URL.
func (c *Client) GetChannel(ctx context.Context, ref string) (*models.Channel, error) {
	parsed, err := ParseChannelRef(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, ref)
	}

	call := c.service.Channels.List([]string{"snippet", "statistics", "contentDetails"}).Context(ctx)
	switch {
	case parsed.ID != "":
		call = call.Id(parsed.ID)
	case parsed.Handle != "":
		call = call.ForHandle(parsed.Handle)
	default:
		call = call.ForUsername(parsed.Username)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get channel %s: %w", parsed, err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, parsed)
	}

	return channelFromItem(resp.Items[0]), nil
}

// GetChannelVideos returns up to limit of the channel's most recent uploads
// with full statistics.
func (c *Client) GetChannelVideos(ctx context.Context, channelID string, limit int) ([]models.Video, error) {
	resp, err := c.service.Channels.List([]string{"contentDetails"}).Id(channelID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get channel %s: %w", channelID, err)
	}
	if len(resp.Items) == 0 || resp.Items[0].ContentDetails == nil || resp.Items[0].ContentDetails.RelatedPlaylists == nil {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, channelID)
	}

	return c.playlistVideos(ctx, resp.Items[0].ContentDetails.RelatedPlaylists.Uploads, limit)
}

// FetchChannel resolves a channel reference and fetches its recent uploads in
// one go.
func (c *Client) FetchChannel(ctx context.Context, ref string, limit int) (*models.Channel, []models.Video, error) {
	channel, err := c.GetChannel(ctx, ref)
	if err != nil {
		return nil, nil, err
	}
	if channel.UploadsPlaylist == "" {
		return channel, []models.Video{}, nil
	}

	videos, err := c.playlistVideos(ctx, channel.UploadsPlaylist, limit)
	if err != nil {
		return nil, nil, err
	}
	return channel, videos, nil
}

func (c *Client) playlistVideos(ctx context.Context, playlistID string, limit int) ([]models.Video, error) {
	if playlistID == "" || limit <= 0 {
		return []models.Video{}, nil
	}

	var ids []string
	pageToken := ""
	for len(ids) < limit {
		call := c.service.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(int64(min(batchSize, limit-len(ids)))).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list playlist %s: %w", playlistID, err)
		}
		for _, item := range resp.Items {
			if item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
				ids = append(ids, item.ContentDetails.VideoId)
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

	c.logger.Debug().Str("playlist", playlistID).Int("videos", len(ids)).Msg("listed uploads")
	return c.videosByID(ctx, ids)
}

// videosByID fetches details in batches of 50, keeping the order of ids.
func (c *Client) videosByID(ctx context.Context, ids []string) ([]models.Video, error) {
	videos := make([]models.Video, 0, len(ids))

	for i := 0; i < len(ids); i += batchSize {
		batch := ids[i:min(i+batchSize, len(ids))]

		resp, err := c.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
			Id(strings.Join(batch, ",")).
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("failed to get video details: %w", err)
		}

		byID := make(map[string]*youtube.Video, len(resp.Items))
		for _, item := range resp.Items {
			byID[item.Id] = item
		}
		for _, id := range batch {
			if item, ok := byID[id]; ok {
				videos = append(videos, videoFromItem(item))
			}
		}
	}

	return videos, nil
}

// GetVideo fetches one video by ID or URL.
func (c *Client) GetVideo(ctx context.Context, ref string) (*models.Video, error) {
	id, err := ParseVideoID(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, ref)
	}

	videos, err := c.videosByID(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVideoNotFound, id)
	}
	return &videos[0], nil
}

// GetComments returns up to maxComments top-level comments ordered by relevance.
// Videos with comments disabled yield an empty list.
func (c *Client) GetComments(ctx context.Context, videoID string, maxComments int) ([]models.Comment, error) {
	comments := []models.Comment{}
	pageToken := ""

	for len(comments) < maxComments {
		call := c.service.CommentThreads.List([]string{"snippet"}).
			VideoId(videoID).
			MaxResults(int64(min(commentPageSize, maxComments-len(comments)))).
			Order("relevance").
			TextFormat("plainText").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			var apiErr *googleapi.Error
			if errors.As(err, &apiErr) && apiErr.Code == http.StatusForbidden {
				c.logger.Info().Str("video_id", videoID).Msg("comments unavailable")
				return comments, nil
			}
			return nil, fmt.Errorf("failed to get comments for %s: %w", videoID, err)
		}

		for _, thread := range resp.Items {
			if thread.Snippet == nil || thread.Snippet.TopLevelComment == nil || thread.Snippet.TopLevelComment.Snippet == nil {
				continue
			}
			comments = append(comments, commentFromItem(thread.Snippet.TopLevelComment))
		}

		pageToken = resp.NextPageToken
		if pageToken == "" || len(resp.Items) == 0 {
			break
		}
	}

	if len(comments) > maxComments {
		comments = comments[:maxComments]
	}
	return comments, nil
}

func channelFromItem(item *youtube.Channel) *models.Channel {
	channel := &models.Channel{
		ID:  item.Id,
		URL: "https://www.youtube.com/channel/" + item.Id,
	}

	if s := item.Snippet; s != nil {
		channel.Name = s.Title
		channel.Description = s.Description
		channel.CustomURL = s.CustomUrl
		channel.Country = s.Country
		channel.CreatedAt = parseTime(s.PublishedAt)
	}
	if st := item.Statistics; st != nil {
		channel.SubscriberCount = int64(st.SubscriberCount)
		channel.VideoCount = int64(st.VideoCount)
	}
	if cd := item.ContentDetails; cd != nil && cd.RelatedPlaylists != nil {
		channel.UploadsPlaylist = cd.RelatedPlaylists.Uploads
	}

	return channel
}

func videoFromItem(item *youtube.Video) models.Video {
	video := models.Video{
		ID:  item.Id,
		URL: "https://www.youtube.com/watch?v=" + item.Id,
	}

	if s := item.Snippet; s != nil {
		video.Title = s.Title
		video.Description = s.Description
		video.ChannelID = s.ChannelId
		video.ChannelTitle = s.ChannelTitle
		video.PublishedAt = parseTime(s.PublishedAt)
		video.Tags = s.Tags
		video.ThumbnailURL = thumbnailURL(s.Thumbnails)
	}
	if cd := item.ContentDetails; cd != nil {
		video.Duration = cd.Duration
		video.DurationSeconds = parseDurationSeconds(cd.Duration)
	}
	if st := item.Statistics; st != nil {
		video.ViewCount = int64(st.ViewCount)
		video.LikeCount = int64(st.LikeCount)
		video.CommentCount = int64(st.CommentCount)
	}

	return video
}

func commentFromItem(item *youtube.Comment) models.Comment {
	s := item.Snippet
	text := s.TextOriginal
	if text == "" {
		text = html.UnescapeString(s.TextDisplay)
	}
	return models.Comment{
		ID:          item.Id,
		Author:      s.AuthorDisplayName,
		Text:        text,
		LikeCount:   s.LikeCount,
		PublishedAt: parseTime(s.PublishedAt),
	}
}

func thumbnailURL(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, thumb := range []*youtube.Thumbnail{t.Maxres, t.High, t.Medium, t.Default} {
		if thumb != nil && thumb.Url != "" {
			return thumb.Url
		}
	}
	return ""
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
