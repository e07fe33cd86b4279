package insights

import (
	"context"
	"fmt"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
)

const (
	DefaultMaxComments   = 100
	DefaultContextVideos = 10
)

// VideoOptions controls what AnalyzeVideoByRef loads besides the video itself.
type VideoOptions struct {
	IncludeComments bool
	MaxComments     int
	ContextVideos   int
}

// AnalyzeVideoByRef loads a video by URL or ID and analyzes it. Comments and
// channel context are best effort: a failure to load either is logged and the
// report is returned without it.
func (e *Engine) AnalyzeVideoByRef(ctx context.Context, src VideoSource, ref string, opts VideoOptions) (*models.VideoReport, error) {
	video, err := src.GetVideo(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to load video %q: %w", ref, err)
	}

	var comments []models.Comment
	if opts.IncludeComments {
		limit := opts.MaxComments
		if limit <= 0 {
			limit = DefaultMaxComments
		}
		comments, err = src.GetComments(ctx, video.ID, limit)
		if err != nil {
			e.logger.Warn().Err(err).Str("video_id", video.ID).Msg("comments unavailable")
			comments = nil
		}
		if len(comments) == 0 {
			comments = nil
		}
	}

	report := e.AnalyzeVideo(ctx, *video, comments)

	if video.ChannelID != "" {
		limit := opts.ContextVideos
		if limit <= 0 {
			limit = DefaultContextVideos
		}
		others, err := src.GetChannelVideos(ctx, video.ChannelID, limit+1)
		if err != nil {
			e.logger.Warn().Err(err).Str("channel_id", video.ChannelID).Msg("channel context unavailable")
		} else {
			report.ChannelContext = &models.ChannelContext{
				ChannelURL:  channelURL(video.ChannelID),
				OtherVideos: withoutVideo(others, video.ID, limit),
			}
		}
	}

	return &report, nil
}

func withoutVideo(videos []models.Video, id string, limit int) []models.Video {
	out := make([]models.Video, 0, min(len(videos), limit))
	for _, v := range videos {
		if v.ID == id {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, v)
	}
	return out
}

func channelURL(id string) string {
	return "https://www.youtube.com/channel/" + id
}
