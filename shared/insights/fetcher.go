package insights

import (
	"context"
	"errors"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
)

// Errors a source wraps so callers can tell bad input from upstream failures.
var (
	ErrInvalidChannelRef = errors.New("invalid channel reference")
	ErrChannelNotFound   = errors.New("channel not found")
	ErrInvalidVideoRef   = errors.New("invalid video reference")
	ErrVideoNotFound     = errors.New("video not found")
)

// Fetcher loads a channel and up to limit of its most recent uploads.
type Fetcher interface {
	FetchChannel(ctx context.Context, ref string, limit int) (*models.Channel, []models.Video, error)
}

// VideoSource loads single videos, their comments and a channel's uploads.
type VideoSource interface {
	GetVideo(ctx context.Context, ref string) (*models.Video, error)
	GetComments(ctx context.Context, videoID string, maxComments int) ([]models.Comment, error)
	GetChannelVideos(ctx context.Context, channelID string, limit int) ([]models.Video, error)
}

// Searcher finds videos and channels by free-text query, in rank order.
type Searcher interface {
	SearchVideos(ctx context.Context, query string, limit int) ([]models.Video, error)
	SearchChannels(ctx context.Context, query string, limit int) ([]models.Channel, error)
}

// Catalog is everything the HTTP API needs from the video platform.
type Catalog interface {
	Fetcher
	VideoSource
	Searcher
}
