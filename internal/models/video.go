package models

import "time"

// Video is the content record handed to every analyzer. Counts are zero when the
// platform did not report them.
type Video struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ChannelID       string    `json:"channel_id,omitempty"`
	ChannelTitle    string    `json:"channel_title,omitempty"`
	PublishedAt     time.Time `json:"published_at"`
	Duration        string    `json:"duration,omitempty"`
	DurationSeconds int       `json:"duration_seconds,omitempty"`
	ViewCount       int64     `json:"view_count,omitempty"`
	LikeCount       int64     `json:"like_count,omitempty"`
	CommentCount    int64     `json:"comment_count,omitempty"`
	Tags            []string  `json:"tags,omitempty"`
	ThumbnailURL    string    `json:"thumbnail_url,omitempty"`
	URL             string    `json:"url,omitempty"`
}

type Comment struct {
	ID          string    `json:"id,omitempty"`
	Author      string    `json:"author,omitempty"`
	Text        string    `json:"text"`
	LikeCount   int64     `json:"like_count,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

type Channel struct {
	ID              string    `json:"channel_id"`
	Name            string    `json:"channel_name"`
	URL             string    `json:"channel_url"`
	CustomURL       string    `json:"custom_url,omitempty"`
	Description     string    `json:"description,omitempty"`
	SubscriberCount int64     `json:"subscriber_count,omitempty"`
	VideoCount      int64     `json:"video_count,omitempty"`
	Country         string    `json:"country,omitempty"`
	CreatedAt       time.Time `json:"creation_date"`
	UploadsPlaylist string    `json:"-"`
}
