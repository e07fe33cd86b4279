package models

// ChannelContext lists other uploads of a video's channel.
type ChannelContext struct {
	ChannelURL  string  `json:"channel_url"`
	OtherVideos []Video `json:"other_videos"`
}

type SearchHit struct {
	Video         Video          `json:"video"`
	TitleAnalysis *TitleAnalysis `json:"title_analysis,omitempty"`
}

// TopicChannel is a channel ranked by how many of a topic's search results
// it published.
type TopicChannel struct {
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	ChannelURL  string `json:"channel_url"`
	VideoCount  int    `json:"videos_in_results"`
}

type ChannelMatch struct {
	Channel      Channel `json:"channel"`
	SampleVideos []Video `json:"sample_videos,omitempty"`
}

// SearchResult holds either the topic fields (Videos, TopChannels) or the
// channel field (Channels), depending on SearchType.
type SearchResult struct {
	Query        string         `json:"query"`
	SearchType   string         `json:"search_type"`
	Videos       []SearchHit    `json:"videos,omitempty"`
	TopChannels  []TopicChannel `json:"top_channels,omitempty"`
	Channels     []ChannelMatch `json:"channels,omitempty"`
	TotalResults int            `json:"total_results"`
}
