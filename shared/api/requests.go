package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
)

type TitleRequest struct {
	Title     string `json:"title" validate:"required,max=500"`
	ViewCount int64  `json:"view_count" validate:"gte=0"`
}

// VideoRequest carries either one record or a video URL to fetch. For a
// record, comment sentiment is computed only when the comments field is
// present. For a URL, comments are fetched unless include_comments is false.
type VideoRequest struct {
	Video           *models.Video    `json:"video"`
	Comments        []models.Comment `json:"comments" validate:"omitempty,max=1000"`
	VideoURL        string           `json:"video_url" validate:"omitempty,max=500"`
	IncludeComments *bool            `json:"include_comments"`
	MaxComments     int              `json:"max_comments" validate:"gte=0,lte=500"`
}

// PatternsRequest records are not validated one by one. Records without a
// usable title or with negative counts are skipped and counted.
type PatternsRequest struct {
	Videos []models.Video `json:"videos" validate:"required,min=1,max=50"`
}

type SearchRequest struct {
	Query          string `json:"query" validate:"required,max=200"`
	SearchType     string `json:"search_type" validate:"omitempty,oneof=topic channel"`
	MaxResults     int    `json:"max_results" validate:"gte=0,lte=50"`
	AnalyzeContent *bool  `json:"analyze_content"`
}

// ChannelRequest analyzes either the given records or, when only Channel is
// set, the channel fetched by reference.
type ChannelRequest struct {
	Channel     string         `json:"channel" validate:"required_without=Videos,max=200"`
	ChannelName string         `json:"channel_name" validate:"max=200"`
	Videos      []models.Video `json:"videos" validate:"omitempty,max=200"`
	Refresh     bool           `json:"refresh"`
}

type CompareRequest struct {
	Channels []string `json:"channels" validate:"required,min=2,max=5,dive,required,max=200"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validateVideo, models.Video{})
	return v
}

// validateVideo applies to single-record requests only. Batch requests go
// through usableVideos instead.
func validateVideo(sl validator.StructLevel) {
	video := sl.Current().Interface().(models.Video)

	if strings.TrimSpace(video.Title) == "" {
		sl.ReportError(video.Title, "title", "Title", "required", "")
	}
	if video.ViewCount < 0 {
		sl.ReportError(video.ViewCount, "view_count", "ViewCount", "gte", "0")
	}
	if video.LikeCount < 0 {
		sl.ReportError(video.LikeCount, "like_count", "LikeCount", "gte", "0")
	}
	if video.CommentCount < 0 {
		sl.ReportError(video.CommentCount, "comment_count", "CommentCount", "gte", "0")
	}
}

// usableVideos drops records that would fail validateVideo and reports how
// many were dropped.
func usableVideos(videos []models.Video) ([]models.Video, int) {
	kept := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if strings.TrimSpace(v.Title) == "" || v.ViewCount < 0 || v.LikeCount < 0 || v.CommentCount < 0 {
			continue
		}
		kept = append(kept, v)
	}
	return kept, len(videos) - len(kept)
}

// validationMessage flattens validator errors into one line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return "invalid request: " + strings.Join(parts, "; ")
}
