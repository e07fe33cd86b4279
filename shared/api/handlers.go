package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/shared/insights"
	"github.com/aref-vc/youtube-content-analyzer/shared/storage"
)

const (
	maxBodyBytes         = 5 << 20
	defaultChannelVideos = 50
	maxChannelVideos     = 200
)

var (
	errFetchDisabled = errors.New("YouTube access is not configured")
	errNoUsable      = errors.New("invalid request: no usable video records")
)

// Response is the envelope every API endpoint returns.
type Response struct {
	Status         string  `json:"status"`
	Data           any     `json:"data,omitempty"`
	Error          string  `json:"error,omitempty"`
	Skipped        int     `json:"skipped_records,omitempty"`
	ProcessingTime float64 `json:"processing_time"`
}

// ChannelSummary is one side of a channel comparison.
type ChannelSummary struct {
	Channel         models.Channel                          `json:"channel"`
	VideosAnalyzed  int                                     `json:"videos_analyzed"`
	ContentPatterns models.Outcome[models.PatternAggregate] `json:"content_patterns"`
	ChannelMetrics  models.ChannelMetrics                   `json:"channel_metrics"`
}

type CompareResponse struct {
	Channels   []ChannelSummary         `json:"channels"`
	Comparison models.ChannelComparison `json:"comparison"`
}

type ChannelVideosResponse struct {
	ChannelID  string         `json:"channel_id"`
	VideoCount int            `json:"video_count"`
	Videos     []models.Video `json:"videos"`
}

func (s *Server) analyzeTitle(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req TitleRequest
	if !s.decode(w, r, &req, start) {
		return
	}

	respondWithJSON(w, http.StatusOK, s.engine.AnalyzeTitle(req.Title, req.ViewCount), start)
}

func (s *Server) analyzeVideo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req VideoRequest
	if !s.decode(w, r, &req, start) {
		return
	}
	if (req.Video == nil) == (req.VideoURL == "") {
		respondWithError(w, http.StatusBadRequest, "invalid request: exactly one of video or video_url is required", start)
		return
	}

	if req.Video != nil {
		respondWithJSON(w, http.StatusOK, s.engine.AnalyzeVideo(r.Context(), *req.Video, req.Comments), start)
		return
	}

	if s.catalog == nil {
		s.respondWithFailure(w, errFetchDisabled, start)
		return
	}
	opts := insights.VideoOptions{
		IncludeComments: req.IncludeComments == nil || *req.IncludeComments,
		MaxComments:     req.MaxComments,
	}
	report, err := s.engine.AnalyzeVideoByRef(r.Context(), s.catalog, req.VideoURL, opts)
	if err != nil {
		s.respondWithFailure(w, err, start)
		return
	}

	respondWithJSON(w, http.StatusOK, report, start)
}

func (s *Server) detectPatterns(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req PatternsRequest
	if !s.decode(w, r, &req, start) {
		return
	}

	videos, skipped := usableVideos(req.Videos)
	if len(videos) == 0 {
		respondWithError(w, http.StatusBadRequest, errNoUsable.Error(), start)
		return
	}

	writeEnvelope(w, http.StatusOK, Response{
		Status:  "success",
		Data:    s.engine.DetectPatterns(r.Context(), videos),
		Skipped: skipped,
	}, start)
}

func (s *Server) analyzeChannel(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ChannelRequest
	if !s.decode(w, r, &req, start) {
		return
	}
	if len(req.Videos) == 0 && req.Channel == "" {
		respondWithError(w, http.StatusBadRequest, "invalid request: channel or videos is required", start)
		return
	}

	var (
		report  *models.ChannelReport
		skipped int
		err     error
	)
	if len(req.Videos) > 0 {
		var videos []models.Video
		videos, skipped = usableVideos(req.Videos)
		if len(videos) == 0 {
			respondWithError(w, http.StatusBadRequest, errNoUsable.Error(), start)
			return
		}
		channel := models.Channel{Name: req.ChannelName}
		if channel.Name == "" {
			channel.Name = req.Channel
		}
		report, err = s.engine.AnalyzeChannel(r.Context(), channel, videos)
	} else {
		report, err = s.channelReport(r.Context(), req.Channel, req.Refresh)
	}
	if err != nil {
		s.respondWithFailure(w, err, start)
		return
	}

	writeEnvelope(w, http.StatusOK, Response{Status: "success", Data: report, Skipped: skipped}, start)
}

func (s *Server) channelVideos(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit := defaultChannelVideos
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxChannelVideos {
			respondWithError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: limit must be between 1 and %d", maxChannelVideos), start)
			return
		}
		limit = n
	}
	if s.catalog == nil {
		s.respondWithFailure(w, errFetchDisabled, start)
		return
	}

	id := chi.URLParam(r, "id")
	videos, err := s.catalog.GetChannelVideos(r.Context(), id, limit)
	if err != nil {
		s.respondWithFailure(w, err, start)
		return
	}

	respondWithJSON(w, http.StatusOK, ChannelVideosResponse{
		ChannelID:  id,
		VideoCount: len(videos),
		Videos:     videos,
	}, start)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SearchRequest
	if !s.decode(w, r, &req, start) {
		return
	}
	if s.catalog == nil {
		s.respondWithFailure(w, errFetchDisabled, start)
		return
	}

	result, err := s.engine.Search(r.Context(), s.catalog, insights.SearchOptions{
		Query:          req.Query,
		Type:           req.SearchType,
		MaxResults:     req.MaxResults,
		AnalyzeContent: req.AnalyzeContent == nil || *req.AnalyzeContent,
	})
	if err != nil {
		s.respondWithFailure(w, err, start)
		return
	}

	respondWithJSON(w, http.StatusOK, result, start)
}

func (s *Server) compareChannels(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CompareRequest
	if !s.decode(w, r, &req, start) {
		return
	}

	reports := make([]*models.ChannelReport, len(req.Channels))
	g, ctx := errgroup.WithContext(r.Context())
	for i, ref := range req.Channels {
		g.Go(func() error {
			report, err := s.channelReport(ctx, ref, false)
			if err != nil {
				return fmt.Errorf("channel %s: %w", ref, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.respondWithFailure(w, err, start)
		return
	}

	comparison, err := insights.CompareChannels(reports)
	if err != nil {
		s.respondWithFailure(w, err, start)
		return
	}

	resp := CompareResponse{Comparison: comparison, Channels: make([]ChannelSummary, 0, len(reports))}
	for _, report := range reports {
		resp.Channels = append(resp.Channels, ChannelSummary{
			Channel:         report.Channel,
			VideosAnalyzed:  report.VideosAnalyzed,
			ContentPatterns: report.ContentPatterns,
			ChannelMetrics:  report.ChannelMetrics,
		})
	}

	respondWithJSON(w, http.StatusOK, resp, start)
}

// channelReport returns the cached report for ref when fresh, otherwise
// fetches and analyzes the channel and caches the result.
func (s *Server) channelReport(ctx context.Context, ref string, refresh bool) (*models.ChannelReport, error) {
	if s.cache != nil && !refresh {
		if report, ok := s.cache.Get(ref); ok {
			s.logger.Debug().Str("channel", ref).Msg("serving cached report")
			return report, nil
		}
	}
	if s.catalog == nil {
		return nil, errFetchDisabled
	}

	channel, videos, err := s.catalog.FetchChannel(ctx, ref, s.fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel: %w", err)
	}

	report, err := s.engine.AnalyzeChannel(ctx, *channel, videos)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(storage.CacheKey(ref), report); err != nil {
			s.logger.Warn().Err(err).Str("channel", ref).Msg("failed to cache report")
		}
	}

	return report, nil
}

// decode reads and validates a JSON body, writing a 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any, start time.Time) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error(), start)
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, validationMessage(err), start)
		return false
	}
	return true
}

func (s *Server) respondWithFailure(w http.ResponseWriter, err error, start time.Time) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, insights.ErrInvalidChannelRef), errors.Is(err, insights.ErrInvalidVideoRef),
		errors.Is(err, insights.ErrTooFewChannels):
		status = http.StatusBadRequest
	case errors.Is(err, insights.ErrChannelNotFound), errors.Is(err, insights.ErrVideoNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errFetchDisabled):
		status = http.StatusNotImplemented
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Msg("request failed")
	}
	respondWithError(w, status, err.Error(), start)
}

func respondWithJSON(w http.ResponseWriter, code int, data any, start time.Time) {
	writeEnvelope(w, code, Response{Status: "success", Data: data}, start)
}

func respondWithError(w http.ResponseWriter, code int, message string, start time.Time) {
	writeEnvelope(w, code, Response{Status: "error", Error: message}, start)
}

func writeEnvelope(w http.ResponseWriter, code int, resp Response, start time.Time) {
	resp.ProcessingTime = time.Since(start).Seconds()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
