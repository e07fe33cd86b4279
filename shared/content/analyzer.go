// Package content scores titles and descriptions, predicts engagement and finds
// recurring patterns across a batch of videos.
package content

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/aref-vc/youtube-content-analyzer/shared/logging"
	"github.com/aref-vc/youtube-content-analyzer/shared/rules"
)

var (
	ErrNoDescription = errors.New("No description provided")
	ErrNoVideos      = errors.New("No videos provided")
)

// Analyzer holds only read-only rule tables, so one instance can serve
// concurrent callers.
type Analyzer struct {
	rules      *rules.Set
	similarity SimilarityScorer
	logger     zerolog.Logger
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithSimilarityScorer replaces the lexical scorer used for content consistency.
func WithSimilarityScorer(s SimilarityScorer) Option {
	return func(a *Analyzer) {
		a.similarity = s
	}
}

// WithLogger replaces the component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// NewAnalyzer returns an Analyzer over set with a Jaccard similarity scorer.
func NewAnalyzer(set *rules.Set, opts ...Option) *Analyzer {
	a := &Analyzer{
		rules:      set,
		similarity: JaccardScorer{},
		logger:     logging.WithComponent("content"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
