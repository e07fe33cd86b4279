// Package viral detects title hooks, scores title optimization and builds
// template and recipe libraries from a channel's best performers.
package viral

import (
	"errors"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/aref-vc/youtube-content-analyzer/shared/logging"
	"github.com/aref-vc/youtube-content-analyzer/shared/rules"
)

var ErrNoVideos = errors.New("No videos provided for template extraction")

var numberRe = regexp.MustCompile(`\d+`)

type Engine struct {
	rules  *rules.Set
	logger zerolog.Logger
}

// NewEngine returns an Engine over the given rule tables.
func NewEngine(set *rules.Set) *Engine {
	return &Engine{
		rules:  set,
		logger: logging.WithComponent("viral"),
	}
}
