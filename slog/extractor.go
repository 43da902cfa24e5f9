package slog

import (
	"log/slog"
	"time"

	"github.com/svituawww/uniparser"
)

// Ensure LoggingExtractor implements uniparser.Extractor.
var _ uniparser.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   uniparser.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next uniparser.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(parsed *uniparser.ParseResult) (items []*uniparser.ContentItem, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"elements", len(parsed.Elements),
			"items", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(parsed)
}
