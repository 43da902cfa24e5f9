// Package slog provides logging decorators for the parse and extract
// stages.
package slog

import (
	"log/slog"
	"time"

	"github.com/svituawww/uniparser"
)

// Ensure LoggingParser implements uniparser.Parser.
var _ uniparser.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   uniparser.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next uniparser.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(body string) *uniparser.ParseResult {
	begin := time.Now()
	res := p.next.Parse(body)
	p.logger.Info("parse",
		"bytes", len(body),
		"elements", len(res.Elements),
		"anomalies", len(res.Anomalies),
		"duration", time.Since(begin),
	)
	return res
}
