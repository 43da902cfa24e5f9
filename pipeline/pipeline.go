// Package pipeline wires the parse, extract, template, and validate
// stages into a single-pass, single-threaded run per document, and a
// concurrent worker-per-document runner for batches. Cross-document
// parallelism is the only concurrency boundary; one document's stages
// share no mutable state with another's.
package pipeline

import (
	"context"

	"github.com/svituawww/uniparser"
	"github.com/svituawww/uniparser/extract"
	"github.com/svituawww/uniparser/parse"
	"github.com/svituawww/uniparser/template"
	"github.com/svituawww/uniparser/validate"
)

// Pipeline runs the stages for one document. All fields must be set;
// New wires the default implementations.
type Pipeline struct {
	Parser    uniparser.Parser
	Extractor uniparser.Extractor
	Templates uniparser.TemplateBuilder
	Validator uniparser.Validator
}

// New creates a Pipeline with the default stage implementations for
// the given rule set.
func New(rules *uniparser.RuleSet) *Pipeline {
	return &Pipeline{
		Parser:    parse.NewParser(),
		Extractor: extract.NewExtractor(rules),
		Templates: template.NewBuilder(),
		Validator: validate.NewValidator(),
	}
}

// Result is the output of one document run. A templating failure is
// fatal to that step only: Parsed, Items, and Report remain usable for
// inspection with TemplateErr set.
type Result struct {
	Parsed      *uniparser.ParseResult
	Items       []*uniparser.ContentItem
	Template    string
	TemplateErr error
	Report      *uniparser.ValidationReport
}

// Run executes the pipeline for one document body. Cancellation is
// coarse-grained: a run is abandoned before starting or runs to
// completion.
func (p *Pipeline) Run(ctx context.Context, body string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parsed := p.Parser.Parse(body)

	items, err := p.Extractor.Extract(parsed)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Parsed: parsed,
		Items:  items,
		Report: p.Validator.Validate(parsed, items),
	}

	tpl, err := p.Templates.Build(body, items)
	if err != nil {
		res.TemplateErr = err
	} else {
		res.Template = tpl
	}

	return res, nil
}
