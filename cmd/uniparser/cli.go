package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/svituawww/uniparser"
	"github.com/svituawww/uniparser/sqlite"
	"github.com/svituawww/uniparser/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx           context.Context
	Stdout        io.Writer
	Stderr        io.Writer
	Logger        *slog.Logger
	DB            *sqlite.DB
	Documents     uniparser.DocumentService
	Elements      uniparser.ElementService
	Items         uniparser.ItemService
	Templates     uniparser.TemplateBuilder
	Reconstructor uniparser.Reconstructor
	Inspector     uniparser.Inspector
	Rules         *uniparser.RuleSet
	Config        *yaml.Config

	// NewTemplateStore opens a staged store rooted at baseDir for the
	// named document's template.
	NewTemplateStore func(baseDir, name string) uniparser.TemplateStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"C" help:"Path to a YAML rule configuration file"`
	Verbose bool   `short:"v" help:"Log pipeline stages"`

	Parse    ParseCmd    `cmd:"" help:"Parse documents, extract content items, and store the results"`
	Template TemplateCmd `cmd:"" help:"Write the placeholder template for a stored document"`
	Rebuild  RebuildCmd  `cmd:"" help:"Reconstruct a document from a template and stored items"`
	Validate ValidateCmd `cmd:"" help:"Run structural validation for a stored document"`
	Inspect  InspectCmd  `cmd:"" help:"Preview what the rules would extract from a file"`
	Export   ExportCmd   `cmd:"" help:"Export a stored document's elements and items as XML"`
	List     ListCmd     `cmd:"" help:"List stored documents"`
	Items    ItemsCmd    `cmd:"" help:"List content items for a stored document"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Paths       []string `arg:"" help:"HTML files to process"`
	Concurrency int      `short:"c" default:"8" help:"Concurrent file limit"`
}

// TemplateCmd is the "template" subcommand.
type TemplateCmd struct {
	Name string `arg:"" help:"Document name"`
	Out  string `short:"o" default:"." help:"Output directory"`
}

// RebuildCmd is the "rebuild" subcommand.
type RebuildCmd struct {
	Name     string `arg:"" help:"Document name"`
	Template string `short:"t" help:"Template file (defaults to rebuilding from the stored document body)"`
}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	Name string `arg:"" help:"Document name"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	Path string `arg:"" help:"HTML file to inspect"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name string `arg:"" help:"Document name"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ItemsCmd is the "items" subcommand.
type ItemsCmd struct {
	Name string `arg:"" help:"Document name"`
}
