// Package uniparser provides byte-exact HTML content extraction and
// templating. It tokenizes a document into a positional element tree,
// extracts editable content fragments with content-addressed identifiers,
// builds a placeholder template that preserves every byte outside the
// extracted spans, and reconstructs the original (or edited) document
// from a template plus resolved identifier values.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., sqlite/, parse/,
// template/).
package uniparser
