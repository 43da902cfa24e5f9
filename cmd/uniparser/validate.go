package main

import (
	"fmt"

	"github.com/svituawww/uniparser"
	"github.com/svituawww/uniparser/parse"
	"github.com/svituawww/uniparser/validate"
)

// Run executes the validate command.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	doc, err := findDocumentByName(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uniparser.ErrorMessage(err))
		return err
	}

	items, err := deps.Items.FindItemsByDocument(deps.Ctx, doc.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uniparser.ErrorMessage(err))
		return err
	}

	parsed := parse.NewParser().Parse(doc.Body)
	report := validate.NewValidator().Validate(parsed, items)

	fmt.Fprintf(deps.Stdout, "%s  score %.3f\n", report.Status, report.Score)
	for _, check := range report.Checks {
		mark := "ok"
		if !check.Pass {
			mark = "FAILED"
		}
		fmt.Fprintf(deps.Stdout, "  %-20s %s  %d/%d (%.3f)\n",
			check.Name, mark, check.Validated, check.Total, check.Score)
	}
	for _, a := range report.Anomalies {
		fmt.Fprintf(deps.Stdout, "  anomaly %s at %d: %s\n", a.Kind, a.Offset, a.Message)
	}

	if report.Status == uniparser.StatusFail {
		return uniparser.Errorf(uniparser.EINTERNAL, "validation failed for %q", doc.Name)
	}
	return nil
}
