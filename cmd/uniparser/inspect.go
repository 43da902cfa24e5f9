package main

import (
	"fmt"
	"os"

	"github.com/svituawww/uniparser"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.Path, err)
	}

	res, err := deps.Inspector.Inspect(string(data))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uniparser.ErrorMessage(err))
		return err
	}

	if res.Title != "" {
		fmt.Fprintf(deps.Stdout, "Title: %s\n", res.Title)
	}

	total := 0
	for _, m := range res.RuleMatches {
		fmt.Fprintf(deps.Stdout, "  %s[%s]: %d candidate(s)\n", m.Tag, m.Attribute, m.Count)
		total += m.Count
	}
	fmt.Fprintf(deps.Stdout, "%d candidate fragment(s) across %d rule(s)\n", total, len(res.RuleMatches))

	return nil
}
