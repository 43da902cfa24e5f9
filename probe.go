package uniparser

// RuleMatch counts the candidate fragments one (tag, attribute) rule
// would extract from a document.
type RuleMatch struct {
	Tag       string `json:"tag"`
	Attribute string `json:"attribute"` // TextKind for text rules
	Count     int    `json:"count"`
}

// ProbeResult is a preflight summary of a document: what the configured
// rules would find, before any positional extraction runs.
type ProbeResult struct {
	Title       string         `json:"title,omitempty"`
	TagCounts   map[string]int `json:"tagCounts"`
	RuleMatches []RuleMatch    `json:"ruleMatches"`
}

// Inspector produces a preflight summary of a document. Inspection is a
// candidate-finding step only; it never extracts byte-exact values.
type Inspector interface {
	Inspect(html string) (*ProbeResult, error)
}
