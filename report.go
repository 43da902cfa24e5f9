package uniparser

// AnomalyKind classifies a structural inconsistency. Anomalies are
// findings, never parse failures.
type AnomalyKind string

// AnomalyKind values.
const (
	AnomalyGap            AnomalyKind = "gap"             // skipped bytes between consecutive tokens
	AnomalyOverlap        AnomalyKind = "overlap"         // consecutive tokens sharing bytes
	AnomalyUnmatchedOpen  AnomalyKind = "unmatched_open"  // opening tag with no closer
	AnomalyUnmatchedClose AnomalyKind = "unmatched_close" // closing tag with no opener
	AnomalyUnterminated   AnomalyKind = "unterminated"    // tag, quote, or comment running to end of input
	AnomalyMisaligned     AnomalyKind = "misaligned"      // content item span outside its owning element
	AnomalyItemOverlap    AnomalyKind = "item_overlap"    // two content item spans intersecting
)

// Anomaly is one located structural inconsistency.
type Anomaly struct {
	Kind AnomalyKind `json:"kind"`

	// ElementID is the arena index of the implicated element, or
	// NoParent when the anomaly concerns a content item only.
	ElementID int `json:"elementId"`

	// RelatedID is the second implicated element for pairwise anomalies
	// (gaps, overlaps), or NoParent.
	RelatedID int `json:"relatedId"`

	// Identifier names the implicated content item, when any.
	Identifier string `json:"identifier,omitempty"`

	// Offset is the byte position where the anomaly was detected.
	Offset int `json:"offset"`

	// Delta is the anomaly magnitude in bytes: positive for gaps,
	// negative for overlaps, zero otherwise.
	Delta int `json:"delta"`

	Message string `json:"message"`
}

// Status is the overall outcome of a validation run.
type Status string

// Status values.
const (
	StatusPass    Status = "PASS"
	StatusPartial Status = "PARTIAL"
	StatusFail    Status = "FAIL"
)

// Check names reported by the validator.
const (
	CheckContinuity = "sequence_continuity"
	CheckPairing    = "pair_matching"
	CheckAlignment  = "item_alignment"
)

// Check is one validation check outcome. Score is Validated/Total,
// or 1 when the check had nothing to examine.
type Check struct {
	Name      string  `json:"name"`
	Pass      bool    `json:"pass"`
	Score     float64 `json:"score"`
	Validated int     `json:"validated"`
	Total     int     `json:"total"`
}

// ValidationReport is the derived, non-persistent outcome of a
// structural validation pass. The validator always completes; no check
// is fatal.
type ValidationReport struct {
	Status    Status    `json:"status"`
	Score     float64   `json:"score"`
	Checks    []Check   `json:"checks"`
	Anomalies []Anomaly `json:"anomalies,omitempty"`
}

// Check returns the named check, or nil.
func (r *ValidationReport) Check(name string) *Check {
	for i := range r.Checks {
		if r.Checks[i].Name == name {
			return &r.Checks[i]
		}
	}
	return nil
}

// Validator independently re-derives tag/comment pairing, position
// contiguity, and element-content alignment from a parse result and its
// extracted items.
type Validator interface {
	Validate(parsed *ParseResult, items []*ContentItem) *ValidationReport
}
