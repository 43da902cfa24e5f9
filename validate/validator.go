// Package validate independently re-derives structural consistency
// checks from a parse result and its extracted content items. No check
// is fatal; the validator always completes and returns a report.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/svituawww/uniparser"
	"github.com/svituawww/uniparser/parse"
)

// Compile-time interface verification.
var _ uniparser.Validator = (*Validator)(nil)

// Validator implements uniparser.Validator. It is stateless and safe
// for concurrent use.
type Validator struct{}

// NewValidator returns a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate runs the three structural checks and reports a composite
// score: sequence continuity, symbol/comment pairing, and
// element-content alignment.
func (v *Validator) Validate(parsed *uniparser.ParseResult, items []*uniparser.ContentItem) *uniparser.ValidationReport {
	var anomalies []uniparser.Anomaly

	checks := []uniparser.Check{
		v.checkContinuity(parsed, &anomalies),
		v.checkPairing(parsed, &anomalies),
		v.checkAlignment(parsed, items, &anomalies),
	}

	var sum float64
	pass := true
	for _, c := range checks {
		sum += c.Score
		if !c.Pass {
			pass = false
		}
	}
	score := sum / float64(len(checks))

	status := uniparser.StatusPartial
	switch {
	case pass:
		status = uniparser.StatusPass
	case score < 0.5:
		status = uniparser.StatusFail
	}

	return &uniparser.ValidationReport{
		Status:    status,
		Score:     score,
		Checks:    checks,
		Anomalies: anomalies,
	}
}

// checkContinuity verifies that element spans tile the document: the
// first span starts at offset zero, consecutive spans meet with no gap
// and no overlap, and the last span ends at the document's end.
func (v *Validator) checkContinuity(parsed *uniparser.ParseResult, anomalies *[]uniparser.Anomaly) uniparser.Check {
	check := uniparser.Check{Name: uniparser.CheckContinuity}
	els := parsed.Elements
	if len(els) == 0 {
		check.Pass = true
		check.Score = 1
		return check
	}

	check.Total = len(els) + 1

	if els[0].Span.Start == 0 {
		check.Validated++
	} else {
		*anomalies = append(*anomalies, uniparser.Anomaly{
			Kind:      uniparser.AnomalyGap,
			ElementID: els[0].ID,
			RelatedID: uniparser.NoParent,
			Offset:    0,
			Delta:     els[0].Span.Start,
			Message:   fmt.Sprintf("%d byte(s) before the first element", els[0].Span.Start),
		})
	}

	for i := 1; i < len(els); i++ {
		prev, next := els[i-1], els[i]
		delta := next.Span.Start - prev.Span.End
		if delta == 0 {
			check.Validated++
			continue
		}
		kind := uniparser.AnomalyGap
		if delta < 0 {
			kind = uniparser.AnomalyOverlap
		}
		*anomalies = append(*anomalies, uniparser.Anomaly{
			Kind:      kind,
			ElementID: prev.ID,
			RelatedID: next.ID,
			Offset:    prev.Span.End,
			Delta:     delta,
			Message:   fmt.Sprintf("elements %d and %d are %d byte(s) apart", prev.ID, next.ID, delta),
		})
	}

	last := els[len(els)-1]
	if last.Span.End == len(parsed.Body) {
		check.Validated++
	} else {
		*anomalies = append(*anomalies, uniparser.Anomaly{
			Kind:      uniparser.AnomalyGap,
			ElementID: last.ID,
			RelatedID: uniparser.NoParent,
			Offset:    last.Span.End,
			Delta:     len(parsed.Body) - last.Span.End,
			Message:   fmt.Sprintf("%d byte(s) after the last element", len(parsed.Body)-last.Span.End),
		})
	}

	check.Score = float64(check.Validated) / float64(check.Total)
	check.Pass = check.Validated == check.Total
	return check
}

// checkPairing re-derives tag and comment pairing with its own stack,
// independent of the tree builder: every opener must have exactly one
// closer at the correct nesting level, and every comment must carry
// both of its markers.
func (v *Validator) checkPairing(parsed *uniparser.ParseResult, anomalies *[]uniparser.Anomaly) uniparser.Check {
	check := uniparser.Check{Name: uniparser.CheckPairing}

	var stack []*uniparser.Element
	for _, el := range parsed.Elements {
		switch el.Kind {
		case uniparser.KindTagOpen:
			if el.SelfClosing || parse.IsVoid(el.TagName) {
				continue
			}
			check.Total++
			stack = append(stack, el)

		case uniparser.KindTagClose:
			check.Total++
			match := -1
			for j := len(stack) - 1; j >= 0; j-- {
				if stack[j].TagName == el.TagName {
					match = j
					break
				}
			}
			if match == -1 {
				*anomalies = append(*anomalies, uniparser.Anomaly{
					Kind:      uniparser.AnomalyUnmatchedClose,
					ElementID: el.ID,
					RelatedID: uniparser.NoParent,
					Offset:    el.Span.Start,
					Message:   fmt.Sprintf("closing tag %q has no matching opener", el.TagName),
				})
				continue
			}
			for j := len(stack) - 1; j > match; j-- {
				*anomalies = append(*anomalies, uniparser.Anomaly{
					Kind:      uniparser.AnomalyUnmatchedOpen,
					ElementID: stack[j].ID,
					RelatedID: el.ID,
					Offset:    stack[j].Span.Start,
					Message:   fmt.Sprintf("opening tag %q closed at the wrong level", stack[j].TagName),
				})
			}
			check.Validated += 2 // the matched open and close
			stack = stack[:match]

		case uniparser.KindComment:
			raw := parsed.Raw(el)
			if !strings.HasPrefix(raw, "<!--") {
				continue // bogus comment, no marker pair to check
			}
			check.Total++
			if len(raw) >= 7 && strings.HasSuffix(raw, "-->") {
				check.Validated++
			} else {
				*anomalies = append(*anomalies, uniparser.Anomaly{
					Kind:      uniparser.AnomalyUnterminated,
					ElementID: el.ID,
					RelatedID: uniparser.NoParent,
					Offset:    el.Span.Start,
					Message:   "comment is missing its closing marker",
				})
			}

		case uniparser.KindText, uniparser.KindDoctype:
			// no pairing obligations
		}
	}

	for _, el := range stack {
		*anomalies = append(*anomalies, uniparser.Anomaly{
			Kind:      uniparser.AnomalyUnmatchedOpen,
			ElementID: el.ID,
			RelatedID: uniparser.NoParent,
			Offset:    el.Span.Start,
			Message:   fmt.Sprintf("opening tag %q has no closer", el.TagName),
		})
	}

	if check.Total == 0 {
		check.Pass = true
		check.Score = 1
		return check
	}
	check.Score = float64(check.Validated) / float64(check.Total)
	check.Pass = check.Validated == check.Total
	return check
}

// checkAlignment verifies that every content item's span lies fully
// within its owning element's span and that no two item spans
// intersect.
func (v *Validator) checkAlignment(parsed *uniparser.ParseResult, items []*uniparser.ContentItem, anomalies *[]uniparser.Anomaly) uniparser.Check {
	check := uniparser.Check{Name: uniparser.CheckAlignment}
	if len(items) == 0 {
		check.Pass = true
		check.Score = 1
		return check
	}
	check.Total = len(items)

	sorted := make([]*uniparser.ContentItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Span.Start < sorted[j].Span.Start
	})

	for i, item := range sorted {
		ok := true

		owner := parsed.Element(item.ElementID)
		if owner == nil || !owner.Span.Contains(item.Span) {
			ok = false
			*anomalies = append(*anomalies, uniparser.Anomaly{
				Kind:       uniparser.AnomalyMisaligned,
				ElementID:  item.ElementID,
				RelatedID:  uniparser.NoParent,
				Identifier: item.Identifier,
				Offset:     item.Span.Start,
				Message:    fmt.Sprintf("item %q lies outside its owning element", item.Identifier),
			})
		}

		if i > 0 && sorted[i-1].Span.Overlaps(item.Span) {
			ok = false
			*anomalies = append(*anomalies, uniparser.Anomaly{
				Kind:       uniparser.AnomalyItemOverlap,
				ElementID:  item.ElementID,
				RelatedID:  sorted[i-1].ElementID,
				Identifier: item.Identifier,
				Offset:     item.Span.Start,
				Delta:      sorted[i-1].Span.End - item.Span.Start,
				Message:    fmt.Sprintf("items %q and %q overlap", sorted[i-1].Identifier, item.Identifier),
			})
		}

		if ok {
			check.Validated++
		}
	}

	check.Score = float64(check.Validated) / float64(check.Total)
	check.Pass = check.Validated == check.Total
	return check
}
