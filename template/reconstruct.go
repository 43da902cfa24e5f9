package template

import (
	"strings"

	"github.com/svituawww/uniparser"
)

// Compile-time interface verification.
var _ uniparser.Reconstructor = (*Reconstructor)(nil)

// Reconstructor implements uniparser.Reconstructor by scanning a
// template for placeholder tokens and substituting resolved bodies.
type Reconstructor struct{}

// NewReconstructor returns a new Reconstructor.
func NewReconstructor() *Reconstructor {
	return &Reconstructor{}
}

// identifierLen is the length of a base identifier: 16 hex characters.
// A prefix match shorter than this is ordinary document text, not a
// placeholder.
const identifierLen = 16

// Reconstruct substitutes every placeholder with its resolved body.
// If any identifier is unknown to the resolver, Reconstruct returns
// EUNRESOLVED naming every missing identifier and no output at all;
// a partially-substituted document is never produced.
func (r *Reconstructor) Reconstruct(template string, resolve uniparser.ResolveFunc) (string, error) {
	var out strings.Builder
	out.Grow(len(template))

	var missing []string
	seen := make(map[string]bool)

	pos := 0
	for {
		idx := strings.Index(template[pos:], uniparser.PlaceholderPrefix)
		if idx < 0 {
			break
		}
		start := pos + idx
		idStart := start + len(uniparser.PlaceholderPrefix)

		idEnd, ok := scanIdentifier(template, idStart)
		if !ok {
			out.WriteString(template[pos:idStart])
			pos = idStart
			continue
		}

		identifier := template[idStart:idEnd]
		body, found := resolve(identifier)
		if !found {
			if !seen[identifier] {
				seen[identifier] = true
				missing = append(missing, identifier)
			}
		} else {
			out.WriteString(template[pos:start])
			out.WriteString(body)
		}
		pos = idEnd
	}

	if len(missing) > 0 {
		return "", uniparser.Errorf(uniparser.EUNRESOLVED,
			"unresolved identifier(s): %s", strings.Join(missing, ", "))
	}

	out.WriteString(template[pos:])
	return out.String(), nil
}

// scanIdentifier consumes an identifier at offset i: exactly 16 hex
// characters, optionally followed by a numeric disambiguation suffix
// ("_2", "_3", ...). Returns the end offset, or ok=false when the text
// at i is not an identifier.
func scanIdentifier(s string, i int) (int, bool) {
	if i+identifierLen > len(s) {
		return 0, false
	}
	for j := i; j < i+identifierLen; j++ {
		if !isHex(s[j]) {
			return 0, false
		}
	}
	end := i + identifierLen

	if end < len(s) && s[end] == '_' {
		k := end + 1
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > end+1 {
			end = k
		}
	}

	return end, true
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}
