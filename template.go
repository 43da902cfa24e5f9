package uniparser

// PlaceholderPrefix is the literal prefix of every template placeholder.
// A placeholder is the prefix followed by a content item identifier,
// used verbatim in attribute value and text positions; surrounding
// quotes and markup are untouched.
const PlaceholderPrefix = "uuid_"

// Placeholder returns the textual placeholder form for an identifier.
func Placeholder(identifier string) string {
	return PlaceholderPrefix + identifier
}

// TemplateBuilder produces a template from the original body and the
// extracted content items: every item span is replaced by its
// placeholder, all other bytes are preserved verbatim. Spans must be
// sorted by start offset and non-overlapping; a violation is an
// ECONFLICT error, never silently corrupted output.
type TemplateBuilder interface {
	Build(body string, items []*ContentItem) (string, error)
}

// ResolveFunc resolves a content item identifier to its current body.
// The second return reports whether the identifier is known.
type ResolveFunc func(identifier string) (string, bool)

// ResolveItems builds a ResolveFunc from extracted items. When two items
// share an identifier the first body in document order wins.
func ResolveItems(items []*ContentItem) ResolveFunc {
	bodies := make(map[string]string, len(items))
	for _, item := range items {
		if _, ok := bodies[item.Identifier]; !ok {
			bodies[item.Identifier] = item.Body
		}
	}
	return func(identifier string) (string, bool) {
		body, ok := bodies[identifier]
		return body, ok
	}
}

// Reconstructor regenerates a document from a template by substituting
// every placeholder with its resolved body. Any placeholder whose
// identifier the resolver does not know is an EUNRESOLVED error, and no
// partially-substituted output is returned.
type Reconstructor interface {
	Reconstruct(template string, resolve ResolveFunc) (string, error)
}
