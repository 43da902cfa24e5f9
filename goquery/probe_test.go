package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svituawww/uniparser"
	"github.com/svituawww/uniparser/goquery"
)

func TestInspector_Inspect(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head>
<title>  Product Page  </title>
<meta name="description" content="A page">
</head>
<body>
<img src="a.png" alt="A">
<img src="b.png">
<a href="/x">x</a>
<a name="anchor">no href</a>
</body>
</html>`

	ins := goquery.NewInspector(uniparser.DefaultRules())

	res, err := ins.Inspect(html)
	require.NoError(t, err)

	assert.Equal(t, "Product Page", res.Title)
	assert.Equal(t, 2, res.TagCounts["img"])
	assert.Equal(t, 2, res.TagCounts["a"])
	assert.Equal(t, 1, res.TagCounts["title"])

	counts := make(map[string]int)
	for _, m := range res.RuleMatches {
		counts[m.Tag+"/"+m.Attribute] = m.Count
	}
	assert.Equal(t, 2, counts["img/src"])
	assert.Equal(t, 1, counts["img/alt"])
	assert.Equal(t, 0, counts["img/srcset"])
	assert.Equal(t, 1, counts["a/href"])
	assert.Equal(t, 1, counts["meta/content"])
	assert.Equal(t, 1, counts["title/"+uniparser.TextKind])
}

func TestInspector_Inspect_EmptyDocument(t *testing.T) {
	t.Parallel()

	ins := goquery.NewInspector(uniparser.DefaultRules())

	res, err := ins.Inspect("")
	require.NoError(t, err)
	assert.Empty(t, res.Title)

	counts := make(map[string]int)
	for _, m := range res.RuleMatches {
		counts[m.Tag+"/"+m.Attribute] = m.Count
	}
	assert.Equal(t, 0, counts["img/src"])
}
