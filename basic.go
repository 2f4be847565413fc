package htmlfilter

import "strings"

// Basic is a Filter allowing only a small fixed set of inline and
// structural formatting tags, with href/target on anchors and
// alt/src/title on images. No inline styling survives at all, and text
// literals are never rewritten. Suitable for comment sections and
// other user-generated content where minimal markup is wanted.
type Basic struct{}

var _ Filter = Basic{}

// basicTags is the closed tag set of the basic filter. Membership is a
// configuration constant, not derived from the permissive tables.
var basicTags = map[string]bool{
	"a":          true,
	"b":          true,
	"blockquote": true,
	"br":         true,
	"em":         true,
	"i":          true,
	"img":        true,
	"li":         true,
	"ol":         true,
	"strong":     true,
	"u":          true,
	"ul":         true,
}

var basicAttrs = map[string]map[string]bool{
	"a":   {"href": true, "target": true},
	"img": {"alt": true, "src": true, "title": true},
}

func (Basic) KeepTag(t Tag) bool {
	// Tag names are matched case-insensitively rather than trusting the
	// tokenizer to have lower-cased them already.
	return basicTags[strings.ToLower(t.Name)]
}

func (Basic) FilterAttribute(tag, name, value string) (string, bool) {
	name = strings.ToLower(name)
	return value, basicAttrs[strings.ToLower(tag)][name]
}

func (Basic) FilterStyle(tag, property, value string) (string, bool) {
	return value, false
}

func (Basic) RewriteLiteral(src string, start, end int) (string, bool) {
	return "", false
}
