package htmlfilter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordBreak is inserted into over-long words: a soft-break element
// immediately followed by a soft hyphen, letting the word wrap without
// changing its visible content.
const wordBreak = "<wbr>&shy;"

// maxEntityLen bounds the lookahead for a character reference; the
// longest named reference is 33 bytes including "&" and ";".
const maxEntityLen = 33

// Permissive is a Filter allowing a broad set of common text, table,
// and list markup while denying everything script-capable: event
// handler attributes, the id attribute, CSS expression() values, and
// layout-hijacking style properties. It can additionally break up
// over-long words in text literals so they cannot blow out page
// layout.
//
// Attributes are matched default-deny against per-tag tables; style
// properties are matched default-allow against a small denylist. The
// asymmetry is deliberate: attributes are the script-injection surface
// and get the strict posture, styles only need their known-dangerous
// corners fenced off.
type Permissive struct {
	maxWordLength int
}

var _ Filter = (*Permissive)(nil)

// NewPermissive returns a permissive filter that inserts a soft break
// into any run of non-whitespace text longer than maxWordLength
// characters. A maxWordLength of zero or less disables word breaking.
func NewPermissive(maxWordLength int) *Permissive {
	return &Permissive{maxWordLength: maxWordLength}
}

// permissiveTags is the closed tag set of the permissive filter. It
// deliberately has no script, object, embed, iframe, or form: nothing
// that can execute, load active content, or submit data.
var permissiveTags = map[string]bool{
	"a": true, "b": true, "big": true, "blockquote": true, "br": true,
	"caption": true, "center": true, "cite": true, "code": true,
	"dd": true, "div": true, "dl": true, "dt": true, "em": true,
	"font": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "hr": true, "i": true, "img": true,
	"li": true, "ol": true, "p": true, "pre": true, "s": true,
	"small": true, "span": true, "strike": true, "strong": true,
	"sub": true, "sup": true, "table": true, "tbody": true, "td": true,
	"tfoot": true, "th": true, "thead": true, "tr": true, "tt": true,
	"u": true, "ul": true,
}

// permissiveAttrs maps tag name to the attributes permitted on it.
// Anything not listed is denied, subject to the cross-cutting rules in
// FilterAttribute.
var permissiveAttrs = map[string]map[string]bool{
	"a":   {"href": true, "target": true},
	"img": {"alt": true, "border": true, "height": true, "lowsrc": true, "src": true, "title": true, "width": true},
	"table": {
		"bgcolor": true, "border": true, "bordercolor": true,
		"cellpadding": true, "cellspacing": true, "height": true, "width": true,
	},
	"td": {
		"align": true, "bgcolor": true, "bordercolor": true,
		"colspan": true, "height": true, "rowspan": true, "width": true,
	},
	"th": {
		"align": true, "bgcolor": true, "bordercolor": true,
		"colspan": true, "height": true, "rowspan": true, "width": true,
	},
	"tr":   {"align": true, "bgcolor": true, "bordercolor": true, "height": true},
	"div":  {"align": true},
	"p":    {"align": true},
	"font": {"color": true, "face": true, "size": true},
	"hr":   {"align": true, "noshade": true, "size": true, "width": true},
	"ol":   {"start": true, "type": true},
	"ul":   {"type": true},
	"li":   {"type": true, "value": true},
}

// deniedStyles are properties that let content reposition or hide
// itself over the surrounding page.
var deniedStyles = map[string]bool{
	"display":  true,
	"position": true,
	"z-index":  true,
}

func (p *Permissive) KeepTag(t Tag) bool {
	return permissiveTags[strings.ToLower(t.Name)]
}

func (p *Permissive) FilterAttribute(tag, name, value string) (string, bool) {
	name = strings.ToLower(name)

	// id would let injected markup address or shadow page elements, and
	// every on* attribute is an event handler. Both are denied no
	// matter what the per-tag table says.
	if name == "id" || strings.HasPrefix(name, "on") {
		return value, false
	}
	// class is harmless on any tag and too common to enumerate per tag.
	if name == "class" {
		return value, true
	}

	return value, permissiveAttrs[strings.ToLower(tag)][name]
}

func (p *Permissive) FilterStyle(tag, property, value string) (string, bool) {
	// Legacy IE evaluates expression(...) values as script, and it can
	// hide inside any property, so the whole value is searched.
	if strings.Contains(strings.ToLower(value), "expression") {
		return value, false
	}
	return value, !deniedStyles[strings.ToLower(property)]
}

// RewriteLiteral scans the span for runs of non-whitespace longer than
// the configured maximum word length and inserts a soft break after
// each such run segment. Sanitized text arrives entity-escaped, so a
// character reference like "&amp;" counts as a single character and a
// break never lands inside one. The replacement
// is built lazily: a span that needs no break returns without
// allocating.
func (p *Permissive) RewriteLiteral(src string, start, end int) (string, bool) {
	limit := p.maxWordLength
	if limit <= 0 {
		return "", false
	}

	var b strings.Builder
	lastOutput := start // span consumed through here
	off := 0            // characters since the last whitespace or break
	for i := start; i < end; {
		r, size := utf8.DecodeRuneInString(src[i:end])
		if r == '&' {
			if n := entityLen(src[i:end]); n > 0 {
				size = n
			}
		}
		if unicode.IsSpace(r) {
			off = 0
		} else if off > limit {
			b.WriteString(src[lastOutput:i])
			b.WriteString(wordBreak)
			lastOutput = i
			off = 0
		}
		off++
		i += size
	}
	if b.Len() == 0 {
		return "", false
	}
	b.WriteString(src[lastOutput:end])
	return b.String(), true
}

// entityLen returns the byte length of the HTML character reference at
// the start of s ("&amp;", "&#8230;", ...), or 0 when s does not begin
// with a well-formed reference.
func entityLen(s string) int {
	if len(s) < 3 || s[0] != '&' {
		return 0
	}
	j := 1
	if s[j] == '#' {
		j++
	}
	first := j
	for ; j < len(s) && j < maxEntityLen; j++ {
		c := s[j]
		switch {
		case c == ';':
			if j == first {
				return 0
			}
			return j + 1
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		default:
			return 0
		}
	}
	return 0
}
