// Package htmlfilter provides a fast, policy-driven HTML sanitizer
// built around a pluggable Filter that decides, construct by
// construct, which tags, attributes, inline style declarations, and
// text literals survive into the output.
//
// Basic usage:
//
//	clean, err := htmlfilter.Sanitize(input, htmlfilter.NewPermissive(0))
package htmlfilter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Sanitize tokenizes input and re-assembles it from the decisions of
// f, returning the sanitized HTML. If f is nil, a permissive filter
// with word breaking disabled is used.
func Sanitize(input string, f Filter) (string, error) {
	return SanitizeReader(strings.NewReader(input), f)
}

// SanitizeReader reads HTML from r, applies f, and returns the
// sanitized HTML string.
func SanitizeReader(r io.Reader, f Filter) (string, error) {
	if f == nil {
		f = NewPermissive(0)
	}
	var b strings.Builder
	if err := sanitize(r, f, &b, true); err != nil {
		return "", err
	}
	return b.String(), nil
}

// StripTags removes all HTML tags and returns plain text. Entity
// references are decoded. It is equivalent to sanitizing with
// RejectAll except that the surviving text is not re-escaped.
func StripTags(input string) (string, error) {
	var b strings.Builder
	if err := sanitize(strings.NewReader(input), RejectAll{}, &b, false); err != nil {
		return "", err
	}
	return b.String(), nil
}

// skipContent lists elements whose contained text is dropped outright,
// regardless of the filter: script and style bodies are code, and the
// rest load or frame active content.
var skipContent = map[string]bool{
	"embed":  true,
	"iframe": true,
	"object": true,
	"script": true,
	"style":  true,
	"title":  true,
}

// sanitize runs the tokenizer loop. Comments (including conditional
// comments) and doctypes are never emitted.
func sanitize(r io.Reader, f Filter, b *strings.Builder, escape bool) error {
	z := html.NewTokenizer(r)

	// Name and nesting depth of the skipContent element currently open,
	// if any. Raw-text elements like script never nest, but object can.
	var skipTag string
	var skipDepth int

	for {
		switch z.Next() {
		case html.ErrorToken:
			err := z.Err()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("htmlfilter: %w", err)

		case html.StartTagToken, html.SelfClosingTagToken:
			t := z.Token()
			if skipDepth > 0 {
				if t.Data == skipTag && t.Type == html.StartTagToken {
					skipDepth++
				}
				continue
			}
			if skipContent[t.Data] {
				if t.Type == html.StartTagToken {
					skipTag, skipDepth = t.Data, 1
				}
				continue
			}
			if !f.KeepTag(Tag{Name: t.Data, Attr: t.Attr}) {
				continue
			}
			writeTag(b, f, t)

		case html.EndTagToken:
			t := z.Token()
			if skipDepth > 0 {
				if t.Data == skipTag {
					skipDepth--
				}
				continue
			}
			if skipContent[t.Data] {
				continue
			}
			if !f.KeepTag(Tag{Name: t.Data}) {
				continue
			}
			if isVoidElement(t.Data) {
				continue // stray </br> and friends
			}
			b.WriteString("</")
			b.WriteString(t.Data)
			b.WriteByte('>')

		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			text := z.Token().Data
			if escape {
				text = html.EscapeString(text)
			}
			if replacement, ok := f.RewriteLiteral(text, 0, len(text)); ok {
				b.WriteString(replacement)
			} else {
				b.WriteString(text)
			}

		case html.CommentToken, html.DoctypeToken:
			// never emitted
		}
	}
}

// writeTag emits one accepted start or self-closing tag, passing every
// attribute through the filter and re-assembling any style attribute
// from its surviving declarations.
func writeTag(b *strings.Builder, f Filter, t html.Token) {
	b.WriteByte('<')
	b.WriteString(t.Data)
	for _, a := range t.Attr {
		if strings.EqualFold(a.Key, "style") {
			kept, changed := filterDeclarations(f, t.Data, a.Val)
			if !changed {
				// Nothing denied or rewritten; keep the source value
				// byte for byte.
				writeAttr(b, "style", a.Val)
			} else if kept != "" {
				writeAttr(b, "style", kept)
			}
			continue
		}
		if val, ok := f.FilterAttribute(t.Data, a.Key, a.Val); ok {
			writeAttr(b, a.Key, val)
		}
	}
	if t.Type == html.SelfClosingTagToken || isVoidElement(t.Data) {
		b.WriteString(" />")
		return
	}
	b.WriteByte('>')
}

func writeAttr(b *strings.Builder, key, val string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(val))
	b.WriteByte('"')
}

// filterDeclarations splits an inline style attribute into individual
// property/value declarations and runs each through the filter. It
// returns the re-assembled survivors plus whether anything was denied,
// rewritten, or dropped as malformed; when nothing was, the caller
// emits the original attribute value verbatim instead of the
// re-assembly. A non-empty fragment without a property:value shape
// cannot be offered to the filter and always forces re-assembly, which
// drops it.
func filterDeclarations(f Filter, tag, style string) (string, bool) {
	var b strings.Builder
	changed := false
	for _, decl := range strings.Split(style, ";") {
		if strings.TrimSpace(decl) == "" {
			continue
		}
		property, value, ok := strings.Cut(decl, ":")
		property = strings.TrimSpace(property)
		value = strings.TrimSpace(value)
		if !ok || property == "" {
			changed = true
			continue
		}
		kept, ok := f.FilterStyle(tag, property, value)
		if !ok {
			changed = true
			continue
		}
		if kept != value {
			changed = true
		}
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(property)
		b.WriteString(": ")
		b.WriteString(kept)
	}
	return b.String(), changed
}

func isVoidElement(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}
