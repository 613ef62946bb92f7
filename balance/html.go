package balance

import (
	"strings"
	"unicode"

	"github.com/benz9527/xdsa/lib/stack"
)

// voidTags never have a closing tag.
var voidTags = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

type htmlTag struct {
	name    string
	closing bool
	// selfClosing is <br/> style.
	selfClosing bool
}

// parseTag reads the tag between < and >. ok is false for comments,
// doctype and processing instructions.
func parseTag(raw string) (tag htmlTag, ok bool) {
	if strings.HasPrefix(raw, "!") || strings.HasPrefix(raw, "?") {
		return tag, false
	}
	if strings.HasSuffix(raw, "/") {
		tag.selfClosing = true
		raw = raw[:len(raw)-1]
	}
	if strings.HasPrefix(raw, "/") {
		tag.closing = true
		raw = raw[1:]
	}
	end := strings.IndexFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == '/'
	})
	if end >= 0 {
		raw = raw[:end]
	}
	tag.name = strings.ToLower(raw)
	return tag, tag.name != ""
}

// CheckHTMLTags reports whether the opening and closing tags of doc nest.
// Attributes are ignored, tag names are case-insensitive, self-closing
// tags and void elements need no closing tag. An unterminated < fails.
func CheckHTMLTags(doc string) bool {
	opened := stack.NewArrayStack[string]()
	for {
		start := strings.IndexByte(doc, '<')
		if start < 0 {
			break
		}
		end := strings.IndexByte(doc[start:], '>')
		if end < 0 {
			return false
		}
		raw := strings.TrimSpace(doc[start+1 : start+end])
		doc = doc[start+end+1:]

		tag, ok := parseTag(raw)
		if !ok {
			if strings.HasPrefix(raw, "!") || strings.HasPrefix(raw, "?") {
				continue
			}
			return false
		}
		if _, void := voidTags[tag.name]; void || tag.selfClosing {
			continue
		}
		if !tag.closing {
			opened.Push(tag.name)
			continue
		}
		top, err := opened.Pop()
		if err != nil || top != tag.name {
			return false
		}
	}
	return opened.IsEmpty()
}
