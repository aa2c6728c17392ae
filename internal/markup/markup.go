// Package markup renders the HTML fragments emitted for included assets.
// Rendering goes through golang.org/x/net/html so attribute values are
// escaped by the same serializer that parses them.
package markup

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrInvalidTag indicates an empty tag or attribute name.
var ErrInvalidTag = errors.New("invalid tag")

// Element renders a single element with no children. Attributes are written
// in sorted key order so output is stable across runs. Void elements
// ("link", "meta", ...) are self-closed; others get an explicit end tag.
func Element(tag string, attrs map[string]string) (string, error) {
	if tag == "" {
		return "", fmt.Errorf("%w: empty tag name", ErrInvalidTag)
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k == "" || strings.ContainsAny(k, " \t\n\"'<>/=") {
			return "", fmt.Errorf("%w: attribute name %q", ErrInvalidTag, k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
		Attr:     make([]html.Attribute, 0, len(keys)),
	}
	for _, k := range keys {
		node.Attr = append(node.Attr, html.Attribute{Key: k, Val: attrs[k]})
	}

	var buf strings.Builder
	if err := html.Render(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Merge returns defaults overlaid with overrides. Neither input is modified.
func Merge(defaults, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
