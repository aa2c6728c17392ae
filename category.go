package assetpack

import (
	"fmt"
	"strings"

	"github.com/alnah/go-assetpack/internal/markup"
)

// Attributes are pass-through rendering attributes. They override the
// category's default attributes and are not interpreted otherwise.
type Attributes map[string]string

// Category describes one kind of includable asset. The aggregation
// algorithm is shared; a Category only supplies naming and tag rendering.
type Category interface {
	// Name is the singular category name (e.g., "javascript").
	Name() string

	// Dir is the category directory below the assets root and the plural
	// name used in public paths (e.g., "javascripts").
	Dir() string

	// Extension is the file extension without the dot (e.g., "js").
	Extension() string

	// Tag renders the markup for one public path.
	Tag(src string, attrs Attributes) (string, error)
}

// Built-in categories.
var (
	Scripts     Category = scriptCategory{}
	Stylesheets Category = stylesheetCategory{}
)

// LookupCategory returns the built-in category matching name, which may be
// the singular name, the directory name or the extension.
func LookupCategory(name string) (Category, error) {
	switch strings.ToLower(name) {
	case "javascript", "javascripts", "js":
		return Scripts, nil
	case "stylesheet", "stylesheets", "css":
		return Stylesheets, nil
	default:
		return nil, fmt.Errorf("%w: %q (must be javascripts or stylesheets)", ErrUnknownCategory, name)
	}
}

type scriptCategory struct{}

func (scriptCategory) Name() string      { return "javascript" }
func (scriptCategory) Dir() string       { return "javascripts" }
func (scriptCategory) Extension() string { return "js" }

// Tag renders <script src="..." type="text/javascript"></script>.
func (scriptCategory) Tag(src string, attrs Attributes) (string, error) {
	return markup.Element("script", markup.Merge(map[string]string{
		"type": "text/javascript",
		"src":  src,
	}, attrs))
}

type stylesheetCategory struct{}

func (stylesheetCategory) Name() string      { return "stylesheet" }
func (stylesheetCategory) Dir() string       { return "stylesheets" }
func (stylesheetCategory) Extension() string { return "css" }

// Tag renders <link href="..." media="screen" rel="stylesheet" type="text/css"/>.
func (stylesheetCategory) Tag(src string, attrs Attributes) (string, error) {
	return markup.Element("link", markup.Merge(map[string]string{
		"rel":   "stylesheet",
		"type":  "text/css",
		"media": "screen",
		"href":  src,
	}, attrs))
}
