package assets

import (
	"fmt"
	"strings"
)

// ValidateBundleName checks that a bundle name is safe to use as a file name
// below the assets root. Nested names ("bundles/app") and root-anchored names
// ("/cache/app") are allowed; traversal ("../app"), backslashes, null bytes and
// trailing separators are not.
func ValidateBundleName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidBundleName)
	}
	if strings.ContainsAny(name, "\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidBundleName, name)
	}
	if strings.HasSuffix(name, "/") {
		return fmt.Errorf("%w: %q ends with a separator", ErrInvalidBundleName, name)
	}
	for _, segment := range strings.Split(name, "/") {
		if segment == ".." || segment == "." {
			return fmt.Errorf("%w: %q", ErrInvalidBundleName, name)
		}
	}
	return nil
}
