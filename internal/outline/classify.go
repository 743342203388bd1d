package outline

import (
	"regexp"
	"strings"
)

// Word exposes built-in heading styles both as a display name ("Heading 1")
// and as a styleId ("Heading1"); localized installs translate the family
// name but keep the digit convention. "标题 N" covers Simplified Chinese
// documents.
var headingStylePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^heading\s*([1-9])$`),
	regexp.MustCompile(`^标题\s*([1-9])$`),
}

// HeadingLevel extracts the heading level (1-9) from a paragraph style
// name. It returns 0 when the style is not a recognized heading style.
func HeadingLevel(styleName string) int {
	name := strings.TrimSpace(styleName)
	for _, re := range headingStylePatterns {
		if m := re.FindStringSubmatch(name); m != nil {
			return int(m[1][0] - '0')
		}
	}
	return 0
}
