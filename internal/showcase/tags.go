package showcase

import "strings"

// ParseTags splits comma-separated input into trimmed, non-empty tags, keeping
// their order.
func ParseTags(input string) []string {
	tags := []string{}
	for _, part := range strings.Split(input, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
