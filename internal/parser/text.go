package parser

import (
	"regexp"
	"strings"
	"unicode"
)

const tagMarker = '#'

// delimiterPatterns are the keywords that separate a title from the
// temporal tail of an add command, in priority order. Word boundaries
// keep "buy" or "fromage" from counting as "by" or "from".
var delimiterPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bfrom\b`),
	regexp.MustCompile(`\bby\b`),
	regexp.MustCompile(`\bon\b`),
}

// ExtractTags scans text for '#'-marked tokens. Each tag runs from the
// marker to the next whitespace, exclusive, with the marker stripped.
// Duplicates are kept in encounter order.
func ExtractTags(text string) []string {
	var tags []string
	for i := 0; i < len(text); i++ {
		if text[i] != tagMarker {
			continue
		}
		j := i + 1
		for j < len(text) && !unicode.IsSpace(rune(text[j])) {
			j++
		}
		if j > i+1 {
			tags = append(tags, text[i+1:j])
		}
		i = j
	}
	return tags
}

// ExtractTitle derives the human title of an add command. With tags
// present the title is everything before the first marker. Otherwise,
// when a date or time was found elsewhere in the text (hasTemporal),
// the title is cut at the rightmost "from", else "by", else "on".
// The result is whitespace-trimmed, which makes extraction idempotent:
// a clean title has no tags and no temporal values, so a second pass
// never trims further.
func ExtractTitle(text string, hasTemporal bool) string {
	if i := strings.IndexByte(text, tagMarker); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	if hasTemporal {
		for _, pat := range delimiterPatterns {
			locs := pat.FindAllStringIndex(text, -1)
			if len(locs) > 0 {
				return strings.TrimSpace(text[:locs[len(locs)-1][0]])
			}
		}
	}
	return strings.TrimSpace(text)
}
