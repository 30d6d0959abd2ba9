package scanner

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// year must be delimited so episode numbers and dates don't match
	yearPattern = regexp.MustCompile(`(?:^|[\(\[\.\-_,\s])((?:19|20)\d{2})(?:[\)\]\.\-_,\s]|$)`)

	resolutionPattern = regexp.MustCompile(`(?i)\b(2160p|1080p|720p|576p|480p|4k)\b`)
	sourcePattern     = regexp.MustCompile(`(?i)\b(bluray|blu-ray|bdrip|brrip|remux|webrip|web-dl|webdl|hdtv|dvdrip|dvd|hdrip)\b`)

	separatorPattern = regexp.MustCompile(`[._]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	emptyBracketsPattern = regexp.MustCompile(`[\(\[\{]\s*[\)\]\}]`)

	titleCaser = cases.Title(language.English, cases.NoLower)
)

// ParsedName holds the title, year, and quality hint extracted from a
// release-style folder name.
type ParsedName struct {
	Title   string
	Year    *int
	Quality *string
}

// ParseFolderName extracts a human readable title and an optional year and
// quality hint from a folder name using common release naming conventions.
// Parsing is best effort: a name that yields no usable title falls back to the
// raw folder name with no year.
func ParseFolderName(name string) ParsedName {
	parsed := ParsedName{Title: name}

	working := name

	// dots and underscores defeat \b, so detect quality on a normalized copy
	normalized := separatorPattern.ReplaceAllString(name, " ")
	if m := resolutionPattern.FindString(normalized); m != "" {
		quality := strings.ToLower(m)
		parsed.Quality = &quality
	} else if m := sourcePattern.FindString(normalized); m != "" {
		quality := strings.ToLower(m)
		parsed.Quality = &quality
	}

	// take the last delimited year so titles containing one survive,
	// e.g. "2001.A.Space.Odyssey.1968"
	if matches := yearPattern.FindAllStringSubmatchIndex(working, -1); len(matches) > 0 {
		last := matches[len(matches)-1]
		year, err := strconv.Atoi(working[last[2]:last[3]])
		if err == nil {
			parsed.Year = &year
			working = working[:last[2]]
		}
	}

	working = separatorPattern.ReplaceAllString(working, " ")
	working = resolutionPattern.ReplaceAllString(working, " ")
	working = sourcePattern.ReplaceAllString(working, " ")
	working = emptyBracketsPattern.ReplaceAllString(working, " ")
	working = whitespacePattern.ReplaceAllString(working, " ")
	working = strings.Trim(working, " -([{)]}")

	if working == "" {
		return parsed
	}

	parsed.Title = titleCase(working)
	return parsed
}

// titleCase uppercases fully-lowercase words, which release names commonly
// are, without touching words that already carry casing.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == strings.ToLower(w) {
			words[i] = titleCaser.String(w)
		}
	}
	return strings.Join(words, " ")
}
