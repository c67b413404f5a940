package report

import (
	"strings"
)

// lineKind is the classification of one trimmed, non-blank report line.
type lineKind int

const (
	lineIgnored lineKind = iota
	lineName
	lineCategory
	lineData
)

const (
	nameHeadingPrefix = "#### "
	playerNamePrefix  = "player name"
	unknownPlayer     = "Unknown Player"
	namePlaceholder   = "[Enter Player Name Here]"
)

// emphasis strips markdown emphasis markers.
var emphasis = strings.NewReplacer("*", "", "_", "", "~", "")

// line is a classified report line.
type line struct {
	kind lineKind

	// lineName
	name string

	// lineCategory; known is false for an unrecognized section header.
	category Category
	known    bool

	// lineData, and the bare key of a value-less "Key:" header
	key   string
	value string
}

// classify decides what a single line means. Name lines win over category
// lines, which win over data lines.
func classify(text string) line {
	if name, ok := nameLine(text); ok {
		return line{kind: lineName, name: name}
	}
	if l, ok := categoryLine(text); ok {
		return l
	}
	key, value, ok := strings.Cut(text, ":")
	if !ok || strings.TrimSpace(value) == "" {
		return line{kind: lineIgnored}
	}
	return line{kind: lineData, key: cleanKey(key), value: strings.TrimSpace(value)}
}

// nameLine recognizes "#### <name>" headings and "Player Name[:] <name>"
// lines, optionally behind markdown heading marks.
func nameLine(text string) (string, bool) {
	body := strings.TrimSpace(strings.TrimLeft(text, "#"))
	if len(body) >= len(playerNamePrefix) && strings.EqualFold(body[:len(playerNamePrefix)], playerNamePrefix) {
		rest := strings.TrimSpace(body[len(playerNamePrefix):])
		return cleanName(strings.TrimPrefix(rest, ":")), true
	}
	if !strings.HasPrefix(text, nameHeadingPrefix) {
		return "", false
	}
	// "#### Offense" is still a section header.
	if _, ok := lookupCategory(emphasis.Replace(firstToken(body))); ok {
		return "", false
	}
	if _, after, ok := strings.Cut(body, ":"); ok {
		return cleanName(after), true
	}
	return cleanName(body), true
}

// categoryLine recognizes markdown headings, bare section names such as
// "Offense" or "**Defense:**", and bare "Name:" lines with no value.
// Unrecognized headers reset the section.
func categoryLine(text string) (line, bool) {
	if strings.HasPrefix(text, "#") {
		body := strings.TrimSpace(strings.TrimLeft(text, "#"))
		c, ok := lookupCategory(emphasis.Replace(firstToken(body)))
		return line{kind: lineCategory, category: c, known: ok}, true
	}
	if c, ok := lookupCategory(cleanKey(text)); ok {
		return line{kind: lineCategory, category: c, known: true}, true
	}
	key, value, found := strings.Cut(text, ":")
	if !found || strings.TrimSpace(emphasis.Replace(value)) != "" {
		return line{}, false
	}
	key = cleanKey(key)
	c, ok := lookupCategory(firstToken(key))
	return line{kind: lineCategory, category: c, known: ok, key: key}, true
}

// firstToken returns the text before the first colon or whitespace.
func firstToken(s string) string {
	end := strings.IndexFunc(s, func(r rune) bool {
		return r == ':' || r == ' ' || r == '\t'
	})
	if end < 0 {
		return s
	}
	return s[:end]
}

// cleanKey strips emphasis, list bullets and a trailing colon from a key.
func cleanKey(s string) string {
	s = strings.TrimSpace(emphasis.Replace(s))
	s = strings.TrimSpace(strings.TrimLeft(s, "-•"))
	s = strings.TrimSpace(strings.TrimSuffix(s, ":"))
	return s
}

func cleanName(s string) string {
	s = strings.TrimSpace(emphasis.Replace(s))
	if s == "" || s == namePlaceholder {
		return unknownPlayer
	}
	return s
}
