// Package template renders small text templates for export file naming.
package template

import (
	"strconv"
	"strings"
	"text/template"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// FuncMap returns the functions available inside naming templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"uuidv4": generateUUIDv4,
		"uuid":   generateUUIDv4, // Alias for uuidv4

		"now":       timeNow,
		"timestamp": timeUnix,

		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"title": titleCase,
		"trim":  strings.TrimSpace,
		"slug":  Slug,
	}
}

func generateUUIDv4() string {
	return uuid.New().String()
}

func timeNow() string {
	return time.Now().Format(time.RFC3339)
}

func timeUnix() string {
	return strconv.FormatInt(time.Now().Unix(), 10)
}

// titleCase uses proper Unicode word boundaries.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			runes := []rune(word)
			runes[0] = unicode.ToUpper(runes[0])
			words[i] = string(runes)
		}
	}
	return strings.Join(words, " ")
}

// Slug converts arbitrary text into a deterministic file-safe slug.
func Slug(input string) string {
	var b strings.Builder
	lastDash := true // trim leading dashes

	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return "value"
	}
	return slug
}

// NewTemplate creates a naming template with the full function map.
func NewTemplate(name string) *template.Template {
	return template.New(name).Option("missingkey=error").Funcs(FuncMap())
}

// Apply parses and executes a template string in one step.
func Apply(tmplStr string, data any) (string, error) {
	if tmplStr == "" {
		return "", nil
	}

	tmpl, err := NewTemplate("").Parse(tmplStr)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
