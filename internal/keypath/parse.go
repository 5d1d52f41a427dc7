package keypath

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a concrete path string into segments. Segments are
// separated by dots, indices adjoin their key in brackets ("matrix[0][1]"
// chains two index segments), a leading dot is optional, and "." or the
// empty string denote the root. A closing bracket must be followed by '.',
// '[' or the end of the path. Empty brackets are rejected here; use
// ParsePattern for rule patterns.
func Parse(text string) (Path, error) {
	return parse(text, false)
}

// ParsePattern converts a pattern string into segments. The grammar is the
// same as Parse except that empty brackets "[]" produce a wildcard segment.
func ParsePattern(text string) (Path, error) {
	return parse(text, true)
}

func parse(text string, allowWildcard bool) (Path, error) {
	var (
		path    Path
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			path = append(path, Key(current.String()))
			current.Reset()
		}
	}

	for i := 0; i < len(text); {
		switch text[i] {
		case '.':
			flush()
			i++
		case '[':
			flush()

			end := strings.IndexByte(text[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("%w in %q", ErrUnclosedBracket, text)
			}
			end += i

			content := text[i+1 : end]
			if content == "" {
				if !allowWildcard {
					return nil, fmt.Errorf("%w: empty brackets in %q", ErrInvalidIndex, text)
				}
				path = append(path, AnyIndex())
			} else {
				n, err := strconv.Atoi(content)
				if err != nil {
					return nil, fmt.Errorf("%w: %q in %q", ErrInvalidIndex, content, text)
				}
				path = append(path, Index(n))
			}

			i = end + 1
			if i < len(text) && text[i] != '.' && text[i] != '[' {
				return nil, fmt.Errorf("%w: expected '.' or '[' after index in %q", ErrInvalidIndex, text)
			}
		default:
			current.WriteByte(text[i])
			i++
		}
	}

	flush()
	return path, nil
}
