// Package bodyquery drills into recorded HTTP body payloads. Cassette
// bodies are stored as strings, typically JSON, so this sits one layer
// below the tree addressing engine: first a keypath selects the body
// scalar, then a JSONPath or regular expression query runs inside it.
package bodyquery

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/theory/jsonpath"
)

var (
	// ErrExtraction indicates a failure while querying the body, such as
	// a JSON parse error inside a recorded payload.
	ErrExtraction = errors.New("bodyquery: extraction error")

	// ErrInvalidInput indicates invalid query parameters: an empty body,
	// an empty expression, or a negative capture group.
	ErrInvalidInput = errors.New("bodyquery: invalid input")

	// ErrNotFound indicates the query ran but selected nothing.
	ErrNotFound = errors.New("bodyquery: not found")
)

// IsNotFound reports whether err means the query selected nothing,
// following wrapped errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// JSONPath runs a JSONPath expression (e.g. "$.user.name", "$..items[0]")
// against a JSON body and returns the first selected value.
func JSONPath(body []byte, expr string) (any, error) {
	values, err := JSONPathAll(body, expr)
	if err != nil {
		return nil, err
	}
	return values[0], nil
}

// JSONPathAll returns every value the expression selects, in document order.
func JSONPathAll(body []byte, expr string) ([]any, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: body is empty", ErrInvalidInput)
	}
	if expr == "" {
		return nil, fmt.Errorf("%w: JSONPath expression is empty", ErrInvalidInput)
	}

	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSONPath %s: %v", ErrExtraction, expr, err)
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: body is not valid JSON: %v", ErrExtraction, err)
	}

	results := path.Select(data)
	if len(results) == 0 {
		return nil, ErrNotFound
	}
	return results, nil
}

// JSONPathString converts non-string results using fmt.Sprintf.
func JSONPathString(body []byte, expr string) (string, error) {
	result, err := JSONPath(body, expr)
	if err != nil {
		return "", err
	}

	if str, ok := result.(string); ok {
		return str, nil
	}
	return fmt.Sprintf("%v", result), nil
}

// Regex extracts a capture group from the body: group 0 is the entire
// match, 1+ are numbered groups.
func Regex(body []byte, pattern string, group int) (string, error) {
	re, err := compileRegex(pattern, group)
	if err != nil {
		return "", err
	}

	matches := re.FindSubmatch(body)
	if matches == nil {
		return "", ErrNotFound
	}
	if group >= len(matches) {
		return "", fmt.Errorf("%w: invalid capture group %d for pattern (found %d groups)",
			ErrExtraction, group, len(matches)-1)
	}

	return string(matches[group]), nil
}

// RegexAll extracts a capture group from every occurrence of the pattern.
func RegexAll(body []byte, pattern string, group int) ([]string, error) {
	re, err := compileRegex(pattern, group)
	if err != nil {
		return nil, err
	}

	allMatches := re.FindAllSubmatch(body, -1)
	if len(allMatches) == 0 {
		return nil, ErrNotFound
	}

	results := make([]string, 0, len(allMatches))
	for _, matches := range allMatches {
		if group >= len(matches) {
			return nil, fmt.Errorf("%w: invalid capture group %d for pattern (found %d groups)",
				ErrExtraction, group, len(matches)-1)
		}
		results = append(results, string(matches[group]))
	}
	return results, nil
}

func compileRegex(pattern string, group int) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: regex pattern is empty", ErrInvalidInput)
	}
	if group < 0 {
		return nil, fmt.Errorf("%w: capture group must be >= 0, got: %d", ErrInvalidInput, group)
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid regex pattern %s: %v", ErrInvalidInput, pattern, err)
	}
	return re, nil
}
