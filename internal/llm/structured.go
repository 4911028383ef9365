package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates a parsed struct after JSON extraction.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(T) error

// ExtractJSON extracts a JSON object of type T from raw LLM text output.
// It handles markdown code fences, leading/trailing text, nested braces,
// stray comments and ".5"-style numbers. If validator is non-nil, the
// extracted value is validated before return.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	block := firstObject(stripCodeFences(raw))
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var result T
	if err := json.Unmarshal([]byte(sanitize(block)), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return result, nil
}

// ContainsJSONObject reports whether raw holds a balanced { ... } block.
func ContainsJSONObject(raw string) bool {
	return firstObject(stripCodeFences(raw)) != ""
}

// stripCodeFences drops markdown fence lines, keeping their contents.
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// jsonScanner tracks whether the cursor sits inside a string literal.
type jsonScanner struct {
	inString bool
	escaped  bool
}

// step consumes c and reports whether it is structural (outside a string).
func (sc *jsonScanner) step(c byte) bool {
	switch {
	case sc.escaped:
		sc.escaped = false
		return false
	case c == '\\' && sc.inString:
		sc.escaped = true
		return false
	case c == '"':
		sc.inString = !sc.inString
		return false
	}
	return !sc.inString
}

// firstObject finds the first balanced { ... } block in the text.
func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}
	var sc jsonScanner
	depth := 0
	for i := start; i < len(s); i++ {
		if !sc.step(s[i]) {
			continue
		}
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// sanitize removes // and /* */ comments and rewrites ".8" or "-.3" as
// "0.8" and "-0.3", leaving string values untouched.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	var sc jsonScanner
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !sc.step(c) {
			b.WriteByte(c)
			continue
		}

		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		}
		if c == '/' && i+1 < len(s) && s[i+1] == '*' {
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				break
			}
			i += end + 3
			continue
		}
		if c == '.' && i+1 < len(s) && isDigit(s[i+1]) && isNumericBoundary(prevNonSpace(s, i-1)) {
			b.WriteByte('0')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func prevNonSpace(s string, i int) byte {
	for ; i >= 0; i-- {
		switch s[i] {
		case ' ', '\n', '\r', '\t':
			continue
		}
		return s[i]
	}
	return 0
}

func isNumericBoundary(c byte) bool {
	switch c {
	case 0, ':', ',', '[', '{', '-':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
