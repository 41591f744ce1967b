package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is one compiled glob pattern together with its negation flag.
// It is immutable after Compile and safe for concurrent use.
type Pattern struct {
	// Raw is the original pattern text as written in the definition.
	Raw string
	// Negated reports whether the pattern started with "!".
	Negated bool

	re *regexp.Regexp
}

// Compile compiles one raw glob pattern.
//
// Supported syntax:
//   - "*"  matches any run of non-separator characters, including empty
//   - "**" matches any run of characters, crossing "/" boundaries;
//     "**/" additionally collapses to zero directories
//   - "?"  matches exactly one non-separator character
//   - a leading "!" negates the pattern
//   - one layer of matching single or double quotes is stripped
//
// Everything else matches literally. The compiled matcher is anchored at
// both ends and never matches a substring of a path.
func Compile(raw string) (Pattern, error) {
	p := Pattern{Raw: raw}

	text := strings.TrimSpace(raw)
	if text == "" {
		return Pattern{}, fmt.Errorf("%w: empty", ErrInvalidPattern)
	}

	if strings.HasPrefix(text, "!") {
		p.Negated = true
		text = strings.TrimSpace(text[1:])
		if text == "" {
			return Pattern{}, fmt.Errorf("%w: %q negates nothing", ErrInvalidPattern, raw)
		}
	}

	text = unquote(text)

	// Negation may sit inside the quotes ("!pat") as well as outside
	// (!"pat"); both forms negate.
	if !p.Negated && strings.HasPrefix(text, "!") {
		p.Negated = true
		text = unquote(strings.TrimSpace(text[1:]))
	}

	if text == "" {
		return Pattern{}, fmt.Errorf("%w: %q is empty after unquoting", ErrInvalidPattern, raw)
	}

	re, err := regexp.Compile(globToRegex(text))
	if err != nil {
		return Pattern{}, fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, raw, err)
	}

	p.re = re
	return p, nil
}

// MustCompile is like Compile but panics on error. Intended for tests and
// static pattern tables.
func MustCompile(raw string) Pattern {
	p, err := Compile(raw)
	if err != nil {
		panic(err)
	}

	return p
}

// Match reports whether the whole path matches the compiled glob.
// Negation is not applied here; callers interpret Negated themselves.
func (p Pattern) Match(path string) bool {
	return p.re != nil && p.re.MatchString(path)
}

// unquote strips one layer of matching single or double quotes.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}

	if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}

	return s
}

// globToRegex translates a glob pattern into anchored regexp source.
func globToRegex(pat string) string {
	var b strings.Builder
	b.WriteByte('^')

	for i := 0; i < len(pat); i++ {
		// "**/" matches zero or more whole directories.
		if pat[i] == '*' && i+2 < len(pat) && pat[i+1] == '*' && pat[i+2] == '/' {
			b.WriteString(`(?:.*/)?`)
			i += 2
			continue
		}

		c := pat[i]
		switch c {
		case '*':
			if i+1 < len(pat) && pat[i+1] == '*' {
				b.WriteString(`.*`)
				i++
				continue
			}
			b.WriteString(`[^/]*`)
		case '?':
			b.WriteString(`[^/]`)
		default:
			b.WriteString(regexEscapeByte(c))
		}
	}

	b.WriteByte('$')
	return b.String()
}

// regexEscapeByte escapes one byte for regexp source.
func regexEscapeByte(c byte) string {
	switch c {
	case '.', '+', '(', ')', '|', '{', '}', '[', ']', '^', '$', '\\':
		return `\` + string(c)
	default:
		return string(c)
	}
}
