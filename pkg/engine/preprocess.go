package engine

import "strings"

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource rewrites script source into something zygomys accepts:
//
//  1. :keyword becomes the string literal "__kw_keyword", so keywords need
//     no global registration and cannot collide with user variables.
//  2. Kebab-case identifiers become underscores (line-line -> line_line);
//     zygomys reads a bare hyphen as subtraction.
//  3. ; line comments become // comments.
//
// String literals (double-quoted and backtick) pass through untouched.
func preprocessSource(source string) string {
	var out strings.Builder
	out.Grow(len(source) + len(source)/4)
	s := source
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '"':
			i = copyQuoted(&out, s, i, '"', true)
		case c == '`':
			i = copyQuoted(&out, s, i, '`', false)
		case c == ';':
			out.WriteString("//")
			for i < len(s) && s[i] == ';' {
				i++
			}
			for i < len(s) && s[i] != '\n' {
				out.WriteByte(s[i])
				i++
			}
		case c == ':' && i+1 < len(s) && s[i+1] == '=':
			out.WriteString(":=")
			i += 2
		case c == ':' && i+1 < len(s) && isLetter(s[i+1]):
			j := i + 1
			for j < len(s) && isKWChar(s[j]) {
				j++
			}
			out.WriteByte('"')
			out.WriteString(kwPrefix)
			out.WriteString(s[i+1 : j])
			out.WriteByte('"')
			i = j
		case c == '-' && i > 0 && i+1 < len(s) && isIdentChar(s[i-1]) && isLetter(s[i+1]):
			// Between identifier characters a hyphen is part of the name,
			// never the minus operator.
			out.WriteByte('_')
			i++
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}

// copyQuoted copies the literal opened by s[i] up to and including its
// closing quote, and returns the index just past it.
func copyQuoted(out *strings.Builder, s string, i int, quote byte, escapes bool) int {
	out.WriteByte(s[i])
	i++
	for i < len(s) && s[i] != quote {
		if escapes && s[i] == '\\' && i+1 < len(s) {
			out.WriteString(s[i : i+2])
			i += 2
			continue
		}
		out.WriteByte(s[i])
		i++
	}
	if i < len(s) {
		out.WriteByte(s[i])
		i++
	}
	return i
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}
