package utils

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank reports whether s is absent or consists only of Unicode whitespace.
func IsBlank(s *string) bool {
	if s == nil {
		return true
	}
	return IsBlankString(*s)
}

// IsBlankString reports whether every rune of s is Unicode whitespace.
// The empty string is blank.
func IsBlankString(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// RemoveChar returns a copy of s with every occurrence of c removed.
// Other bytes, including invalid UTF-8, are kept as is.
func RemoveChar(s string, c rune) string {
	return strings.ReplaceAll(s, string(c), "")
}

// RemoveChars returns a copy of s with every rune contained in charsToRemove
// removed. Invalid UTF-8 bytes in s are copied through unchanged.
func RemoveChars(s, charsToRemove string) string {
	if charsToRemove == "" {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteByte(s[i])
		} else if !strings.ContainsRune(charsToRemove, r) {
			sb.WriteString(s[i : i+size])
		}
		i += size
	}
	return sb.String()
}

// ReplaceFirst replaces the leftmost occurrence of oldValue in s with newValue.
// If oldValue does not occur, s is returned unchanged. An empty oldValue
// matches at the start of s.
func ReplaceFirst(s, oldValue, newValue string) string {
	idx := strings.Index(s, oldValue)
	if idx == -1 {
		return s
	}
	return s[:idx] + newValue + s[idx+len(oldValue):]
}

// FormatArray renders items as "[e0, e1, ..., en]".
//
// A nil slice renders as "null" and an empty one as "[ ]".
func FormatArray[T any](items []T) string {
	if items == nil {
		return "null"
	}
	if len(items) == 0 {
		return "[ ]"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprint(item))
	}
	sb.WriteByte(']')
	return sb.String()
}

// FormatAny is FormatArray for heterogeneous values.
func FormatAny(items []any) string {
	return FormatArray(items)
}
