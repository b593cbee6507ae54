package templates

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// moduleIDRegex validates reverse-DNS module identifiers like
// "it.water.core" or "it.water.api-gateway".
var moduleIDRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*(\.[a-z][a-z0-9-]*)+$`)

// ValidateModuleID checks if a string is a valid module identifier.
func ValidateModuleID(id string) error {
	if id == "" {
		return fmt.Errorf("module id cannot be empty")
	}

	if !moduleIDRegex.MatchString(id) {
		return fmt.Errorf("invalid module id %q: must be reverse-DNS form, lowercase letters, digits and hyphens (e.g. it.water.core)", id)
	}

	return nil
}

// ValidateModuleName checks if an artifact name is valid.
// Names are more permissive than module id segments (directory names may
// be mixed case with hyphens and underscores).
func ValidateModuleName(name string) error {
	if name == "" {
		return fmt.Errorf("module name cannot be empty")
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return fmt.Errorf("invalid module name %q: contains invalid character %q", name, r)
		}
	}

	if !unicode.IsLetter(rune(name[0])) {
		return fmt.Errorf("invalid module name %q: must start with a letter", name)
	}

	return nil
}

// SanitizeIDSegment converts an artifact name to a valid module id segment:
// lowercase letters, digits and hyphens.
func SanitizeIDSegment(name string) string {
	result := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			result = append(result, c)
		case c >= 'A' && c <= 'Z':
			result = append(result, c+('a'-'A'))
		case c == '-' || c == '_' || c == '.':
			if len(result) > 0 && result[len(result)-1] != '-' {
				result = append(result, '-')
			}
		}
	}

	trimmed := strings.Trim(string(result), "-")
	if trimmed == "" {
		return "module"
	}
	return trimmed
}

// DeriveModuleID derives a module identifier from a group and an artifact
// name. Format: <group>.<sanitized name>.
func DeriveModuleID(group, name string) string {
	return fmt.Sprintf("%s.%s", group, SanitizeIDSegment(name))
}

// DeriveDisplayName derives a human-readable name from an artifact name:
// separators become spaces, words are capitalized.
func DeriveDisplayName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	if len(words) == 0 {
		return name
	}
	return strings.Join(words, " ")
}
