package common

import (
	"regexp"
	"strings"
)

// Masked is the replacement written in place of secret values.
const Masked = "***MASKED***"

// SensitivePattern represents a pattern to detect and mask sensitive information
type SensitivePattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Keys        []string // attribute or header names masked outright (case-insensitive)
}

// DefaultSensitivePatterns covers the scrappa api key in every shape it
// can appear in: header name, config key and query parameter.
var DefaultSensitivePatterns = []SensitivePattern{
	{
		Name:        "api_key",
		Regex:       regexp.MustCompile(`(?i)(x-api-key|api[_-]?key|apikey)(["'\s]*[:=]["'\s]*)([^"'&,}\]\s]+)`),
		Replacement: "${1}${2}" + Masked,
		Keys:        []string{"x-api-key", "api_key", "apikey", "api-key"},
	},
	{
		Name:        "bearer_token",
		Regex:       regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9\-._~+/]+=*`),
		Replacement: "Bearer " + Masked,
	},
	{
		Name:        "authorization",
		Regex:       regexp.MustCompile(`(?i)(authorization)(["'\s]*[:=]["'\s]*)([^"',}\]\s]+)`),
		Replacement: "${1}${2}" + Masked,
		Keys:        []string{"authorization"},
	},
}

// Masker handles masking of sensitive information in logs
type Masker struct {
	patterns []SensitivePattern
	enabled  bool
}

// NewMasker creates a new masker with default patterns
func NewMasker() *Masker {
	return &Masker{
		patterns: DefaultSensitivePatterns,
		enabled:  true,
	}
}

// SetEnabled enables or disables masking
func (m *Masker) SetEnabled(enabled bool) {
	m.enabled = enabled
}

// IsEnabled returns whether masking is enabled
func (m *Masker) IsEnabled() bool {
	return m.enabled
}

// MaskString masks sensitive information in a string
func (m *Masker) MaskString(input string) string {
	if !m.enabled {
		return input
	}
	result := input
	for _, pattern := range m.patterns {
		result = pattern.Regex.ReplaceAllString(result, pattern.Replacement)
	}
	return result
}

// IsSensitiveKey reports whether key names a secret.
func (m *Masker) IsSensitiveKey(key string) bool {
	lower := strings.ToLower(strings.TrimSpace(key))
	for _, pattern := range m.patterns {
		for _, k := range pattern.Keys {
			if lower == k {
				return true
			}
		}
	}
	return false
}

// MaskValue masks value when key is sensitive, otherwise applies the
// regex patterns to string values.
func (m *Masker) MaskValue(key string, value any) any {
	if !m.enabled {
		return value
	}
	if m.IsSensitiveKey(key) {
		return Masked
	}
	if s, ok := value.(string); ok {
		return m.MaskString(s)
	}
	return value
}

// MaskHeaders returns a copy of name/value pairs with secret values replaced.
func (m *Masker) MaskHeaders(headers map[string][]string) map[string][]string {
	out := make(map[string][]string, len(headers))
	for name, values := range headers {
		cp := make([]string, len(values))
		for i, v := range values {
			if m.enabled && m.IsSensitiveKey(name) {
				cp[i] = Masked
				continue
			}
			cp[i] = v
		}
		out[name] = cp
	}
	return out
}
