package app

import (
	"net/url"
	"strings"
)

const (
	binaryResultParam    = "disable_prepared_binary_result"
	maxTracedQueryLength = 512
)

// normalizeDBURL turns off binary results for prepared statements when
// requested, for poolers that cannot relay them. Both URL and keyword/value
// DSNs are accepted; an explicit setting in the DSN is kept.
func normalizeDBURL(raw string, disableBinaryResult bool) string {
	if !disableBinaryResult || strings.TrimSpace(raw) == "" {
		return raw
	}

	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		query := parsed.Query()
		if query.Get(binaryResultParam) == "" {
			query.Set(binaryResultParam, "yes")
			parsed.RawQuery = query.Encode()
		}
		return parsed.String()
	}

	if _, ok := dsnKeyword(raw, binaryResultParam); ok {
		return raw
	}
	return strings.TrimSpace(raw) + " " + binaryResultParam + "=yes"
}

// dbNameFromURL names the database for span attributes.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" {
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}
	name, _ := dsnKeyword(trimmed, "dbname")
	return name
}

func dsnKeyword(dsn, key string) (string, bool) {
	prefix := key + "="
	for _, token := range strings.Fields(dsn) {
		if value, ok := strings.CutPrefix(token, prefix); ok {
			return strings.Trim(value, `"'`), true
		}
	}
	return "", false
}

// formatDBQueryForTrace collapses whitespace and caps the statement length
// recorded on database spans.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
