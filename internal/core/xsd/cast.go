package xsd

import (
	"strconv"
	"strings"
	"time"

	"github.com/agenthands/graphite/internal/core/model"
)

// Cast canonicalizes a literal value according to its datatype family:
// numeric values become float64, datetimes become time.Time (bare dates get
// midnight attached first), date fragments become an integer day offset and
// string-family values are trimmed and lower-cased. A value whose datatype
// falls outside every family, or that fails to parse, is returned unchanged;
// a conversion failure never escapes as an error.
//
// Cast is idempotent: an already-canonical value (float64, time.Time, int,
// canonical string) passes through to itself.
func Cast(value any, dtype model.IRI) any {
	switch {
	case IsNumeric(dtype):
		switch v := value.(type) {
		case float64:
			return v
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f
			}
		}

	case IsDateTime(dtype):
		switch v := value.(type) {
		case time.Time:
			return v
		case string:
			if t, err := parseDateTime(v); err == nil {
				return t
			}
		}

	case IsDateFrag(dtype):
		switch v := value.(type) {
		case int:
			return v
		case string:
			if days, err := FragDays(v, dtype); err == nil {
				return days
			}
		}

	case IsString(dtype):
		if v, ok := value.(string); ok {
			return strings.ToLower(strings.TrimSpace(v))
		}
	}

	return value
}

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	// A bare date is combined with midnight before datetime parsing.
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}

	var lastErr error
	for _, layout := range datetimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
