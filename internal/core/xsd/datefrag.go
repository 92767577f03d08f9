package xsd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/agenthands/graphite/internal/core/model"
)

// Lexical forms per the XSD spec: gDay "---DD", gMonth "--MM",
// gMonthDay "--MM-DD", gYear "YYYY", gYearMonth "YYYY-MM".
var (
	gDayRe       = regexp.MustCompile(`^---(\d{2})$`)
	gMonthRe     = regexp.MustCompile(`^--(\d{2})$`)
	gMonthDayRe  = regexp.MustCompile(`^--(\d{2})-(\d{2})$`)
	gYearRe      = regexp.MustCompile(`^(-?\d{4,})$`)
	gYearMonthRe = regexp.MustCompile(`^(-?\d{4,})-(\d{2})$`)
)

// FragDays converts an XSD date-fragment value to an integer day offset so
// that fragments of the same datatype order correctly against each other.
// Months count 30 days and years 365; only relative order within a fragment
// datatype is meaningful.
func FragDays(value string, dtype model.IRI) (int, error) {
	value = strings.TrimSpace(value)

	switch dtype {
	case GDay:
		m := gDayRe.FindStringSubmatch(value)
		if m == nil {
			return 0, fmt.Errorf("malformed gDay value %q", value)
		}
		return atoi(m[1]), nil

	case GMonth:
		m := gMonthRe.FindStringSubmatch(value)
		if m == nil {
			return 0, fmt.Errorf("malformed gMonth value %q", value)
		}
		return atoi(m[1]) * 30, nil

	case GMonthDay:
		m := gMonthDayRe.FindStringSubmatch(value)
		if m == nil {
			return 0, fmt.Errorf("malformed gMonthDay value %q", value)
		}
		return atoi(m[1])*30 + atoi(m[2]), nil

	case GYear:
		m := gYearRe.FindStringSubmatch(value)
		if m == nil {
			return 0, fmt.Errorf("malformed gYear value %q", value)
		}
		return atoi(m[1]) * 365, nil

	case GYearMonth:
		m := gYearMonthRe.FindStringSubmatch(value)
		if m == nil {
			return 0, fmt.Errorf("malformed gYearMonth value %q", value)
		}
		return atoi(m[1])*365 + atoi(m[2])*30, nil
	}

	return 0, fmt.Errorf("%s is not a date-fragment datatype", dtype)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s) // lexical form guaranteed by the regexp
	return n
}
