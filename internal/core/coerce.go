package core

// coerce.go provides the coercers that turn free-form vendor cell text into
// canonical values before validation.
//
// Vendors fill price lists by hand, so the same value shows up in many
// shapes:
//   - Prices with currency symbols, thousands separators and percent signs
//   - Experience as "2", "02" or, wrongly, "2-3"
//   - Education as "Bachelor's Degree", "BA/BS" or "Professional Certification"
//   - Units of issue as "hour", "Hr", "Hourly" or "Task"
//
// Every coercer is a pure function. A coercer that cannot make sense of its
// input returns an error; the Cell Reader keeps the raw text and the failure
// resurfaces as a field error during validation.

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Coercer converts raw cell text into a canonical value.
type Coercer func(string) (string, error)

var (
	// ErrNoNumericContent is returned when no number is left after stripping
	// currency and percent decorations.
	ErrNoNumericContent = errors.New("no numeric content")

	// ErrNotInteger is returned for ranges, decimals and text where a whole
	// number is expected.
	ErrNotInteger = errors.New("not a whole number")
)

// decimalRegex matches a plain decimal literal after cleanup.
var decimalRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// integerRegex matches a plain base-10 integer.
var integerRegex = regexp.MustCompile(`^[+-]?\d+$`)

// numericNoise lists decorations stripped before a number is parsed.
var numericNoise = strings.NewReplacer(
	"$", "",
	"\u20ac", "", // Euro
	"\u00a3", "", // Pound
	"%", "",
	",", "",
	" ", "",
	"\t", "",
	"\u00a0", "", // Non-breaking space
)

// StripNonNumeric removes currency symbols, percent signs, thousands
// separators and whitespace, returning a decimal literal: "$90.68" becomes
// "90.68". Accounting negatives "(1.00)" become "-1.00".
func StripNonNumeric(s string) (string, error) {
	s = strings.TrimSpace(s)

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = numericNoise.Replace(s)
	if negative && s != "" && s[0] != '-' && s[0] != '+' {
		s = "-" + s
	}

	if !decimalRegex.MatchString(s) {
		return "", ErrNoNumericContent
	}
	return s, nil
}

// ParseInteger accepts a base-10 integer and returns it in canonical form
// ("02" becomes "2"). Ranges like "2-3", decimals and text are rejected.
func ParseInteger(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !integerRegex.MatchString(s) {
		return "", ErrNotInteger
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return "", ErrNotInteger
	}
	return strconv.FormatInt(n, 10), nil
}

// Education levels, lowest first.
const (
	EducationHighSchool = "HS"
	EducationAssociates = "AA"
	EducationBachelors  = "BA"
	EducationMasters    = "MA"
	EducationPhD        = "PHD"
)

// educationPatterns is ordered from the lowest level to the highest so the
// first match is the minimum education a description mentions.
var educationPatterns = []struct {
	level string
	re    *regexp.Regexp
}{
	{EducationHighSchool, regexp.MustCompile(`\bhigh school\b|\bged\b|\bhs\b`)},
	{EducationAssociates, regexp.MustCompile(`\bassociate'?s?\b|\baa\b|\baas\b`)},
	{EducationBachelors, regexp.MustCompile(`\bbachelor'?s?\b|\bba\b|\bbs\b|\bb\.a\.|\bb\.s\.`)},
	// Bare "MS" also abbreviates Microsoft, so it only counts as a degree
	// when followed by "degree" or "in", or when it ends the text.
	{EducationMasters, regexp.MustCompile(`\bmaster'?s?\b|\bma\b|\bmba\b|\bm\.a\.|\bm\.s\.|\bms(\s+(degree|in)\b|\s*$)`)},
	{EducationPhD, regexp.MustCompile(`\bph\.?d\.?|\bdoctor(ate|al)?\b`)},
}

// ExtractMinEducation maps an education description to the lowest
// education level it mentions. Text naming no known level is returned
// unchanged so validation can judge it.
func ExtractMinEducation(s string) (string, error) {
	lower := strings.ToLower(strings.ReplaceAll(s, "\u2019", "'"))
	for _, p := range educationPatterns {
		if p.re.MatchString(lower) {
			return p.level, nil
		}
	}
	return s, nil
}

// UnitHour is the canonical unit of issue for hourly rates.
const UnitHour = "Hour"

var hourSynonyms = map[string]bool{
	"hour":       true,
	"hours":      true,
	"hr":         true,
	"hrs":        true,
	"hourly":     true,
	"per hour":   true,
	"labor hour": true,
}

// ExtractHourUnitOfIssue maps hour synonyms ("hr", "Hourly", "per hour") to
// UnitHour. Any other unit is returned unchanged so the hourly-only rule
// can reject it explicitly.
func ExtractHourUnitOfIssue(s string) (string, error) {
	key := strings.ToLower(strings.Join(strings.Fields(s), " "))
	key = strings.TrimSuffix(key, ".")
	if hourSynonyms[key] {
		return UnitHour, nil
	}
	return s, nil
}

// coercers is the fixed table schema files refer to by name.
var coercers = map[string]Coercer{
	"strip_non_numeric":          StripNonNumeric,
	"integer":                    ParseInteger,
	"extract_min_education":      ExtractMinEducation,
	"extract_hour_unit_of_issue": ExtractHourUnitOfIssue,
}

// LookupCoercer returns the coercer registered under name.
func LookupCoercer(name string) (Coercer, bool) {
	c, ok := coercers[name]
	return c, ok
}

// CoercerNames returns the names of all coercers, sorted.
func CoercerNames() []string {
	names := make([]string, 0, len(coercers))
	for name := range coercers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
