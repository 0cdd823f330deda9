package listing

import (
	"net/url"
	"strings"

	"doctor-listing/internal/domain/entity"
)

// Query-string keys, in the order they are written
const (
	ParamMode        = "mode"
	ParamSpecialties = "specialties"
	ParamSort        = "sort"
	ParamSearch      = "search"
)

const specialtySeparator = ","

// ParseQuery loads a filter from a raw query string, with or without the leading "?".
// Malformed escapes drop only the affected pair; absent keys keep their defaults.
func ParseQuery(raw string) entity.DoctorFilter {
	values, _ := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	return FilterFromValues(values)
}

// FilterFromValues loads a filter from parsed query parameters.
// Mode and sort values are stored verbatim without validation.
func FilterFromValues(values url.Values) entity.DoctorFilter {
	filter := entity.DoctorFilter{
		SearchTerm:       values.Get(ParamSearch),
		ConsultationMode: entity.ConsultationMode(values.Get(ParamMode)),
		SortBy:           entity.SortKey(values.Get(ParamSort)),
	}
	if specs := values.Get(ParamSpecialties); specs != "" {
		filter.Specialties = splitSpecialties(specs)
	}
	return filter
}

// EncodeQuery serializes the non-default fields in the fixed order mode, specialties, sort, search.
// The zero filter encodes to the empty string.
func EncodeQuery(filter entity.DoctorFilter) string {
	var b strings.Builder
	write := func(key, value string) {
		if value == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}

	write(ParamMode, string(filter.ConsultationMode))
	write(ParamSpecialties, strings.Join(filter.Specialties, specialtySeparator))
	write(ParamSort, string(filter.SortBy))
	write(ParamSearch, filter.SearchTerm)
	return b.String()
}

// splitSpecialties keeps first-occurrence order and drops empty or repeated labels
func splitSpecialties(raw string) []string {
	parts := strings.Split(raw, specialtySeparator)
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
