package profile

import (
	"math"
	"strings"
)

// trackedFields is the fixed set of fields counted toward completeness.
const trackedFields = 6

// CompletionScore computes how complete a profile is as a percentage in
// [0, 100]. A nil profile scores 0. Of the six tracked fields (full name,
// business name, phone, city, state, logo URL) each one whose trimmed value
// is non-empty counts as filled; the result is filled/6 rounded half up.
func CompletionScore(p *Profile) int {
	if p == nil {
		return 0
	}

	fields := []string{
		p.FullName,
		p.BusinessName,
		p.Phone,
		p.City,
		p.State,
		p.LogoURL,
	}

	filled := 0
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			filled++
		}
	}

	return int(math.Round(float64(filled) / trackedFields * 100))
}
