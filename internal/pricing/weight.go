package pricing

import (
	"strconv"
	"strings"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// WeightCategory derives the small/large split from a free-form weight
// label. Labels that name the bottom or top bracket win outright;
// otherwise a leading number decides at the 15 kg line. Unparseable
// labels default to small, the cheaper tier.
func WeightCategory(label string) domain.WeightCategory {
	normalized := normalizeLabel(label)

	if strings.Contains(normalized, "5kg") {
		if strings.Contains(normalized, "below") || strings.Contains(normalized, "&") {
			return domain.WeightSmall
		}
	}
	if strings.Contains(normalized, "30kg") {
		if strings.Contains(normalized, "above") || strings.Contains(normalized, "&") {
			return domain.WeightLarge
		}
	}

	if kg, ok := leadingNumber(normalized); ok && kg >= 15 {
		return domain.WeightLarge
	}
	return domain.WeightSmall
}

func normalizeLabel(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	// collapse "5 kg" to "5kg"
	s = strings.ReplaceAll(s, " kg", "kg")
	return s
}

func leadingNumber(s string) (float64, bool) {
	end := 0
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
