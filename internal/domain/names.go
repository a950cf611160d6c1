package domain

import "strings"

// joinName склеивает непустые части ФИО через пробел
func joinName(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// SplitLegacyFullName разбирает устаревшее поле fullName:
// фамилия, имя, остальное - отчество
func SplitLegacyFullName(fullName string) (last, first, middle string) {
	parts := strings.Fields(fullName)
	if len(parts) > 0 {
		last = parts[0]
	}
	if len(parts) > 1 {
		first = parts[1]
	}
	if len(parts) > 2 {
		middle = strings.Join(parts[2:], " ")
	}
	return last, first, middle
}
