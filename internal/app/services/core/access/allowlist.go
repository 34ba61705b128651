package access

import "strings"

// AllowList is the immutable set of super admin emails.
type AllowList struct {
	emails map[string]struct{}
}

// ParseAllowList reads a raw list of emails separated by ',' ';' or line
// breaks. Entries are trimmed, unquoted and lowercased; empty ones are dropped.
func ParseAllowList(raw string) AllowList {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '\r'
	})

	emails := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		email := strings.TrimSpace(field)
		email = strings.Trim(email, `"'`)
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		emails[email] = struct{}{}
	}
	return AllowList{emails: emails}
}

func (a AllowList) Contains(email string) bool {
	_, ok := a.emails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

func (a AllowList) Len() int {
	return len(a.emails)
}
