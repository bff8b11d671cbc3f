package policy

import "strings"

// Policy decides whether a verified identity may perform mutating operations.
type Policy interface {
	IsPrivileged(email string) bool
}

// AllowList is a static, case-insensitive email allow-list. There is exactly
// one privilege level beyond public reader, so membership is the whole policy.
type AllowList struct {
	emails map[string]struct{}
}

// NewAllowList builds an AllowList from administrator email addresses.
func NewAllowList(emails []string) *AllowList {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		set[e] = struct{}{}
	}
	return &AllowList{emails: set}
}

// IsPrivileged reports whether the email belongs to an administrator.
// An absent email always denies.
func (a *AllowList) IsPrivileged(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	_, ok := a.emails[email]
	return ok
}
