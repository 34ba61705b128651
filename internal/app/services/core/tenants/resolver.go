package tenants

import (
	"net"
	"pidelocal-service/internal/pkg/constvars"
	"regexp"
	"strings"
)

var slugRegex = regexp.MustCompile(constvars.RegexTenantSlug)

var reservedPathSegments = func() map[string]struct{} {
	reserved := make(map[string]struct{}, len(constvars.TenantReservedPathSegments))
	for _, segment := range constvars.TenantReservedPathSegments {
		reserved[segment] = struct{}{}
	}
	return reserved
}()

// Sources holds the raw request values a tenant slug can be taken from.
type Sources struct {
	Query  string
	Cookie string
	Host   string
	Path   string
}

// ResolveSlug picks the tenant slug from the first source that yields a
// valid candidate, in order: query, cookie, host subdomain, first path
// segment. An empty string means no tenant.
func ResolveSlug(src Sources) string {
	if slug, ok := normalize(src.Query); ok {
		return slug
	}
	if slug, ok := normalize(src.Cookie); ok {
		return slug
	}
	if slug, ok := normalize(fromHost(src.Host)); ok {
		return slug
	}
	if slug, ok := normalize(fromPath(src.Path)); ok {
		return slug
	}
	return ""
}

func normalize(candidate string) (string, bool) {
	slug := strings.ToLower(strings.TrimSpace(candidate))
	if slug == "" || !slugRegex.MatchString(slug) {
		return "", false
	}
	return slug, true
}

func fromHost(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	labels := strings.Split(host, ".")
	if len(labels) < 3 {
		return ""
	}
	// www.domain.tld keeps "www" as the candidate.
	if strings.EqualFold(labels[0], "www") && len(labels) >= 4 {
		return labels[1]
	}
	return labels[0]
}

func fromPath(path string) string {
	segment := strings.TrimPrefix(path, "/")
	if i := strings.Index(segment, "/"); i >= 0 {
		segment = segment[:i]
	}
	if _, reserved := reservedPathSegments[strings.ToLower(strings.TrimSpace(segment))]; reserved {
		return ""
	}
	return segment
}
