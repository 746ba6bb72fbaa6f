package cookies

import (
	"strings"

	"github.com/WhileEndless/go-headertools/pkg/headers"
)

// Cookie represents a single cookie from a Cookie header, with its value
// preserved in both raw and percent-decoded form
type Cookie struct {
	Name  string
	Value headers.ValuePair
}

// ParseCookieHeader parses a Cookie header value
// Never fails - returns empty slice if malformed
// Format: "name1=value1; name2=value2; name3=value3"
// Segments without an equals sign are skipped.
func ParseCookieHeader(cookieHeader string) []Cookie {
	if cookieHeader == "" {
		return []Cookie{}
	}

	var cookies []Cookie

	parts := strings.Split(cookieHeader, ";")

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.Index(part, "=")
		if idx == -1 {
			// Not a name=value segment, skip it
			continue
		}

		name := strings.TrimSpace(part[:idx])
		value := strings.TrimSpace(part[idx+1:])

		if name == "" {
			continue
		}

		// Remove quotes if present
		if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
			value = value[1 : len(value)-1]
		}

		cookies = append(cookies, Cookie{
			Name:  name,
			Value: headers.NewValuePair(value),
		})
	}

	return cookies
}

// BuildCookieHeader rebuilds a Cookie header from cookies using decoded values
// Format: "name1=value1; name2=value2"
func BuildCookieHeader(cookies []Cookie) string {
	if len(cookies) == 0 {
		return ""
	}

	var parts []string
	for _, cookie := range cookies {
		if cookie.Name == "" {
			continue
		}
		parts = append(parts, cookie.Name+"="+cookie.Value.Decoded)
	}

	return strings.Join(parts, "; ")
}
