// Package headerblock parses raw HTTP header blocks into structured data.
//
// A header block is the start-line of a request followed by Name: Value
// lines. The Cookie header is split into individual cookies, and every value
// is kept in both its raw and percent-decoded form.
package headerblock

import (
	"strings"

	"github.com/WhileEndless/go-headertools/pkg/cookies"
	"github.com/WhileEndless/go-headertools/pkg/headers"
)

// ParsedHeaders is the structured form of a header block.
// Immutable after Parse.
type ParsedHeaders struct {
	RequestLine string                 // e.g. "GET /"
	Headers     *headers.OrderedValues // Non-cookie headers, input order preserved
	Cookies     []cookies.Cookie       // Cookies in appearance order
}

// Method returns the HTTP method from the request line, defaulting to GET
func (p *ParsedHeaders) Method() string {
	parts := strings.Fields(p.RequestLine)
	if len(parts) == 0 || parts[0] == "" {
		return "GET"
	}
	return strings.ToUpper(parts[0])
}

// Path returns the request target from the request line, defaulting to "/"
func (p *ParsedHeaders) Path() string {
	parts := strings.Fields(p.RequestLine)
	if len(parts) < 2 || parts[1] == "" {
		return "/"
	}
	return parts[1]
}

// Host returns the decoded value of the host header, or "" if absent
func (p *ParsedHeaders) Host() string {
	return p.Headers.GetDecoded("host")
}

// Cookie looks up a cookie by name
func (p *ParsedHeaders) Cookie(name string) (headers.ValuePair, bool) {
	for _, c := range p.Cookies {
		if c.Name == name {
			return c.Value, true
		}
	}
	return headers.ValuePair{}, false
}
