package headerblock

import (
	"strings"

	"github.com/WhileEndless/go-headertools/pkg/cookies"
	"github.com/WhileEndless/go-headertools/pkg/headers"
)

// Sample is a typical browser header block, usable as default input
const Sample = "GET /\n" +
	"host: www.website.com\n" +
	"accept: text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8\n" +
	"sec-fetch-site: none\n" +
	"accept-encoding: gzip, deflate, br\n" +
	"sec-fetch-mode: navigate\n" +
	"user-agent: Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.6 Safari/605.1.15\n" +
	"accept-language: en-GB,en;q=0.9\n" +
	"sec-fetch-dest: document\n" +
	"cookie: wp_woocommerce_session_874e415a7637e6df5e=6%7C%7C10c097ef4212a;"

// Parse parses a raw header block with fault tolerance
// Never fails - malformed lines are silently skipped
//
// The first non-empty line, when it contains no colon, is taken as the
// request line. Every line containing a colon is split on the first colon
// into a lowercased name and a trimmed value; the cookie header is split
// into individual cookies instead of being stored as a header. Remaining
// colon-less lines are ignored.
func Parse(text string) *ParsedHeaders {
	parsed := &ParsedHeaders{
		Headers: headers.NewOrderedValues(),
		Cookies: []cookies.Cookie{},
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	seenContent := false

	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))
		if line == "" {
			continue
		}

		colonPos := strings.Index(line, ":")
		if colonPos == -1 {
			if !seenContent {
				parsed.RequestLine = line
				seenContent = true
			}
			// Stray lines without a colon are ignored
			continue
		}
		seenContent = true

		name := strings.ToLower(strings.TrimSpace(line[:colonPos]))
		value := strings.TrimSpace(line[colonPos+1:])

		if name == "" {
			continue
		}

		if name == "cookie" {
			// Cookies live in their own block, never in headers
			parsed.Cookies = append(parsed.Cookies, cookies.ParseCookieHeader(value)...)
			continue
		}

		parsed.Headers.Set(name, value)
	}

	return parsed
}
