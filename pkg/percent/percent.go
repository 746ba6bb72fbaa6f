// Package percent implements RFC 3986 percent-decoding with fault tolerance.
package percent

import (
	"net/url"
	"strings"
)

// Decode returns the percent-decoded form of raw.
// Never fails - on malformed escapes the input is returned unchanged.
// '+' is left as-is (path-style decoding, not form decoding).
func Decode(raw string) string {
	// Fast path: nothing to decode
	if !strings.Contains(raw, "%") {
		return raw
	}

	decoded, err := url.PathUnescape(raw)
	if err != nil {
		// Malformed escape sequence, keep the original
		return raw
	}

	return decoded
}

// IsEncoded reports whether raw contains at least one decodable escape,
// i.e. whether Decode would change it.
func IsEncoded(raw string) bool {
	return Decode(raw) != raw
}
