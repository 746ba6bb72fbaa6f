package rawhttp

import (
	"bytes"
	"strings"

	"github.com/WhileEndless/go-headertools/pkg/cookies"
	"github.com/WhileEndless/go-headertools/pkg/errors"
	"github.com/WhileEndless/go-headertools/pkg/headerblock"
)

// BuildURL builds the target URL for a parsed block as scheme://host/path
func BuildURL(p *headerblock.ParsedHeaders, scheme string) (string, error) {
	if scheme == "" {
		scheme = "https"
	}

	host := p.Host()
	if host == "" {
		return "", errors.NewError(errors.ErrorTypeMissingHost,
			"no host header in parsed block", "buildURL", nil)
	}

	path := p.Path()
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return scheme + "://" + host + path, nil
}

// BuildRequest renders a parsed block as an HTTP/1.1 request.
// Decoded header values go on the wire; cookies are rejoined into a single
// Cookie header. Connection: close is added so the response can be read to
// EOF when the server sends neither Content-Length nor chunked framing.
func BuildRequest(p *headerblock.ParsedHeaders) ([]byte, error) {
	if p.Host() == "" {
		return nil, errors.NewError(errors.ErrorTypeMissingHost,
			"no host header in parsed block", "buildRequest", nil)
	}

	var buf bytes.Buffer

	// Request line
	buf.WriteString(p.Method())
	buf.WriteString(" ")
	buf.WriteString(p.Path())
	buf.WriteString(" HTTP/1.1\r\n")

	// Headers in preserved order, decoded values
	for _, entry := range p.Headers.All() {
		buf.WriteString(entry.Name)
		buf.WriteString(": ")
		buf.WriteString(entry.Value.Decoded)
		buf.WriteString("\r\n")
	}

	// Reconstructed Cookie header
	if cookieHeader := cookies.BuildCookieHeader(p.Cookies); cookieHeader != "" {
		buf.WriteString("cookie: ")
		buf.WriteString(cookieHeader)
		buf.WriteString("\r\n")
	}

	if !p.Headers.Has("connection") {
		buf.WriteString("connection: close\r\n")
	}

	buf.WriteString("\r\n")
	return buf.Bytes(), nil
}
