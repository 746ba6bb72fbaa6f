package rawhttp

import (
	"bufio"
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/proxy"

	"github.com/WhileEndless/go-headertools/pkg/chunked"
	"github.com/WhileEndless/go-headertools/pkg/compression"
	"github.com/WhileEndless/go-headertools/pkg/headerblock"
)

// Sender replays a parsed header block as a live HTTP request over TCP/TLS.
// One request per call; no pooling, no retries.
type Sender struct{}

// NewSender creates a new Sender instance
func NewSender() *Sender {
	return &Sender{}
}

// Send builds a request from the parsed block and performs it, returning the
// response. Network failures are returned as *HTTPError; an HTTP error
// status (4xx/5xx) is a successful send.
func (s *Sender) Send(ctx context.Context, parsed *headerblock.ParsedHeaders, opts Options) (*Response, error) {
	if opts.Host == "" {
		opts.Host = parsed.Host()
	}
	opts.SetDefaults()

	rawRequest, err := BuildRequest(parsed)
	if err != nil {
		return nil, err
	}

	resp := NewResponse()
	startTime := time.Now()

	conn, err := s.connect(ctx, opts, resp)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := s.writeRequest(conn, rawRequest, opts.WriteTimeout); err != nil {
		return nil, classifyNetError("write request failed", err)
	}

	readStart := time.Now()
	if err := s.readResponse(conn, resp, opts); err != nil {
		return nil, classifyNetError("read response failed", err)
	}
	resp.Timing.TTFB = time.Since(readStart)

	s.decodeBody(resp)

	resp.Timing.Total = time.Since(startTime)
	return resp, nil
}

// connect establishes the connection, via the SOCKS5 proxy when configured
func (s *Sender) connect(ctx context.Context, opts Options, resp *Response) (net.Conn, error) {
	var conn net.Conn
	var err error

	if opts.ProxyURL != "" {
		conn, err = s.dialViaProxy(ctx, opts, resp)
	} else {
		conn, err = s.dialDirect(ctx, opts, resp)
	}
	if err != nil {
		return nil, err
	}

	// TLS handshake for https
	if opts.Scheme == "https" {
		tlsStart := time.Now()
		tlsConn := tls.Client(conn, opts.BuildTLSConfig())
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			conn.Close()
			return nil, NewTLSError(err)
		}
		resp.Timing.TLSHandshake = time.Since(tlsStart)
		return tlsConn, nil
	}

	return conn, nil
}

// dialDirect resolves the host and opens a TCP connection to it
func (s *Sender) dialDirect(ctx context.Context, opts Options, resp *Response) (net.Conn, error) {
	dnsStart := time.Now()
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, opts.Host)
	if err != nil {
		return nil, NewDNSError(err)
	}
	if len(addrs) == 0 {
		return nil, NewDNSError(fmt.Errorf("no IP addresses found for host: %s", opts.Host))
	}
	targetIP := addrs[0].IP.String()
	resp.Timing.DNSLookup = time.Since(dnsStart)

	resp.ConnectedIP = targetIP
	resp.ConnectedPort = opts.Port

	tcpStart := time.Now()
	dialer := &net.Dialer{Timeout: opts.ConnTimeout}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(targetIP, strconv.Itoa(opts.Port)))
	if err != nil {
		return nil, NewConnectionError(err)
	}
	resp.Timing.TCPConnect = time.Since(tcpStart)

	return conn, nil
}

// dialViaProxy opens a connection through an upstream SOCKS5 proxy.
// The hostname is passed through so the proxy performs DNS resolution.
func (s *Sender) dialViaProxy(ctx context.Context, opts Options, resp *Response) (net.Conn, error) {
	proxyURL, err := url.Parse(opts.ProxyURL)
	if err != nil {
		return nil, NewProxyError(fmt.Errorf("invalid proxy URL: %w", err))
	}

	dialer, err := proxy.FromURL(proxyURL, &net.Dialer{Timeout: opts.ConnTimeout})
	if err != nil {
		return nil, NewProxyError(err)
	}

	target := net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port))
	resp.ConnectedPort = opts.Port

	proxyStart := time.Now()

	var conn net.Conn
	if contextDialer, ok := dialer.(proxy.ContextDialer); ok {
		conn, err = contextDialer.DialContext(ctx, "tcp", target)
	} else {
		conn, err = dialer.Dial("tcp", target)
	}
	if err != nil {
		return nil, NewProxyError(err)
	}
	resp.Timing.ProxyConnect = time.Since(proxyStart)

	return conn, nil
}

// writeRequest writes the raw request to the connection
func (s *Sender) writeRequest(conn net.Conn, rawRequest []byte, timeout time.Duration) error {
	if timeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(timeout))
		defer conn.SetWriteDeadline(time.Time{})
	}

	_, err := conn.Write(rawRequest)
	return err
}

// readResponse reads the status line, headers and body into resp
func (s *Sender) readResponse(conn net.Conn, resp *Response, opts Options) error {
	if opts.ReadTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(opts.ReadTimeout))
		defer conn.SetReadDeadline(time.Time{})
	}

	reader := bufio.NewReader(conn)

	statusLine, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	if err := parseStatusLine(strings.TrimSpace(statusLine), resp); err != nil {
		return err
	}

	if err := s.readHeaders(reader, resp); err != nil {
		return err
	}

	body, err := s.readBody(reader, resp, opts.BodyMemLimit)
	if err != nil {
		return err
	}
	resp.RawBody = body

	return nil
}

// parseStatusLine parses "HTTP/1.1 200 OK" into resp
func parseStatusLine(line string, resp *Response) error {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		return fmt.Errorf("malformed status line: %q", line)
	}

	code, err := strconv.Atoi(parts[1])
	if err != nil || code < 100 || code > 599 {
		return fmt.Errorf("malformed status code in %q", line)
	}

	resp.Proto = parts[0]
	resp.StatusCode = code
	if len(parts) == 3 {
		resp.Status = parts[2]
	}
	return nil
}

// readHeaders reads header lines until the blank line
func (s *Sender) readHeaders(reader *bufio.Reader, resp *Response) error {
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}

		if line == "\r\n" || line == "\n" {
			return nil
		}

		colonPos := strings.Index(line, ":")
		if colonPos == -1 {
			// Malformed header line, skip it
			continue
		}

		name := normalizeHeaderName(line[:colonPos])
		value := strings.TrimSpace(line[colonPos+1:])
		resp.Headers[name] = append(resp.Headers[name], value)
	}
}

// readBody reads the body per Content-Length, chunked framing, or until EOF
func (s *Sender) readBody(reader *bufio.Reader, resp *Response, maxSize int64) ([]byte, error) {
	if contentLength := resp.GetHeader("content-length"); contentLength != "" {
		length, err := strconv.ParseInt(contentLength, 10, 64)
		if err != nil || length < 0 {
			length = 0
		}
		if length > maxSize {
			return nil, ErrBodyTooLarge
		}

		body := make([]byte, length)
		if _, err := io.ReadFull(reader, body); err != nil {
			return nil, err
		}
		return body, nil
	}

	if transferEncoding := resp.GetHeader("transfer-encoding"); transferEncoding != "" {
		if strings.Contains(strings.ToLower(transferEncoding), "chunked") {
			return chunked.Decode(reader, maxSize)
		}
	}

	// Neither length nor framing: read until EOF, bounded
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(reader, maxSize)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeBody decompresses the body per Content-Encoding, falling back to the
// raw bytes when decompression fails
func (s *Sender) decodeBody(resp *Response) {
	resp.Body = resp.RawBody

	if len(resp.RawBody) == 0 {
		return
	}

	compressionType := compression.DetectCompression(resp.GetHeader("content-encoding"))
	if compressionType == compression.CompressionNone {
		compressionType = compression.DetectByMagicBytes(resp.RawBody)
	}
	if compressionType == compression.CompressionNone {
		return
	}

	decompressed, err := compression.Decompress(resp.RawBody, compressionType)
	if err != nil {
		// Keep the raw body on decompression failure
		return
	}

	resp.Body = decompressed
	resp.Decoded = true
}

// classifyNetError maps an I/O error to the request failure taxonomy
func classifyNetError(phase string, err error) error {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return NewTimeoutError(err)
	}
	return NewConnectionError(fmt.Errorf("%s: %w", phase, err))
}

func normalizeHeaderName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
