package rawhttp

// Response represents the reply to a replayed request
type Response struct {
	StatusCode int                 // Numeric status code, in [100,599]
	Status     string              // Status text after the code (e.g. "OK")
	Proto      string              // Protocol from the status line (e.g. "HTTP/1.1")
	Headers    map[string][]string // Response headers, lowercased names
	Body       []byte              // Body, decompressed per Content-Encoding
	RawBody    []byte              // Body exactly as read off the wire
	Decoded    bool                // Whether Body differs from RawBody

	// Connection metadata
	ConnectedIP   string // Actual IP address connected to (empty when proxied)
	ConnectedPort int    // Actual port connected to

	// Timing information
	Timing *Timing
}

// NewResponse creates a new Response instance
func NewResponse() *Response {
	return &Response{
		Headers: make(map[string][]string),
		Timing:  &Timing{},
	}
}

// GetHeader returns the first value for a given header name
func (r *Response) GetHeader(name string) string {
	values := r.Headers[normalizeHeaderName(name)]
	if len(values) > 0 {
		return values[0]
	}
	return ""
}

// IsSuccessful returns true if the response has a 2xx status code
func (r *Response) IsSuccessful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsRedirect returns true if the response has a 3xx status code
func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

// IsClientError returns true if the response has a 4xx status code
func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

// IsServerError returns true if the response has a 5xx status code
func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500 && r.StatusCode < 600
}
