// Package chunked decodes HTTP chunked transfer encoding.
package chunked

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ErrBodyTooLarge is returned when the decoded body exceeds the given limit
var ErrBodyTooLarge = errors.New("chunked body exceeds limit")

// Decode reads a chunked transfer-encoded body from r and returns the
// decoded bytes. Trailers after the final chunk are consumed and discarded.
// limit bounds the total decoded size; limit <= 0 means no limit.
func Decode(r *bufio.Reader, limit int64) ([]byte, error) {
	var body []byte
	var total int64

	for {
		sizeLine, err := r.ReadString('\n')
		if err != nil {
			return body, err
		}

		// Strip chunk extensions (e.g. "5;name=value")
		sizeStr := strings.TrimSpace(sizeLine)
		if idx := strings.Index(sizeStr, ";"); idx != -1 {
			sizeStr = strings.TrimSpace(sizeStr[:idx])
		}

		chunkSize, err := strconv.ParseInt(sizeStr, 16, 64)
		if err != nil || chunkSize < 0 {
			// Malformed size line, best effort: stop here
			return body, nil
		}

		// Final chunk: consume trailers until blank line
		if chunkSize == 0 {
			for {
				line, err := r.ReadString('\n')
				if err != nil {
					return body, nil
				}
				if line == "\r\n" || line == "\n" {
					return body, nil
				}
			}
		}

		total += chunkSize
		if limit > 0 && total > limit {
			return nil, ErrBodyTooLarge
		}

		chunk := make([]byte, chunkSize)
		if _, err := io.ReadFull(r, chunk); err != nil {
			return body, err
		}
		body = append(body, chunk...)

		// Trailing CRLF after chunk data
		if _, err := r.ReadString('\n'); err != nil {
			return body, err
		}
	}
}
