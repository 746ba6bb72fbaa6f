package headerblock

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON serializes the parsed block as
// {"request_line":...,"headers":{...},"cookies":{...}} with headers in input
// line order and cookies in appearance order. Every value serializes as a
// {"raw":...,"decoded":...} pair, also when the two are equal.
func (p *ParsedHeaders) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`{"request_line":`)
	if err := writeJSONString(&buf, p.RequestLine); err != nil {
		return nil, err
	}

	buf.WriteString(`,"headers":{`)
	for i, entry := range p.Headers.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, entry.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteString(`},"cookies":{`)
	for i, cookie := range p.Cookies {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, cookie.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		value, err := json.Marshal(cookie.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteString("}}")
	return buf.Bytes(), nil
}

// ToJSON returns the compact JSON representation
func (p *ParsedHeaders) ToJSON() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ToJSONIndent returns the JSON representation indented with four spaces
func (p *ParsedHeaders) ToJSONIndent() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "    "); err != nil {
		return "", err
	}
	return out.String(), nil
}

// writeJSONString writes s as a JSON string literal
func writeJSONString(buf *bytes.Buffer, s string) error {
	encoded, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(encoded)
	return nil
}
