package headerblock

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestToJSON_EndToEnd(t *testing.T) {
	input := "GET /\n" +
		"Host: www.website.com\n" +
		"Cookie: sid=6%7C%7C123\n"

	parsed := Parse(input)

	result, err := parsed.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	expected := `{"request_line":"GET /",` +
		`"headers":{"host":{"raw":"www.website.com","decoded":"www.website.com"}},` +
		`"cookies":{"sid":{"raw":"6%7C%7C123","decoded":"6||123"}}}`

	if result != expected {
		t.Errorf("Expected %s\ngot %s", expected, result)
	}
}

func TestToJSON_HeaderOrderPreserved(t *testing.T) {
	input := "GET /\nZ-First: 1\nA-Second: 2\nM-Third: 3\n"
	parsed := Parse(input)

	result, err := parsed.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	zPos := strings.Index(result, `"z-first"`)
	aPos := strings.Index(result, `"a-second"`)
	mPos := strings.Index(result, `"m-third"`)

	if zPos == -1 || aPos == -1 || mPos == -1 {
		t.Fatalf("Missing header keys in %s", result)
	}

	if !(zPos < aPos && aPos < mPos) {
		t.Errorf("Expected input line order z,a,m, got positions %d,%d,%d", zPos, aPos, mPos)
	}
}

func TestToJSON_CookieOrderPreserved(t *testing.T) {
	parsed := Parse("GET /\nCookie: z=1; a=2; m=3\n")

	result, err := parsed.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	zPos := strings.Index(result, `"z"`)
	aPos := strings.Index(result, `"a"`)
	mPos := strings.Index(result, `"m"`)

	if !(zPos < aPos && aPos < mPos) {
		t.Errorf("Expected appearance order z,a,m, got positions %d,%d,%d", zPos, aPos, mPos)
	}
}

func TestToJSON_EmptyBlock(t *testing.T) {
	parsed := Parse("")

	result, err := parsed.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	expected := `{"request_line":"","headers":{},"cookies":{}}`
	if result != expected {
		t.Errorf("Expected %s, got %s", expected, result)
	}
}

func TestToJSON_ValidJSON(t *testing.T) {
	parsed := Parse(Sample)

	result, err := parsed.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(result), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if _, ok := decoded["request_line"]; !ok {
		t.Error("Missing request_line key")
	}
	if _, ok := decoded["headers"]; !ok {
		t.Error("Missing headers key")
	}
	if _, ok := decoded["cookies"]; !ok {
		t.Error("Missing cookies key")
	}
}

func TestToJSONIndent(t *testing.T) {
	parsed := Parse("GET /\nHost: www.website.com\n")

	result, err := parsed.ToJSONIndent()
	if err != nil {
		t.Fatalf("ToJSONIndent() error = %v", err)
	}

	if !strings.Contains(result, "\n    \"headers\"") {
		t.Errorf("Expected four-space indentation, got:\n%s", result)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(result), &decoded); err != nil {
		t.Fatalf("Indented output is not valid JSON: %v", err)
	}
}

func TestMarshalJSON_AlwaysEmitsPair(t *testing.T) {
	// Values where raw == decoded still serialize as the full pair
	parsed := Parse("GET /\nHost: plain\nCookie: a=plain\n")

	result, err := parsed.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	if !strings.Contains(result, `"host":{"raw":"plain","decoded":"plain"}`) {
		t.Errorf("Expected pair form for header, got %s", result)
	}

	if !strings.Contains(result, `"a":{"raw":"plain","decoded":"plain"}`) {
		t.Errorf("Expected pair form for cookie, got %s", result)
	}
}
