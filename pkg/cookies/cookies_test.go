package cookies

import (
	"testing"
)

func TestParseCookieHeader_Simple(t *testing.T) {
	input := "session=abc123; user=john"
	cookies := ParseCookieHeader(input)

	if len(cookies) != 2 {
		t.Fatalf("Expected 2 cookies, got %d", len(cookies))
	}

	if cookies[0].Name != "session" || cookies[0].Value.Raw != "abc123" {
		t.Errorf("Expected session=abc123, got %s=%s", cookies[0].Name, cookies[0].Value.Raw)
	}

	if cookies[1].Name != "user" || cookies[1].Value.Raw != "john" {
		t.Errorf("Expected user=john, got %s=%s", cookies[1].Name, cookies[1].Value.Raw)
	}
}

func TestParseCookieHeader_EncodedValue(t *testing.T) {
	input := "a=1; b=2%20x"
	cookies := ParseCookieHeader(input)

	if len(cookies) != 2 {
		t.Fatalf("Expected 2 cookies, got %d", len(cookies))
	}

	if cookies[0].Value.Raw != "1" || cookies[0].Value.Decoded != "1" {
		t.Errorf("Expected a raw=1 decoded=1, got raw=%q decoded=%q",
			cookies[0].Value.Raw, cookies[0].Value.Decoded)
	}

	if cookies[1].Value.Raw != "2%20x" {
		t.Errorf("Expected raw '2%%20x' preserved, got %q", cookies[1].Value.Raw)
	}

	if cookies[1].Value.Decoded != "2 x" {
		t.Errorf("Expected decoded '2 x', got %q", cookies[1].Value.Decoded)
	}
}

func TestParseCookieHeader_WithSpaces(t *testing.T) {
	input := "  name1  =  value1  ;  name2  =  value2  "
	cookies := ParseCookieHeader(input)

	if len(cookies) != 2 {
		t.Fatalf("Expected 2 cookies, got %d", len(cookies))
	}

	if cookies[0].Name != "name1" || cookies[0].Value.Raw != "value1" {
		t.Errorf("Expected name1=value1, got %s=%s", cookies[0].Name, cookies[0].Value.Raw)
	}
}

func TestParseCookieHeader_WithQuotes(t *testing.T) {
	input := `session="abc123"; user="john doe"`
	cookies := ParseCookieHeader(input)

	if len(cookies) != 2 {
		t.Fatalf("Expected 2 cookies, got %d", len(cookies))
	}

	// Quotes should be removed
	if cookies[0].Value.Raw != "abc123" {
		t.Errorf("Expected value abc123, got %s", cookies[0].Value.Raw)
	}

	if cookies[1].Value.Raw != "john doe" {
		t.Errorf("Expected value 'john doe', got %s", cookies[1].Value.Raw)
	}
}

func TestParseCookieHeader_Empty(t *testing.T) {
	cookies := ParseCookieHeader("")

	if len(cookies) != 0 {
		t.Errorf("Expected empty slice, got %d cookies", len(cookies))
	}
}

func TestParseCookieHeader_SegmentWithoutEquals(t *testing.T) {
	input := "valid=1; flagonly; other=2"
	cookies := ParseCookieHeader(input) // Should not panic

	// Segments without '=' are skipped
	if len(cookies) != 2 {
		t.Fatalf("Expected 2 cookies, got %d", len(cookies))
	}

	if cookies[0].Name != "valid" || cookies[1].Name != "other" {
		t.Errorf("Expected valid and other, got %s and %s", cookies[0].Name, cookies[1].Name)
	}
}

func TestParseCookieHeader_TrailingSemicolon(t *testing.T) {
	input := "name1=value1; name2=value2;"
	cookies := ParseCookieHeader(input) // Should not panic

	if len(cookies) != 2 {
		t.Errorf("Expected 2 cookies, got %d", len(cookies))
	}
}

func TestParseCookieHeader_PreservesOrder(t *testing.T) {
	input := "z=1; a=2; m=3"
	cookies := ParseCookieHeader(input)

	expected := []string{"z", "a", "m"}
	for i, name := range expected {
		if cookies[i].Name != name {
			t.Errorf("Expected cookie %d to be %s, got %s", i, name, cookies[i].Name)
		}
	}
}

func TestBuildCookieHeader_Simple(t *testing.T) {
	cookies := ParseCookieHeader("session=abc123; user=john")

	result := BuildCookieHeader(cookies)
	expected := "session=abc123; user=john"

	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestBuildCookieHeader_UsesDecodedValues(t *testing.T) {
	cookies := ParseCookieHeader("sid=6%7C%7C123")

	result := BuildCookieHeader(cookies)
	expected := "sid=6||123"

	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestBuildCookieHeader_Empty(t *testing.T) {
	if result := BuildCookieHeader(nil); result != "" {
		t.Errorf("Expected empty string, got %q", result)
	}
}
