package validate

import "testing"

func TestHTTPURLAccepted(t *testing.T) {
	for _, raw := range []string{
		"https://raw.githubusercontent.com/loregate/loregate-data",
		"http://localhost:9000/base",
	} {
		if err := HTTPURL(raw); err != nil {
			t.Errorf("HTTPURL(%q) = %v, want nil", raw, err)
		}
	}
}

func TestHTTPURLRejected(t *testing.T) {
	for _, raw := range []string{
		"ftp://example.com/data",
		"file:///etc/passwd",
		"raw.githubusercontent.com/no-scheme",
		"https://",
	} {
		if err := HTTPURL(raw); err == nil {
			t.Errorf("HTTPURL(%q) = nil, want error", raw)
		}
	}
}
