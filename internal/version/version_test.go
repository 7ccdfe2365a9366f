package version

import (
	"strings"
	"testing"
)

func TestStringDefaultsToDev(t *testing.T) {
	if String() != "dev" {
		t.Errorf("got %q, want dev", String())
	}
}

func TestUserAgentCarriesVersion(t *testing.T) {
	ua := UserAgent()
	if !strings.HasPrefix(ua, "loregate/") {
		t.Errorf("unexpected user agent %q", ua)
	}
	if !strings.HasSuffix(ua, String()) {
		t.Errorf("user agent %q does not end with version %q", ua, String())
	}
}
