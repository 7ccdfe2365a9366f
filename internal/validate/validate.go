// Package validate holds small syntactic checks applied to operator-supplied
// configuration values before the gateway starts serving.
package validate

import (
	"fmt"
	"net/url"
)

// HTTPURL ensures the URL uses http or https scheme and has a non-empty host.
// Configured upstream base URLs must pass this check so that a typo cannot
// send relay traffic to file:// or other non-HTTP schemes.
func HTTPURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	switch u.Scheme {
	case "http", "https":
		// OK
	case "":
		return fmt.Errorf("URL missing scheme: %s", rawURL)
	default:
		return fmt.Errorf("URL scheme %q not allowed (only http/https)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL missing host: %s", rawURL)
	}
	return nil
}
