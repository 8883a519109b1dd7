// Package validation contains input validation helpers shared by the
// configuration loader and provider clients.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrEmptyURL is returned when the URL is empty
	ErrEmptyURL = errors.New("URL cannot be empty")

	// ErrInvalidURL is returned when the URL cannot be parsed
	ErrInvalidURL = errors.New("invalid URL format")

	// ErrUnsafeProtocol is returned when the URL uses a dangerous protocol
	ErrUnsafeProtocol = errors.New("unsafe protocol")

	// ErrHTTPNotAllowed is returned when HTTP is used for non-localhost URLs
	ErrHTTPNotAllowed = errors.New("HTTP is only allowed for localhost")
)

// dangerousProtocols contains protocols that should never be allowed
var dangerousProtocols = map[string]bool{
	"file":       true,
	"gopher":     true,
	"javascript": true,
	"data":       true,
	"ftp":        true,
	"dict":       true,
	"ldap":       true,
	"ldaps":      true,
	"tftp":       true,
}

// localhostNames are hosts for which plain HTTP is acceptable.
var localhostNames = map[string]bool{
	"localhost": true,
	"127.0.0.1": true,
	"::1":       true,
}

// ValidateProviderURL validates a URL intended for use as a provider base
// URL override. It requires https:// (or http:// for localhost) and
// rejects dangerous protocols outright.
func ValidateProviderURL(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ErrEmptyURL
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	scheme := strings.ToLower(parsedURL.Scheme)
	if dangerousProtocols[scheme] {
		return fmt.Errorf("%w: %s", ErrUnsafeProtocol, scheme)
	}

	host := parsedURL.Hostname()
	switch scheme {
	case "https":
		// Fine for any host.
	case "http":
		if !localhostNames[strings.ToLower(host)] {
			return fmt.Errorf("%w: %s", ErrHTTPNotAllowed, host)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsafeProtocol, scheme)
	}

	if host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return nil
}
