package openapi

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// hostProfile maps hosts to ASCII without STD3 restrictions, so service
// names such as "api_gateway" are accepted.
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.StrictDomainName(false),
	idna.Transitional(false),
)

// specialSchemes lists schemes that require a host, with their default port.
var specialSchemes = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"ftp":   "21",
}

// ParseAbsoluteURL parses raw as an absolute URL and normalizes it:
// scheme and host are lower cased, internationalized hosts are converted
// to their ASCII form, default ports are dropped, dot segments are removed
// from absolute paths, and an empty path on a hierarchical URL becomes "/".
// The result's String method yields the
// canonical form used during serialization.
func ParseAbsoluteURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: url %q: %v", ErrInvalidFormat, raw, err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("%w: url %q is not absolute", ErrInvalidFormat, raw)
	}
	u.Scheme = strings.ToLower(u.Scheme)

	defaultPort, special := specialSchemes[u.Scheme]
	if special && u.Host == "" {
		return nil, fmt.Errorf("%w: url %q has no host", ErrInvalidFormat, raw)
	}

	if u.Host != "" {
		host, err := normalizeHost(u.Hostname())
		if err != nil {
			return nil, fmt.Errorf("%w: url %q: %v", ErrInvalidFormat, raw, err)
		}

		port := u.Port()
		if special && port == defaultPort {
			port = ""
		}
		if port != "" {
			host = net.JoinHostPort(host, port)
		} else if strings.Contains(host, ":") {
			host = "[" + host + "]"
		}
		u.Host = host
	}

	if u.Opaque == "" && u.Host != "" && u.Path == "" {
		u.Path = "/"
	}
	if u.Opaque == "" && strings.HasPrefix(u.Path, "/") {
		u = removeDotSegments(u)
	}

	return u, nil
}

// normalizeHost lower cases host and converts IDN labels to punycode.
// IP literals are returned unchanged apart from case.
func normalizeHost(host string) (string, error) {
	if host == "" {
		return "", fmt.Errorf("empty host")
	}
	if ip := net.ParseIP(host); ip != nil {
		return strings.ToLower(host), nil
	}

	ascii, err := hostProfile.ToASCII(host)
	if err != nil {
		return "", err
	}
	return strings.ToLower(ascii), nil
}

// removeDotSegments resolves "." and ".." in the path of u, keeping the
// query and fragment.
func removeDotSegments(u *url.URL) *url.URL {
	return u.ResolveReference(&url.URL{
		Path:        u.Path,
		RawPath:     u.RawPath,
		ForceQuery:  u.ForceQuery,
		RawQuery:    u.RawQuery,
		Fragment:    u.Fragment,
		RawFragment: u.RawFragment,
	})
}
