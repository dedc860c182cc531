package domain

import (
	"net/http"
	"regexp"
)

const refererURL = "https://weibo.com/"

var xsrfTokenPattern = regexp.MustCompile(`XSRF-TOKEN=([^;]+)`)

// CredentialBundle holds the operator-supplied session credentials. The
// anti-forgery token is not stored separately; it is derived from the
// cookie on every header build.
type CredentialBundle struct {
	Cookie    string
	UserAgent string
}

// Headers builds the outbound header set for platform requests: session
// cookie, user agent, referer, and the anti-forgery token extracted from
// the cookie. A cookie without the XSRF-TOKEN marker cannot authenticate
// anything, so this fails before any request is attempted.
func (c CredentialBundle) Headers() (http.Header, error) {
	match := xsrfTokenPattern.FindStringSubmatch(c.Cookie)
	if match == nil {
		return nil, ErrMissingToken
	}

	header := http.Header{}
	header.Set("Cookie", c.Cookie)
	header.Set("User-Agent", c.UserAgent)
	header.Set("Referer", refererURL)
	header.Set("X-Xsrf-Token", match[1])

	return header, nil
}
