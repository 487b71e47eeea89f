// Package affiliate rewrites outbound product URLs to carry the referral tag.
package affiliate

import "strings"

// AppendTag returns rawURL with the affiliate tag attached as a query
// parameter. A URL that already carries a tag= parameter is returned
// byte-identical, so repeated application is safe. Empty inputs pass through
// unchanged.
func AppendTag(rawURL, tag string) string {
	if rawURL == "" || tag == "" {
		return rawURL
	}
	if strings.Contains(rawURL, "tag=") {
		return rawURL
	}
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + "tag=" + tag
}
