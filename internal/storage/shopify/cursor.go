package shopify

import (
	"net/url"
	"regexp"
)

var nextLinkRegex = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

// PageCursor is an opaque position in a paginated product listing.
// The zero value means there are no more pages.
type PageCursor struct {
	url string
}

func firstPage(u string) PageCursor {
	return PageCursor{url: u}
}

// NextPageCursor extracts the rel="next" target from a Link header.
func NextPageCursor(linkHeader string) PageCursor {
	m := nextLinkRegex.FindStringSubmatch(linkHeader)
	if m == nil {
		return PageCursor{}
	}
	return PageCursor{url: m[1]}
}

// Done reports whether the listing is exhausted.
func (c PageCursor) Done() bool {
	return c.url == ""
}

func (c PageCursor) String() string {
	return c.url
}

// sameHost reports whether the cursor targets host.
func (c PageCursor) sameHost(host string) bool {
	u, err := url.Parse(c.url)
	if err != nil {
		return false
	}
	return u.Host == host
}
