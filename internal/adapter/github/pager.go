package github

import (
	"context"
	"strings"
)

// pager is a lazy, finite sequence of response bodies for a paginated
// endpoint. Each next call fetches exactly one page; after the last page
// (no rel="next" link) the pager is exhausted and cannot be restarted.
type pager struct {
	c    *Client
	next func(ctx context.Context) ([]byte, bool, error)
}

func (c *Client) pages(rawurl string) *pager {
	p := &pager{c: c}

	nextURL := rawurl
	p.next = func(ctx context.Context) ([]byte, bool, error) {
		if nextURL == "" {
			return nil, false, nil
		}

		body, header, err := p.c.get(ctx, nextURL)
		if err != nil {
			return nil, false, err
		}
		nextURL = nextLink(header.Get("Link"))

		return body, true, nil
	}

	return p
}

// nextLink extracts the rel="next" url from an RFC 5988 Link header.
// Returns empty string when there is no next page.
func nextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		sections := strings.Split(part, ";")
		if len(sections) < 2 {
			continue
		}

		u := strings.Trim(strings.TrimSpace(sections[0]), "<>")
		for _, attr := range sections[1:] {
			if strings.TrimSpace(attr) == `rel="next"` {
				return u
			}
		}
	}

	return ""
}
