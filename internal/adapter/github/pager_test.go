package github

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghscout/ghscout/internal/mock"
)

func TestNextLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "empty header",
			header: "",
			want:   "",
		},
		{
			name:   "next and last",
			header: `<https://api.github.com/resource?page=2>; rel="next", <https://api.github.com/resource?page=5>; rel="last"`,
			want:   "https://api.github.com/resource?page=2",
		},
		{
			name:   "prev first and next",
			header: `<https://api.github.com/resource?page=1>; rel="prev", <https://api.github.com/resource?page=1>; rel="first", <https://api.github.com/resource?page=3>; rel="next"`,
			want:   "https://api.github.com/resource?page=3",
		},
		{
			name:   "no next on last page",
			header: `<https://api.github.com/resource?page=4>; rel="prev", <https://api.github.com/resource?page=1>; rel="first"`,
			want:   "",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, nextLink(tt.header))
		})
	}
}

func TestPagerIsLazyAndFinite(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK, http.StatusOK},
		Bodies: [][]byte{
			[]byte(`["page1"]`),
			[]byte(`["page2"]`),
		},
		Headers: []http.Header{
			{"Link": []string{`<https://fake/resource?page=2>; rel="next"`}},
			{},
		},
	}

	c := NewClient(doer, "https://fake", "token")
	p := c.pages("https://fake/resource")

	// Nothing is fetched before the first next call.
	assert.Len(t, doer.Responses, 0)

	body, ok, err := p.next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["page1"]`, string(body))
	assert.Len(t, doer.Responses, 1)

	body, ok, err = p.next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["page2"]`, string(body))

	// Exhausted, stays exhausted.
	_, ok, err = p.next(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = p.next(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, doer.Responses, 2)
}
