package github

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghscout/ghscout/internal/app"
	"github.com/ghscout/ghscout/internal/mock"
)

func checkAPIHeaders(req *http.Request, t *testing.T) {
	t.Helper()

	assert.Equal(t, "application/vnd.github.v3+json", req.Header.Get("Accept"))
	assert.Equal(t, "token token", req.Header.Get("Authorization"))
}

func TestClientUserProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doer     *mock.HTTPDoer
		login    string
		want     app.Member
		wantErr  bool
		errCheck func(*testing.T, error)
	}{
		{
			name: "status ok, public profile",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{
					[]byte(`{
						"login": "octocat",
						"name": "The Octocat",
						"email": "octocat@github.com"
					}`),
				},
			},
			login: "octocat",
			want:  app.Member{Login: "octocat", Name: "The Octocat", Email: "octocat@github.com"},
		},
		{
			name: "status ok, private name and email",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{
					[]byte(`{"login": "octocat", "name": null, "email": null}`),
				},
			},
			login: "octocat",
			want:  app.Member{Login: "octocat"},
		},
		{
			name: "status not found",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNotFound},
			},
			login:   "nosuchuser",
			wantErr: true,
			errCheck: func(t *testing.T, err error) {
				assert.True(t, app.IsNotFoundError(err))
			},
		},
		{
			name: "status unauthorized",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusUnauthorized},
			},
			login:   "octocat",
			wantErr: true,
			errCheck: func(t *testing.T, err error) {
				assert.True(t, app.IsAuthError(err))
			},
		},
		{
			name: "status forbidden with exhausted rate limit",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusForbidden},
				Headers: []http.Header{
					{"X-Ratelimit-Remaining": []string{"0"}},
				},
			},
			login:   "octocat",
			wantErr: true,
			errCheck: func(t *testing.T, err error) {
				assert.True(t, app.IsRateLimitError(err))
			},
		},
		{
			name: "status forbidden without rate limit markers",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusForbidden},
			},
			login:   "octocat",
			wantErr: true,
			errCheck: func(t *testing.T, err error) {
				assert.True(t, app.IsAuthError(err))
			},
		},
		{
			name: "status too many requests",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusTooManyRequests},
			},
			login:   "octocat",
			wantErr: true,
			errCheck: func(t *testing.T, err error) {
				assert.True(t, app.IsRateLimitError(err))
			},
		},
		{
			name: "transport error",
			doer: &mock.HTTPDoer{
				DoFunc: func(*http.Request) (*http.Response, error) {
					return nil, errors.New("connection refused")
				},
			},
			login:   "octocat",
			wantErr: true,
			errCheck: func(t *testing.T, err error) {
				assert.True(t, app.IsNetworkError(err))
			},
		},
		{
			name: "server error",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusInternalServerError},
			},
			login:   "octocat",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewClient(tt.doer, "https://fake", "token")
			got, err := c.UserProfile(context.Background(), tt.login)
			require.Equal(t, tt.wantErr, err != nil)
			if tt.errCheck != nil {
				tt.errCheck(t, err)
			}
			assert.Equal(t, tt.want, got)

			if len(tt.doer.Responses) > 0 {
				checkAPIHeaders(tt.doer.Responses[0].Request, t)
			}
		})
	}
}

func TestClientOrgPublicMembersPagination(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK, http.StatusOK},
		Bodies: [][]byte{
			[]byte(`[{"login": "alice"}, {"login": "bob"}]`),
			[]byte(`[{"login": "carol"}]`),
		},
		Headers: []http.Header{
			{"Link": []string{`<https://fake/orgs/someorg/public_members?page=2>; rel="next", <https://fake/orgs/someorg/public_members?page=2>; rel="last"`}},
			{},
		},
	}

	c := NewClient(doer, "https://fake", "token")
	members, err := c.OrgPublicMembers(context.Background(), "someorg")
	require.NoError(t, err)

	assert.Equal(t, []app.Member{
		{Login: "alice"},
		{Login: "bob"},
		{Login: "carol"},
	}, members)

	require.Len(t, doer.Responses, 2)
	assert.Equal(t, "100", doer.Responses[0].Request.URL.Query().Get("per_page"))
	assert.Equal(t, "2", doer.Responses[1].Request.URL.Query().Get("page"))
}

func TestClientOrganization(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies:   [][]byte{[]byte(`{"login": "someorg"}`)},
	}
	c := NewClient(doer, "https://fake", "token")
	require.NoError(t, c.Organization(context.Background(), "someorg"))

	doer = &mock.HTTPDoer{
		Statuses: []int{http.StatusNotFound},
	}
	c = NewClient(doer, "https://fake", "token")
	err := c.Organization(context.Background(), "nosuchorg")
	require.Error(t, err)
	assert.True(t, app.IsNotFoundError(err))
}

func TestClientReposByUser(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies: [][]byte{
			[]byte(`[
				{
					"id": 1296269,
					"name": "Hello-World",
					"full_name": "octocat/Hello-World",
					"owner": {"login": "octocat"}
				}
			]`),
		},
	}

	c := NewClient(doer, "https://fake", "token")
	repos, err := c.ReposByUser(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, []app.Repo{
		{ID: 1296269, Name: "Hello-World", FullName: "octocat/Hello-World", OwnerLogin: "octocat"},
	}, repos)

	require.Len(t, doer.Responses, 1)
	assert.Equal(t, "all", doer.Responses[0].Request.URL.Query().Get("type"))
}

func TestClientCommitsByAuthor(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies: [][]byte{
			[]byte(`[
				{
					"sha": "6dcb09b5b57875f334f61aebed695e2e4193db5e",
					"author": {"login": "octocat"},
					"commit": {"author": {"date": "2011-04-14T16:00:49Z"}}
				},
				{
					"sha": "0000000000000000000000000000000000000000",
					"author": null,
					"commit": {"author": {"date": "2011-04-15T16:00:49Z"}}
				}
			]`),
		},
	}

	c := NewClient(doer, "https://fake", "token")
	records, err := c.CommitsByAuthor(context.Background(), "octocat", "Hello-World", "octocat", "master")
	require.NoError(t, err)

	assert.Equal(t, []app.CommitRecord{
		{
			SHA:         "6dcb09b5b57875f334f61aebed695e2e4193db5e",
			AuthorLogin: "octocat",
			Date:        time.Date(2011, 4, 14, 16, 0, 49, 0, time.UTC),
		},
	}, records)

	require.Len(t, doer.Responses, 1)
	q := doer.Responses[0].Request.URL.Query()
	assert.Equal(t, "octocat", q.Get("author"))
	assert.Equal(t, "master", q.Get("sha"))
}

func TestClientBranches(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies: [][]byte{
			[]byte(`[{"name": "master"}, {"name": "dev"}]`),
		},
	}

	c := NewClient(doer, "https://fake", "token")
	branches, err := c.Branches(context.Background(), "octocat", "Hello-World")
	require.NoError(t, err)
	assert.Equal(t, []string{"master", "dev"}, branches)
}

func TestClientResponseTooLarge(t *testing.T) {
	t.Parallel()

	big := make([]byte, 1024*513)
	for i := range big {
		big[i] = 'x'
	}
	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies:   [][]byte{big},
	}

	c := NewClient(doer, "https://fake", "token")
	c.responseMaxSize = 1024 * 512
	_, err := c.UserProfile(context.Background(), "octocat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "larger than")
}
