package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ghscout/ghscout/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client fetches organization, user and commit data from the github rest api.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string

	perPage         int
	responseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
func NewClient(doer HTTPDoer, address string, authToken string) *Client {
	c := Client{
		doer:      doer,
		address:   address,
		authToken: authToken,

		perPage:         100,
		responseMaxSize: 1024 * 1024 * 10,
	}

	return &c
}

// Organization checks that given organization exists.
func (c *Client) Organization(ctx context.Context, name string) error {
	u := c.address + "/orgs/" + url.PathEscape(name)
	if _, _, err := c.get(ctx, u); err != nil {
		return fmt.Errorf("fetching organization: %w", err)
	}

	return nil
}

// OrgPublicMembers returns public members of given organization in api order.
// Returned members carry logins only, profiles must be fetched separately.
func (c *Client) OrgPublicMembers(ctx context.Context, org string) ([]app.Member, error) {
	u, err := url.Parse(c.address + "/orgs/" + url.PathEscape(org) + "/public_members")
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(c.perPage))
	u.RawQuery = v.Encode()

	var members []app.Member
	err = c.eachPage(ctx, u.String(), func(body []byte) error {
		var resp membersResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return fmt.Errorf("unmarshalling members response: %w", err)
		}
		members = append(members, resp.ToMembers()...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching members: %w", err)
	}

	return members, nil
}

// UserProfile returns the profile of given user.
func (c *Client) UserProfile(ctx context.Context, login string) (app.Member, error) {
	u := c.address + "/users/" + url.PathEscape(login)
	body, _, err := c.get(ctx, u)
	if err != nil {
		return app.Member{}, fmt.Errorf("fetching user: %w", err)
	}

	var resp userResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.Member{}, fmt.Errorf("unmarshalling user response: %w", err)
	}

	return resp.ToMember(), nil
}

// ReposByUser returns all public repositories given user owns or contributes to.
func (c *Client) ReposByUser(ctx context.Context, login string) ([]app.Repo, error) {
	u, err := url.Parse(c.address + "/users/" + url.PathEscape(login) + "/repos")
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	v := make(url.Values)
	v.Set("type", "all")
	v.Set("per_page", strconv.Itoa(c.perPage))
	u.RawQuery = v.Encode()

	var repos []app.Repo
	err = c.eachPage(ctx, u.String(), func(body []byte) error {
		var resp reposResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return fmt.Errorf("unmarshalling repos response: %w", err)
		}
		repos = append(repos, resp.ToRepos()...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching repos: %w", err)
	}

	return repos, nil
}

// Branches returns branch names of given repository.
func (c *Client) Branches(ctx context.Context, owner string, name string) ([]string, error) {
	u, err := url.Parse(c.address + fmt.Sprintf("/repos/%s/%s/branches", url.PathEscape(owner), url.PathEscape(name)))
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(c.perPage))
	u.RawQuery = v.Encode()

	var branches []string
	err = c.eachPage(ctx, u.String(), func(body []byte) error {
		var resp branchesResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return fmt.Errorf("unmarshalling branches response: %w", err)
		}
		branches = append(branches, resp.ToNames()...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching branches: %w", err)
	}

	return branches, nil
}

// CommitsByAuthor returns commits on given branch authored by given user.
// Commits github can't attribute to an account are skipped.
func (c *Client) CommitsByAuthor(ctx context.Context, owner string, name string, author string, branch string) ([]app.CommitRecord, error) {
	u, err := url.Parse(c.address + fmt.Sprintf("/repos/%s/%s/commits", url.PathEscape(owner), url.PathEscape(name)))
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	v := make(url.Values)
	v.Set("author", author)
	v.Set("sha", branch)
	v.Set("per_page", strconv.Itoa(c.perPage))
	u.RawQuery = v.Encode()

	var records []app.CommitRecord
	err = c.eachPage(ctx, u.String(), func(body []byte) error {
		var resp commitsResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return fmt.Errorf("unmarshalling commits response: %w", err)
		}
		records = append(records, resp.ToCommitRecords()...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching commits: %w", err)
	}

	return records, nil
}

// get fetches a single resource.
func (c *Client) get(ctx context.Context, rawurl string) ([]byte, http.Header, error) {
	req, err := http.NewRequest(http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("creating http request: %w", err)
	}

	return c.makeRequest(ctx, req)
}

// eachPage walks all pages starting at rawurl and calls fn with each body.
// Pages are fetched lazily, one at a time; the walk is not restartable.
func (c *Client) eachPage(ctx context.Context, rawurl string, fn func(body []byte) error) error {
	p := c.pages(rawurl)
	for {
		body, ok, err := p.next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := fn(body); err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request) ([]byte, http.Header, error) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "token "+c.authToken)
	}

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, nil, app.NetworkError(fmt.Sprintf("doing http request: %v", err))
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if err := c.checkStatus(resp); err != nil {
		return nil, nil, err
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(c.responseMaxSize)+1))
	if err != nil {
		return nil, nil, app.NetworkError(fmt.Sprintf("reading http response body: %v", err))
	}
	if len(b) > c.responseMaxSize {
		return nil, nil, fmt.Errorf("response body larger than %d bytes", c.responseMaxSize)
	}

	return b, resp.Header, nil
}

func (c *Client) checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode < 400:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return app.NotFoundError("resource not found")
	case resp.StatusCode == http.StatusUnauthorized:
		return app.AuthError("api rejected the auth token")
	case resp.StatusCode == http.StatusTooManyRequests:
		return app.RateLimitError("api rate limit exceeded")
	case resp.StatusCode == http.StatusForbidden:
		if rateLimitExhausted(resp.Header) {
			return app.RateLimitError("api rate limit exceeded")
		}
		return app.AuthError("api refused access to the resource")
	default:
		return fmt.Errorf("got invalid http status code: %d", resp.StatusCode)
	}
}

func rateLimitExhausted(h http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if remaining, err := strconv.Atoi(s); err == nil && remaining == 0 {
			return true
		}
	}
	return false
}
