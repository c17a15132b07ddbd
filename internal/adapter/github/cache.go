package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/ghscout/ghscout/internal/app"
)

// CachedClient wraps github client with an in-memory caching layer.
//
// Profile, member list and repo list lookups are cached, so enriching org
// members or re-running a search doesn't repeat identical api calls.
// Branch and commit lookups always pass through.
type CachedClient struct {
	client        app.GithubClient
	profilesCache *lru.Cache
	membersCache  *lru.Cache
	reposCache    *lru.Cache
	ttl           time.Duration
}

var _ app.GithubClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	profilesCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for profiles: %w", err)
	}
	membersCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for members: %w", err)
	}
	reposCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for repos: %w", err)
	}

	return &CachedClient{
		client:        client,
		profilesCache: profilesCache,
		membersCache:  membersCache,
		reposCache:    reposCache,
		ttl:           ttl,
	}, nil
}

// Organization checks that given organization exists.
func (c *CachedClient) Organization(ctx context.Context, name string) error {
	return c.client.Organization(ctx, name)
}

// OrgPublicMembers returns public members of given organization in api order.
func (c *CachedClient) OrgPublicMembers(ctx context.Context, org string) ([]app.Member, error) {
	if val, ok := c.membersCache.Get(org); ok {
		entry := val.(membersCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	members, err := c.client.OrgPublicMembers(ctx, org)
	if err != nil {
		return members, err
	}

	c.membersCache.Add(org, membersCacheEntry{
		created: time.Now(),
		data:    members,
	})

	return members, nil
}

// UserProfile returns the profile of given user.
func (c *CachedClient) UserProfile(ctx context.Context, login string) (app.Member, error) {
	if val, ok := c.profilesCache.Get(login); ok {
		entry := val.(profileCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	profile, err := c.client.UserProfile(ctx, login)
	if err != nil {
		return profile, err
	}

	c.profilesCache.Add(login, profileCacheEntry{
		created: time.Now(),
		data:    profile,
	})

	return profile, nil
}

// ReposByUser returns all public repositories given user owns or contributes to.
func (c *CachedClient) ReposByUser(ctx context.Context, login string) ([]app.Repo, error) {
	if val, ok := c.reposCache.Get(login); ok {
		entry := val.(reposCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	repos, err := c.client.ReposByUser(ctx, login)
	if err != nil {
		return repos, err
	}

	c.reposCache.Add(login, reposCacheEntry{
		created: time.Now(),
		data:    repos,
	})

	return repos, nil
}

// Branches returns branch names of given repository.
func (c *CachedClient) Branches(ctx context.Context, owner string, name string) ([]string, error) {
	return c.client.Branches(ctx, owner, name)
}

// CommitsByAuthor returns commits on given branch authored by given user.
func (c *CachedClient) CommitsByAuthor(ctx context.Context, owner string, name string, author string, branch string) ([]app.CommitRecord, error) {
	return c.client.CommitsByAuthor(ctx, owner, name, author, branch)
}

type profileCacheEntry struct {
	created time.Time
	data    app.Member
}

type membersCacheEntry struct {
	created time.Time
	data    []app.Member
}

type reposCacheEntry struct {
	created time.Time
	data    []app.Repo
}
