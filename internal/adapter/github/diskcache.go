package github

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ghscout/ghscout/internal/app"
)

// KVStore provides simple kv data storage.
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
}

// ClientWithDiskCache wraps github client and keeps fetched profile, member
// and repo data in a persistent kv store, so repeated searches across program
// runs don't repeat identical api calls.
//
// Entries carry a creation timestamp; entries older than ttl are refetched.
// Lookups are fully synchronous, a miss fetches, stores and returns. A store
// read or write failure is logged and the lookup falls back to the api.
type ClientWithDiskCache struct {
	client app.GithubClient
	store  KVStore
	ttl    time.Duration
	l      logrus.FieldLogger
}

var _ app.GithubClient = &ClientWithDiskCache{}

// NewClientWithDiskCache creates new ClientWithDiskCache instance.
func NewClientWithDiskCache(
	client app.GithubClient,
	store KVStore,
	ttl time.Duration,
	l logrus.FieldLogger,
) *ClientWithDiskCache {
	return &ClientWithDiskCache{
		client: client,
		store:  store,
		ttl:    ttl,
		l:      l,
	}
}

// Organization checks that given organization exists.
func (c *ClientWithDiskCache) Organization(ctx context.Context, name string) error {
	return c.client.Organization(ctx, name)
}

// OrgPublicMembers returns public members of given organization in api order.
func (c *ClientWithDiskCache) OrgPublicMembers(ctx context.Context, org string) ([]app.Member, error) {
	key := []byte("members/" + org)

	var members []app.Member
	if ok := c.read(key, &members); ok {
		return members, nil
	}

	members, err := c.client.OrgPublicMembers(ctx, org)
	if err != nil {
		return members, err
	}
	c.write(key, members)

	return members, nil
}

// UserProfile returns the profile of given user.
func (c *ClientWithDiskCache) UserProfile(ctx context.Context, login string) (app.Member, error) {
	key := []byte("profile/" + login)

	var profile app.Member
	if ok := c.read(key, &profile); ok {
		return profile, nil
	}

	profile, err := c.client.UserProfile(ctx, login)
	if err != nil {
		return profile, err
	}
	c.write(key, profile)

	return profile, nil
}

// ReposByUser returns all public repositories given user owns or contributes to.
func (c *ClientWithDiskCache) ReposByUser(ctx context.Context, login string) ([]app.Repo, error) {
	key := []byte("repos/" + login)

	var repos []app.Repo
	if ok := c.read(key, &repos); ok {
		return repos, nil
	}

	repos, err := c.client.ReposByUser(ctx, login)
	if err != nil {
		return repos, err
	}
	c.write(key, repos)

	return repos, nil
}

// Branches returns branch names of given repository.
func (c *ClientWithDiskCache) Branches(ctx context.Context, owner string, name string) ([]string, error) {
	return c.client.Branches(ctx, owner, name)
}

// CommitsByAuthor returns commits on given branch authored by given user.
func (c *ClientWithDiskCache) CommitsByAuthor(ctx context.Context, owner string, name string, author string, branch string) ([]app.CommitRecord, error) {
	return c.client.CommitsByAuthor(ctx, owner, name, author, branch)
}

type diskCacheEntry struct {
	Created int64           `json:"created"`
	Data    json.RawMessage `json:"data"`
}

// read loads a fresh entry into v. Returns false on miss, expired entry or
// any store/decode problem.
func (c *ClientWithDiskCache) read(key []byte, v interface{}) bool {
	data, err := c.store.ReadKey(key)
	if err != nil {
		c.l.Warnf("disk cache: reading key %s: %v", key, err)
		return false
	}
	if data == nil {
		return false
	}

	var entry diskCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.l.Warnf("disk cache: unserializing entry for key %s: %v", key, err)
		return false
	}
	if time.Unix(entry.Created, 0).Add(c.ttl).Before(time.Now()) {
		return false
	}
	if err := json.Unmarshal(entry.Data, v); err != nil {
		c.l.Warnf("disk cache: unserializing data for key %s: %v", key, err)
		return false
	}

	return true
}

func (c *ClientWithDiskCache) write(key []byte, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		c.l.Warnf("disk cache: serializing data for key %s: %v", key, err)
		return
	}
	entry, err := json.Marshal(diskCacheEntry{
		Created: time.Now().Unix(),
		Data:    data,
	})
	if err != nil {
		c.l.Warnf("disk cache: serializing entry for key %s: %v", key, err)
		return
	}
	if err := c.store.UpdateKey(key, entry); err != nil {
		c.l.Warnf("disk cache: writing key %s: %v", key, err)
	}
}
