package github

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghscout/ghscout/internal/app"
	"github.com/ghscout/ghscout/internal/mock"
)

func TestNewCachedClientInvalidSize(t *testing.T) {
	t.Parallel()

	_, err := NewCachedClient(&mock.GithubClient{}, 0, time.Minute)
	assert.Error(t, err)
}

func TestCachedClientUserProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		logins        []string
		callsInterval time.Duration
		ttl           time.Duration
		wantCalls     int
	}{
		{
			name:          "same login served from cache",
			logins:        []string{"alice", "alice", "alice"},
			callsInterval: time.Microsecond,
			ttl:           time.Minute,
			wantCalls:     1,
		},
		{
			name:          "different logins each fetched",
			logins:        []string{"alice", "bob", "alice", "bob"},
			callsInterval: time.Microsecond,
			ttl:           time.Minute,
			wantCalls:     2,
		},
		{
			name:          "expiring ttl refetches",
			logins:        []string{"alice", "alice", "alice"},
			callsInterval: 5 * time.Millisecond,
			ttl:           time.Millisecond,
			wantCalls:     3,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls int
			client := &mock.GithubClient{
				UserProfileFunc: func(ctx context.Context, login string) (app.Member, error) {
					calls++
					return app.Member{Login: login}, nil
				},
			}
			// Cache size 2 fits both logins used in the tables.
			cached, err := NewCachedClient(client, 2, tt.ttl)
			require.NoError(t, err)

			for _, login := range tt.logins {
				got, err := cached.UserProfile(context.Background(), login)
				require.NoError(t, err)
				assert.Equal(t, app.Member{Login: login}, got)
				time.Sleep(tt.callsInterval)
			}
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestCachedClientOrgPublicMembers(t *testing.T) {
	t.Parallel()

	members := []app.Member{{Login: "alice"}, {Login: "bob"}}

	var calls int
	client := &mock.GithubClient{
		OrgPublicMembersFunc: func(ctx context.Context, org string) ([]app.Member, error) {
			calls++
			return members, nil
		},
	}
	cached, err := NewCachedClient(client, 10, time.Minute)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := cached.OrgPublicMembers(context.Background(), "someorg")
		require.NoError(t, err)
		assert.Equal(t, members, got)
	}
	assert.Equal(t, 1, calls)
}

func TestCachedClientReposByUser(t *testing.T) {
	t.Parallel()

	repos := []app.Repo{{ID: 1, Name: "r", FullName: "u/r", OwnerLogin: "u"}}

	var calls int
	client := &mock.GithubClient{
		ReposByUserFunc: func(ctx context.Context, login string) ([]app.Repo, error) {
			calls++
			return repos, nil
		},
	}
	cached, err := NewCachedClient(client, 10, time.Minute)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := cached.ReposByUser(context.Background(), "u")
		require.NoError(t, err)
		assert.Equal(t, repos, got)
	}
	assert.Equal(t, 1, calls)
}

func TestCachedClientCommitsPassThrough(t *testing.T) {
	t.Parallel()

	var calls int
	client := &mock.GithubClient{
		CommitsByAuthorFunc: func(ctx context.Context, owner, name, author, branch string) ([]app.CommitRecord, error) {
			calls++
			return nil, nil
		},
	}
	cached, err := NewCachedClient(client, 10, time.Minute)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := cached.CommitsByAuthor(context.Background(), "u", "r", "u", "main")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)
}
