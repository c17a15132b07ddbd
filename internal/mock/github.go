package mock

import (
	"context"

	"github.com/ghscout/ghscout/internal/app"
)

// GithubClient mocks app.GithubClient.
type GithubClient struct {
	OrganizationFunc     func(ctx context.Context, name string) error
	OrgPublicMembersFunc func(ctx context.Context, org string) ([]app.Member, error)
	UserProfileFunc      func(ctx context.Context, login string) (app.Member, error)
	ReposByUserFunc      func(ctx context.Context, login string) ([]app.Repo, error)
	BranchesFunc         func(ctx context.Context, owner string, name string) ([]string, error)
	CommitsByAuthorFunc  func(ctx context.Context, owner string, name string, author string, branch string) ([]app.CommitRecord, error)
}

// Organization checks that an organization exists.
func (m *GithubClient) Organization(ctx context.Context, name string) error {
	if m.OrganizationFunc != nil {
		return m.OrganizationFunc(ctx, name)
	}

	return nil
}

// OrgPublicMembers returns public members of given organization.
func (m *GithubClient) OrgPublicMembers(ctx context.Context, org string) ([]app.Member, error) {
	if m.OrgPublicMembersFunc != nil {
		return m.OrgPublicMembersFunc(ctx, org)
	}

	return []app.Member{}, nil
}

// UserProfile returns the profile of given user.
func (m *GithubClient) UserProfile(ctx context.Context, login string) (app.Member, error) {
	if m.UserProfileFunc != nil {
		return m.UserProfileFunc(ctx, login)
	}

	return app.Member{Login: login}, nil
}

// ReposByUser returns repositories of given user.
func (m *GithubClient) ReposByUser(ctx context.Context, login string) ([]app.Repo, error) {
	if m.ReposByUserFunc != nil {
		return m.ReposByUserFunc(ctx, login)
	}

	return []app.Repo{}, nil
}

// Branches returns branch names of given repository.
func (m *GithubClient) Branches(ctx context.Context, owner string, name string) ([]string, error) {
	if m.BranchesFunc != nil {
		return m.BranchesFunc(ctx, owner, name)
	}

	return []string{"master"}, nil
}

// CommitsByAuthor returns commits on given branch authored by given user.
func (m *GithubClient) CommitsByAuthor(ctx context.Context, owner string, name string, author string, branch string) ([]app.CommitRecord, error) {
	if m.CommitsByAuthorFunc != nil {
		return m.CommitsByAuthorFunc(ctx, owner, name, author, branch)
	}

	return []app.CommitRecord{}, nil
}
