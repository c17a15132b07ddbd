package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// GithubClient returns organization, user and commit data from github.
type GithubClient interface {
	// Organization checks that an organization exists.
	Organization(ctx context.Context, name string) error
	// OrgPublicMembers returns the public members of an organization
	// in api order. Returned members carry logins only.
	OrgPublicMembers(ctx context.Context, org string) ([]Member, error)
	// UserProfile returns the profile of a single user.
	UserProfile(ctx context.Context, login string) (Member, error)
	// ReposByUser returns all public repositories the user owns or contributes to.
	ReposByUser(ctx context.Context, login string) ([]Repo, error)
	// Branches returns the branch names of a repository.
	Branches(ctx context.Context, owner string, name string) ([]string, error)
	// CommitsByAuthor returns commits on one branch filtered by author login.
	CommitsByAuthor(ctx context.Context, owner string, name string, author string, branch string) ([]CommitRecord, error)
}

// Service is main apps entry point. Provides all app functionality.
type Service struct {
	client GithubClient
	l      logrus.FieldLogger
}

// NewService creates new Service instance.
func NewService(client GithubClient, l logrus.FieldLogger) *Service {
	return &Service{
		client: client,
		l:      l,
	}
}

// OrgMembers returns the public members of given organization, enriched with
// profile name and email where public.
//
// Members are returned in api order, not re-sorted. A failed profile lookup
// for a single member produces a warning and the member is kept login-only.
func (s *Service) OrgMembers(ctx context.Context, org string) ([]Member, []Warning, error) {
	if err := ValidateName(org); err != nil {
		return nil, nil, err
	}

	if err := s.client.Organization(ctx, org); err != nil {
		return nil, nil, fmt.Errorf("checking organization %q: %w", org, err)
	}

	members, err := s.client.OrgPublicMembers(ctx, org)
	if err != nil {
		return nil, nil, fmt.Errorf("listing members of %q: %w", org, err)
	}

	var warnings []Warning
	result := make([]Member, 0, len(members))
	for _, m := range members {
		profile, err := s.client.UserProfile(ctx, m.Login)
		if err != nil {
			s.l.Warnf("fetching profile for member %s: %v", m.Login, err)
			warnings = append(warnings, Warning{Subject: m.Login, Err: err})
			result = append(result, m)
			continue
		}
		result = append(result, profile)
	}

	return result, warnings, nil
}

// UserActivity returns the user's profile and a per-repository summary of the
// commits the user authored.
//
// Repositories the user never committed to are omitted. A failed fetch for a
// single repository produces a warning and the repository is skipped, the
// remaining repositories are still summarized.
func (s *Service) UserActivity(ctx context.Context, user string) (Member, []RepoCommitSummary, []Warning, error) {
	if err := ValidateName(user); err != nil {
		return Member{}, nil, nil, err
	}

	profile, err := s.client.UserProfile(ctx, user)
	if err != nil {
		return Member{}, nil, nil, fmt.Errorf("fetching profile for %q: %w", user, err)
	}

	repos, err := s.client.ReposByUser(ctx, user)
	if err != nil {
		return Member{}, nil, nil, fmt.Errorf("listing repositories for %q: %w", user, err)
	}

	var warnings []Warning
	summaries := make([]RepoCommitSummary, 0, len(repos))
	for _, repo := range repos {
		records, err := s.repoCommits(ctx, repo, user)
		if err != nil {
			s.l.Warnf("fetching commits for %s: %v", repo.FullName, err)
			warnings = append(warnings, Warning{Subject: repo.FullName, Err: err})
			continue
		}

		count, last := aggregateCommits(records, user)
		if count == 0 {
			continue
		}
		summaries = append(summaries, RepoCommitSummary{
			RepoName:       repo.FullName,
			Commits:        count,
			LastCommitDate: last,
		})
	}

	return profile, summaries, warnings, nil
}

// repoCommits collects the user's commits across all branches of a repository.
// The same commit reachable from multiple branches is reported once.
func (s *Service) repoCommits(ctx context.Context, repo Repo, author string) ([]CommitRecord, error) {
	branches, err := s.client.Branches(ctx, repo.OwnerLogin, repo.Name)
	if err != nil {
		return nil, fmt.Errorf("listing branches: %w", err)
	}

	seen := make(map[string]bool)
	var records []CommitRecord
	for _, branch := range branches {
		commits, err := s.client.CommitsByAuthor(ctx, repo.OwnerLogin, repo.Name, author, branch)
		if err != nil {
			return nil, fmt.Errorf("listing commits on branch %q: %w", branch, err)
		}
		for _, c := range commits {
			if seen[c.SHA] {
				continue
			}
			seen[c.SHA] = true
			records = append(records, c)
		}
	}

	return records, nil
}

// aggregateCommits counts records authored by author and finds the latest
// commit date. On equal dates the later record in input order wins.
func aggregateCommits(records []CommitRecord, author string) (int, time.Time) {
	var count int
	var last time.Time
	for _, r := range records {
		if r.AuthorLogin != author {
			continue
		}
		count++
		if !r.Date.Before(last) {
			last = r.Date
		}
	}

	return count, last
}
