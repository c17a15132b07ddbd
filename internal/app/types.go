package app

import (
	"fmt"
	"time"
)

// Member is a GitHub user profile. Name and Email are empty
// when the user didn't make them public.
type Member struct {
	Login string
	Name  string
	Email string
}

// Repo identifies a single repository.
type Repo struct {
	ID         int
	Name       string
	FullName   string
	OwnerLogin string
}

// CommitRecord is a single commit attributed to a user.
// Records are consumed by aggregation only and not kept afterwards.
type CommitRecord struct {
	SHA         string
	AuthorLogin string
	Date        time.Time
}

// RepoCommitSummary describes one user's commit activity in one repository.
type RepoCommitSummary struct {
	// RepoName is the full "owner/name" form, so repositories with
	// equal short names stay distinguishable.
	RepoName       string
	Commits        int
	LastCommitDate time.Time
}

// Warning reports a recoverable per-item failure encountered during a lookup.
// The affected item is skipped, the rest of the result is still valid.
type Warning struct {
	Subject string
	Err     error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Subject, w.Err)
}
