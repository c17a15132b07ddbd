// Package ui defines the presentation contract shared by the terminal and
// web frontends, and implements the terminal one.
package ui

import (
	"context"

	"github.com/ghscout/ghscout/internal/app"
)

// Searcher provides the two lookups the frontends expose.
type Searcher interface {
	OrgMembers(ctx context.Context, org string) ([]app.Member, []app.Warning, error)
	UserActivity(ctx context.Context, user string) (app.Member, []app.RepoCommitSummary, []app.Warning, error)
}

var _ Searcher = (*app.Service)(nil)

// Presenter renders lookup results. Frontends hold one Presenter and feed it
// whatever the Searcher returned; it carries no business logic.
type Presenter interface {
	MembersResult(org string, members []app.Member, warnings []app.Warning)
	ActivityResult(user app.Member, summaries []app.RepoCommitSummary, warnings []app.Warning)
	Error(err error)
}
