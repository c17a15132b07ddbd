package ui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ghscout/ghscout/internal/app"
)

const dateLayout = "2006-01-02 15:04:05"

// TermPresenter renders results as aligned text columns.
type TermPresenter struct {
	out io.Writer
}

var _ Presenter = &TermPresenter{}

// NewTermPresenter creates new TermPresenter writing to out.
func NewTermPresenter(out io.Writer) *TermPresenter {
	return &TermPresenter{out: out}
}

// MembersResult renders an organization member list.
func (p *TermPresenter) MembersResult(org string, members []app.Member, warnings []app.Warning) {
	fmt.Fprintf(p.out, "\nMembers of organization '%s':\n\n", org)
	if len(members) == 0 {
		fmt.Fprintf(p.out, "No public members for organization '%s'\n", org)
		p.printWarnings(warnings)
		return
	}

	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "USERNAME\tNAME\tEMAIL")
	for _, m := range members {
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.Login, m.Name, m.Email)
	}
	w.Flush()

	fmt.Fprintf(p.out, "\nTotal members: %d\n", len(members))
	p.printWarnings(warnings)
}

// ActivityResult renders a user profile and per-repo commit summaries.
func (p *TermPresenter) ActivityResult(user app.Member, summaries []app.RepoCommitSummary, warnings []app.Warning) {
	fmt.Fprintf(p.out, "\nUser: %s", user.Login)
	if user.Name != "" {
		fmt.Fprintf(p.out, " (%s)", user.Name)
	}
	if user.Email != "" {
		fmt.Fprintf(p.out, " <%s>", user.Email)
	}
	fmt.Fprint(p.out, "\n\n")

	if len(summaries) == 0 {
		fmt.Fprintln(p.out, "No repositories with commits found for user")
		p.printWarnings(warnings)
		return
	}

	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REPOSITORY\tCOMMITS\tLAST COMMIT")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%s\n", s.RepoName, s.Commits, s.LastCommitDate.Format(dateLayout))
	}
	w.Flush()

	p.printWarnings(warnings)
}

// Error renders a failed lookup.
func (p *TermPresenter) Error(err error) {
	fmt.Fprintf(p.out, "\nSearch failed: %v\n", err)
}

func (p *TermPresenter) printWarnings(warnings []app.Warning) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(p.out, "\nWarnings:")
	for _, w := range warnings {
		fmt.Fprintf(p.out, "  %s\n", w)
	}
}
