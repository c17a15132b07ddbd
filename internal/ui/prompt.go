package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Prompt runs the interactive terminal flow: pick a search kind, enter a
// name, view results, repeat until 'exit'.
type Prompt struct {
	searcher  Searcher
	presenter Presenter
	in        io.Reader
	out       io.Writer
}

// NewPrompt creates new Prompt instance.
func NewPrompt(searcher Searcher, presenter Presenter, in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		searcher:  searcher,
		presenter: presenter,
		in:        in,
		out:       out,
	}
}

// Run blocks reading commands until the user exits or input ends.
func (p *Prompt) Run(ctx context.Context) error {
	fmt.Fprintln(p.out, "Welcome to ghscout, a simple GitHub search.")

	scanner := bufio.NewScanner(p.in)
	for {
		fmt.Fprintln(p.out, "\nWhat kind of search would you like to run?")
		fmt.Fprintln(p.out, "  o    - list public members of an organization")
		fmt.Fprintln(p.out, "  u    - list repositories a user has committed to")
		fmt.Fprintln(p.out, "  exit - quit")

		choice, ok := p.readLine(scanner)
		if !ok {
			return scanner.Err()
		}

		switch strings.ToLower(choice) {
		case "o":
			name, ok := p.readName(scanner, "organization")
			if !ok {
				continue
			}
			p.searchOrg(ctx, name)
		case "u":
			name, ok := p.readName(scanner, "user")
			if !ok {
				continue
			}
			p.searchUser(ctx, name)
		case "exit":
			fmt.Fprintln(p.out, "Hope you found what you were looking for!")
			return nil
		default:
			fmt.Fprintln(p.out, "Input isn't recognized, please use one of the listed commands.")
		}
	}
}

func (p *Prompt) searchOrg(ctx context.Context, org string) {
	fmt.Fprintln(p.out, "This may take some time, thank you for your patience...")
	members, warnings, err := p.searcher.OrgMembers(ctx, org)
	if err != nil {
		p.presenter.Error(err)
		return
	}
	p.presenter.MembersResult(org, members, warnings)
}

func (p *Prompt) searchUser(ctx context.Context, user string) {
	fmt.Fprintln(p.out, "This may take some time, thank you for your patience...")
	profile, summaries, warnings, err := p.searcher.UserActivity(ctx, user)
	if err != nil {
		p.presenter.Error(err)
		return
	}
	p.presenter.ActivityResult(profile, summaries, warnings)
}

// readName asks for a name to search. Returns ok=false when the user typed
// '-r' to restart or input ended.
func (p *Prompt) readName(scanner *bufio.Scanner, kind string) (string, bool) {
	fmt.Fprintf(p.out, "Enter GitHub %s name to search ('-r' restarts):\n", kind)
	name, ok := p.readLine(scanner)
	if !ok || name == "-r" {
		return "", false
	}

	return name, true
}

func (p *Prompt) readLine(scanner *bufio.Scanner) (string, bool) {
	fmt.Fprint(p.out, "> ")
	if !scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(scanner.Text()), true
}
