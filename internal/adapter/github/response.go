package github

import (
	"time"

	"github.com/ghscout/ghscout/internal/app"
)

type membersResponse []struct {
	Login string `json:"login"`
}

func (r membersResponse) ToMembers() []app.Member {
	ms := make([]app.Member, 0, len(r))
	for _, el := range r {
		ms = append(ms, app.Member{
			Login: el.Login,
		})
	}

	return ms
}

type userResponse struct {
	Login string  `json:"login"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (r userResponse) ToMember() app.Member {
	m := app.Member{
		Login: r.Login,
	}
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Email != nil {
		m.Email = *r.Email
	}

	return m
}

type reposResponse []struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Owner    struct {
		Login string `json:"login"`
	} `json:"owner"`
}

func (r reposResponse) ToRepos() []app.Repo {
	rs := make([]app.Repo, 0, len(r))
	for _, el := range r {
		rs = append(rs, app.Repo{
			ID:         el.ID,
			Name:       el.Name,
			FullName:   el.FullName,
			OwnerLogin: el.Owner.Login,
		})
	}

	return rs
}

type branchesResponse []struct {
	Name string `json:"name"`
}

func (r branchesResponse) ToNames() []string {
	ns := make([]string, 0, len(r))
	for _, el := range r {
		ns = append(ns, el.Name)
	}

	return ns
}

type commitsResponse []struct {
	SHA    string `json:"sha"`
	Author *struct {
		Login string `json:"login"`
	} `json:"author"`
	Commit struct {
		Author struct {
			Date time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

// ToCommitRecords maps commits to records. Commits without an author account
// (github couldn't attribute the commit email to a user) are skipped.
func (r commitsResponse) ToCommitRecords() []app.CommitRecord {
	rs := make([]app.CommitRecord, 0, len(r))
	for _, el := range r {
		if el.Author == nil {
			continue
		}
		rs = append(rs, app.CommitRecord{
			SHA:         el.SHA,
			AuthorLogin: el.Author.Login,
			Date:        el.Commit.Author.Date,
		})
	}

	return rs
}
