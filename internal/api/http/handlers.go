package http

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/ghscout/ghscout/internal/app"
)

// Service provides the lookups exposed by the web frontend.
type Service interface {
	OrgMembers(ctx context.Context, org string) ([]app.Member, []app.Warning, error)
	UserActivity(ctx context.Context, user string) (app.Member, []app.RepoCommitSummary, []app.Warning, error)
}

type memberResponse struct {
	Login string `json:"login"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type repoSummaryResponse struct {
	Repo       string `json:"repo"`
	Commits    int    `json:"commits"`
	LastCommit string `json:"lastCommit"`
}

type searchResponse struct {
	Type     string                `json:"type"`
	Name     string                `json:"name"`
	Members  []memberResponse      `json:"members,omitempty"`
	User     *memberResponse       `json:"user,omitempty"`
	Repos    []repoSummaryResponse `json:"repos,omitempty"`
	Warnings []string              `json:"warnings,omitempty"`
}

func newMemberResponse(m app.Member) memberResponse {
	return memberResponse{
		Login: m.Login,
		Name:  m.Name,
		Email: m.Email,
	}
}

func newMembersSearchResponse(org string, members []app.Member, warnings []app.Warning) searchResponse {
	resp := searchResponse{
		Type:    "org",
		Name:    org,
		Members: make([]memberResponse, 0, len(members)),
	}
	for _, m := range members {
		resp.Members = append(resp.Members, newMemberResponse(m))
	}
	resp.Warnings = warningStrings(warnings)

	return resp
}

func newActivitySearchResponse(user app.Member, summaries []app.RepoCommitSummary, warnings []app.Warning) searchResponse {
	u := newMemberResponse(user)
	resp := searchResponse{
		Type:  "user",
		Name:  user.Login,
		User:  &u,
		Repos: make([]repoSummaryResponse, 0, len(summaries)),
	}
	for _, s := range summaries {
		resp.Repos = append(resp.Repos, repoSummaryResponse{
			Repo:       s.RepoName,
			Commits:    s.Commits,
			LastCommit: s.LastCommitDate.Format("2006-01-02 15:04:05"),
		})
	}
	resp.Warnings = warningStrings(warnings)

	return resp
}

func warningStrings(warnings []app.Warning) []string {
	ss := make([]string, 0, len(warnings))
	for _, w := range warnings {
		ss = append(ss, w.String())
	}

	return ss
}

// NewSearchHandler creates handlerfunc serving org and user searches as json.
func NewSearchHandler(service Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := r.URL.Query().Get("type")
		name := r.URL.Query().Get("name")

		var resp searchResponse
		var err error
		switch kind {
		case "org":
			var members []app.Member
			var warnings []app.Warning
			members, warnings, err = service.OrgMembers(r.Context(), name)
			if err == nil {
				resp = newMembersSearchResponse(name, members, warnings)
			}
		case "user":
			var user app.Member
			var summaries []app.RepoCommitSummary
			var warnings []app.Warning
			user, summaries, warnings, err = service.UserActivity(r.Context(), name)
			if err == nil {
				resp = newActivitySearchResponse(user, summaries, warnings)
			}
		default:
			http.Error(w, "type must be 'org' or 'user'", http.StatusBadRequest)
			return
		}

		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-type", "application/json; charset=utf-8")
		_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(resp)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case app.IsInvalidRequestError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case app.IsNotFoundError(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case app.IsAuthError(err):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case app.IsRateLimitError(err):
		http.Error(w, err.Error(), http.StatusTooManyRequests)
	case app.IsNetworkError(err):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, "", http.StatusInternalServerError)
	}
}
