package models

// MultiRepoCommitsRequest is the body of POST /commits/from-repos
type MultiRepoCommitsRequest struct {
	RepoNames []string `json:"repo_names"`
}

// SummaryRequest is the body of POST /commits/summary/by-repos.
// ExtraInfo is optional free-form context folded into the standup prompt.
type SummaryRequest struct {
	RepoNames []string `json:"repo_names"`
	ExtraInfo string   `json:"extra_info,omitempty"`
}
