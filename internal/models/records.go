package models

// Repository represents a repository entry returned by the GitHub API,
// flattened to the fields the frontend cares about
type Repository struct {
	Name            string  `json:"name"`
	Owner           string  `json:"owner"`
	Private         bool    `json:"private"`
	FullName        string  `json:"full_name"`
	HTMLURL         string  `json:"html_url"`
	Description     *string `json:"description"`
	StargazersCount int     `json:"stargazers_count"`
	Language        *string `json:"language"`
}

// Branch represents a branch entry of a repository
type Branch struct {
	Name      string `json:"name"`
	Protected bool   `json:"protected"`
	CommitSHA string `json:"commit_sha"`
}

// Commit represents a single commit, flattened from the nested GitHub
// commit resource. Author is nil when GitHub cannot map the commit to a
// user account.
type Commit struct {
	SHA           string  `json:"sha"`
	Author        *string `json:"author"`
	CommitMessage string  `json:"commit_message"`
	Date          string  `json:"date"`
	HTMLURL       string  `json:"html_url"`
}

// RepoCommits groups the commits fetched for one repository
type RepoCommits struct {
	RepoName string   `json:"repo_name"`
	Commits  []Commit `json:"commits"`
}
