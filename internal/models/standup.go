package models

// ProjectCommits is the per-repository grouping of commit messages fed
// into prompt construction. Commits without a message are filtered out
// before a bundle is built.
type ProjectCommits struct {
	RepoName       string   `json:"repo_name"`
	CommitMessages []string `json:"commit_messages"`
}

// ProjectSummary is one project's entry in a standup summary
type ProjectSummary struct {
	Name  string   `json:"name"`
	Tasks []string `json:"tasks"`
}

// StandupSummary is the shape the model's reply is asked to conform to
type StandupSummary struct {
	Projects []ProjectSummary `json:"projects"`
}
