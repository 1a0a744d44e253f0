package standup

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahidhasan98/standup-summarizer/internal/github"
	"github.com/nahidhasan98/standup-summarizer/internal/logger"
	"github.com/nahidhasan98/standup-summarizer/internal/models"
)

// fakeHost serves canned commits per repository name and records the
// arguments it was called with.
type fakeHost struct {
	repos       []models.Repository
	branches    []models.Branch
	commits     map[string][]models.Commit
	err         error
	fetchedISOs [][2]string
	fetched     []string
}

func (f *fakeHost) ListRepositories(ctx context.Context, token, organization string) ([]models.Repository, error) {
	return f.repos, f.err
}

func (f *fakeHost) ListBranches(ctx context.Context, token, repoFullName string) ([]models.Branch, error) {
	return f.branches, f.err
}

func (f *fakeHost) FetchCommits(ctx context.Context, token, repoName, startISO, endISO, author, organization string) ([]models.Commit, error) {
	f.fetched = append(f.fetched, repoName)
	f.fetchedISOs = append(f.fetchedISOs, [2]string{startISO, endISO})
	if f.err != nil {
		return nil, f.err
	}
	return f.commits[repoName], nil
}

// fakeSummarizer captures the prompt and replies with a fixed value.
type fakeSummarizer struct {
	prompt string
	result any
	err    error
}

func (f *fakeSummarizer) Summarize(ctx context.Context, prompt string) (any, error) {
	f.prompt = prompt
	return f.result, f.err
}

func commit(msg string) models.Commit {
	author := "octocat"
	return models.Commit{SHA: "abc", Author: &author, CommitMessage: msg, Date: "2024-02-01T10:00:00Z"}
}

func newService(host *fakeHost, ai Summarizer) *Service {
	return New(host, ai, logger.New("error", "json"))
}

func TestListRepos(t *testing.T) {
	host := &fakeHost{repos: []models.Repository{{Name: "demo", FullName: "octocat/demo"}}}
	resp := newService(host, nil).ListRepos(context.Background(), "tok", "")

	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.Equal(t, "Repositories fetched successfully.", resp.Message)
	data := resp.Data.(map[string]any)
	assert.Len(t, data["repositories"], 1)
}

func TestListReposUpstreamFailureDegradesToEmpty(t *testing.T) {
	host := &fakeHost{err: github.ErrUpstream}
	resp := newService(host, nil).ListRepos(context.Background(), "bad", "")

	require.Equal(t, models.StatusSuccess, resp.Status)
	data := resp.Data.(map[string]any)
	assert.Empty(t, data["repositories"])
}

func TestListBranches(t *testing.T) {
	host := &fakeHost{branches: []models.Branch{{Name: "main", Protected: true, CommitSHA: "abc"}}}
	resp := newService(host, nil).ListBranches(context.Background(), "tok", "octocat/demo")

	assert.Equal(t, models.StatusSuccess, resp.Status)
	data := resp.Data.(map[string]any)
	assert.Len(t, data["branches"], 1)
}

func TestCommitsTodayUsesCurrentDayWindow(t *testing.T) {
	host := &fakeHost{commits: map[string][]models.Commit{"demo": {commit("fix bug")}}}
	resp := newService(host, nil).CommitsToday(context.Background(), "tok", "demo", "octocat", "")

	require.Equal(t, models.StatusSuccess, resp.Status)
	assert.Equal(t, "Today's commits fetched successfully.", resp.Message)

	require.Len(t, host.fetchedISOs, 1)
	assert.True(t, strings.HasSuffix(host.fetchedISOs[0][0], "T00:00:00Z"))
	assert.True(t, strings.HasSuffix(host.fetchedISOs[0][1], "T23:59:59.999999Z"))
}

func TestCommitsByDate(t *testing.T) {
	host := &fakeHost{commits: map[string][]models.Commit{"demo": {commit("fix bug")}}}
	resp := newService(host, nil).CommitsByDate(context.Background(), "tok", "demo", "octocat", "2024-01-01", "2024-02-01", "")

	require.Equal(t, models.StatusSuccess, resp.Status)
	data := resp.Data.(map[string]any)
	assert.Len(t, data["commits"], 1)
	assert.Equal(t, [2]string{"2024-01-01T00:00:00Z", "2024-02-01T23:59:59.999999Z"}, host.fetchedISOs[0])
}

func TestCommitsByDateRejectsReversedRange(t *testing.T) {
	host := &fakeHost{}
	resp := newService(host, nil).CommitsByDate(context.Background(), "tok", "demo", "octocat", "2024-02-01", "2024-01-01", "")

	assert.Equal(t, models.StatusFail, resp.Status)
	assert.Equal(t, "end_date cannot be before start_date.", resp.Error)
	assert.Nil(t, resp.Data)
	assert.Empty(t, host.fetched, "no fetch on validation failure")
}

func TestCommitsByDateRejectsBadFormat(t *testing.T) {
	resp := newService(&fakeHost{}, nil).CommitsByDate(context.Background(), "tok", "demo", "octocat", "not-a-date", "2024-01-01", "")

	assert.Equal(t, models.StatusFail, resp.Status)
	assert.Equal(t, "Invalid date format. Use YYYY-MM-DD.", resp.Error)
}

func TestCommitsFromReposPreservesOrder(t *testing.T) {
	host := &fakeHost{commits: map[string][]models.Commit{
		"r1": {commit("one")},
		"r2": {commit("two")},
	}}
	resp := newService(host, nil).CommitsFromRepos(context.Background(), "tok", []string{"r1", "r2"}, "octocat", "2024-01-01", "2024-02-01", "")

	require.Equal(t, models.StatusSuccess, resp.Status)
	data := resp.Data.(map[string]any)
	repos := data["repositories"].([]models.RepoCommits)
	require.Len(t, repos, 2)
	assert.Equal(t, "r1", repos[0].RepoName)
	assert.Equal(t, "r2", repos[1].RepoName)
}

func TestCommitsFromReposUpstreamFailureKeepsRepoWithEmptyCommits(t *testing.T) {
	host := &fakeHost{err: github.ErrUpstream}
	resp := newService(host, nil).CommitsFromRepos(context.Background(), "tok", []string{"gone"}, "octocat", "2024-01-01", "2024-02-01", "")

	require.Equal(t, models.StatusSuccess, resp.Status)
	repos := resp.Data.(map[string]any)["repositories"].([]models.RepoCommits)
	require.Len(t, repos, 1)
	assert.Empty(t, repos[0].Commits)
}

func TestSummarizeBundlesFilteredMessages(t *testing.T) {
	host := &fakeHost{commits: map[string][]models.Commit{
		"repo-a": {commit("fix bug"), commit("fix another bug")},
		"repo-b": {commit("")}, // only empty messages: dropped from the prompt
	}}
	ai := &fakeSummarizer{result: map[string]any{"projects": []any{}}}

	resp := newService(host, ai).SummarizeCommitsFromRepos(context.Background(), "tok",
		[]string{"repo-a", "repo-b"}, "octocat", "2024-01-01", "2024-02-01", "", "")

	require.Equal(t, models.StatusSuccess, resp.Status)
	assert.Equal(t, "Commit summary generated successfully.", resp.Message)
	assert.Equal(t, map[string]any{"projects": []any{}}, resp.Data)

	assert.Contains(t, ai.prompt, "Project: repo-a\nCommit messages:\n- fix bug\n- fix another bug")
	assert.NotContains(t, ai.prompt, "repo-b")
}

func TestSummarizeExtraInfoReachesPrompt(t *testing.T) {
	host := &fakeHost{commits: map[string][]models.Commit{"repo-a": {commit("fix bug")}}}
	ai := &fakeSummarizer{result: "ok"}

	newService(host, ai).SummarizeCommitsFromRepos(context.Background(), "tok",
		[]string{"repo-a"}, "octocat", "2024-01-01", "2024-02-01", "", "pairing with Sam")

	assert.Contains(t, ai.prompt, "Additional user-provided information")
	assert.Contains(t, ai.prompt, "pairing with Sam")
}

func TestSummarizeModelFailure(t *testing.T) {
	host := &fakeHost{commits: map[string][]models.Commit{"repo-a": {commit("fix bug")}}}
	ai := &fakeSummarizer{err: errors.New("model unavailable")}

	resp := newService(host, ai).SummarizeCommitsFromRepos(context.Background(), "tok",
		[]string{"repo-a"}, "octocat", "2024-01-01", "2024-02-01", "", "")

	assert.Equal(t, models.StatusFail, resp.Status)
	assert.Equal(t, "Failed to get summary from Gemini.", resp.Message)
	assert.Equal(t, "model unavailable", resp.Error)
}

func TestSummarizeNilParseResultIsSuccess(t *testing.T) {
	host := &fakeHost{commits: map[string][]models.Commit{"repo-a": {commit("fix bug")}}}
	ai := &fakeSummarizer{result: nil}

	resp := newService(host, ai).SummarizeCommitsFromRepos(context.Background(), "tok",
		[]string{"repo-a"}, "octocat", "2024-01-01", "2024-02-01", "", "")

	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.Nil(t, resp.Data)
}

func TestSummarizeRejectsReversedRange(t *testing.T) {
	resp := newService(&fakeHost{}, &fakeSummarizer{}).SummarizeCommitsFromRepos(context.Background(), "tok",
		[]string{"repo-a"}, "octocat", "2024-02-01", "2024-01-01", "", "")

	assert.Equal(t, models.StatusFail, resp.Status)
	assert.Equal(t, "end_date cannot be before start_date.", resp.Error)
}
