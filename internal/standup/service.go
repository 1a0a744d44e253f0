package standup

import (
	"context"
	"errors"

	"github.com/nahidhasan98/standup-summarizer/internal/datewindow"
	"github.com/nahidhasan98/standup-summarizer/internal/gemini"
	"github.com/nahidhasan98/standup-summarizer/internal/github"
	"github.com/nahidhasan98/standup-summarizer/internal/logger"
	"github.com/nahidhasan98/standup-summarizer/internal/models"
)

// GitHost is the slice of the GitHub client the service depends on.
type GitHost interface {
	ListRepositories(ctx context.Context, token, organization string) ([]models.Repository, error)
	ListBranches(ctx context.Context, token, repoFullName string) ([]models.Branch, error)
	FetchCommits(ctx context.Context, token, repoName, startISO, endISO, author, organization string) ([]models.Commit, error)
}

// Summarizer turns a standup prompt into a parsed summary value.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (any, error)
}

// Service exposes the use-cases of the summarizer backend. Every
// method returns a well-formed envelope; no error escapes to the
// routing layer.
type Service struct {
	host GitHost
	ai   Summarizer
	log  *logger.Logger
}

// New creates the service
func New(host GitHost, ai Summarizer, log *logger.Logger) *Service {
	return &Service{host: host, ai: ai, log: log}
}

// ListRepos lists the repositories visible to the token, scoped to
// organization when given.
func (s *Service) ListRepos(ctx context.Context, token, organization string) *models.APIResponse {
	repos, err := s.host.ListRepositories(ctx, token, organization)
	if failed := s.absorbHostError(err, "Failed to fetch repositories."); failed != nil {
		return failed
	}
	if repos == nil {
		repos = []models.Repository{}
	}

	return models.Success(
		map[string]any{"repositories": repos},
		"Repositories fetched successfully.",
	)
}

// ListBranches lists the branches of one repository given as
// "owner/name".
func (s *Service) ListBranches(ctx context.Context, token, repoFullName string) *models.APIResponse {
	branches, err := s.host.ListBranches(ctx, token, repoFullName)
	if failed := s.absorbHostError(err, "Failed to fetch branches."); failed != nil {
		return failed
	}
	if branches == nil {
		branches = []models.Branch{}
	}

	return models.Success(
		map[string]any{"branches": branches},
		"Branches fetched successfully.",
	)
}

// CommitsToday fetches one repository's commits within the current UTC
// day.
func (s *Service) CommitsToday(ctx context.Context, token, repoName, author, organization string) *models.APIResponse {
	window := datewindow.Today()

	commits, err := s.fetchWindow(ctx, token, repoName, window, author, organization)
	if err != nil {
		return models.Fail("Failed to fetch today's commits.", err.Error())
	}

	return models.Success(
		map[string]any{"commits": commits},
		"Today's commits fetched successfully.",
	)
}

// CommitsByDate fetches one repository's commits within an explicit
// YYYY-MM-DD date range.
func (s *Service) CommitsByDate(ctx context.Context, token, repoName, author, startDate, endDate, organization string) *models.APIResponse {
	window, err := datewindow.Parse(startDate, endDate)
	if err != nil {
		return models.Fail(err.Error(), err.Error())
	}

	commits, err := s.fetchWindow(ctx, token, repoName, window, author, organization)
	if err != nil {
		return models.Fail("Failed to fetch commits by date.", err.Error())
	}

	return models.Success(
		map[string]any{"commits": commits},
		"Commits fetched successfully for given date range.",
	)
}

// CommitsFromRepos fetches commits for several repositories over the
// same date range. The result preserves the caller's repository order.
func (s *Service) CommitsFromRepos(ctx context.Context, token string, repoNames []string, author, startDate, endDate, organization string) *models.APIResponse {
	window, err := datewindow.Parse(startDate, endDate)
	if err != nil {
		return models.Fail(err.Error(), err.Error())
	}

	collected := make([]models.RepoCommits, 0, len(repoNames))
	for _, repoName := range repoNames {
		commits, err := s.fetchWindow(ctx, token, repoName, window, author, organization)
		if err != nil {
			return models.Fail("Failed to fetch commits from multiple repositories.", err.Error())
		}
		collected = append(collected, models.RepoCommits{RepoName: repoName, Commits: commits})
	}

	return models.Success(
		map[string]any{"repositories": collected},
		"Commits from multiple repositories fetched successfully.",
	)
}

// SummarizeCommitsFromRepos fetches commits for several repositories,
// bundles their non-empty commit messages per repository and asks the
// model for a standup summary over all bundles at once. Repositories
// with no usable commit messages are dropped from the prompt. The
// parsed model reply becomes the envelope data as-is: a structured
// value, the raw reply text, or null.
func (s *Service) SummarizeCommitsFromRepos(ctx context.Context, token string, repoNames []string, author, startDate, endDate, organization, extraInfo string) *models.APIResponse {
	window, err := datewindow.Parse(startDate, endDate)
	if err != nil {
		return models.Fail(err.Error(), err.Error())
	}

	bundles := make([]models.ProjectCommits, 0, len(repoNames))
	for _, repoName := range repoNames {
		commits, err := s.fetchWindow(ctx, token, repoName, window, author, organization)
		if err != nil {
			return models.Fail("Failed to get summary from Gemini.", err.Error())
		}

		messages := make([]string, 0, len(commits))
		for _, commit := range commits {
			if commit.CommitMessage != "" {
				messages = append(messages, commit.CommitMessage)
			}
		}
		if len(messages) == 0 {
			continue
		}
		bundles = append(bundles, models.ProjectCommits{RepoName: repoName, CommitMessages: messages})
	}

	prompt := gemini.BuildStandupPrompt(bundles, extraInfo)

	summary, err := s.ai.Summarize(ctx, prompt)
	if err != nil {
		s.log.Error("Standup summary generation failed", err)
		return models.Fail("Failed to get summary from Gemini.", err.Error())
	}

	return models.Success(summary, "Commit summary generated successfully.")
}

// fetchWindow runs one commit fetch and applies the absorb policy:
// upstream failures degrade to an empty commit list.
func (s *Service) fetchWindow(ctx context.Context, token, repoName string, window datewindow.Window, author, organization string) ([]models.Commit, error) {
	commits, err := s.host.FetchCommits(ctx, token, repoName, window.StartISO(), window.EndISO(), author, organization)
	if err != nil {
		if errors.Is(err, github.ErrUpstream) {
			return []models.Commit{}, nil
		}
		return nil, err
	}
	if commits == nil {
		commits = []models.Commit{}
	}
	return commits, nil
}

// absorbHostError maps a listing error to either nil (upstream failure
// absorbed, caller proceeds with empty data) or a failure envelope for
// anything unexpected.
func (s *Service) absorbHostError(err error, failMessage string) *models.APIResponse {
	if err == nil {
		return nil
	}
	if errors.Is(err, github.ErrUpstream) {
		// The caller cannot tell "no data" from "request failed"; the
		// upstream detail was already logged by the client.
		return nil
	}
	return models.Fail(failMessage, err.Error())
}
