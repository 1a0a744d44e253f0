package validation

import (
	"strings"

	"github.com/nahidhasan98/standup-summarizer/internal/errors"
	"github.com/nahidhasan98/standup-summarizer/internal/models"
)

// Validator provides validation methods for request parameters. Date
// strings are deliberately not checked here; the date window parser
// owns those messages.
type Validator struct{}

// New creates a new validator instance
func New() *Validator {
	return &Validator{}
}

// ValidateToken checks the github_token parameter
func (v *Validator) ValidateToken(token string) *errors.AppError {
	if strings.TrimSpace(token) == "" {
		return errors.ValidationError("'github_token' parameter is required")
	}
	return nil
}

// ValidateRepoName checks a single repo_name parameter
func (v *Validator) ValidateRepoName(repoName string) *errors.AppError {
	if strings.TrimSpace(repoName) == "" {
		return errors.ValidationError("'repo_name' parameter is required")
	}
	return nil
}

// ValidateRepoFullName checks a repo_full_name parameter of the form
// "owner/name"
func (v *Validator) ValidateRepoFullName(repoFullName string) *errors.AppError {
	trimmed := strings.TrimSpace(repoFullName)
	if trimmed == "" {
		return errors.ValidationError("'repo_full_name' parameter is required")
	}
	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return errors.ValidationError("'repo_full_name' must be in 'owner/name' form")
	}
	return nil
}

// ValidateMultiRepoRequest checks a multi-repository request body
func (v *Validator) ValidateMultiRepoRequest(req *models.MultiRepoCommitsRequest) *errors.AppError {
	if req == nil {
		return errors.InvalidRequest("Request body is required")
	}
	return v.validateRepoNames(req.RepoNames)
}

// ValidateSummaryRequest checks a summary request body
func (v *Validator) ValidateSummaryRequest(req *models.SummaryRequest) *errors.AppError {
	if req == nil {
		return errors.InvalidRequest("Request body is required")
	}
	return v.validateRepoNames(req.RepoNames)
}

func (v *Validator) validateRepoNames(repoNames []string) *errors.AppError {
	if len(repoNames) == 0 {
		return errors.ValidationError("'repo_names' must contain at least one repository")
	}
	for _, name := range repoNames {
		if strings.TrimSpace(name) == "" {
			return errors.ValidationError("'repo_names' must not contain empty names")
		}
	}
	return nil
}
