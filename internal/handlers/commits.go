package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nahidhasan98/standup-summarizer/internal/errors"
	"github.com/nahidhasan98/standup-summarizer/internal/models"
)

// CommitsToday handles GET /commits/today
func (h *Handler) CommitsToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	token := q.Get("github_token")
	repoName := q.Get("repo_name")
	author := q.Get("author")
	organization := q.Get("organization")

	if appErr := h.validator.ValidateToken(token); appErr != nil {
		h.writeAppError(w, appErr)
		return
	}
	if appErr := h.validator.ValidateRepoName(repoName); appErr != nil {
		h.writeAppError(w, appErr)
		return
	}

	h.writeEnvelope(w, h.svc.CommitsToday(r.Context(), token, repoName, author, organization))
}

// CommitsByDate handles GET /commits/by-date
func (h *Handler) CommitsByDate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	token := q.Get("github_token")
	repoName := q.Get("repo_name")
	author := q.Get("author")
	organization := q.Get("organization")
	startDate := q.Get("start_date")
	endDate := q.Get("end_date")

	if appErr := h.validator.ValidateToken(token); appErr != nil {
		h.writeAppError(w, appErr)
		return
	}
	if appErr := h.validator.ValidateRepoName(repoName); appErr != nil {
		h.writeAppError(w, appErr)
		return
	}

	h.writeEnvelope(w, h.svc.CommitsByDate(r.Context(), token, repoName, author, startDate, endDate, organization))
}

// CommitsFromRepos handles POST /commits/from-repos
func (h *Handler) CommitsFromRepos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	token := q.Get("github_token")
	author := q.Get("author")
	organization := q.Get("organization")
	startDate := q.Get("start_date")
	endDate := q.Get("end_date")

	var req models.MultiRepoCommitsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeAppError(w, errors.InvalidRequest("Invalid request body: "+err.Error()))
		return
	}

	if appErr := h.validator.ValidateToken(token); appErr != nil {
		h.writeAppError(w, appErr)
		return
	}
	if appErr := h.validator.ValidateMultiRepoRequest(&req); appErr != nil {
		h.writeAppError(w, appErr)
		return
	}

	h.writeEnvelope(w, h.svc.CommitsFromRepos(r.Context(), token, req.RepoNames, author, startDate, endDate, organization))
}
