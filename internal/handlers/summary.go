package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nahidhasan98/standup-summarizer/internal/errors"
	"github.com/nahidhasan98/standup-summarizer/internal/models"
)

// SummarizeCommits handles POST /commits/summary/by-repos
func (h *Handler) SummarizeCommits(w http.ResponseWriter, r *http.Request) {
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

	var req models.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeAppError(w, errors.InvalidRequest("Invalid request body: "+err.Error()))
		return
	}

	if appErr := h.validator.ValidateToken(token); appErr != nil {
		h.writeAppError(w, appErr)
		return
	}
	if appErr := h.validator.ValidateSummaryRequest(&req); appErr != nil {
		h.writeAppError(w, appErr)
		return
	}

	h.writeEnvelope(w, h.svc.SummarizeCommitsFromRepos(r.Context(), token,
		req.RepoNames, author, startDate, endDate, organization, req.ExtraInfo))
}
