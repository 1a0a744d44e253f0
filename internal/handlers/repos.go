package handlers

import (
	"net/http"
)

// ListRepos handles GET /repos
func (h *Handler) ListRepos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	token := q.Get("github_token")
	organization := q.Get("organization")

	if appErr := h.validator.ValidateToken(token); appErr != nil {
		h.writeAppError(w, appErr)
		return
	}

	h.writeEnvelope(w, h.svc.ListRepos(r.Context(), token, organization))
}

// ListBranches handles GET /branches
func (h *Handler) ListBranches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	token := q.Get("github_token")
	repoFullName := q.Get("repo_full_name")

	if appErr := h.validator.ValidateToken(token); appErr != nil {
		h.writeAppError(w, appErr)
		return
	}
	if appErr := h.validator.ValidateRepoFullName(repoFullName); appErr != nil {
		h.writeAppError(w, appErr)
		return
	}

	h.writeEnvelope(w, h.svc.ListBranches(r.Context(), token, repoFullName))
}
