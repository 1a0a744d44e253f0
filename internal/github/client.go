package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/nahidhasan98/standup-summarizer/internal/logger"
	"github.com/nahidhasan98/standup-summarizer/internal/models"
)

// perPage is the fixed page size used for every paginated listing.
const perPage = 100

// ErrUpstream reports that a GitHub request failed. The client
// deliberately keeps no detail: a bad token, a missing repository and a
// plain 5xx all collapse into this one value, and callers present the
// result as an empty listing.
var ErrUpstream = errors.New("github: upstream request failed")

// Client performs paginated, token-authenticated calls against the
// GitHub REST API and flattens the results into record types.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClient creates a GitHub API client. baseURL is normally
// https://api.github.com; tests point it at a local server.
func NewClient(baseURL string, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log,
	}
}

// ListRepositories lists the repositories visible to the token,
// scoped to organization when one is given. A failed request at any
// page resolves to no records and ErrUpstream.
func (c *Client) ListRepositories(ctx context.Context, token, organization string) ([]models.Repository, error) {
	endpoint := c.baseURL + "/user/repos"
	if organization != "" {
		endpoint = c.baseURL + "/orgs/" + url.PathEscape(organization) + "/repos"
	}

	var repos []models.Repository
	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("per_page", strconv.Itoa(perPage))
		params.Set("page", strconv.Itoa(page))
		params.Set("type", "all")

		var items []repoItem
		if err := c.getPage(ctx, token, endpoint, params, &items); err != nil {
			return nil, ErrUpstream
		}
		if len(items) == 0 {
			break
		}

		for _, r := range items {
			repos = append(repos, models.Repository{
				Name:            r.Name,
				Owner:           r.Owner.Login,
				Private:         r.Private,
				FullName:        r.FullName,
				HTMLURL:         r.HTMLURL,
				Description:     r.Description,
				StargazersCount: r.StargazersCount,
				Language:        r.Language,
			})
		}
		if len(items) < perPage {
			break
		}
	}

	return repos, nil
}

// ListBranches lists the branches of a repository given as
// "owner/name". Same pagination and failure contract as
// ListRepositories.
func (c *Client) ListBranches(ctx context.Context, token, repoFullName string) ([]models.Branch, error) {
	endpoint := c.baseURL + "/repos/" + repoFullName + "/branches"

	var branches []models.Branch
	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("per_page", strconv.Itoa(perPage))
		params.Set("page", strconv.Itoa(page))

		var items []branchItem
		if err := c.getPage(ctx, token, endpoint, params, &items); err != nil {
			return nil, ErrUpstream
		}
		if len(items) == 0 {
			break
		}

		for _, b := range items {
			branches = append(branches, models.Branch{
				Name:      b.Name,
				Protected: b.Protected,
				CommitSHA: b.Commit.SHA,
			})
		}
		if len(items) < perPage {
			break
		}
	}

	return branches, nil
}

// FetchCommits lists the commits of repoName whose committer date falls
// within [startISO, endISO]. When organization is empty the repository
// is addressed as {author}/{repoName}, so author doubles as the repo
// owner. The author filter itself is only applied when author is
// non-empty. A 404 and any other upstream failure both resolve to no
// records and ErrUpstream.
func (c *Client) FetchCommits(ctx context.Context, token, repoName, startISO, endISO, author, organization string) ([]models.Commit, error) {
	owner := author
	if organization != "" {
		owner = organization
	}
	endpoint := c.baseURL + "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(repoName) + "/commits"

	var commits []models.Commit
	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("since", startISO)
		params.Set("until", endISO)
		params.Set("per_page", strconv.Itoa(perPage))
		params.Set("page", strconv.Itoa(page))
		if author != "" {
			params.Set("author", author)
		}

		var items []commitItem
		if err := c.getPage(ctx, token, endpoint, params, &items); err != nil {
			return nil, ErrUpstream
		}
		if len(items) == 0 {
			break
		}

		for _, item := range items {
			commit := models.Commit{
				SHA:           item.SHA,
				CommitMessage: item.Commit.Message,
				Date:          item.Commit.Committer.Date,
				HTMLURL:       item.HTMLURL,
			}
			if item.Author != nil {
				login := item.Author.Login
				commit.Author = &login
			}
			commits = append(commits, commit)
		}
		if len(items) < perPage {
			break
		}
	}

	return commits, nil
}

// getPage performs one GET against endpoint and decodes the JSON page
// into out.
func (c *Client) getPage(ctx context.Context, token, endpoint string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "token "+token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnf("GitHub request to %s failed: %v", endpoint, err)
		return fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warnf("GitHub returned %d for %s", resp.StatusCode, endpoint)
		return fmt.Errorf("github returned %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
