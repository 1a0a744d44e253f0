package gemini

import (
	"fmt"
	"strings"

	"github.com/nahidhasan98/standup-summarizer/internal/models"
)

const promptPreamble = "You are helping to write a standup summary. For each project below, read the commit messages and combine related work into a concise summary suitable for a standup meeting, using natural language rather than just a list. If several commits are related, feel free to combine them into a single summarized task. Reply with a JSON containing each project and, for each, a list of concise standup-style sentences that capture the work completed.\n" +
	"Your output must comply with this schema:\n\n" +
	`{ "projects": [ { "name": "project_name", "tasks": ["Standup-style summary sentence 1", "Summary sentence 2", ...] }, ... ] }` + "\n\n" +
	"Here are the projects and their commit messages:\n"

// BuildStandupPrompt renders the standup prompt for the given bundles.
// Commit messages keep the order they were fetched in. The output is a
// pure function of its inputs. A non-empty extraInfo is appended as a
// delimited section for the model to fold in.
func BuildStandupPrompt(bundles []models.ProjectCommits, extraInfo string) string {
	blocks := make([]string, 0, len(bundles))
	for _, bundle := range bundles {
		var sb strings.Builder
		fmt.Fprintf(&sb, "Project: %s\n", bundle.RepoName)
		sb.WriteString("Commit messages:\n")
		for i, msg := range bundle.CommitMessages {
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString("- " + msg)
		}
		blocks = append(blocks, sb.String())
	}

	prompt := promptPreamble + strings.Join(blocks, "\n")
	if extraInfo != "" {
		prompt += "\n\nAdditional user-provided information (incorporate or consider in the standup summary as relevant):\n" + extraInfo + "\n"
	}

	return prompt
}
