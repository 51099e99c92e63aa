package llm

import (
	"fmt"
	"strings"

	domainservice "github.com/logmycode/logmycode/internal/domain/service"
)

// systemPrompt is the fixed system message sent with every generation
const systemPrompt = "You are a helpful assistant that summarizes code changes."

// BuildPrompt assembles the user prompt for one day's generation: a fixed
// preamble naming the user, date and product, a per-repository listing of
// commit messages, the manual activity log (or a literal "None"), and the
// output-format instructions. A caller-supplied template replaces the
// default instructions wholesale; it is expected to contain instructions
// only, not placeholders, since the commit context is already carried by
// the preamble.
func BuildPrompt(req domainservice.SummaryRequest) string {
	instructions := req.Template
	if instructions == "" {
		instructions = defaultInstructions(req.Date)
	}

	preamble := fmt.Sprintf(`You are an AI assistant for a developer tool called "LogMyCode".
Your task is to generate a daily work summary based on the following git commits for User %q on Date %q.

Input Commits:
%s

Manual activity log:
%s`, req.Username, req.Date, commitsText(req), manualLogText(req.ManualLog))

	return preamble + "\n\n" + instructions
}

// commitsText renders the day's commits grouped by repository, keeping the
// first-seen repository order.
func commitsText(req domainservice.SummaryRequest) string {
	var order []string
	byRepo := make(map[string][]string)
	for _, c := range req.Commits {
		if _, ok := byRepo[c.RepoName]; !ok {
			order = append(order, c.RepoName)
		}
		byRepo[c.RepoName] = append(byRepo[c.RepoName], c.Message)
	}

	sections := make([]string, 0, len(order))
	for _, repoName := range order {
		var b strings.Builder
		b.WriteString("Repo: " + repoName)
		for _, msg := range byRepo[repoName] {
			b.WriteString("\n- " + msg)
		}
		sections = append(sections, b.String())
	}
	return strings.Join(sections, "\n\n")
}

func manualLogText(manualLog string) string {
	if strings.TrimSpace(manualLog) == "" {
		return "None"
	}
	return manualLog
}

func defaultInstructions(date string) string {
	return fmt.Sprintf(`Instructions:
1. Group the work by repository.
2. For each repository, summarize the changes in 3-4 concise bullet points.
3. CRITICAL: Describe ACTIONS, not impact.
   - Strip phrases like "resulting in...", "which allows...", "improving...", "enhancing...".
   - Start specific points with preferred verbs: Added, Updated, Fixed, Refactored, Optimized.
   - Do NOT explain the outcome or benefit (e.g., "to improve performance"). Just state what was done (e.g., "Optimized database queries").
4. Combine related commits where appropriate but keep points purely action-oriented.
5. Fold the manual activity log into the matching repository section, or into a "General" section when it belongs to no repository. If it is "None", ignore it.
6. Calculate the total number of commits.
7. Format the output EXACTLY as follows:

LogMyCode – Daily Summary (%s)

Repos:
• [Repo Name]
• [Summary point 1]
• [Summary point 2]
...
• [Repo Name 2]
...

Total commits: [Total Count]

Do not add any other text before or after this format.`, date)
}
