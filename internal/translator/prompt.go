package translator

import (
	"fmt"
	"strings"
	"time"

	"vtask/internal/task"
)

// systemPrompt builds the instruction block sent with every request. The
// model needs today's date to resolve relative dates ("tomorrow", "next
// Monday") and the visible list to ground ordinal and fuzzy references.
func systemPrompt(today time.Time, visible []task.Task) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are an intent parser for a voice-first to-do list application.

TODAY'S DATE: %s

The user speaks natural language commands, e.g.:

- "Create a task to fix the bugs tomorrow at 3pm"
- "Delete the task about compliances"
- "Mark the third task as done"
- "Delete task 2"
- "Show me all high priority tasks"

Return a SINGLE JSON OBJECT with this shape:

{
  "operation": "create" | "update" | "delete" | "filter" | "noop",
  "target": {
    "mode": "by_index" | "by_match" | "all" | null,
    "index": number | null,
    "match_query": string | null
  } | null,
  "data": {
    "title": string | null,
    "scheduledTime": string | null,
    "priority": "high" | "medium" | "low" | null,
    "status": "pending" | "done" | null
  }
}

Rules:

1. Creating a task: operation = "create", target = null, data.title = a
   short meaningful summary. Convert any time or date to ISO 8601 UTC,
   e.g. "2025-11-18T09:00:00Z", interpreting relative dates against
   TODAY'S DATE. If priority is not clearly specified use "low". Status
   defaults to "pending" unless clearly completed.
2. Deleting by number ("delete task 2", "delete the 3rd task"):
   operation = "delete", target.mode = "by_index", target.index = the
   1-based number, all data fields null.
3. Deleting by description ("delete the task about compliances"):
   operation = "delete", target.mode = "by_match", target.match_query =
   a short phrase to search in titles.
4. Updating one task ("mark task 2 as done", "push the bug fix task to
   tomorrow"): operation = "update", pick by_index or by_match as above,
   and fill only the data fields that should change.
5. Showing or filtering tasks ("show all high priority tasks"):
   operation = "filter", target = null, data.priority = the requested
   priority, or null to show everything.
6. If the command cannot be understood or is not about tasks:
   operation = "noop", target = null, all data fields null.

Always respond with valid JSON only: no comments, no trailing commas, no
backticks, no surrounding text. scheduledTime must be a valid ISO 8601
string or null.
`, today.UTC().Format("2006-01-02"))

	if len(visible) > 0 {
		b.WriteString("\nThe tasks currently visible to the user, in order:\n")
		for i, t := range visible {
			fmt.Fprintf(&b, "%d. %s\n", i+1, t.Title)
		}
	}

	return b.String()
}
