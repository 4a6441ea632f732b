package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"quest-tracker/internal/api"
	"quest-tracker/internal/domain"
	"quest-tracker/internal/errors"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// printQuests writes quests in the given format.
func printQuests(w io.Writer, quests []*domain.Quest, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case formatJSON:
		return printJSON(w, api.NewQuestResponses(quests))
	case formatTable, "":
		return printQuestTable(w, quests)
	default:
		return errors.NewInvalidInputError("format", format, "must be table or json")
	}
}

func printQuestTable(w io.Writer, quests []*domain.Quest) error {
	if len(quests) == 0 {
		_, err := fmt.Fprintln(w, "No quests found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tIMPORTANT\tDESCRIPTION\tREPEAT")
	for _, q := range quests {
		if q == nil {
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			q.ID, mark(q.Completed), mark(q.Important), descriptionCell(q), repeatCell(q))
	}
	return tw.Flush()
}

// printQuest writes one quest as key/value lines.
func printQuest(w io.Writer, q *domain.Quest) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", q.ID)
	fmt.Fprintf(tw, "Description:\t%s\n", descriptionCell(q))
	fmt.Fprintf(tw, "Important:\t%t\n", q.Important)
	fmt.Fprintf(tw, "Completed:\t%t\n", q.Completed)
	if q.ImageURL != nil {
		fmt.Fprintf(tw, "Image URL:\t%s\n", *q.ImageURL)
	}
	fmt.Fprintf(tw, "Repeatable:\t%t\n", q.Repeatable)
	if q.RepeatTime != nil {
		fmt.Fprintf(tw, "Repeat time:\t%s\n", q.RepeatTime.Short())
	}
	if len(q.RepeatDays) > 0 {
		fmt.Fprintf(tw, "Repeat days:\t%s\n", domain.JoinWeekdays(q.RepeatDays))
	}
	return tw.Flush()
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func mark(b bool) string {
	if b {
		return "x"
	}
	return "-"
}

func descriptionCell(q *domain.Quest) string {
	if q.Description == nil {
		return "(none)"
	}
	return *q.Description
}

func repeatCell(q *domain.Quest) string {
	if !q.Repeatable {
		return ""
	}
	var parts []string
	if q.RepeatTime != nil {
		parts = append(parts, q.RepeatTime.Short())
	}
	if len(q.RepeatDays) > 0 {
		parts = append(parts, domain.JoinWeekdays(q.RepeatDays))
	}
	if len(parts) == 0 {
		return "yes"
	}
	return strings.Join(parts, " ")
}
