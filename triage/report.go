package triage

import (
	"fmt"
	"strings"
)

// Column widths used when rendering notification rows, matching the
// fixed-width layout of the Telegram summary
const (
	fromWidth    = 30
	subjectWidth = 50
)

// Table renders the deletion summary as a markdown-style table
func (s DeletionSummary) Table() string {
	rows := make([][2]string, 0, len(s))
	for _, rec := range s {
		rows = append(rows, [2]string{rec.Sender, fmt.Sprintf("%d", rec.Count)})
	}
	return renderTable("Email", "Count", rows)
}

// Table renders the notification summary as a markdown-style table
func (s NotificationSummary) Table() string {
	rows := make([][2]string, 0, len(s))
	for _, rec := range s {
		rows = append(rows, [2]string{rec.From, rec.Subject})
	}
	return renderTable("From", "Subject", rows)
}

// Table renders the list of saved attachments as a markdown-style table
func (l AttachmentList) Table() string {
	rows := make([][2]string, 0, len(l))
	for _, rec := range l {
		rows = append(rows, [2]string{rec.Sender, rec.Filename})
	}
	return renderTable("From", "Filename", rows)
}

// Text renders the plain-text notification body sent to Telegram.
// The From column is padded to 30 characters and the Subject column
// to 50, so consecutive messages line up.
func (s NotificationSummary) Text() string {
	if len(s) == 0 {
		return "No new emails matching the criteria."
	}

	b := strings.Builder{}
	b.WriteString("New email(s):\n")
	b.WriteString(fmt.Sprintf("%-*s %-*s", fromWidth, "From", subjectWidth, "Subject"))
	for _, rec := range s {
		b.WriteString(fmt.Sprintf("\n%-*s %-*s", fromWidth, rec.From, subjectWidth, rec.Subject))
	}
	return b.String()
}

func renderTable(leftHeader, rightHeader string, rows [][2]string) string {
	leftWidth := len(leftHeader)
	rightWidth := len(rightHeader)
	for _, row := range rows {
		if len(row[0]) > leftWidth {
			leftWidth = len(row[0])
		}
		if len(row[1]) > rightWidth {
			rightWidth = len(row[1])
		}
	}

	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("| %-*s | %-*s |\n", leftWidth, leftHeader, rightWidth, rightHeader))
	b.WriteString(fmt.Sprintf("|%s|%s|\n", strings.Repeat("-", leftWidth+2), strings.Repeat("-", rightWidth+2)))
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("| %-*s | %-*s |\n", leftWidth, row[0], rightWidth, row[1]))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
