package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/gophdiary/internal/client/diary"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
)

const timestampLayout = "2006-01-02 15:04"

func selectionLabel(v diary.View) string {
	sel := v.Selection
	switch {
	case sel.Year == models.All:
		return "all entries"
	case sel.Month == models.All:
		return fmt.Sprintf("%d", sel.Year)
	default:
		return fmt.Sprintf("%s %d", v.Months[sel.Month].Name, sel.Year)
	}
}

// renderList formats the filtered entries of v in server order. now anchors
// the relative timestamps.
func renderList(v diary.View, now time.Time) string {
	var b strings.Builder

	switch v.State {
	case diary.StateUnauthenticated:
		return "Not logged in."
	case diary.StateLoading:
		b.WriteString("Entries are not loaded yet, try 'refresh'.\n")
	}

	fmt.Fprintf(&b, "%s: %d of %d entries", selectionLabel(v), len(v.Notes), v.Total)
	if len(v.Notes) == 0 {
		b.WriteString("\nNo entries.")
		return b.String()
	}

	for _, n := range v.Notes {
		fmt.Fprintf(&b, "\n#%d  %s  (%s)", n.ID, n.CreatedAt.Format(timestampLayout),
			humanize.RelTime(n.CreatedAt, now, "ago", "from now"))
		for _, line := range strings.Split(n.Content, "\n") {
			b.WriteString("\n    " + line)
		}
	}
	return b.String()
}
