package query

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/notification"
)

var exportHeader = []string{"created_at", "severity", "category", "title", "message"}

// Export serializes the given notifications to CSV in the order provided.
// Callers typically pass the output of Apply so rows are newest-first.
func Export(w io.Writer, items []notification.Notification) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, n := range items {
		row := []string{
			n.CreatedAt.UTC().Format(time.RFC3339),
			string(n.Severity),
			string(n.Category),
			n.Title,
			n.Message,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write export row for %s: %w", n.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
