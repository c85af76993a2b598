package projection

import (
	"fmt"
	"log"

	"github.com/caseworks/case-status-api/models"
)

// applyApplicationStatus sets the overall status, last event wins. No
// transition validation: the case system is the authority on ordering.
func (a *Aggregate) applyApplicationStatus(e models.Event) error {
	status := CaseStatus(e.Status)

	var entry HistoryEntry
	switch status {
	case StatusReceived:
		entry = HistoryEntry{Kind: KindReceived, At: e.Timestamp, TextArg: a.ReceivingOffice}
	case StatusUnderReview:
		entry = HistoryEntry{Kind: KindUnderReview, At: e.Timestamp}
	case StatusCompleted:
		entry = HistoryEntry{Kind: KindCompleted, At: e.Timestamp}
	case StatusNotProcessed:
		entry = HistoryEntry{Kind: KindNotProcessed, At: e.Timestamp}
	default:
		return &SchemaError{Label: fmt.Sprintf("application status %q", e.Status)}
	}

	a.Status = status
	log.Println("Event: application status", e.Status, "at", e.Timestamp)
	a.appendHistory(entry)
	return nil
}
