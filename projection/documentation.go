package projection

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"time"

	"github.com/caseworks/case-status-api/models"
)

// applyDocumentationRequest replaces the outstanding task list with the
// asks of the latest request; the case system always sends the complete
// remaining set. An emptied list on a still-open case means the office
// has reviewed what was delivered.
func (a *Aggregate) applyDocumentationRequest(e models.Event, opts Options) error {
	prev := len(a.Tasks)

	tasks := make([]TaskItem, 0, len(e.Documents))
	for _, doc := range e.Documents {
		tasks = append(tasks, TaskItem{
			ID:              taskID(doc.Deadline),
			DocumentType:    doc.Type,
			ExtraInfo:       doc.ExtraInfo,
			OriginKind:      models.KindDocumentationRequest,
			OriginReference: doc.Reference,
			Deadline:        doc.Deadline,
			RequestedAt:     e.Timestamp,
			CreatedByPortal: true,
		})
	}
	a.Tasks = tasks

	if a.Status == StatusCompleted {
		log.Println("Documentation requested after the application was completed")
	}

	if len(e.Documents) > 0 && e.Letter != nil {
		href, err := opts.DocumentURL(*e.Letter)
		if err != nil {
			return err
		}
		log.Println("Event: documentation requested at", e.Timestamp)
		a.appendHistory(HistoryEntry{
			Kind: KindDocumentationRequested,
			At:   e.Timestamp,
			URL:  &Link{TextKind: KindViewLetterLink, Href: href},
		})
	}

	if prev > 0 && len(a.Tasks) == 0 && a.Status != StatusCompleted && a.Status != StatusNotProcessed {
		log.Println("Event: requested documentation reviewed at", e.Timestamp)
		a.appendHistory(HistoryEntry{
			Kind: KindDocumentationReviewed,
			At:   e.Timestamp,
		})
	}
	return nil
}

// taskID derives a stable task identifier from the deadline, so that
// asks sharing a deadline group into one task across refetches.
func taskID(deadline time.Time) string {
	sum := sha256.Sum256([]byte(deadline.UTC().Format(time.RFC3339)))
	return hex.EncodeToString(sum[:])
}
