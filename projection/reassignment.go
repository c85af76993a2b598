package projection

import (
	"log"

	"github.com/caseworks/case-status-api/models"
)

// applyCaseReassignment moves the case to another office. Reassignment to
// the office already handling the case is a no-op, including no history
// entry. The new office is known by ID only; the display layer resolves
// its name.
func (a *Aggregate) applyCaseReassignment(e models.Event) error {
	if e.Office == a.ReceivingOfficeID {
		return nil
	}

	a.ReceivingOfficeID = e.Office
	a.ReceivingOffice = ""

	log.Println("Event: case reassigned to office", e.Office, "at", e.Timestamp)
	a.appendHistory(HistoryEntry{
		Kind:    KindForwarded,
		At:      e.Timestamp,
		TextArg: e.Office,
	})
	return nil
}
