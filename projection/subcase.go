package projection

import (
	"fmt"
	"log"

	"github.com/caseworks/case-status-api/models"
)

// applyCaseStatus upserts a sub-case by reference. Creating on first
// sight is legal: decisions may arrive before the case-status event.
// This reducer is the only writer of sub-case status.
func (a *Aggregate) applyCaseStatus(e models.Event) error {
	status, err := parseSubCaseStatus(e.Status)
	if err != nil {
		return err
	}

	if sc := a.subCase(e.CaseReference); sc != nil {
		sc.Title = e.Title

		if e.Status != "" {
			prev := sc.Status
			sc.Status = status

			if prev != status && (status == SubCaseRestricted || status == SubCaseNotProcessed) {
				entry := HistoryEntry{
					Kind:    KindApplicationStatusHidden,
					At:      e.Timestamp,
					CaseRef: e.CaseReference,
				}
				if sc.Title != nil {
					entry.TextArg = *sc.Title
				}
				a.appendHistory(entry)
			}
			if status == SubCaseUnderReview && (prev == SubCaseRestricted || prev == SubCaseNotProcessed) {
				log.Printf("Sub-case %s went from status %s back to %s", e.CaseReference, prev, status)
			}
		}
		log.Println("Event: case status", e.Status, "for", e.CaseReference, "at", e.Timestamp)
		return nil
	}

	if a.Status == StatusCompleted {
		log.Println("New sub-case opened after the application was completed:", e.CaseReference)
	}

	sc := &SubCase{
		Reference: e.CaseReference,
		Status:    status,
		Title:     e.Title,
		Decisions: []Decision{},
		Payments:  []*Payment{},
	}
	a.SubCases = append(a.SubCases, sc)

	entry := HistoryEntry{At: e.Timestamp, CaseRef: e.CaseReference}
	if e.Title != nil {
		entry.TextArg = *e.Title
	}
	switch status {
	case SubCaseUnderReview:
		entry.Kind = KindCaseUnderReview
		a.appendHistory(entry)
	case SubCaseRestricted, SubCaseNotProcessed:
		entry.Kind = KindCaseStatusHidden
		a.appendHistory(entry)
	}

	log.Println("Event: case status", e.Status, "for", e.CaseReference, "at", e.Timestamp)
	return nil
}

// parseSubCaseStatus maps the wire status. An absent status defaults to
// under review; an unknown one is a contract violation.
func parseSubCaseStatus(s string) (SubCaseStatus, error) {
	switch SubCaseStatus(s) {
	case "":
		return SubCaseUnderReview, nil
	case SubCaseUnderReview, SubCaseRestricted, SubCaseCompleted, SubCaseNotProcessed, SubCaseMisregistered:
		return SubCaseStatus(s), nil
	default:
		return "", &SchemaError{Label: fmt.Sprintf("sub-case status %q", s)}
	}
}
