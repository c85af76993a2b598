package projection

import (
	"fmt"
	"time"

	"github.com/caseworks/case-status-api/models"
)

// Timeline maps history entries to the typed display records served to
// the portal. The mapping is total over HistoryKind: the two link-text
// kinds produce no row, and anything else unmapped is a SchemaError so a
// new kind cannot slip through unrendered. officeName is the resolved
// name of the office currently handling the case, if known.
func Timeline(entries []HistoryEntry, officeName *string) ([]models.TimelineEntry, error) {
	out := make([]models.TimelineEntry, 0, len(entries))
	for _, entry := range entries {
		row, ok, err := displayEntry(entry, officeName)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func displayEntry(entry HistoryEntry, officeName *string) (models.TimelineEntry, bool, error) {
	row := models.TimelineEntry{Timestamp: entry.At}

	switch entry.Kind {
	case KindSubmitted:
		row.Type = models.DisplaySent
		row.Office = optional(entry.TextArg)
		row.URL = entryURL(entry)
	case KindReceived:
		row.Type = models.DisplayReceived
		row.Office = optional(entry.TextArg)
	case KindUnderReview:
		row.Type = models.DisplayUnderReview
	case KindCompleted:
		row.Type = models.DisplayCompleted
		row.URL = entryURL(entry)
	case KindNotProcessed:
		row.Type = models.DisplayNotProcessed
	case KindForwarded:
		row.Type = models.DisplayForwarded
		row.Office = officeName
	case KindCaseUnderReview:
		row.Type = models.DisplayCaseUnderReview
		row.Title = optional(entry.TextArg)
	case KindCaseDecided:
		row.Type = models.DisplayDecisionReady
		row.Title = optional(entry.TextArg)
		row.URL = entryURL(entry)
	case KindCaseStatusHidden:
		row.Type = models.DisplayCaseStatusUnavailable
		row.Title = optional(entry.TextArg)
	case KindApplicationStatusHidden:
		row.Type = models.DisplayApplicationStatusUnavailable
		row.Title = optional(entry.TextArg)
	case KindDocumentationRequested:
		row.Type = models.DisplayDocumentationRequested
		row.URL = entryURL(entry)
	case KindDocumentationReviewed:
		row.Type = models.DisplayDocumentationReviewed
	case KindRequirementsUpdated:
		row.Type = models.DisplayRequirementsUpdated
	case KindInterimResponse:
		row.Type = models.DisplayInterimResponse
		row.URL = entryURL(entry)
	case KindPaymentsUpdated:
		row.Type = models.DisplayPaymentsUpdated
	case KindViewLetterLink, KindViewApplicationLink:
		// Link texts, not events. Nothing to render.
		return models.TimelineEntry{}, false, nil
	default:
		return models.TimelineEntry{}, false, &SchemaError{Label: fmt.Sprintf("history kind %q", entry.Kind)}
	}
	return row, true, nil
}

// PaymentUpdateEntries yields one payments-updated history entry per
// burst of payment events, bucketed to five minutes so a batch of
// disbursements reads as a single timeline row. Cancelled payments are
// not announced.
func PaymentUpdateEntries(a *Aggregate) []HistoryEntry {
	var entries []HistoryEntry
	seen := map[time.Time]bool{}
	for _, p := range a.Payments {
		if p.Status == PaymentCancelled {
			continue
		}
		bucket := p.EventTime.Truncate(5 * time.Minute)
		if seen[bucket] {
			continue
		}
		seen[bucket] = true
		entries = append(entries, HistoryEntry{
			Kind: KindPaymentsUpdated,
			At:   p.EventTime,
		})
	}
	return entries
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func entryURL(entry HistoryEntry) *string {
	if entry.URL == nil {
		return nil
	}
	return &entry.URL.Href
}
