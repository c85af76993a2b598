package projection

import (
	"fmt"
	"sort"

	"github.com/caseworks/case-status-api/models"
)

// SchemaError marks a contract violation between this service and the
// case-management feed: an event kind, status value or display kind that
// has no mapping. Projection aborts rather than dropping data.
type SchemaError struct {
	Label string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("no mapping for %s", e.Label)
}

// Options carries the request-scoped inputs a fold needs beyond the event
// log itself. CurrentUserID feeds the third-party-recipient rule for
// payments; DocumentURL resolves file references to retrievable URLs;
// RequirementHistory gates the history entry for updated documentation
// requirements (feature toggled by the caller).
type Options struct {
	CurrentUserID      string
	DocumentURL        func(models.FileReference) (string, error)
	RequirementHistory bool
}

// Project folds an event batch into a fresh aggregate. The batch is
// stable-sorted by event timestamp before application, so callers may
// pass it in any order. On a SchemaError no partial aggregate is
// returned.
func Project(events []models.Event, submission models.Submission, opts Options) (*Aggregate, error) {
	a := newAggregate()
	if err := a.seedSubmission(submission, opts); err != nil {
		return nil, err
	}

	ordered := make([]models.Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	for _, e := range ordered {
		if err := a.apply(e, opts); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// seedSubmission records the routing metadata so that a case with zero
// events still reports a sensible initial status. Paper applications
// carry no receiving office and seed nothing.
func (a *Aggregate) seedSubmission(submission models.Submission, opts Options) error {
	if submission.ReceivingOfficeName == "" {
		return nil
	}

	a.Status = StatusSent
	a.ReceivingOfficeID = submission.ReceivingOfficeID
	a.ReceivingOffice = submission.ReceivingOfficeName
	a.SubmittedAt = submission.SubmittedAt

	entry := HistoryEntry{
		Kind:    KindSubmitted,
		TextArg: submission.ReceivingOfficeName,
	}
	if submission.SubmittedAt != nil {
		entry.At = *submission.SubmittedAt
	}
	if submission.DocumentID != "" && opts.DocumentURL != nil {
		href, err := opts.DocumentURL(models.FileReference{
			Kind: models.FileKindDocumentStore,
			ID:   submission.DocumentID,
		})
		if err != nil {
			return err
		}
		entry.URL = &Link{TextKind: KindViewApplicationLink, Href: href}
	}
	a.appendHistory(entry)
	return nil
}

func (a *Aggregate) apply(e models.Event, opts Options) error {
	switch e.Kind {
	case models.KindApplicationStatus:
		return a.applyApplicationStatus(e)
	case models.KindCaseReassignment:
		return a.applyCaseReassignment(e)
	case models.KindCaseStatus:
		return a.applyCaseStatus(e)
	case models.KindDecision:
		return a.applyDecision(e, opts)
	case models.KindDocumentationRequest:
		return a.applyDocumentationRequest(e, opts)
	case models.KindInterimResponse:
		return a.applyInterimResponse(e, opts)
	case models.KindPayment:
		return a.applyPayment(e, opts)
	case models.KindCondition:
		return a.applyCondition(e)
	case models.KindDocumentationRequirement:
		return a.applyDocumentationRequirement(e, opts)
	default:
		return &SchemaError{Label: fmt.Sprintf("event kind %q", e.Kind)}
	}
}
