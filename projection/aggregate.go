// Package projection folds the ordered event log of a case into an
// in-memory aggregate describing its current state. The fold is
// deterministic: the same batch of events always produces the same
// aggregate, regardless of the order the batch arrived in.
package projection

import "time"

// CaseStatus is the overall status of the application.
type CaseStatus string

const (
	StatusSent         CaseStatus = "SENT"
	StatusReceived     CaseStatus = "RECEIVED"
	StatusUnderReview  CaseStatus = "UNDER_REVIEW"
	StatusCompleted    CaseStatus = "COMPLETED"
	StatusNotProcessed CaseStatus = "NOT_PROCESSED"
)

// SubCaseStatus is the status of a single sub-case.
type SubCaseStatus string

const (
	SubCaseUnderReview   SubCaseStatus = "UNDER_REVIEW"
	SubCaseRestricted    SubCaseStatus = "RESTRICTED"
	SubCaseCompleted     SubCaseStatus = "COMPLETED"
	SubCaseNotProcessed  SubCaseStatus = "NOT_PROCESSED"
	SubCaseMisregistered SubCaseStatus = "MISREGISTERED"
)

// PaymentStatus is the lifecycle state of a disbursement.
type PaymentStatus string

const (
	PaymentPlanned   PaymentStatus = "PLANNED"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentStopped   PaymentStatus = "STOPPED"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

// Outcome is the ruling of a decision.
type Outcome string

const (
	OutcomeGranted          Outcome = "GRANTED"
	OutcomePartiallyGranted Outcome = "PARTIALLY_GRANTED"
	OutcomeRejected         Outcome = "REJECTED"
	OutcomeDismissed        Outcome = "DISMISSED"
)

// ObligationStatus is shared by conditions and documentation requirements.
type ObligationStatus string

const (
	ObligationRelevant            ObligationStatus = "RELEVANT"
	ObligationAnnulled            ObligationStatus = "ANNULLED"
	ObligationFulfilled           ObligationStatus = "FULFILLED"
	ObligationNotFulfilled        ObligationStatus = "NOT_FULFILLED"
	ObligationPreviouslyDelivered ObligationStatus = "PREVIOUSLY_DELIVERED"
)

// HistoryKind identifies the kind of a history entry. The set is closed;
// the display projection must stay exhaustive over it.
type HistoryKind string

const (
	KindSubmitted               HistoryKind = "submitted"
	KindReceived                HistoryKind = "received"
	KindUnderReview             HistoryKind = "under_review"
	KindCompleted               HistoryKind = "completed"
	KindNotProcessed            HistoryKind = "not_processed"
	KindForwarded               HistoryKind = "forwarded"
	KindCaseUnderReview         HistoryKind = "case_under_review"
	KindCaseDecided             HistoryKind = "case_decided"
	KindCaseStatusHidden        HistoryKind = "case_status_hidden"
	KindApplicationStatusHidden HistoryKind = "application_status_hidden"
	KindDocumentationRequested  HistoryKind = "documentation_requested"
	KindDocumentationReviewed   HistoryKind = "documentation_reviewed"
	KindRequirementsUpdated     HistoryKind = "requirements_updated"
	KindInterimResponse         HistoryKind = "interim_response"
	KindPaymentsUpdated         HistoryKind = "payments_updated"

	// Pure link-text kinds. They never stand alone as entries and map to
	// no display row.
	KindViewLetterLink      HistoryKind = "view_letter_link"
	KindViewApplicationLink HistoryKind = "view_application_link"
)

// Aggregate is the read model for one case, rebuilt from scratch on every
// request. Payments are shared by pointer between the root list and the
// owning sub-case, so an update through either view is seen by both.
type Aggregate struct {
	Status            CaseStatus
	ReceivingOfficeID string
	ReceivingOffice   string
	SubmittedAt       *time.Time
	SubCases          []*SubCase
	Payments          []*Payment
	Conditions        []*Condition
	DocRequirements   []*DocRequirement
	Tasks             []TaskItem
	History           []HistoryEntry
	InterimResponse   InterimResponse
}

// SubCase is one independently decided sub-matter of the case.
type SubCase struct {
	Reference string
	Status    SubCaseStatus
	Title     *string
	Decisions []Decision
	Payments  []*Payment
}

// Decision is a ruling on a sub-case with its attached document.
type Decision struct {
	ID          string
	Outcome     *Outcome
	DocumentURL string
	Date        time.Time
}

// Payment is a planned or executed disbursement.
type Payment struct {
	Reference           string
	Status              PaymentStatus
	Amount              float64
	Description         *string
	DueDate             *time.Time
	PaidDate            *time.Time
	PeriodFrom          *time.Time
	PeriodTo            *time.Time
	Recipient           string
	ThirdPartyRecipient bool
	AccountNumber       string
	Method              string
	Conditions          []*Condition
	DocRequirements     []*DocRequirement
	EventTime           time.Time
}

// Condition is an eligibility condition attached to one or more payments.
type Condition struct {
	Reference         string
	Title             *string
	Description       *string
	Status            ObligationStatus
	PaymentReferences []string
	AddedAt           time.Time
	ModifiedAt        time.Time
}

// DocRequirement is a piece of evidence the case owner must supply,
// attached to one or more payments.
type DocRequirement struct {
	Reference         string
	Title             *string
	Description       *string
	Status            ObligationStatus
	PaymentReferences []string
	Deadline          *time.Time
	AddedAt           time.Time
	ModifiedAt        time.Time
}

// TaskItem is one outstanding documentation ask surfaced to the case
// owner. Items sharing a deadline share an ID and are grouped into one
// task by the query layer.
type TaskItem struct {
	ID              string
	DocumentType    string
	ExtraInfo       string
	OriginKind      string
	OriginReference string
	Deadline        time.Time
	RequestedAt     time.Time
	CreatedByPortal bool
}

// HistoryEntry is one line of the user-facing timeline.
type HistoryEntry struct {
	Kind    HistoryKind
	At      time.Time
	TextArg string
	CaseRef string
	URL     *Link
}

// Link is a URL paired with the kind naming its link text.
type Link struct {
	TextKind HistoryKind
	Href     string
}

// InterimResponse records whether a letter about processing time has been
// sent, and where to read it.
type InterimResponse struct {
	Received bool
	URL      string
}

func newAggregate() *Aggregate {
	return &Aggregate{
		SubCases:        []*SubCase{},
		Payments:        []*Payment{},
		Conditions:      []*Condition{},
		DocRequirements: []*DocRequirement{},
		Tasks:           []TaskItem{},
		History:         []HistoryEntry{},
	}
}

// subCase returns the sub-case with the given reference, or nil.
func (a *Aggregate) subCase(reference string) *SubCase {
	for _, sc := range a.SubCases {
		if sc.Reference == reference {
			return sc
		}
	}
	return nil
}

// paymentsByReference resolves payment references across every sub-case,
// preserving the order of the reference list.
func (a *Aggregate) paymentsByReference(references []string) []*Payment {
	var out []*Payment
	for _, ref := range references {
		for _, sc := range a.SubCases {
			for _, p := range sc.Payments {
				if p.Reference == ref {
					out = append(out, p)
				}
			}
		}
	}
	return out
}

// rootPaymentsByReference resolves payment references against the
// aggregate-level list, for payments not attached to any sub-case.
func (a *Aggregate) rootPaymentsByReference(references []string) []*Payment {
	var out []*Payment
	for _, ref := range references {
		for _, p := range a.Payments {
			if p.Reference == ref {
				out = append(out, p)
			}
		}
	}
	return out
}

func (a *Aggregate) appendHistory(entry HistoryEntry) {
	a.History = append(a.History, entry)
}

func strPtr(s string) *string { return &s }
