package models

import "time"

// Event kinds emitted by the case-management service. The set is closed;
// the projection engine fails fast on anything else.
const (
	KindApplicationStatus        = "applicationStatus"
	KindCaseStatus               = "caseStatus"
	KindDecision                 = "decision"
	KindDocumentationRequest     = "documentationRequest"
	KindInterimResponse          = "interimResponse"
	KindCaseReassignment         = "caseReassignment"
	KindPayment                  = "payment"
	KindCondition                = "condition"
	KindDocumentationRequirement = "documentationRequirement"
)

// File reference kinds understood by the document URL resolver.
const (
	FileKindDocumentStore = "documentStore"
	FileKindDispatch      = "dispatch"
)

type (
	// EventLog represents the response from the case service's
	// GET /cases/{id}/events. It does not represent the full response,
	// just what we end up using.
	EventLog struct {
		Submission Submission `json:"submission"`
		Events     []Event    `json:"events"`
	}

	// Submission carries the routing metadata recorded when the
	// application was originally submitted. A case routed on paper has no
	// receiving office name and no submission document.
	Submission struct {
		ReceivingOfficeID   string     `json:"receivingOfficeId"`
		ReceivingOfficeName string     `json:"receivingOfficeName"`
		SubmittedAt         *time.Time `json:"submittedAt"`
		DocumentID          string     `json:"documentId"`
	}

	// Event is one entry in the case event log: a tagged union keyed by
	// Kind. Only the fields belonging to the matching kind are set.
	Event struct {
		Kind      string    `json:"kind"`
		Timestamp time.Time `json:"timestamp"`

		// applicationStatus, caseStatus, payment, condition, documentationRequirement
		Status string `json:"status,omitempty"`

		// caseStatus, decision, payment
		CaseReference string  `json:"caseReference,omitempty"`
		Title         *string `json:"title,omitempty"`

		// decision
		Outcome      string         `json:"outcome,omitempty"`
		DecisionFile *FileReference `json:"decisionFile,omitempty"`

		// documentationRequest, interimResponse
		Letter    *FileReference      `json:"letter,omitempty"`
		Documents []RequestedDocument `json:"documents,omitempty"`

		// caseReassignment
		Office string `json:"office,omitempty"`

		// payment
		PaymentReference    string     `json:"paymentReference,omitempty"`
		Amount              float64    `json:"amount,omitempty"`
		DueDate             *time.Time `json:"dueDate,omitempty"`
		PaidDate            *time.Time `json:"paidDate,omitempty"`
		PeriodFrom          *time.Time `json:"periodFrom,omitempty"`
		PeriodTo            *time.Time `json:"periodTo,omitempty"`
		Recipient           string     `json:"recipient,omitempty"`
		ThirdPartyRecipient *bool      `json:"thirdPartyRecipient,omitempty"`
		AccountNumber       string     `json:"accountNumber,omitempty"`
		Method              string     `json:"method,omitempty"`

		// condition, documentationRequirement; Description doubles as the
		// free-text payment description
		Reference         string     `json:"reference,omitempty"`
		Description       *string    `json:"description,omitempty"`
		PaymentReferences []string   `json:"paymentReferences,omitempty"`
		Deadline          *time.Time `json:"deadline,omitempty"`
	}

	// FileReference points at a stored document or a dispatched letter.
	FileReference struct {
		Kind string `json:"kind"`
		ID   string `json:"id"`
		Nr   int    `json:"nr,omitempty"` // dispatch consignments only
	}

	// RequestedDocument is one element of a documentationRequest event.
	RequestedDocument struct {
		Type      string    `json:"type"`
		ExtraInfo string    `json:"extraInfo,omitempty"`
		Reference string    `json:"reference,omitempty"`
		Deadline  time.Time `json:"deadline"`
	}
)
