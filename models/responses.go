package models

import "time"

type (
	// Error represents any erroneous response
	Error struct {
		Error string `json:"error"`
	}

	// Info represents the response from 'GET /info'
	Info struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}

	// Office represents the response from the office registry's
	// GET /offices/{id}. It does not represent the full response, just
	// what we end up using.
	Office struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	// StatusResponse represents the response from 'GET /cases/{id}/status'
	StatusResponse struct {
		Status      string     `json:"status"`
		SubmittedAt *time.Time `json:"submittedAt,omitempty"`
		Title       string     `json:"title,omitempty"`
	}

	// SubCaseResponse is one element of the response from
	// 'GET /cases/{id}/subcases'
	SubCaseResponse struct {
		Title                string   `json:"title,omitempty"`
		Status               string   `json:"status,omitempty"`
		DecisionDocumentUrls []string `json:"decisionDocumentUrls"`
	}

	// TaskResponse groups the outstanding documentation asks sharing a
	// deadline, as returned from 'GET /cases/{id}/tasks'
	TaskResponse struct {
		TaskID   string        `json:"taskId"`
		Deadline time.Time     `json:"deadline"`
		Elements []TaskElement `json:"elements"`
	}

	TaskElement struct {
		DocumentType    string `json:"documentType"`
		ExtraInfo       string `json:"extraInfo,omitempty"`
		OriginKind      string `json:"originKind"`
		OriginReference string `json:"originReference,omitempty"`
		CreatedByPortal bool   `json:"createdByPortal"`
	}

	// ObligationResponse is one element of the responses from
	// 'GET /cases/{id}/conditions' and
	// 'GET /cases/{id}/documentation-requirements'. Deadline is only set
	// for documentation requirements.
	ObligationResponse struct {
		Date              time.Time  `json:"date"`
		Reference         string     `json:"reference"`
		Title             string     `json:"title,omitempty"`
		Description       string     `json:"description,omitempty"`
		Status            string     `json:"status"`
		PaymentReferences []string   `json:"paymentReferences"`
		Deadline          *time.Time `json:"deadline,omitempty"`
	}

	// TimelineEntry is one row of the response from
	// 'GET /cases/{id}/history'. Type discriminates the closed set of
	// display variants; the other fields are set per variant.
	TimelineEntry struct {
		Type      string    `json:"type"`
		Timestamp time.Time `json:"timestamp"`
		Office    *string   `json:"office,omitempty"`
		Title     *string   `json:"title,omitempty"`
		URL       *string   `json:"url,omitempty"`
	}
)

// Display variants used in TimelineEntry.Type.
const (
	DisplaySent                         = "Sent"
	DisplayReceived                     = "Received"
	DisplayUnderReview                  = "UnderReview"
	DisplayCompleted                    = "Completed"
	DisplayNotProcessed                 = "NotProcessed"
	DisplayForwarded                    = "Forwarded"
	DisplayCaseUnderReview              = "CaseUnderReview"
	DisplayDecisionReady                = "DecisionReady"
	DisplayCaseStatusUnavailable        = "CaseStatusUnavailable"
	DisplayApplicationStatusUnavailable = "ApplicationStatusUnavailable"
	DisplayDocumentationRequested       = "DocumentationRequested"
	DisplayDocumentationReviewed        = "DocumentationReviewed"
	DisplayRequirementsUpdated          = "RequirementsUpdated"
	DisplayInterimResponse              = "InterimResponse"
	DisplayPaymentsUpdated              = "PaymentsUpdated"
)
