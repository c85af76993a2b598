package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caseworks/case-status-api/models"
)

func TestCaseStatusDefaultsToUnderReview(t *testing.T) {
	events := []models.Event{
		{Kind: models.KindCaseStatus, CaseReference: "sub-1", Title: strPtr("Emergency aid"), Timestamp: at(1)},
	}

	a, err := Project(events, portalSubmission(), testOpts())

	assert.Nil(t, err)
	assert.Equal(t, SubCaseUnderReview, a.SubCases[0].Status)
	assert.Equal(t, KindCaseUnderReview, a.History[1].Kind)
	assert.Equal(t, "Emergency aid", a.History[1].TextArg)
}

func TestCaseStatusFailsOnUnknownStatus(t *testing.T) {
	events := []models.Event{
		{Kind: models.KindCaseStatus, CaseReference: "sub-1", Status: "SHELVED", Timestamp: at(1)},
	}

	a, err := Project(events, portalSubmission(), testOpts())

	assert.Nil(t, a)
	assert.IsType(t, &SchemaError{}, err)
}

func TestCaseStatusTransitionToRestrictedAddsHistory(t *testing.T) {
	events := []models.Event{
		{Kind: models.KindCaseStatus, CaseReference: "sub-1", Status: "UNDER_REVIEW", Title: strPtr("Emergency aid"), Timestamp: at(1)},
		{Kind: models.KindCaseStatus, CaseReference: "sub-1", Status: "RESTRICTED", Title: strPtr("Emergency aid"), Timestamp: at(2)},
	}

	a, err := Project(events, portalSubmission(), testOpts())

	assert.Nil(t, err)
	assert.Equal(t, SubCaseRestricted, a.SubCases[0].Status)
	last := a.History[len(a.History)-1]
	assert.Equal(t, KindApplicationStatusHidden, last.Kind)
	assert.Equal(t, "Emergency aid", last.TextArg)
}

func TestCaseStatusOpeningRestrictedAddsHiddenEntry(t *testing.T) {
	events := []models.Event{
		{Kind: models.KindCaseStatus, CaseReference: "sub-1", Status: "RESTRICTED", Timestamp: at(1)},
	}

	a, err := Project(events, portalSubmission(), testOpts())

	assert.Nil(t, err)
	assert.Equal(t, KindCaseStatusHidden, a.History[1].Kind)
}

func TestCaseStatusRepeatedRestrictedAddsNoDuplicateHistory(t *testing.T) {
	events := []models.Event{
		{Kind: models.KindCaseStatus, CaseReference: "sub-1", Status: "UNDER_REVIEW", Timestamp: at(1)},
		{Kind: models.KindCaseStatus, CaseReference: "sub-1", Status: "RESTRICTED", Timestamp: at(2)},
		{Kind: models.KindCaseStatus, CaseReference: "sub-1", Status: "RESTRICTED", Timestamp: at(3)},
	}

	a, err := Project(events, portalSubmission(), testOpts())

	assert.Nil(t, err)
	hidden := 0
	for _, entry := range a.History {
		if entry.Kind == KindApplicationStatusHidden {
			hidden++
		}
	}
	assert.Equal(t, 1, hidden)
}

func TestDecisionBeforeCaseStatusKeepsDecision(t *testing.T) {
	// The decision arrives first in time; the later case-status event must
	// fill in title and status without losing the ruling.
	events := []models.Event{
		{Kind: models.KindCaseStatus, CaseReference: "sub-1", Status: "COMPLETED", Title: strPtr("Emergency aid"), Timestamp: at(5)},
		{Kind: models.KindDecision, CaseReference: "sub-1", Outcome: "REJECTED",
			DecisionFile: &models.FileReference{Kind: models.FileKindDocumentStore, ID: "dec-9"}, Timestamp: at(2)},
	}

	a, err := Project(events, portalSubmission(), testOpts())

	assert.Nil(t, err)
	assert.Equal(t, 1, len(a.SubCases))
	sc := a.SubCases[0]
	assert.Equal(t, "Emergency aid", *sc.Title)
	assert.Equal(t, SubCaseCompleted, sc.Status)
	assert.Equal(t, 1, len(sc.Decisions))
	assert.Equal(t, OutcomeRejected, *sc.Decisions[0].Outcome)
}
