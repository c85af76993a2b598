package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caseworks/case-status-api/models"
)

func conditionEvent(min int, reference string, paymentRefs ...string) models.Event {
	return models.Event{
		Kind:              models.KindCondition,
		Timestamp:         at(min),
		Reference:         reference,
		Status:            "RELEVANT",
		Title:             strPtr("Attend the job-seeker programme"),
		PaymentReferences: paymentRefs,
	}
}

func TestConditionUpsertsInPlace(t *testing.T) {
	second := conditionEvent(2, "cond-1", "pay-1")
	second.Status = "FULFILLED"

	events := withSubCase(
		paymentEvent(1, "pay-1", "PAID"),
		conditionEvent(1, "cond-1", "pay-1"),
		second,
	)

	a, err := Project(events, portalSubmission(), testOpts())

	assert.Nil(t, err)
	assert.Equal(t, 1, len(a.Conditions))
	assert.Equal(t, ObligationFulfilled, a.Conditions[0].Status)
	assert.Equal(t, at(1), a.Conditions[0].AddedAt)
	assert.Equal(t, at(2), a.Conditions[0].ModifiedAt)
	assert.Equal(t, 1, len(a.Payments[0].Conditions))
	assert.Same(t, a.Conditions[0], a.Payments[0].Conditions[0])
}

func TestConditionFailsOnUnknownStatus(t *testing.T) {
	e := conditionEvent(1, "cond-1", "pay-1")
	e.Status = "UNDECIDED"

	a, err := Project(withSubCase(e), portalSubmission(), testOpts())

	assert.Nil(t, a)
	assert.IsType(t, &SchemaError{}, err)
}

func TestConditionWithoutPaymentsStaysOnAggregate(t *testing.T) {
	events := withSubCase(conditionEvent(1, "cond-1", "pay-gone"))

	a, err := Project(events, portalSubmission(), testOpts())

	assert.Nil(t, err)
	assert.Equal(t, 1, len(a.Conditions))
}

func TestConditionIsPrunedFromDereferencedPayments(t *testing.T) {
	events := withSubCase(
		paymentEvent(1, "pay-1", "PAID"),
		paymentEvent(2, "pay-2", "PLANNED"),
		conditionEvent(3, "cond-1", "pay-1", "pay-2"),
		conditionEvent(4, "cond-1", "pay-2"),
	)

	a, err := Project(events, portalSubmission(), testOpts())

	assert.Nil(t, err)
	payments := map[string]*Payment{}
	for _, p := range a.Payments {
		payments[p.Reference] = p
	}
	assert.Empty(t, payments["pay-1"].Conditions)
	assert.Equal(t, 1, len(payments["pay-2"].Conditions))
	assert.Equal(t, []string{"pay-2"}, a.Conditions[0].PaymentReferences)
}

func requirementEvent(min int, reference string, paymentRefs ...string) models.Event {
	deadline := at(min + 60)
	return models.Event{
		Kind:              models.KindDocumentationRequirement,
		Timestamp:         at(min),
		Reference:         reference,
		Status:            "RELEVANT",
		Title:             strPtr("Rent receipt"),
		PaymentReferences: paymentRefs,
		Deadline:          &deadline,
	}
}

func TestRequirementAttachesToSubCasePayments(t *testing.T) {
	events := withSubCase(
		paymentEvent(1, "pay-1", "PAID"),
		requirementEvent(2, "req-1", "pay-1"),
	)

	a, err := Project(events, portalSubmission(), testOpts())

	assert.Nil(t, err)
	assert.Equal(t, 1, len(a.DocRequirements))
	assert.Equal(t, 1, len(a.Payments[0].DocRequirements))
	assert.Equal(t, at(62), *a.DocRequirements[0].Deadline)
}

func TestRequirementAttachesToUnattachedPayments(t *testing.T) {
	// Payment exists only in the root list: no sub-case claimed it.
	e := paymentEvent(1, "pay-1", "PAID")
	e.CaseReference = "unknown-sub"

	events := []models.Event{e, requirementEvent(2, "req-1", "pay-1")}

	a, err := Project(events, portalSubmission(), testOpts())

	assert.Nil(t, err)
	assert.Equal(t, 1, len(a.Payments[0].DocRequirements))
}

func TestRequirementHistoryIsFeatureGated(t *testing.T) {
	events := withSubCase(
		paymentEvent(1, "pay-1", "PAID"),
		requirementEvent(2, "req-1", "pay-1"),
	)

	opts := testOpts()
	a, err := Project(events, portalSubmission(), opts)
	assert.Nil(t, err)
	for _, entry := range a.History {
		assert.NotEqual(t, KindRequirementsUpdated, entry.Kind)
	}

	opts.RequirementHistory = true
	a, err = Project(events, portalSubmission(), opts)
	assert.Nil(t, err)
	last := a.History[len(a.History)-1]
	assert.Equal(t, KindRequirementsUpdated, last.Kind)
}
