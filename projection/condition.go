package projection

import (
	"fmt"
	"log"
	"slices"

	"github.com/caseworks/case-status-api/models"
)

// applyCondition upserts an eligibility condition. Conditions are
// payment-scoped: besides the aggregate-level list they are written only
// into the payments the event references, never into sub-case lists.
func (a *Aggregate) applyCondition(e models.Event) error {
	status, err := parseObligationStatus(e.Status)
	if err != nil {
		return err
	}

	log.Println("Event: condition", e.Reference, "status", e.Status, "at", e.Timestamp)

	condition := &Condition{
		Reference:         e.Reference,
		Title:             e.Title,
		Description:       e.Description,
		Status:            status,
		PaymentReferences: slices.Clone(e.PaymentReferences),
		AddedAt:           e.Timestamp,
		ModifiedAt:        e.Timestamp,
	}

	upsertCondition(&a.Conditions, condition)

	payments := a.paymentsByReference(e.PaymentReferences)
	a.pruneStaleConditions(e.Reference, e.PaymentReferences)

	if len(payments) == 0 {
		log.Println("Found no payments to attach condition to. Payment references:", e.PaymentReferences)
		return nil
	}
	for _, p := range payments {
		upsertCondition(&p.Conditions, condition)
	}
	return nil
}

// pruneStaleConditions drops the condition from payments it no longer
// references.
func (a *Aggregate) pruneStaleConditions(reference string, paymentReferences []string) {
	for _, sc := range a.SubCases {
		for _, p := range sc.Payments {
			p.Conditions = slices.DeleteFunc(p.Conditions, func(c *Condition) bool {
				return c.Reference == reference && !slices.Contains(paymentReferences, p.Reference)
			})
		}
	}
}

func upsertCondition(list *[]*Condition, condition *Condition) {
	for _, existing := range *list {
		if existing.Reference == condition.Reference {
			existing.Title = condition.Title
			existing.Description = condition.Description
			existing.Status = condition.Status
			existing.PaymentReferences = condition.PaymentReferences
			existing.ModifiedAt = condition.ModifiedAt
			log.Println("Updated condition", condition.Reference)
			return
		}
	}
	*list = append(*list, condition)
	log.Println("Added condition", condition.Reference)
}

func parseObligationStatus(s string) (ObligationStatus, error) {
	switch ObligationStatus(s) {
	case ObligationRelevant, ObligationAnnulled, ObligationFulfilled,
		ObligationNotFulfilled, ObligationPreviouslyDelivered:
		return ObligationStatus(s), nil
	default:
		return "", &SchemaError{Label: fmt.Sprintf("obligation status %q", s)}
	}
}
