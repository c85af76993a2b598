package projection

import (
	"log"
	"slices"

	"github.com/caseworks/case-status-api/models"
)

// applyDocumentationRequirement upserts a documentation requirement into
// the payments the event references. Requirements may arrive for
// payments not yet attached to any sub-case, so the aggregate-level
// payment list is searched as well.
func (a *Aggregate) applyDocumentationRequirement(e models.Event, opts Options) error {
	status, err := parseObligationStatus(e.Status)
	if err != nil {
		return err
	}

	log.Println("Event: documentation requirement", e.Reference, "status", e.Status, "at", e.Timestamp)

	requirement := &DocRequirement{
		Reference:         e.Reference,
		Title:             e.Title,
		Description:       e.Description,
		Status:            status,
		PaymentReferences: slices.Clone(e.PaymentReferences),
		Deadline:          e.Deadline,
		AddedAt:           e.Timestamp,
		ModifiedAt:        e.Timestamp,
	}

	upsertRequirement(&a.DocRequirements, requirement)

	attached := a.paymentsByReference(e.PaymentReferences)
	unattached := a.rootPaymentsByReference(e.PaymentReferences)

	if len(attached) == 0 && len(unattached) == 0 {
		log.Println("Found no payments to attach documentation requirement to. Payment references:", e.PaymentReferences)
		return nil
	}
	for _, p := range paymentUnion(attached, unattached) {
		upsertRequirement(&p.DocRequirements, requirement)
	}

	if opts.RequirementHistory {
		a.appendHistory(HistoryEntry{
			Kind: KindRequirementsUpdated,
			At:   e.Timestamp,
		})
	}
	return nil
}

func upsertRequirement(list *[]*DocRequirement, requirement *DocRequirement) {
	for _, existing := range *list {
		if existing.Reference == requirement.Reference {
			existing.Title = requirement.Title
			existing.Description = requirement.Description
			existing.Status = requirement.Status
			existing.PaymentReferences = requirement.PaymentReferences
			existing.Deadline = requirement.Deadline
			existing.ModifiedAt = requirement.ModifiedAt
			log.Println("Updated documentation requirement", requirement.Reference)
			return
		}
	}
	*list = append(*list, requirement)
	log.Println("Added documentation requirement", requirement.Reference)
}

// paymentUnion merges the two resolution paths, keeping first-appearance
// order. Payments are shared by pointer, so identity dedups them.
func paymentUnion(attached, unattached []*Payment) []*Payment {
	out := slices.Clone(attached)
	for _, p := range unattached {
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}
