package projection

import (
	"fmt"
	"log"

	"github.com/caseworks/case-status-api/models"
)

// applyPayment upserts a disbursement by reference, both into the owning
// sub-case and into the aggregate-level mirror list. Last write wins:
// the previous entry is removed and the new one appended.
func (a *Aggregate) applyPayment(e models.Event, opts Options) error {
	status, err := parsePaymentStatus(e.Status)
	if err != nil {
		return err
	}

	if e.PaidDate == nil {
		log.Println("Payment", e.PaymentReference, "has no paid date")
	}
	if status == PaymentPlanned {
		log.Println("Payment", e.PaymentReference, "is still planned")
	}

	payment := &Payment{
		Reference:           e.PaymentReference,
		Status:              status,
		Amount:              e.Amount,
		Description:         e.Description,
		DueDate:             e.DueDate,
		PaidDate:            e.PaidDate,
		PeriodFrom:          e.PeriodFrom,
		PeriodTo:            e.PeriodTo,
		Recipient:           e.Recipient,
		ThirdPartyRecipient: isThirdPartyRecipient(e, opts.CurrentUserID),
		AccountNumber:       e.AccountNumber,
		Method:              e.Method,
		Conditions:          []*Condition{},
		DocRequirements:     []*DocRequirement{},
		EventTime:           e.Timestamp,
	}
	// Account numbers only make sense when the case owner is the
	// recipient.
	if payment.ThirdPartyRecipient {
		payment.AccountNumber = ""
	}

	sc := a.subCase(e.CaseReference)
	if sc == nil {
		sc = a.subCase("default")
	}
	if sc != nil {
		sc.Payments = removePayment(sc.Payments, payment.Reference)
		sc.Payments = append(sc.Payments, payment)
	}
	a.Payments = removePayment(a.Payments, payment.Reference)
	a.Payments = append(a.Payments, payment)

	log.Println("Event: payment", e.PaymentReference, "status", string(status), "at", e.Timestamp)
	return nil
}

// isThirdPartyRecipient applies the explicit flag when the case system
// sent one, and otherwise compares the recipient against the identity of
// the case owner making the request.
func isThirdPartyRecipient(e models.Event, currentUserID string) bool {
	if e.ThirdPartyRecipient != nil {
		return *e.ThirdPartyRecipient
	}
	return e.Recipient != currentUserID
}

func removePayment(payments []*Payment, reference string) []*Payment {
	out := payments[:0]
	for _, p := range payments {
		if p.Reference != reference {
			out = append(out, p)
		}
	}
	return out
}

func parsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case "":
		return PaymentPlanned, nil
	case PaymentPlanned, PaymentPaid, PaymentStopped, PaymentCancelled:
		return PaymentStatus(s), nil
	default:
		return "", &SchemaError{Label: fmt.Sprintf("payment status %q", s)}
	}
}
