package projection

import (
	"fmt"
	"log"

	"github.com/caseworks/case-status-api/models"
)

// defaultSubCaseTitle is the display fallback for decisions on sub-cases
// that have not yet announced a title of their own.
const defaultSubCaseTitle = "Social assistance"

// applyDecision records a ruling on a sub-case. The owning sub-case is
// located by reference with a fallback to the sub-case literally named
// "default"; if neither exists one is created without title or status,
// to be filled in by a later case-status event.
func (a *Aggregate) applyDecision(e models.Event, opts Options) error {
	if e.DecisionFile == nil {
		return &SchemaError{Label: "decision without a decision file"}
	}
	href, err := opts.DocumentURL(*e.DecisionFile)
	if err != nil {
		return err
	}

	outcome, err := parseOutcome(e.Outcome)
	if err != nil {
		return err
	}

	decision := Decision{
		ID:          e.DecisionFile.ID,
		Outcome:     outcome,
		DocumentURL: href,
		Date:        e.Timestamp,
	}

	sc := a.subCase(e.CaseReference)
	if sc == nil {
		sc = a.subCase("default")
	}
	if sc == nil {
		reference := e.CaseReference
		if reference == "" {
			reference = "default"
		}
		sc = &SubCase{
			Reference: reference,
			Decisions: []Decision{},
			Payments:  []*Payment{},
		}
		a.SubCases = append(a.SubCases, sc)
	}
	sc.Decisions = append(sc.Decisions, decision)

	title := defaultSubCaseTitle
	if sc.Title != nil {
		title = *sc.Title
	}

	log.Println("Event: decision recorded for", sc.Reference, "at", e.Timestamp)
	a.appendHistory(HistoryEntry{
		Kind:    KindCaseDecided,
		At:      e.Timestamp,
		TextArg: title,
		CaseRef: e.CaseReference,
		URL:     &Link{TextKind: KindViewLetterLink, Href: href},
	})
	return nil
}

func parseOutcome(s string) (*Outcome, error) {
	switch Outcome(s) {
	case "":
		return nil, nil
	case OutcomeGranted, OutcomePartiallyGranted, OutcomeRejected, OutcomeDismissed:
		o := Outcome(s)
		return &o, nil
	default:
		return nil, &SchemaError{Label: fmt.Sprintf("decision outcome %q", s)}
	}
}
