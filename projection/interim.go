package projection

import (
	"log"

	"github.com/caseworks/case-status-api/models"
)

// applyInterimResponse records that the office sent a letter about the
// expected processing time.
func (a *Aggregate) applyInterimResponse(e models.Event, opts Options) error {
	if e.Letter == nil {
		return &SchemaError{Label: "interim response without a letter"}
	}
	href, err := opts.DocumentURL(*e.Letter)
	if err != nil {
		return err
	}

	a.InterimResponse = InterimResponse{Received: true, URL: href}

	log.Println("Event: interim response at", e.Timestamp)
	a.appendHistory(HistoryEntry{
		Kind: KindInterimResponse,
		At:   e.Timestamp,
		URL:  &Link{TextKind: KindViewLetterLink, Href: href},
	})
	return nil
}
