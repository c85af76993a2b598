package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/caseworks/case-status-api/models"
)

func TestTimelineMapsEveryEntry(t *testing.T) {
	office := "Hillside office"
	entries := []HistoryEntry{
		{Kind: KindSubmitted, At: at(0), TextArg: "Riverside office", URL: &Link{TextKind: KindViewApplicationLink, Href: "http://documents.local/doc-1"}},
		{Kind: KindReceived, At: at(1), TextArg: "Riverside office"},
		{Kind: KindForwarded, At: at(2), TextArg: "1103"},
		{Kind: KindCaseDecided, At: at(3), TextArg: "Emergency aid", URL: &Link{TextKind: KindViewLetterLink, Href: "http://documents.local/dec-1"}},
		{Kind: KindPaymentsUpdated, At: at(4)},
	}

	rows, err := Timeline(entries, &office)

	assert.Nil(t, err)
	assert.Equal(t, 5, len(rows))

	assert.Equal(t, models.DisplaySent, rows[0].Type)
	assert.Equal(t, "Riverside office", *rows[0].Office)
	assert.Equal(t, "http://documents.local/doc-1", *rows[0].URL)

	assert.Equal(t, models.DisplayReceived, rows[1].Type)

	// Forwarded rows carry the resolved office name, not the raw ID.
	assert.Equal(t, models.DisplayForwarded, rows[2].Type)
	assert.Equal(t, "Hillside office", *rows[2].Office)

	assert.Equal(t, models.DisplayDecisionReady, rows[3].Type)
	assert.Equal(t, "Emergency aid", *rows[3].Title)

	assert.Equal(t, models.DisplayPaymentsUpdated, rows[4].Type)
	assert.Nil(t, rows[4].Office)
	assert.Nil(t, rows[4].URL)
}

func TestTimelineSkipsLinkTextKinds(t *testing.T) {
	rows, err := Timeline([]HistoryEntry{
		{Kind: KindViewLetterLink, At: at(0)},
		{Kind: KindViewApplicationLink, At: at(1)},
	}, nil)

	assert.Nil(t, err)
	assert.Empty(t, rows)
}

func TestTimelineFailsOnUnknownKind(t *testing.T) {
	rows, err := Timeline([]HistoryEntry{{Kind: "brand_new", At: at(0)}}, nil)

	assert.Nil(t, rows)
	assert.IsType(t, &SchemaError{}, err)
	assert.Equal(t, `no mapping for history kind "brand_new"`, err.Error())
}

func TestPaymentUpdateEntriesBucketBursts(t *testing.T) {
	a := newAggregate()
	a.Payments = []*Payment{
		{Reference: "pay-1", Status: PaymentPaid, EventTime: at(0)},
		{Reference: "pay-2", Status: PaymentPaid, EventTime: at(0).Add(90 * time.Second)},
		{Reference: "pay-3", Status: PaymentPlanned, EventTime: at(30)},
	}

	entries := PaymentUpdateEntries(a)

	assert.Equal(t, 2, len(entries))
	assert.Equal(t, KindPaymentsUpdated, entries[0].Kind)
	assert.Equal(t, at(0), entries[0].At)
	assert.Equal(t, at(30), entries[1].At)
}

func TestPaymentUpdateEntriesSkipCancelled(t *testing.T) {
	a := newAggregate()
	a.Payments = []*Payment{
		{Reference: "pay-1", Status: PaymentCancelled, EventTime: at(0)},
	}

	assert.Empty(t, PaymentUpdateEntries(a))
}
