package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"

	"github.com/caseworks/case-status-api/models"
	"github.com/caseworks/case-status-api/projection"
)

func getHistory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	aggregate, ok := projectCase(w, r, ps, "status.api.get.history")
	if !ok {
		return
	}

	entries := make([]projection.HistoryEntry, 0, len(aggregate.History))
	entries = append(entries, aggregate.History...)
	entries = append(entries, projection.PaymentUpdateEntries(aggregate)...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At.Before(entries[j].At)
	})

	timeline, err := projection.Timeline(entries, officeName(aggregate))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Println("Error rendering history for case", ps.ByName("caseId")+":", err.Error())
		json.NewEncoder(w).Encode(models.Error{
			Error: "Error rendering history: " + err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(timeline)
}

// officeName yields the display name of the office currently handling
// the case. After a reassignment only the office ID is known, so the
// registry is asked; a registry failure just leaves the name off the
// timeline.
func officeName(a *projection.Aggregate) *string {
	if a.ReceivingOffice != "" {
		name := a.ReceivingOffice
		return &name
	}
	if a.ReceivingOfficeID == "" {
		return nil
	}
	name, err := fetchOfficeName(a.ReceivingOfficeID)
	if err != nil {
		log.Println("Error resolving office", a.ReceivingOfficeID+":", err.Error())
		return nil
	}
	return &name
}
