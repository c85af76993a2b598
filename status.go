package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/caseworks/case-status-api/models"
	"github.com/caseworks/case-status-api/projection"
)

func getStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	aggregate, ok := projectCase(w, r, ps, "status.api.get.status")
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.StatusResponse{
		Status:      string(aggregate.Status),
		SubmittedAt: aggregate.SubmittedAt,
		Title:       subCaseTitles(aggregate),
	})
}

// subCaseTitles joins the titles of the visible sub-cases into the
// headline shown above the status.
func subCaseTitles(a *projection.Aggregate) string {
	var titles []string
	for _, sc := range a.SubCases {
		if sc.Status == projection.SubCaseMisregistered || sc.Title == nil {
			continue
		}
		titles = append(titles, *sc.Title)
	}
	return strings.Join(titles, ", ")
}
