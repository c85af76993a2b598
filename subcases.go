package main

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/caseworks/case-status-api/models"
	"github.com/caseworks/case-status-api/projection"
)

func getSubCases(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	aggregate, ok := projectCase(w, r, ps, "status.api.get.subcases")
	if !ok {
		return
	}

	out := []models.SubCaseResponse{}
	for _, sc := range aggregate.SubCases {
		// Misregistered sub-cases were opened by mistake and are never
		// shown.
		if sc.Status == projection.SubCaseMisregistered {
			continue
		}
		row := models.SubCaseResponse{
			Status:               string(sc.Status),
			DecisionDocumentUrls: []string{},
		}
		if sc.Title != nil {
			row.Title = *sc.Title
		}
		for _, decision := range sc.Decisions {
			row.DecisionDocumentUrls = append(row.DecisionDocumentUrls, decision.DocumentURL)
		}
		out = append(out, row)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
