package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/caseworks/case-status-api/models"
	"github.com/caseworks/case-status-api/projection"
)

func getConditions(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	aggregate, ok := projectCase(w, r, ps, "status.api.get.conditions")
	if !ok {
		return
	}

	out := []models.ObligationResponse{}
	for _, c := range aggregate.Conditions {
		if c.Status != projection.ObligationRelevant {
			continue
		}
		if c.Title == nil && c.Description == nil {
			log.Println("Skipping condition", c.Reference, "with neither title nor description")
			continue
		}
		row := models.ObligationResponse{
			Date:              c.AddedAt,
			Reference:         c.Reference,
			Status:            string(c.Status),
			PaymentReferences: c.PaymentReferences,
		}
		if c.Title != nil {
			row.Title = *c.Title
		}
		if c.Description != nil {
			row.Description = *c.Description
		}
		out = append(out, row)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func getDocumentationRequirements(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	aggregate, ok := projectCase(w, r, ps, "status.api.get.documentationrequirements")
	if !ok {
		return
	}

	out := []models.ObligationResponse{}
	for _, dr := range aggregate.DocRequirements {
		if dr.Status != projection.ObligationRelevant {
			continue
		}
		if dr.Title == nil && dr.Description == nil {
			log.Println("Skipping documentation requirement", dr.Reference, "with neither title nor description")
			continue
		}
		row := models.ObligationResponse{
			Date:              dr.AddedAt,
			Reference:         dr.Reference,
			Status:            string(dr.Status),
			PaymentReferences: dr.PaymentReferences,
			Deadline:          dr.Deadline,
		}
		if dr.Title != nil {
			row.Title = *dr.Title
		}
		if dr.Description != nil {
			row.Description = *dr.Description
		}
		out = append(out, row)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
