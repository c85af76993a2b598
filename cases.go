package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Unleash/unleash-client-go/v3"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"github.com/caseworks/case-status-api/models"
	"github.com/caseworks/case-status-api/projection"
)

// projectCase runs the shared front half of every case endpoint: feature
// gate, bearer auth, event fetch and the fold itself. On failure it has
// already written the response and returns false.
func projectCase(w http.ResponseWriter, r *http.Request, ps httprouter.Params, feature string) (*projection.Aggregate, bool) {
	if !unleash.IsEnabled(feature, unleash.WithFallback(false)) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return nil, false
	}

	token := bearerToken(r)
	if token == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	requestID := uuid.New().String()
	w.Header().Set("X-Request-Id", requestID)
	caseID := ps.ByName("caseId")

	eventLog, err := fetchEventLog(caseID, token)
	if err != nil {
		var upstream *upstreamError
		if errors.As(err, &upstream) && upstream.clientError() {
			w.WriteHeader(http.StatusNotFound)
			log.Println(requestID, "Case", caseID, "not found:", err.Error())
			json.NewEncoder(w).Encode(models.Error{
				Error: "Case not found: " + caseID,
			})
		} else {
			w.WriteHeader(http.StatusBadGateway)
			log.Println(requestID, "Error fetching events for case", caseID+":", err.Error())
			json.NewEncoder(w).Encode(models.Error{
				Error: "Error fetching events from the case service",
			})
		}
		return nil, false
	}

	aggregate, err := projection.Project(eventLog.Events, eventLog.Submission, projection.Options{
		CurrentUserID:      tokenUserID(token),
		DocumentURL:        documentURL,
		RequirementHistory: unleash.IsEnabled("status.api.requirement.history", unleash.WithFallback(false)),
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Println(requestID, "Error projecting case", caseID+":", err.Error())
		json.NewEncoder(w).Encode(models.Error{
			Error: "Error projecting case: " + err.Error(),
		})
		return nil, false
	}
	return aggregate, true
}
