package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/h2non/gock.v1"

	"github.com/caseworks/case-status-api/models"
)

func TestGetSubCasesIsFeatureFlagged(t *testing.T) {
	setDefaults()
	setup()
	toggleFeature("status.api.get.subcases", false)

	req := httptest.NewRequest("GET", "/v1/cases/case-1/subcases", nil)
	req.Header.Set("Authorization", "Bearer "+testToken("01017012345"))
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}

func TestGetSubCases(t *testing.T) {
	setup()
	toggleFeature("status.api.get.subcases", true)
	defer gock.Off()

	eventLog := sampleEventLog()
	eventLog.Events = append(eventLog.Events,
		models.Event{Kind: models.KindCaseStatus, CaseReference: "sub-2", Status: "MISREGISTERED", Title: strPtr("Opened by mistake"), Timestamp: at(5)},
	)
	mockEvents("case-1", eventLog)

	req := httptest.NewRequest("GET", "/v1/cases/case-1/subcases", nil)
	req.Header.Set("Authorization", "Bearer "+testToken("01017012345"))
	router.ServeHTTP(resp, req)

	var subCases []models.SubCaseResponse
	err := json.NewDecoder(resp.Body).Decode(&subCases)
	if err != nil {
		t.Fatal("Error decoding JSON response from 'GET /cases/{id}/subcases', ", err.Error())
	}

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 1, len(subCases))
	assert.Equal(t, "Emergency aid", subCases[0].Title)
	assert.Equal(t, "UNDER_REVIEW", subCases[0].Status)
	assert.Equal(t, []string{"http://localhost:8193/dispatches/dec-1/1?inline=true"}, subCases[0].DecisionDocumentUrls)
	assert.True(t, gock.IsDone())
}

func TestGetSubCasesReturns401WhenNotAuthed(t *testing.T) {
	setup()
	toggleFeature("status.api.get.subcases", true)

	req := httptest.NewRequest("GET", "/v1/cases/case-1/subcases", nil)
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
