package main

import (
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/spf13/viper"

	"github.com/caseworks/case-status-api/models"
)

// upstreamError classifies a non-200 answer from one of the services we
// depend on. 4xx means the case isn't there or isn't ours to see; 5xx is
// the upstream's problem.
type upstreamError struct {
	Service    string
	StatusCode int
}

func (e *upstreamError) Error() string {
	return fmt.Sprintf("Received status code %d from the %s service", e.StatusCode, e.Service)
}

func (e *upstreamError) clientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// fetchEventLog retrieves the submission metadata and the full event
// batch for a case, passing the caller's token through unchanged.
func fetchEventLog(caseID string, token string) (models.EventLog, error) {
	var eventLog models.EventLog

	req, err := http.NewRequest("GET", viper.GetString("case_service_url")+"/cases/"+caseID+"/events", nil)
	if err != nil {
		return eventLog, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return eventLog, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return eventLog, &upstreamError{Service: "case", StatusCode: resp.StatusCode}
	}

	err = json.NewDecoder(resp.Body).Decode(&eventLog)
	if err != nil {
		return eventLog, err
	}
	return eventLog, nil
}

// fetchOfficeName resolves an office ID against the office registry.
func fetchOfficeName(officeID string) (string, error) {
	resp, err := http.Get(viper.GetString("office_service_url") + "/offices/" + officeID)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &upstreamError{Service: "office", StatusCode: resp.StatusCode}
	}

	var office models.Office
	err = json.NewDecoder(resp.Body).Decode(&office)
	if err != nil {
		return "", err
	}
	return office.Name, nil
}
