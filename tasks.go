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

func getTasks(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	aggregate, ok := projectCase(w, r, ps, "status.api.get.tasks")
	if !ok {
		return
	}

	// A completed case has nothing left to ask for, whatever the last
	// documentation request said.
	out := []models.TaskResponse{}
	if aggregate.Status != projection.StatusCompleted {
		index := map[string]int{}
		for _, item := range aggregate.Tasks {
			i, seen := index[item.ID]
			if !seen {
				i = len(out)
				index[item.ID] = i
				out = append(out, models.TaskResponse{
					TaskID:   item.ID,
					Deadline: item.Deadline,
					Elements: []models.TaskElement{},
				})
			}
			out[i].Elements = append(out[i].Elements, models.TaskElement{
				DocumentType:    item.DocumentType,
				ExtraInfo:       item.ExtraInfo,
				OriginKind:      item.OriginKind,
				OriginReference: item.OriginReference,
				CreatedByPortal: item.CreatedByPortal,
			})
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Deadline.Before(out[j].Deadline)
		})
	}

	log.Println("Returning", len(out), "tasks for case", ps.ByName("caseId"))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
