package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/caseworks/case-status-api/models"
	"github.com/caseworks/case-status-api/projection"
)

// documentURL resolves a file reference from an event to a link the
// portal can open. Documents uploaded by the office live in the document
// store; decision letters and requests go out through the dispatch
// archive, addressed by document ID plus attachment number.
func documentURL(ref models.FileReference) (string, error) {
	switch ref.Kind {
	case models.FileKindDocumentStore:
		return fmt.Sprintf("%s/documents/%s?inline=true", viper.GetString("document_store_url"), ref.ID), nil
	case models.FileKindDispatch:
		return fmt.Sprintf("%s/dispatches/%s/%d?inline=true", viper.GetString("dispatch_store_url"), ref.ID, ref.Nr), nil
	default:
		return "", &projection.SchemaError{Label: fmt.Sprintf("file reference kind %q", ref.Kind)}
	}
}
