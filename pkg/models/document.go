package models

// DocumentProgress is the live ingestion state for one document
type DocumentProgress struct {
	DocumentID string `json:"document_id"`
	Stage      string `json:"stage"`
	Progress   int    `json:"progress"`
	Error      string `json:"error,omitempty"`
}
