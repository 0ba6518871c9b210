package handler

import (
	"murima/internal/registry/importer"
	"murima/internal/registry/models"
	"murima/internal/registry/query"
)

// ListItem is one directory entry. Highlights carry the name's match spans
// when the request had a search query, so the UI can emphasize matches
// without re-deriving the predicate.
type ListItem struct {
	models.Business
	NameHighlight []query.Span `json:"name_highlight,omitempty"`
}

// ListResponse is the HTTP response for GET /records.
type ListResponse struct {
	Items        []ListItem `json:"items"`
	TotalMatched int        `json:"total_matched"`
	TotalPages   int        `json:"total_pages"`
	Page         int        `json:"page"`
}

// FromResult converts a pipeline result to an HTTP response.
func FromResult(result *query.Result, page int, q string) *ListResponse {
	items := make([]ListItem, 0, len(result.Items))
	for _, b := range result.Items {
		item := ListItem{Business: b}
		if q != "" {
			item.NameHighlight = query.Highlight(b.Name, q)
		}
		items = append(items, item)
	}
	return &ListResponse{
		Items:        items,
		TotalMatched: result.TotalMatched,
		TotalPages:   result.TotalPages,
		Page:         page,
	}
}

// ImportResponse is the HTTP response for POST /records/import.
type ImportResponse struct {
	BatchID    string                  `json:"batch_id"`
	Imported   int                     `json:"imported"`
	Duplicates int                     `json:"duplicates"`
	Errors     int                     `json:"errors"`
	RowErrors  []importer.RowError     `json:"row_errors,omitempty"`
	RowDupes   []importer.RowDuplicate `json:"row_duplicates,omitempty"`
}

// FromImportResult converts an import result to an HTTP response.
func FromImportResult(result *importer.Result) *ImportResponse {
	return &ImportResponse{
		BatchID:    result.BatchID,
		Imported:   result.Imported,
		Duplicates: result.Duplicates,
		Errors:     result.Errors,
		RowErrors:  result.RowErrors,
		RowDupes:   result.RowDupes,
	}
}
