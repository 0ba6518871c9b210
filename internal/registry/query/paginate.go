package query

import "murima/internal/registry/models"

// PageSizeAll is the reserved page size meaning "everything on one page".
// Exports request it so the spreadsheet covers the whole filtered set.
const PageSizeAll = -1

// Paginate slices an ordered sequence into its 1-based page. Requests beyond
// the last page return an empty slice, never an error; ranges are clamped.
func Paginate(records []models.Business, page, pageSize int) []models.Business {
	if pageSize == PageSizeAll || pageSize <= 0 {
		return records
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return []models.Business{}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// PageCount is ceil(total/pageSize), minimum 1. The "all" sentinel always
// yields a single page.
func PageCount(total, pageSize int) int {
	if pageSize == PageSizeAll || pageSize <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}
