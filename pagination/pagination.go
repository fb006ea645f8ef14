// Package pagination slices an already-filtered, already-ordered result
// list into fixed-size pages. It holds no state; page math is recomputed
// per request.
package pagination

// DefaultPageSize matches the row count of every list view.
const DefaultPageSize = 4

// TotalPages returns the number of pages needed for total rows,
// never less than 1.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage forces page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Page returns the requested page of rows. Out-of-range pages are
// clamped rather than rejected, so a search that shrinks the list still
// renders the last available page.
func Page[T any](rows []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return rows
	}

	page = ClampPage(page, TotalPages(len(rows), pageSize))

	start := (page - 1) * pageSize
	if start >= len(rows) {
		return []T{}
	}

	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}

	return rows[start:end]
}
