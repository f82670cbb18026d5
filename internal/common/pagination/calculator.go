package pagination

// Offset calculates the database OFFSET value for a page window.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * size
func Offset(page, size int) int {
	return (page - 1) * size
}
