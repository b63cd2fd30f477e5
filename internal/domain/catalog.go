package domain

// CatalogEntry is one row of the reference problem catalog: a canonical
// title, its difficulty, and the problem link. Read-only reference data.
type CatalogEntry struct {
	Title      string
	Difficulty Difficulty
	Link       string
}
