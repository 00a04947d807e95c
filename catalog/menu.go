package catalog

// MenuItem is one navigation link of a taxonomy.
type MenuItem struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

func (m *MenuItem) String() string {
	return m.Label
}

// Menu holds the taxonomies of the home page.
type Menu struct {
	// Genres are sorted ascending by label.
	Genres []*MenuItem `json:"genres"`
	// Years are sorted descending by numeric label.
	Years []*MenuItem `json:"years"`
}
