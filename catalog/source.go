package catalog

// PlayerSource is one embedded player candidate.
type PlayerSource struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

func (p *PlayerSource) String() string {
	return p.Label
}
