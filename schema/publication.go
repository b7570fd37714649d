package schema

// PublicationInfo is a publication as fetched from PubMed, before it has a
// GeneWeaver id.
type PublicationInfo struct {
	Authors  string `json:"authors" yaml:"authors" validate:"required"`
	Title    string `json:"title" yaml:"title" validate:"required"`
	Abstract string `json:"abstract" yaml:"abstract"`
	Journal  string `json:"journal,omitempty" yaml:"journal,omitempty"`
	Volume   string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Pages    string `json:"pages" yaml:"pages"`
	Month    string `json:"month" yaml:"month"`
	Day      string `json:"day,omitempty" yaml:"day,omitempty"`
	Year     int    `json:"year" yaml:"year" validate:"required,gt=0"`
	PubmedID int    `json:"pubmed_id" yaml:"pubmed_id" validate:"required,gt=0"`
}

func (p PublicationInfo) Validate() error { return check(p) }
