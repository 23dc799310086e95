package models

// Country is a reference-data record for a browsable destination. The
// base fields come from the static table; the enrichment fields are
// filled in on demand from the generation collaborator.
type Country struct {
	Name      string `json:"name"`
	Code      string `json:"code"`
	Continent string `json:"continent"`
	Capital   string `json:"capital"`
	ImageURL  string `json:"imageUrl,omitempty"`

	Description     string   `json:"description,omitempty"`
	BestTimeToVisit string   `json:"bestTimeToVisit,omitempty"`
	Currency        string   `json:"currency,omitempty"`
	CultureTips     []string `json:"cultureTips,omitempty"`
	Attractions     []string `json:"attractions,omitempty"`
}

// CountryDetails is the AI-generated guide content merged onto a static
// Country record.
type CountryDetails struct {
	Description     string   `json:"description"`
	BestTimeToVisit string   `json:"bestTimeToVisit"`
	Currency        string   `json:"currency"`
	CultureTips     []string `json:"cultureTips"`
	Attractions     []string `json:"attractions"`
}

// ApplyDetails merges generated guide content onto the country.
func (c *Country) ApplyDetails(d CountryDetails) {
	c.Description = d.Description
	c.BestTimeToVisit = d.BestTimeToVisit
	c.Currency = d.Currency
	c.CultureTips = d.CultureTips
	c.Attractions = d.Attractions
}
