package dto

import "github.com/shopspring/decimal"

type CreatePlantInput struct {
	Name        string          `json:"naziv"`
	Kind        string          `json:"vrsta"`
	Description string          `json:"opis"`
	Quantity    int             `json:"kolicina"`
	Price       decimal.Decimal `json:"cijena"`
	ImageURL    string          `json:"slika"`
}

// PlantSearchQuery holds the optional search filters. The flags are only
// honoured when their value is exactly "true".
type PlantSearchQuery struct {
	Term       string `form:"searchQuery"`
	ByCategory string `form:"searchByCategory"`
	ByName     string `form:"searchByName"`
}

func (q PlantSearchQuery) SearchByCategory() bool {
	return q.ByCategory == "true"
}

func (q PlantSearchQuery) SearchByName() bool {
	return q.ByName == "true"
}
