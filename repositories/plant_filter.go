package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlantFilter narrows a plant query. Filters are GORM scopes, so every value
// reaches the store as a bound parameter.
type PlantFilter func(db *gorm.DB) *gorm.DB

func KindContains(term string) PlantFilter {
	return contains("vrstaBiljke", term)
}

func NameContains(term string) PlantFilter {
	return contains("nazivBiljke", term)
}

func contains(column, term string) PlantFilter {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Like{Column: clause.Column{Name: column}, Value: "%" + term + "%"})
	}
}

// BuildPlantFilters returns one filter per enabled flag. An empty term
// disables filtering entirely, as does leaving both flags off.
func BuildPlantFilters(term string, byCategory, byName bool) []PlantFilter {
	if term == "" {
		return nil
	}

	var filters []PlantFilter
	if byCategory {
		filters = append(filters, KindContains(term))
	}
	if byName {
		filters = append(filters, NameContains(term))
	}
	return filters
}
