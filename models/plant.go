package models

import "github.com/shopspring/decimal"

// Plant maps the Biljka table. Image holds the raw stored bytes and is never
// serialized; ImageURL carries the decoded form returned to clients.
type Plant struct {
	Code        uint            `gorm:"column:sifraBiljke;primaryKey;autoIncrement" json:"sifraBiljke"`
	Name        string          `gorm:"column:nazivBiljke;size:255;not null;index" json:"nazivBiljke"`
	Kind        string          `gorm:"column:vrstaBiljke;size:255" json:"vrstaBiljke"`
	Description string          `gorm:"column:opisBiljke;type:text" json:"opisBiljke"`
	Quantity    int             `gorm:"column:dostupnaKolicina;not null;default:0" json:"dostupnaKolicina"`
	Price       decimal.Decimal `gorm:"column:cijena;type:decimal(10,2);not null" json:"cijena"`
	Image       []byte          `gorm:"column:slikaBiljke" json:"-"`
	ImageURL    *string         `gorm:"-" json:"slikaBiljke"`
}

func (Plant) TableName() string {
	return "Biljka"
}
