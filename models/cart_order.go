package models

// CartOrder is one line of a user's shopping cart (Kosarica). PlantName is
// stored alongside PlantCode; the two are not kept in sync.
type CartOrder struct {
	ID        uint   `gorm:"column:ID_Kosarice;primaryKey;autoIncrement" json:"ID_Kosarice"`
	PlantName string `gorm:"column:nazivBiljke;size:255" json:"nazivBiljke"`
	PlantSize string `gorm:"column:velicinaBiljke;size:50" json:"velicinaBiljke"`
	Quantity  int    `gorm:"column:kolicina" json:"kolicina"`
	UserID    uint   `gorm:"column:ID_korisnika;index" json:"ID_korisnika"`
	PlantCode uint   `gorm:"column:sifraBiljke;index" json:"sifraBiljke"`
}

func (CartOrder) TableName() string {
	return "Kosarica"
}

// UserOrder is a cart line joined with the details of the ordered plant.
type UserOrder struct {
	ID               uint   `gorm:"column:ID_Kosarice" json:"ID_Kosarice"`
	PlantName        string `gorm:"column:nazivBiljke" json:"nazivBiljke"`
	PlantSize        string `gorm:"column:velicinaBiljke" json:"velicinaBiljke"`
	Quantity         int    `gorm:"column:kolicina" json:"kolicina"`
	UserID           uint   `gorm:"column:ID_korisnika" json:"ID_korisnika"`
	PlantCode        uint   `gorm:"column:sifraBiljke" json:"sifraBiljke"`
	PlantKind        string `gorm:"column:vrstaBiljke" json:"vrstaBiljke"`
	PlantDescription string `gorm:"column:opisBiljke" json:"opisBiljke"`
}
