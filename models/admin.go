package models

type Admin struct {
	ID uint `gorm:"column:ID_admina;primaryKey" json:"ID_admina"`
}

func (Admin) TableName() string {
	return "Admin"
}

// AdminRequest is a free-text message left for the administrators.
type AdminRequest struct {
	ID      uint   `gorm:"column:ID_Zahtjeva;primaryKey;autoIncrement" json:"ID_Zahtjeva"`
	Message string `gorm:"column:Zahtjev;type:text;not null" json:"Zahtjev"`
}

func (AdminRequest) TableName() string {
	return "ZahtjeviZaAdmina"
}
