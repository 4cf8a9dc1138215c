package models

// User maps the legacy Korisnik table. Column and JSON names follow the
// existing schema so rows serialize the way clients already expect.
type User struct {
	ID        uint   `gorm:"column:ID_korisnika;primaryKey;autoIncrement" json:"ID_korisnika"`
	FirstName string `gorm:"column:Ime_korisnika;size:100;not null" json:"Ime_korisnika"`
	LastName  string `gorm:"column:Prezime_korisnika;size:100;not null" json:"Prezime_korisnika"`
	Email     string `gorm:"column:Email_korisnika;size:255;index" json:"Email_korisnika"`
	Password  string `gorm:"column:Lozinka_korisnika;size:255;not null" json:"-"`
	Address   string `gorm:"column:Adresa_korisnika;size:255" json:"Adresa_korisnika"`
	Contact   string `gorm:"column:Kontakt_korisnika;size:50" json:"Kontakt_korisnika"`
}

func (User) TableName() string {
	return "Korisnik"
}
