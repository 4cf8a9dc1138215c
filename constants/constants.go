package constants

// Shared error messages
const (
	ErrInvalidID        = "Invalid id"
	ErrInvalidInput     = "Invalid input"
	ErrInternalServer   = "Internal Server Error"
	ErrConnectionFailed = "Greska u povezanosti!"
)

// Korisnici
const (
	MsgUserCreated         = "Korisnik uspješno dodan"
	MsgUserDeleted         = "Korisnik uspješno obrisan"
	ErrUserCreate          = "Greška pri dodavanju korisnika"
	ErrUserDelete          = "Greška prilikom brisanja korisnika"
	ErrUserList            = "Greška pri dohvaćanju korisnika"
	MsgLoginSuccessPrefix  = "Uspješno ste logirani! Ime i prezime: "
	ErrLoginInvalidID      = "Neispravan ID ili lozinka."
	ErrLogin               = "Greška pri prijavi korisnika"
	MsgSignInSuccess       = "Uspješan login!"
	ErrSignInMissingFields = "Molimo unesite email i lozinku."
	ErrSignInInvalid       = "Neispravan email ili lozinka."
	ErrSignInDatabase      = "Greška u bazi podataka."
)

// Biljke
const (
	MsgPlantCreated = "Biljka uspješno dodana"
	MsgPlantDeleted = "Biljka uspješno obrisana"
	ErrPlantCreate  = "Greška prilikom dodavanja biljke"
	ErrPlantDelete  = "Greška prilikom brisanja biljke"
	ErrPlantSearch  = "Greška prilikom pretrage biljaka"
	ErrPlantLookup  = "Database error"
	ErrPlantMissing = "Plant not found"
)

// Narudžbe
const (
	MsgOrderCreated = "Narudžba uspješno dodana"
	MsgOrderDeleted = "Narudžba uspješno obrisana"
	ErrOrderMissing = "Narudžba nije pronađena"
	ErrOrderCreate  = "Greška prilikom dodavanja narudžbe"
	ErrOrderDelete  = "Greška prilikom brisanja narudžbe"
	ErrOrderList    = "Greška pri dohvaćanju narudžbi"
)

// Zahtjevi za admina
const (
	MsgRequestCreated = "Poruka zabilježena"
	MsgRequestDeleted = "Zahtjev uspješno obrisan"
	ErrRequestEmpty   = "Zahtjev ne može biti prazan."
	ErrRequestCreate  = "Greška pri slanju poruke"
	ErrRequestDelete  = "Greška prilikom brisanja zahtjeva"
)
