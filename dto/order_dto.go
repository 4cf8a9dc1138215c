package dto

type CreateOrderInput struct {
	PlantName string `json:"nazivBiljke"`
	PlantSize string `json:"velicinaBiljke"`
	Quantity  int    `json:"kolicina"`
	UserID    uint   `json:"ID_korisnika"`
	PlantCode uint   `json:"sifraBiljke"`
}

type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID uint   `json:"narudzbaId"`
}
