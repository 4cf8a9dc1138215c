package dto

type CreateAdminRequestInput struct {
	Message string `json:"zahtjev" binding:"required"`
}

type CreateAdminRequestResponse struct {
	InsertID uint   `json:"insertId"`
	Message  string `json:"message"`
}

type AdminExistsRow struct {
	IDExists int `json:"id_exists"`
}
