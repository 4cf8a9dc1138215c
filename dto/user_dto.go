package dto

import "plantie/models"

type CreateUserInput struct {
	FirstName string `json:"ime"`
	LastName  string `json:"prezime"`
	Email     string `json:"email"`
	Password  string `json:"lozinka"`
	Address   string `json:"adresa"`
	Contact   string `json:"telefon"`
}

// SignInInput is the email+password variant posted by the mobile client.
type SignInInput struct {
	Email    string `json:"Email_korisnika" binding:"required"`
	Password string `json:"Lozinka_korisnika" binding:"required"`
}

type CreatedResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SignInResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"korisnik"`
}
