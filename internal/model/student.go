package model

import "time"

// Student is a registered student record. RA (registration code) is
// the primary key and never changes; CPF is unique across students.
type Student struct {
	RA        string     `json:"registrationCode"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CPF       string     `json:"nationalId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
	IsActive  bool       `json:"isActive"`
}

// StudentRequest is the payload for the add and edit endpoints.
type StudentRequest struct {
	RA    string `json:"registrationCode" binding:"required,min=1,max=20"`
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Email string `json:"email" binding:"required,min=3,max=100"`
	CPF   string `json:"nationalId" binding:"required,min=11,max=14"`
}

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=1,max=128"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}
