package dto

type LoginRequestDTO struct {
	Email    string `json:"correo" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message   string `json:"message"`
	UserID    int    `json:"userId"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
