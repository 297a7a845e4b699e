package dto

type RegisterUserRequestDTO struct {
	Role           string `json:"role" example:"patient"`
	FirstName      string `json:"prinombre" validate:"required"`
	MiddleName     string `json:"segnombre"`
	LastName       string `json:"apepat"`
	SecondLastName string `json:"apemat"`
	Email          string `json:"correo" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	BirthDate      string `json:"fechanac" example:"1990-04-17"`
	Phone          string `json:"tel"`
	Specialty      string `json:"especialidad"`
}

type RegisterUserResponseDTO struct {
	Message string `json:"message"`
	UserID  int    `json:"userId"`
}

type UserResponseDTO struct {
	ID             int    `json:"id"`
	Role           string `json:"role"`
	Active         bool   `json:"active"`
	FirstName      string `json:"prinombre"`
	MiddleName     string `json:"segnombre,omitempty"`
	LastName       string `json:"apepat"`
	SecondLastName string `json:"apemat,omitempty"`
	Email          string `json:"correo"`
	Phone          string `json:"tel,omitempty"`
	Specialty      string `json:"especialidad,omitempty"`
}

type UpdateUserRequestDTO struct {
	Role           string `json:"role"`
	FirstName      string `json:"prinombre"`
	MiddleName     string `json:"segnombre"`
	LastName       string `json:"apepat"`
	SecondLastName string `json:"apemat"`
	Email          string `json:"correo" validate:"required,email"`
	Password       string `json:"password,omitempty"`
	BirthDate      string `json:"fechanac"`
	Phone          string `json:"tel"`
	Specialty      string `json:"especialidad"`
}

type ToggleStatusResponseDTO struct {
	Message string `json:"message"`
	Active  bool   `json:"active"`
}
