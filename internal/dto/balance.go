package dto

type PatientBalanceDTO struct {
	UserID    int     `json:"userId"`
	FirstName string  `json:"prinombre"`
	LastName  string  `json:"apepat"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	Balance   float64 `json:"saldo"`
}

type BalanceResponseDTO struct {
	Balance float64 `json:"balance" example:"100.5"`
}

type GrantBalanceRequestDTO struct {
	PatientID int     `json:"patientId" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
}

type AdminBalanceRequestDTO struct {
	AdminID int     `json:"adminId" validate:"required"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
}

type SelfTopUpRequestDTO struct {
	UserID     int     `json:"userId" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	CardNumber string  `json:"cardNumber" example:"4561261212345467"`
}

type NewBalanceResponseDTO struct {
	Message    string  `json:"message"`
	NewBalance float64 `json:"newBalance" example:"70.00"`
}
