package dto

type ProductRequestDTO struct {
	Name        string  `json:"nombre" validate:"required"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio" validate:"required,gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Image       string  `json:"imagen"`
	Status      *int    `json:"status"`
}

type ProductResponseDTO struct {
	ID          int     `json:"id"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion,omitempty"`
	Price       float64 `json:"precio"`
	Stock       int     `json:"stock"`
	Image       string  `json:"imagen"`
	Status      int     `json:"status"`
}

type CreateProductResponseDTO struct {
	Message   string `json:"message"`
	ProductID int    `json:"productId"`
}

type ProductStatusResponseDTO struct {
	Message   string `json:"message"`
	NewStatus int    `json:"newStatus"`
}
