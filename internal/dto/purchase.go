package dto

type PurchaseRequestDTO struct {
	UserID    int     `json:"userId" validate:"required"`
	ProductID int     `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"required,gt=0"`
}

type PurchaseResponseDTO struct {
	Message    string  `json:"message"`
	SaleID     int     `json:"saleId"`
	NewBalance float64 `json:"newBalance" example:"70.00"`
}

type PurchaseRecordDTO struct {
	SaleID      int     `json:"saleId"`
	OrderDate   string  `json:"fecha_pedido"`
	ProductID   int     `json:"productId"`
	ProductName string  `json:"nombre_producto"`
	Description string  `json:"descripcion,omitempty"`
	Image       string  `json:"imagen,omitempty"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   float64 `json:"precio"`
}
