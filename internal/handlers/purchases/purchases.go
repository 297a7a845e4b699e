package purchases

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/dmoralesf/clinicore/internal/domain"
	"github.com/dmoralesf/clinicore/internal/dto"
	"github.com/dmoralesf/clinicore/internal/service/purchaseservice"
	"github.com/dmoralesf/clinicore/pkg/utils"
)

type Service interface {
	Purchase(ctx context.Context, userID, productID, quantity int, price decimal.Decimal) (int, decimal.Decimal, error)
	History(ctx context.Context, userID int) ([]domain.PurchaseRecord, error)
	Details(ctx context.Context, saleID int) ([]domain.PurchaseRecord, error)
}

type PurchaseHandler struct {
	purchaseService Service
}

func New(purchaseService Service) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// Purchase godoc
//
//	@Summary		Buy a product
//	@Description	Debits the patient's balance and the product stock in one transaction
//	@Tags			Purchases
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase request body"
//	@Success		201		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"User not allowed to purchase"
//	@Failure		404		{object}	utils.Response	"Product or balance not found"
//	@Failure		409		{object}	utils.Response	"Insufficient stock or balance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/purchases [post]
func (h *PurchaseHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID <= 0 || req.ProductID <= 0 || req.Quantity <= 0 || req.Price <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid purchase data")
		return
	}

	saleID, newBalance, err := h.purchaseService.Purchase(
		r.Context(), req.UserID, req.ProductID, req.Quantity, decimal.NewFromFloat(req.Price),
	)
	if err != nil {
		switch {
		case errors.Is(err, purchaseservice.ErrInvalidBuyer):
			utils.RespondWithError(w, http.StatusForbidden, "User not allowed to purchase")
		case errors.Is(err, purchaseservice.ErrProductUnavailable):
			utils.RespondWithError(w, http.StatusNotFound, "Product not available")
		case errors.Is(err, domain.ErrBalanceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Balance not found")
		case errors.Is(err, domain.ErrInsufficientStock):
			utils.RespondWithError(w, http.StatusConflict, "Insufficient stock")
		case errors.Is(err, domain.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusConflict, "Insufficient balance")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PurchaseResponseDTO{
		Message:    "Purchase successfully completed",
		SaleID:     saleID,
		NewBalance: newBalance.InexactFloat64(),
	})
}

// GetHistory godoc
//
//	@Summary		Get a user's purchase history
//	@Tags			Purchases
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{array}		dto.PurchaseRecordDTO
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/purchases/user/{userID} [get]
func (h *PurchaseHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	records, err := h.purchaseService.History(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPurchaseRecordDTOs(records))
}

// GetDetails godoc
//
//	@Summary		Get the line items of a sale
//	@Tags			Purchases
//	@Produce		json
//	@Param			id	path		int	true	"Sale ID"
//	@Success		200	{array}		dto.PurchaseRecordDTO
//	@Failure		400	{object}	utils.Response	"Invalid sale id"
//	@Failure		404	{object}	utils.Response	"Purchase not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/purchases/{id} [get]
func (h *PurchaseHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	saleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid sale id")
		return
	}
	records, err := h.purchaseService.Details(r.Context(), saleID)
	if err != nil {
		if errors.Is(err, purchaseservice.ErrPurchaseNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Purchase not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPurchaseRecordDTOs(records))
}

func toPurchaseRecordDTOs(records []domain.PurchaseRecord) []dto.PurchaseRecordDTO {
	result := make([]dto.PurchaseRecordDTO, 0, len(records))
	for _, rec := range records {
		result = append(result, dto.PurchaseRecordDTO{
			SaleID:      rec.SaleID,
			OrderDate:   rec.OrderDate.Format(time.RFC3339),
			ProductID:   rec.ProductID,
			ProductName: rec.ProductName,
			Description: rec.Description,
			Image:       rec.Image,
			Quantity:    rec.Quantity,
			UnitPrice:   rec.UnitPrice.InexactFloat64(),
		})
	}
	return result
}
