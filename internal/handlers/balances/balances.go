package balances

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/dmoralesf/clinicore/internal/domain"
	"github.com/dmoralesf/clinicore/internal/dto"
	"github.com/dmoralesf/clinicore/internal/service/balanceservice"
	"github.com/dmoralesf/clinicore/pkg/utils"
	"github.com/dmoralesf/clinicore/pkg/validate"
)

type Service interface {
	ListBalances(ctx context.Context) ([]domain.PatientBalance, error)
	GetAdminBalance(ctx context.Context, adminID int) (*domain.Balance, error)
	GetPatientBalance(ctx context.Context, patientID int) (*domain.Balance, error)
	GrantToPatient(ctx context.Context, patientID int, amount decimal.Decimal) (*domain.Balance, error)
	AdminAdd(ctx context.Context, adminID int, amount decimal.Decimal) (*domain.Balance, error)
	AdminSubtract(ctx context.Context, adminID int, amount decimal.Decimal) (*domain.Balance, error)
	SelfTopUp(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalances godoc
//
//	@Summary		List patient balances
//	@Description	Admin overview of every patient's balance; patients without a balance row report zero
//	@Tags			Balances
//	@Produce		json
//	@Success		200	{array}		dto.PatientBalanceDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/balances [get]
func (h *BalanceHandler) GetBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.balanceService.ListBalances(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	result := make([]dto.PatientBalanceDTO, 0, len(balances))
	for _, b := range balances {
		result = append(result, dto.PatientBalanceDTO{
			UserID:    b.UserID,
			FirstName: b.FirstName,
			LastName:  b.LastName,
			Role:      string(b.Role),
			Active:    b.Active,
			Balance:   b.Amount.InexactFloat64(),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GetAdminBalance godoc
//
//	@Summary		Get the admin balance
//	@Description	Returns the clinic account balance, creating it at zero on first read
//	@Tags			Balances
//	@Produce		json
//	@Param			adminID	path		int	true	"Admin user ID"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		403		{object}	utils.Response	"Not an administrator"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/balances/admin/{adminID} [get]
func (h *BalanceHandler) GetAdminBalance(w http.ResponseWriter, r *http.Request) {
	adminID, err := strconv.Atoi(chi.URLParam(r, "adminID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	balance, err := h.balanceService.GetAdminBalance(r.Context(), adminID)
	if err != nil {
		h.respondBalanceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance: balance.Amount.InexactFloat64(),
	})
}

// GetPatientBalance godoc
//
//	@Summary		Get a patient's balance
//	@Description	Returns the patient's balance, creating it at zero on first read
//	@Tags			Balances
//	@Produce		json
//	@Param			patientID	path		int	true	"Patient user ID"
//	@Success		200			{object}	dto.BalanceResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid user id"
//	@Failure		403			{object}	utils.Response	"Not a patient"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/balances/patient/{patientID} [get]
func (h *BalanceHandler) GetPatientBalance(w http.ResponseWriter, r *http.Request) {
	patientID, err := strconv.Atoi(chi.URLParam(r, "patientID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	balance, err := h.balanceService.GetPatientBalance(r.Context(), patientID)
	if err != nil {
		h.respondBalanceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance: balance.Amount.InexactFloat64(),
	})
}

// Grant godoc
//
//	@Summary		Grant balance to a patient
//	@Description	Admin credit to a patient's balance; the row is created on first grant
//	@Tags			Balances
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.GrantBalanceRequestDTO	true	"Grant request body"
//	@Success		200		{object}	dto.NewBalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/balances/add [post]
func (h *BalanceHandler) Grant(w http.ResponseWriter, r *http.Request) {
	var req dto.GrantBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PatientID <= 0 || req.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid patient id or amount")
		return
	}
	balance, err := h.balanceService.GrantToPatient(r.Context(), req.PatientID, decimal.NewFromFloat(req.Amount))
	if err != nil {
		h.respondBalanceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponseDTO{
		Message:    "Balance successfully granted",
		NewBalance: balance.Amount.InexactFloat64(),
	})
}

// AdminAdd godoc
//
//	@Summary		Credit the admin balance
//	@Tags			Balances
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdminBalanceRequestDTO	true	"Credit request body"
//	@Success		200		{object}	dto.NewBalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not an administrator"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/balances/admin/add [post]
func (h *BalanceHandler) AdminAdd(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAdminRequest(w, r)
	if !ok {
		return
	}
	balance, err := h.balanceService.AdminAdd(r.Context(), req.AdminID, decimal.NewFromFloat(req.Amount))
	if err != nil {
		h.respondBalanceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponseDTO{
		Message:    "Balance successfully updated",
		NewBalance: balance.Amount.InexactFloat64(),
	})
}

// AdminSubtract godoc
//
//	@Summary		Debit the admin balance
//	@Description	Fails when the balance row is missing or does not cover the amount
//	@Tags			Balances
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdminBalanceRequestDTO	true	"Debit request body"
//	@Success		200		{object}	dto.NewBalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not an administrator"
//	@Failure		404		{object}	utils.Response	"Balance not found"
//	@Failure		409		{object}	utils.Response	"Insufficient balance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/balances/admin/subtract [post]
func (h *BalanceHandler) AdminSubtract(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAdminRequest(w, r)
	if !ok {
		return
	}
	balance, err := h.balanceService.AdminSubtract(r.Context(), req.AdminID, decimal.NewFromFloat(req.Amount))
	if err != nil {
		h.respondBalanceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponseDTO{
		Message:    "Balance successfully updated",
		NewBalance: balance.Amount.InexactFloat64(),
	})
}

// SelfTopUp godoc
//
//	@Summary		Top up own balance
//	@Description	Patient self-service credit with a card payment
//	@Tags			Balances
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SelfTopUpRequestDTO	true	"Top-up request body"
//	@Success		200		{object}	dto.NewBalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not an active patient"
//	@Failure		422		{object}	utils.Response	"Invalid card number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/balances/add-self [post]
func (h *BalanceHandler) SelfTopUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SelfTopUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID <= 0 || req.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id or amount")
		return
	}
	if !validate.IsCardNumber(req.CardNumber) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}
	balance, err := h.balanceService.SelfTopUp(r.Context(), req.UserID, decimal.NewFromFloat(req.Amount))
	if err != nil {
		h.respondBalanceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponseDTO{
		Message:    "Balance successfully topped up",
		NewBalance: balance.Amount.InexactFloat64(),
	})
}

func (h *BalanceHandler) decodeAdminRequest(w http.ResponseWriter, r *http.Request) (dto.AdminBalanceRequestDTO, bool) {
	var req dto.AdminBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if req.AdminID <= 0 || req.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid admin id or amount")
		return req, false
	}
	return req, true
}

func (h *BalanceHandler) respondBalanceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, balanceservice.ErrNotAdmin):
		utils.RespondWithError(w, http.StatusForbidden, "User is not an administrator")
	case errors.Is(err, balanceservice.ErrNotPatient):
		utils.RespondWithError(w, http.StatusForbidden, "User is not a patient")
	case errors.Is(err, balanceservice.ErrInactive):
		utils.RespondWithError(w, http.StatusForbidden, "Account is deactivated")
	case errors.Is(err, domain.ErrBalanceNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Balance not found")
	case errors.Is(err, domain.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusConflict, "Insufficient balance")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
