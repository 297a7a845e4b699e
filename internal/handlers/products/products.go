package products

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
	"github.com/dmoralesf/clinicore/internal/service/productservice"
	"github.com/dmoralesf/clinicore/pkg/utils"
)

type Service interface {
	List(ctx context.Context, includeInactive bool) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	ToggleStatus(ctx context.Context, id int) (int, error)
}

type ProductHandler struct {
	productService Service
}

func New(productService Service) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GetProducts godoc
//
//	@Summary		List products
//	@Description	List catalog products; discontinued ones only on request
//	@Tags			Products
//	@Produce		json
//	@Param			includeInactive	query		bool	false	"Include discontinued products"
//	@Success		200				{array}		dto.ProductResponseDTO
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/products [get]
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	products, err := h.productService.List(r.Context(), includeInactive)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	result := make([]dto.ProductResponseDTO, 0, len(products))
	for _, p := range products {
		result = append(result, toProductDTO(p))
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GetProduct godoc
//
//	@Summary		Get a product by id
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	dto.ProductResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid product id"
//	@Failure		404	{object}	utils.Response	"Product not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	product, err := h.productService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, productservice.ErrProductNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProductDTO(*product))
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProductRequestDTO	true	"Product data"
//	@Success		201		{object}	dto.CreateProductResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Product name already in use"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}
	created, err := h.productService.Create(r.Context(), product)
	if err != nil {
		if errors.Is(err, productservice.ErrNameTaken) {
			utils.RespondWithError(w, http.StatusConflict, "Product name already in use")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateProductResponseDTO{
		Message:   "Product successfully created",
		ProductID: created.ID,
	})
}

// UpdateProduct godoc
//
//	@Summary		Update a product
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Product ID"
//	@Param			request	body		dto.ProductRequestDTO	true	"Updated product data"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Product not found"
//	@Failure		409		{object}	utils.Response	"Product name already in use"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/products/{id} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	product, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}
	product.ID = id

	if err := h.productService.Update(r.Context(), product); err != nil {
		switch {
		case errors.Is(err, productservice.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		case errors.Is(err, productservice.ErrNameTaken):
			utils.RespondWithError(w, http.StatusConflict, "Product name already in use")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Product successfully updated"})
}

// ToggleStatus godoc
//
//	@Summary		Toggle product availability
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	dto.ProductStatusResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid product id"
//	@Failure		404	{object}	utils.Response	"Product not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/products/{id}/toggle-status [patch]
func (h *ProductHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	status, err := h.productService.ToggleStatus(r.Context(), id)
	if err != nil {
		if errors.Is(err, productservice.ErrProductNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProductStatusResponseDTO{
		Message:   "Product status successfully changed",
		NewStatus: status,
	})
}

func (h *ProductHandler) decodeProduct(w http.ResponseWriter, r *http.Request) (*domain.Product, bool) {
	var req dto.ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if req.Name == "" || req.Price < 0 || req.Stock < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing or invalid product fields")
		return nil, false
	}
	return &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       decimal.NewFromFloat(req.Price),
		Stock:       req.Stock,
		Image:       req.Image,
	}, true
}

func toProductDTO(p domain.Product) dto.ProductResponseDTO {
	return dto.ProductResponseDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Stock:       p.Stock,
		Image:       p.Image,
		Status:      p.Status,
	}
}
