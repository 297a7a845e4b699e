package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmoralesf/clinicore/internal/domain"
	"github.com/dmoralesf/clinicore/internal/dto"
	"github.com/dmoralesf/clinicore/internal/service/userservice"
	"github.com/dmoralesf/clinicore/pkg/utils"
)

type Service interface {
	RegisterPatient(ctx context.Context, user *domain.User, password string) (*domain.User, error)
	RegisterDoctor(ctx context.Context, user *domain.User, password string) (*domain.User, error)
	ListPatients(ctx context.Context, includeInactive bool, role *domain.Role) ([]domain.User, error)
	ListDoctors(ctx context.Context, includeInactive bool) ([]domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	Update(ctx context.Context, user *domain.User, newPassword string) error
	ToggleActive(ctx context.Context, id int) (bool, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

const birthDateLayout = "2006-01-02"

// RegisterPatient godoc
//
//	@Summary		Register a patient
//	@Description	Create a patient account with an empty balance
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterUserRequestDTO	true	"Patient data"
//	@Success		201		{object}	dto.RegisterUserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/register [post]
func (h *UserHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	user, password, ok := h.decodeRegister(w, r)
	if !ok {
		return
	}
	created, err := h.userService.RegisterPatient(r.Context(), user, password)
	if err != nil {
		h.respondRegisterError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterUserResponseDTO{
		Message: "Patient successfully registered",
		UserID:  created.ID,
	})
}

// RegisterDoctor godoc
//
//	@Summary		Register a doctor
//	@Tags			Doctors
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterUserRequestDTO	true	"Doctor data"
//	@Success		201		{object}	dto.RegisterUserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/doctors [post]
func (h *UserHandler) RegisterDoctor(w http.ResponseWriter, r *http.Request) {
	user, password, ok := h.decodeRegister(w, r)
	if !ok {
		return
	}
	created, err := h.userService.RegisterDoctor(r.Context(), user, password)
	if err != nil {
		h.respondRegisterError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterUserResponseDTO{
		Message: "Doctor successfully registered",
		UserID:  created.ID,
	})
}

// GetPatients godoc
//
//	@Summary		List patients
//	@Description	List patient accounts, optionally filtered by role or including deactivated ones
//	@Tags			Users
//	@Produce		json
//	@Param			includeInactive	query		bool	false	"Include deactivated patients"
//	@Param			role			query		string	false	"Patient role filter"	Enums(patient, privileged)
//	@Success		200				{array}		dto.UserResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid role filter"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/users/patients [get]
func (h *UserHandler) GetPatients(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	var role *domain.Role
	if raw := r.URL.Query().Get("role"); raw != "" {
		parsed := domain.Role(raw)
		role = &parsed
	}

	patients, err := h.userService.ListPatients(r.Context(), includeInactive, role)
	if err != nil {
		if errors.Is(err, userservice.ErrInvalidRole) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid role filter")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTOs(patients))
}

// GetDoctors godoc
//
//	@Summary		List doctors
//	@Tags			Doctors
//	@Produce		json
//	@Param			includeInactive	query		bool	false	"Include deactivated doctors"
//	@Success		200				{array}		dto.UserResponseDTO
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/doctors [get]
func (h *UserHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	doctors, err := h.userService.ListDoctors(r.Context(), includeInactive)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTOs(doctors))
}

// GetUser godoc
//
//	@Summary		Get a user by id
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	dto.UserResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/patients/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(*user))
}

// UpdateUser godoc
//
//	@Summary		Update a user
//	@Description	Rewrite a user's profile; a non-empty password replaces the stored one
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		dto.UpdateUserRequestDTO	true	"Updated profile"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		409		{object}	utils.Response	"Email already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/patients/{id} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	var req dto.UpdateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := &domain.User{
		ID:             id,
		Role:           domain.Role(req.Role),
		FirstName:      req.FirstName,
		MiddleName:     req.MiddleName,
		LastName:       req.LastName,
		SecondLastName: req.SecondLastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Specialty:      req.Specialty,
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid birth date")
			return
		}
		user.BirthDate = &birthDate
	}

	if err := h.userService.Update(r.Context(), user, req.Password); err != nil {
		switch {
		case errors.Is(err, userservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, userservice.ErrEmailTaken):
			utils.RespondWithError(w, http.StatusConflict, "Email already registered")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User successfully updated"})
}

// ToggleStatus godoc
//
//	@Summary		Toggle a user's active flag
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	dto.ToggleStatusResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/patients/{id}/toggle-status [patch]
func (h *UserHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	active, err := h.userService.ToggleActive(r.Context(), id)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ToggleStatusResponseDTO{
		Message: "User status successfully changed",
		Active:  active,
	})
}

func (h *UserHandler) decodeRegister(w http.ResponseWriter, r *http.Request) (*domain.User, string, bool) {
	var req dto.RegisterUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, "", false
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return nil, "", false
	}

	user := &domain.User{
		Role:           domain.Role(req.Role),
		FirstName:      req.FirstName,
		MiddleName:     req.MiddleName,
		LastName:       req.LastName,
		SecondLastName: req.SecondLastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Specialty:      req.Specialty,
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid birth date")
			return nil, "", false
		}
		user.BirthDate = &birthDate
	}
	return user, req.Password, true
}

func (h *UserHandler) respondRegisterError(w http.ResponseWriter, err error) {
	if errors.Is(err, userservice.ErrEmailTaken) {
		utils.RespondWithError(w, http.StatusConflict, "Email already registered")
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}

func toUserDTO(user domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:             user.ID,
		Role:           string(user.Role),
		Active:         user.Active,
		FirstName:      user.FirstName,
		MiddleName:     user.MiddleName,
		LastName:       user.LastName,
		SecondLastName: user.SecondLastName,
		Email:          user.Email,
		Phone:          user.Phone,
		Specialty:      user.Specialty,
	}
}

func toUserDTOs(users []domain.User) []dto.UserResponseDTO {
	result := make([]dto.UserResponseDTO, 0, len(users))
	for _, u := range users {
		result = append(result, toUserDTO(u))
	}
	return result
}
