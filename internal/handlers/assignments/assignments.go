package assignments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmoralesf/clinicore/internal/domain"
	"github.com/dmoralesf/clinicore/internal/dto"
	"github.com/dmoralesf/clinicore/internal/service/assignmentservice"
	"github.com/dmoralesf/clinicore/pkg/utils"
)

type Service interface {
	PatientDoctors(ctx context.Context, patientID int) ([]domain.AssignedDoctor, error)
	DoctorPatients(ctx context.Context, doctorID int) ([]domain.AssignedPatient, error)
	Assign(ctx context.Context, patientID, doctorID int) (int, error)
	Unassign(ctx context.Context, slotID string) error
}

type AssignmentHandler struct {
	assignmentService Service
}

func New(assignmentService Service) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// GetPatientDoctors godoc
//
//	@Summary		List a patient's doctors
//	@Description	One entry per occupied slot, addressable by its slot id
//	@Tags			Assignments
//	@Produce		json
//	@Param			id	path		int	true	"Patient ID"
//	@Success		200	{array}		dto.AssignedDoctorDTO
//	@Failure		400	{object}	utils.Response	"Invalid patient id"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/assignments/patient/{id} [get]
func (h *AssignmentHandler) GetPatientDoctors(w http.ResponseWriter, r *http.Request) {
	patientID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid patient id")
		return
	}
	doctors, err := h.assignmentService.PatientDoctors(r.Context(), patientID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	result := make([]dto.AssignedDoctorDTO, 0, len(doctors))
	for _, d := range doctors {
		result = append(result, dto.AssignedDoctorDTO{
			ID:         d.SlotID,
			DoctorID:   d.DoctorID,
			DoctorName: d.DoctorName,
			Specialty:  string(d.Specialty),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GetDoctorPatients godoc
//
//	@Summary		List a doctor's patients
//	@Tags			Assignments
//	@Produce		json
//	@Param			id	path		int	true	"Doctor ID"
//	@Success		200	{array}		dto.AssignedPatientDTO
//	@Failure		400	{object}	utils.Response	"Invalid doctor id"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/assignments/doctor/{id} [get]
func (h *AssignmentHandler) GetDoctorPatients(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid doctor id")
		return
	}
	patients, err := h.assignmentService.DoctorPatients(r.Context(), doctorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	result := make([]dto.AssignedPatientDTO, 0, len(patients))
	for _, p := range patients {
		result = append(result, dto.AssignedPatientDTO{
			ID:           p.UserID,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			Role:         string(p.Role),
			Active:       p.Active,
			AssignmentID: p.AssignmentID,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// Create godoc
//
//	@Summary		Assign a doctor to a patient
//	@Description	Fills the first free slot; a patient holds at most two doctors
//	@Tags			Assignments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAssignmentRequestDTO	true	"Assignment request body"
//	@Success		201		{object}	dto.CreateAssignmentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Already assigned or slots full"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/assignments [post]
func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAssignmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PatientID <= 0 || req.DoctorID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid patient or doctor id")
		return
	}
	assignmentID, err := h.assignmentService.Assign(r.Context(), req.PatientID, req.DoctorID)
	if err != nil {
		switch {
		case errors.Is(err, assignmentservice.ErrAlreadyAssigned):
			utils.RespondWithError(w, http.StatusConflict, "Doctor already assigned to this patient")
		case errors.Is(err, assignmentservice.ErrSlotsFull):
			utils.RespondWithError(w, http.StatusConflict, "Patient already has two doctors")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateAssignmentResponseDTO{
		Message:      "Assignment successfully created",
		AssignmentID: assignmentID,
	})
}

// Delete godoc
//
//	@Summary		Unassign a doctor slot
//	@Description	Frees the slot addressed by "{assignmentID}_{slot}" and removes the row once empty
//	@Tags			Assignments
//	@Produce		json
//	@Param			id	path		string	true	"Slot ID"	example(12_1)
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid slot id"
//	@Failure		404	{object}	utils.Response	"Assignment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/assignments/{id} [delete]
func (h *AssignmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "id")

	err := h.assignmentService.Unassign(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, assignmentservice.ErrInvalidSlotID):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid slot id")
		case errors.Is(err, assignmentservice.ErrAssignmentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Assignment not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Assignment successfully removed"})
}
