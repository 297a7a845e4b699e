package assignmentservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmoralesf/clinicore/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=assignmentservice.go -destination=assignmentservice_mock.go -package=assignmentservice

type Repo interface {
	GetByPatientID(ctx context.Context, patientID int) (*domain.Assignment, error)
	GetByID(ctx context.Context, id int) (*domain.Assignment, error)
	Exists(ctx context.Context, patientID, doctorID int) (bool, error)
	Create(ctx context.Context, patientID, doctorID int) (int, error)
	SetSlot(ctx context.Context, assignmentID, slot int, doctorID *int) error
	DeleteIfEmpty(ctx context.Context, assignmentID int) (bool, error)
	DoctorsForPatient(ctx context.Context, patientID int) (*domain.Assignment, []domain.User, error)
	PatientsForDoctor(ctx context.Context, doctorID int) ([]domain.AssignedPatient, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrAlreadyAssigned    = errors.New("assignment already exists")
	ErrSlotsFull          = errors.New("patient already has two doctors")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrInvalidSlotID      = errors.New("invalid assignment slot id")
)

// PatientDoctors returns one entry per occupied slot, each addressable by
// its "{assignmentID}_{slot}" id.
func (s *Service) PatientDoctors(ctx context.Context, patientID int) ([]domain.AssignedDoctor, error) {
	assignment, doctors, err := s.repo.DoctorsForPatient(ctx, patientID)
	if err != nil {
		zap.L().Error("failed to load patient doctors", zap.Error(err))
		return nil, err
	}
	if assignment == nil {
		return nil, nil
	}

	byID := make(map[int]domain.User, len(doctors))
	for _, d := range doctors {
		byID[d.ID] = d
	}

	slots := []struct {
		slot     int
		doctorID *int
	}{
		{1, assignment.Doctor1ID},
		{2, assignment.Doctor2ID},
	}

	var assigned []domain.AssignedDoctor
	for _, sl := range slots {
		slot, doctorID := sl.slot, sl.doctorID
		if doctorID == nil {
			continue
		}
		doctor, ok := byID[*doctorID]
		if !ok {
			continue
		}
		assigned = append(assigned, domain.AssignedDoctor{
			SlotID:     fmt.Sprintf("%d_%d", assignment.ID, slot),
			DoctorID:   doctor.ID,
			DoctorName: strings.TrimSpace(doctor.FirstName + " " + doctor.LastName),
			Specialty:  doctor.Role,
		})
	}
	return assigned, nil
}

func (s *Service) DoctorPatients(ctx context.Context, doctorID int) ([]domain.AssignedPatient, error) {
	patients, err := s.repo.PatientsForDoctor(ctx, doctorID)
	if err != nil {
		zap.L().Error("failed to load doctor patients", zap.Error(err))
		return nil, err
	}
	return patients, nil
}

// Assign links a doctor to a patient: first slot of a fresh row, otherwise
// the first free slot of the existing row.
func (s *Service) Assign(ctx context.Context, patientID, doctorID int) (int, error) {
	exists, err := s.repo.Exists(ctx, patientID, doctorID)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrAlreadyAssigned
	}

	assignment, err := s.repo.GetByPatientID(ctx, patientID)
	if err != nil {
		return 0, err
	}
	if assignment == nil {
		id, err := s.repo.Create(ctx, patientID, doctorID)
		if err != nil {
			zap.L().Error("failed to create assignment", zap.Error(err))
			return 0, err
		}
		return id, nil
	}

	var slot int
	switch {
	case assignment.Doctor1ID == nil:
		slot = 1
	case assignment.Doctor2ID == nil:
		slot = 2
	default:
		return 0, ErrSlotsFull
	}

	if err := s.repo.SetSlot(ctx, assignment.ID, slot, &doctorID); err != nil {
		zap.L().Error("failed to fill assignment slot", zap.Error(err))
		return 0, err
	}
	return assignment.ID, nil
}

// Unassign frees the slot addressed by slotID ("{assignmentID}_{slot}")
// and removes the row once both slots are empty.
func (s *Service) Unassign(ctx context.Context, slotID string) error {
	assignmentID, slot, err := parseSlotID(slotID)
	if err != nil {
		return err
	}

	assignment, err := s.repo.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if assignment == nil {
		return ErrAssignmentNotFound
	}

	if err := s.repo.SetSlot(ctx, assignmentID, slot, nil); err != nil {
		zap.L().Error("failed to free assignment slot", zap.Error(err))
		return err
	}

	deleted, err := s.repo.DeleteIfEmpty(ctx, assignmentID)
	if err != nil {
		return err
	}
	if deleted {
		zap.L().Info("assignment removed", zap.Int("assignment_id", assignmentID))
	}
	return nil
}

func parseSlotID(slotID string) (int, int, error) {
	parts := strings.Split(slotID, "_")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidSlotID
	}
	assignmentID, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, ErrInvalidSlotID
	}
	slot, err := strconv.Atoi(parts[1])
	if err != nil || (slot != 1 && slot != 2) {
		return 0, 0, ErrInvalidSlotID
	}
	return assignmentID, slot, nil
}
