package assignmentservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dmoralesf/clinicore/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func intPtr(v int) *int { return &v }

func TestPatientDoctors(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expected    []domain.AssignedDoctor
	}{
		{
			name: "Two occupied slots",
			prepareMock: func() {
				repo.EXPECT().DoctorsForPatient(gomock.Any(), 1).Return(
					&domain.Assignment{ID: 12, PatientID: 1, Doctor1ID: intPtr(3), Doctor2ID: intPtr(4)},
					[]domain.User{
						{ID: 3, FirstName: "Maria", LastName: "Reyes", Role: domain.RoleCardiologist},
						{ID: 4, FirstName: "Jorge", LastName: "Ruiz", Role: domain.RolePulmonologist},
					}, nil)
			},
			expected: []domain.AssignedDoctor{
				{SlotID: "12_1", DoctorID: 3, DoctorName: "Maria Reyes", Specialty: domain.RoleCardiologist},
				{SlotID: "12_2", DoctorID: 4, DoctorName: "Jorge Ruiz", Specialty: domain.RolePulmonologist},
			},
		},
		{
			name: "Only second slot occupied",
			prepareMock: func() {
				repo.EXPECT().DoctorsForPatient(gomock.Any(), 1).Return(
					&domain.Assignment{ID: 12, PatientID: 1, Doctor2ID: intPtr(4)},
					[]domain.User{
						{ID: 4, FirstName: "Jorge", LastName: "Ruiz", Role: domain.RolePulmonologist},
					}, nil)
			},
			expected: []domain.AssignedDoctor{
				{SlotID: "12_2", DoctorID: 4, DoctorName: "Jorge Ruiz", Specialty: domain.RolePulmonologist},
			},
		},
		{
			name: "No assignment row",
			prepareMock: func() {
				repo.EXPECT().DoctorsForPatient(gomock.Any(), 1).Return(nil, nil, nil)
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			got, err := service.PatientDoctors(context.Background(), 1)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAssign(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		doctorID      int
		prepareMock   func()
		expectedID    int
		expectedError error
	}{
		{
			name:     "First doctor creates the row",
			doctorID: 3,
			prepareMock: func() {
				repo.EXPECT().Exists(gomock.Any(), 1, 3).Return(false, nil)
				repo.EXPECT().GetByPatientID(gomock.Any(), 1).Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), 1, 3).Return(12, nil)
			},
			expectedID: 12,
		},
		{
			name:     "Second doctor fills the free slot",
			doctorID: 4,
			prepareMock: func() {
				repo.EXPECT().Exists(gomock.Any(), 1, 4).Return(false, nil)
				repo.EXPECT().GetByPatientID(gomock.Any(), 1).Return(&domain.Assignment{
					ID: 12, PatientID: 1, Doctor1ID: intPtr(3),
				}, nil)
				repo.EXPECT().SetSlot(gomock.Any(), 12, 2, gomock.Any()).Return(nil)
			},
			expectedID: 12,
		},
		{
			name:     "Duplicate pair rejected",
			doctorID: 3,
			prepareMock: func() {
				repo.EXPECT().Exists(gomock.Any(), 1, 3).Return(true, nil)
			},
			expectedError: ErrAlreadyAssigned,
		},
		{
			name:     "Both slots already filled",
			doctorID: 5,
			prepareMock: func() {
				repo.EXPECT().Exists(gomock.Any(), 1, 5).Return(false, nil)
				repo.EXPECT().GetByPatientID(gomock.Any(), 1).Return(&domain.Assignment{
					ID: 12, PatientID: 1, Doctor1ID: intPtr(3), Doctor2ID: intPtr(4),
				}, nil)
			},
			expectedError: ErrSlotsFull,
		},
		{
			name:     "Repo error surfaces",
			doctorID: 3,
			prepareMock: func() {
				repo.EXPECT().Exists(gomock.Any(), 1, 3).Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			id, err := service.Assign(context.Background(), 1, tt.doctorID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}
		})
	}
}

func TestUnassign(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		slotID        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Freeing one of two slots keeps the row",
			slotID: "12_1",
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), 12).Return(&domain.Assignment{
					ID: 12, PatientID: 1, Doctor1ID: intPtr(3), Doctor2ID: intPtr(4),
				}, nil)
				repo.EXPECT().SetSlot(gomock.Any(), 12, 1, nil).Return(nil)
				repo.EXPECT().DeleteIfEmpty(gomock.Any(), 12).Return(false, nil)
			},
		},
		{
			name:   "Freeing the last slot removes the row",
			slotID: "12_2",
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), 12).Return(&domain.Assignment{
					ID: 12, PatientID: 1, Doctor2ID: intPtr(4),
				}, nil)
				repo.EXPECT().SetSlot(gomock.Any(), 12, 2, nil).Return(nil)
				repo.EXPECT().DeleteIfEmpty(gomock.Any(), 12).Return(true, nil)
			},
		},
		{
			name:          "Malformed slot id",
			slotID:        "12",
			prepareMock:   func() {},
			expectedError: ErrInvalidSlotID,
		},
		{
			name:          "Slot out of range",
			slotID:        "12_3",
			prepareMock:   func() {},
			expectedError: ErrInvalidSlotID,
		},
		{
			name:   "Unknown assignment",
			slotID: "99_1",
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrAssignmentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Unassign(context.Background(), tt.slotID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDoctorPatients(t *testing.T) {
	service, repo := NewMock(t)

	patients := []domain.AssignedPatient{
		{UserID: 1, FirstName: "Ana", LastName: "Lopez", Role: domain.RolePatient, Active: true, AssignmentID: 12},
	}
	repo.EXPECT().PatientsForDoctor(gomock.Any(), 3).Return(patients, nil)

	got, err := service.DoctorPatients(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, patients, got)
}
