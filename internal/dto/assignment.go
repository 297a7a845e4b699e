package dto

type CreateAssignmentRequestDTO struct {
	PatientID int `json:"patientId" validate:"required"`
	DoctorID  int `json:"doctorId" validate:"required"`
}

type CreateAssignmentResponseDTO struct {
	Message      string `json:"message"`
	AssignmentID int    `json:"assignmentId"`
}

type AssignedDoctorDTO struct {
	ID         string `json:"id" example:"12_1"`
	DoctorID   int    `json:"doctorId"`
	DoctorName string `json:"doctorName"`
	Specialty  string `json:"specialtyName"`
}

type AssignedPatientDTO struct {
	ID           int    `json:"id"`
	FirstName    string `json:"prinombre"`
	LastName     string `json:"apepat"`
	Role         string `json:"role"`
	Active       bool   `json:"active"`
	AssignmentID int    `json:"assignmentId"`
}
