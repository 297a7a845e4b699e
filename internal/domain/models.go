package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role replaces the legacy numeric tipo codes, which overloaded role and
// active/inactive status in a single field. Active is tracked separately.
type Role string

const (
	RolePatient           Role = "patient"
	RolePrivilegedPatient Role = "privileged"
	RoleCardiologist      Role = "cardiologist"
	RolePulmonologist     Role = "pulmonologist"
	RoleAdmin             Role = "admin"
)

func (r Role) IsPatient() bool {
	return r == RolePatient || r == RolePrivilegedPatient
}

func (r Role) IsDoctor() bool {
	return r == RoleCardiologist || r == RolePulmonologist
}

func (r Role) Valid() bool {
	switch r {
	case RolePatient, RolePrivilegedPatient, RoleCardiologist, RolePulmonologist, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID             int        `db:"id"`
	Role           Role       `db:"rol"`
	Active         bool       `db:"activo"`
	FirstName      string     `db:"prinombre"`
	MiddleName     string     `db:"segnombre"`
	LastName       string     `db:"apepat"`
	SecondLastName string     `db:"apemat"`
	Email          string     `db:"correo"`
	PasswordHash   string     `db:"password_hash"`
	BirthDate      *time.Time `db:"fechanac"`
	Phone          string     `db:"tel"`
	Specialty      string     `db:"especialidad"`
	CreatedAt      time.Time  `db:"creado_en"`
}

const (
	ProductActive   = 1
	ProductInactive = 0
)

type Product struct {
	ID          int             `db:"id"`
	Name        string          `db:"nombre"`
	Description string          `db:"descripcion"`
	Price       decimal.Decimal `db:"precio"`
	Stock       int             `db:"stock"`
	Image       string          `db:"imagen"`
	Status      int             `db:"status"`
}

type Balance struct {
	ID     int             `db:"id"`
	UserID int             `db:"id_usuario"`
	Amount decimal.Decimal `db:"saldo"`
}

type Sale struct {
	ID        int       `db:"id"`
	OrderDate time.Time `db:"fecha_pedido"`
	PatientID int       `db:"id_paciente"`
}

type SaleDetail struct {
	ID        int             `db:"id"`
	SaleID    int             `db:"id_venta"`
	ProductID int             `db:"id_producto"`
	Quantity  int             `db:"cantidad"`
	UnitPrice decimal.Decimal `db:"precio"`
}

// PurchaseRecord is one row of a user's purchase history (venta joined with
// detalle_venta and producto).
type PurchaseRecord struct {
	SaleID      int
	OrderDate   time.Time
	PatientID   int
	ProductID   int
	ProductName string
	Description string
	Image       string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// PatientBalance is one row of the admin balance overview. Patients without
// a saldos row report a zero amount.
type PatientBalance struct {
	UserID    int
	FirstName string
	LastName  string
	Role      Role
	Active    bool
	Amount    decimal.Decimal
}

// Assignment holds the two doctor slots of a patient. A nil slot is free.
type Assignment struct {
	ID        int  `db:"id"`
	PatientID int  `db:"id_paciente"`
	Doctor1ID *int `db:"id_doctor1"`
	Doctor2ID *int `db:"id_doctor2"`
}

// AssignedDoctor is the flattened slot view exposed to clients: one entry
// per occupied slot, identified by "{assignmentID}_{slot}".
type AssignedDoctor struct {
	SlotID     string
	DoctorID   int
	DoctorName string
	Specialty  Role
}

type AssignedPatient struct {
	UserID       int
	FirstName    string
	LastName     string
	Role         Role
	Active       bool
	AssignmentID int
}

type Message struct {
	ID           int       `db:"id"`
	AssignmentID int       `db:"asignacion_id"`
	SenderID     int       `db:"emisor_id"`
	ReceiverID   int       `db:"receptor_id"`
	Text         string    `db:"mensaje"`
	Read         bool      `db:"leido"`
	SentAt       time.Time `db:"fecha_envio"`
}

// Contact is a chat counterpart (a patient's doctor or a doctor's patient)
// with conversation summary data.
type Contact struct {
	UserID       int
	FirstName    string
	LastName     string
	Role         Role
	AssignmentID int
	LastMessage  *Message
	UnreadCount  int
}

// VitalsReading is one synthetic pulse-oximeter measurement pushed to the
// realtime telemetry store.
type VitalsReading struct {
	ID        string    `json:"id"`
	UserID    int       `json:"userId"`
	HeartRate int       `json:"heartRate"`
	SpO2      int       `json:"spo2"`
	TakenAt   time.Time `json:"takenAt"`
}
