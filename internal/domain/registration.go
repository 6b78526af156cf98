package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusCancelled  RegistrationStatus = "cancelled"
	RegistrationStatusAttended   RegistrationStatus = "attended"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

func ValidPaymentStatus(s PaymentStatus) bool {
	return s == PaymentStatusPending || s == PaymentStatusCompleted
}

type Registration struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id"`
	EventID       string             `json:"event_id"`
	Status        RegistrationStatus `json:"status"`
	PaymentStatus PaymentStatus      `json:"payment_status"`
	TransactionID *string            `json:"transaction_id,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// Active: cancelled и attended — терминальные статусы, активной
// считается только registered.
func (r *Registration) Active() bool {
	return r.Status == RegistrationStatusRegistered
}

// RegistrationWithEvent — регистрация вместе со своим событием,
// как её отдают listMine/getOne/cancel.
type RegistrationWithEvent struct {
	Registration
	Event Event `json:"event"`
}

// RegistrationWithProfile — регистрация вместе с профилем участника,
// для админского списка по событию.
type RegistrationWithProfile struct {
	Registration
	Participant Profile `json:"participant"`
}

// CreatedRegistration — результат успешной регистрации: сама запись
// плюс снимок события для отображения.
type CreatedRegistration struct {
	Registration Registration `json:"registration"`
	EventTitle   string       `json:"event_title"`
	EventFee     float64      `json:"event_fee"`
}
