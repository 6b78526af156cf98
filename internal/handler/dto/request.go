package dto

type CreateEventRequest struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	DateTime        string  `json:"date_time" binding:"required"`
	Venue           string  `json:"venue"`
	MaxParticipants *int    `json:"max_participants"`
	Fee             float64 `json:"fee"`
	ImageURL        *string `json:"image_url"`
}

// UpdateEventRequest перечисляет допустимые поля явно; лишние ключи
// тела в базу не просачиваются.
type UpdateEventRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category"`
	DateTime        *string  `json:"date_time"`
	Venue           *string  `json:"venue"`
	MaxParticipants *int     `json:"max_participants"`
	Fee             *float64 `json:"fee"`
	ImageURL        *string  `json:"image_url"`
	IsActive        *bool    `json:"is_active"`
}

type RegisterRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string  `json:"payment_status" binding:"required"`
	TransactionID *string `json:"transaction_id"`
}

type CreateProfileRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	College *string `json:"college"`
}

type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	College *string `json:"college"`
}
