package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Profile связан один-к-одному с внешним identity: ID профиля равен
// идентификатору, который выдаёт провайдер аутентификации.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	College   *string   `json:"college,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

type CreateProfileInput struct {
	Name    string
	Email   *string
	Phone   *string
	College *string
}

type UpdateProfileInput struct {
	Name    *string
	Phone   *string
	College *string
}
