package company

import "time"

type CompanyResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TradeName string `json:"trade_name"`
	Email     string `json:"email"`
	Cnpj      string `json:"cnpj,omitempty"`
	IsActive  bool   `json:"is_active"`
}

type UpdateCompanyRequest struct {
	Name      string `json:"name" binding:"omitempty,max=150"`
	TradeName string `json:"trade_name" binding:"omitempty,max=150"`
	Email     string `json:"email" binding:"omitempty,email"`
	IsActive  *bool  `json:"is_active"`
}

type UpsertCompanyRegistrationRequest struct {
	Type     RegistrationType `json:"type" binding:"required,oneof=CNPJ IE IM"`
	Number   string           `json:"number" binding:"required,max=30"`
	IssuedAt *time.Time       `json:"issued_at,omitempty"`
}

type CompanyRegistrationResponse struct {
	ID        string           `json:"id"`
	Type      RegistrationType `json:"type"`
	Number    string           `json:"number"`
	IssuedAt  *time.Time       `json:"issued_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
