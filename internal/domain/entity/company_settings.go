package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompanySettings is the per-user company profile printed on generated
// invoices. One row per user, written via upsert.
type CompanySettings struct {
	UserID      uuid.UUID `json:"user_id"`
	CompanyName string    `json:"company_name"`
	OwnerName   string    `json:"owner_name"`
	Street      string    `json:"street"`
	HouseNumber string    `json:"house_number"`
	PostalCode  string    `json:"postal_code"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	VatID       *string   `json:"vat_id"`  // USt-IdNr.
	TaxID       *string   `json:"tax_id"`  // Steuernummer
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	LogoPath    *string   `json:"logo_path"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
