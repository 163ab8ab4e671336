package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type OfferView struct {
	ID              uuid.UUID        `json:"id"`
	CompanyID       uuid.UUID        `json:"company_id"`
	CompanyName     string           `json:"company_name"`
	CompanyCategory string           `json:"company_category"`
	Title           string           `json:"title"`
	DiscountPercent *float64         `json:"discount_percent,omitempty"`
	DiscountAmount  *decimal.Decimal `json:"discount_amount,omitempty"`
	UnitCost        decimal.Decimal  `json:"unit_cost"`
	StartsAt        time.Time        `json:"starts_at"`
	EndsAt          time.Time        `json:"ends_at"`
	Capacity        int32            `json:"capacity"`
	Issued          int32            `json:"issued"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`

	// Derived at read time, never persisted.
	Remaining     int32 `json:"remaining"`
	DaysRemaining int   `json:"days_remaining"`
	Claimable     bool  `json:"claimable"`
}

type CouponView struct {
	ID         uuid.UUID       `json:"id"`
	Code       string          `json:"code"`
	OfferID    uuid.UUID       `json:"offer_id"`
	UserID     uuid.UUID       `json:"user_id"`
	State      string          `json:"state"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	AssignedAt time.Time       `json:"assigned_at"`
	RedeemedAt *time.Time      `json:"redeemed_at,omitempty"`

	OfferTitle  string    `json:"offer_title"`
	CompanyName string    `json:"company_name"`
	OfferEndsAt time.Time `json:"offer_ends_at"`

	// Derived at read time, never persisted.
	DisplayState  string `json:"display_state"`
	DaysRemaining int    `json:"days_remaining"`
}

// CodeValidationView answers a business's "is this code good" check.
type CodeValidationView struct {
	Valid   bool      `json:"valid"`
	State   string    `json:"state"`
	OfferID uuid.UUID `json:"offer_id"`
	UserID  uuid.UUID `json:"user_id"`
}

// RedemptionProof carries everything the external document renderer needs
// to produce a redeemable proof; the core never renders documents itself.
type RedemptionProof struct {
	CouponID    uuid.UUID  `json:"coupon_id"`
	Code        string     `json:"code"`
	HolderName  string     `json:"holder_name"`
	HolderEmail string     `json:"holder_email"`
	OfferTitle  string     `json:"offer_title"`
	CompanyName string     `json:"company_name"`
	ExpiresAt   time.Time  `json:"expires_at"`
	RedeemedAt  *time.Time `json:"redeemed_at,omitempty"`
}

type UserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// Read store ports, implemented by infra/readstore.

type OfferReadStore interface {
	ListClaimable(ctx context.Context, now time.Time) ([]*OfferView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
}

type CouponReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*CouponView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	FindByCode(ctx context.Context, code string) (*CouponView, error)
	FindProof(ctx context.Context, id uuid.UUID) (*RedemptionProof, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}
