package domain

import "time"

// ServiceTag is a free-form category tag attached to a quote request
type ServiceTag string

const (
	ServiceSodInstallation ServiceTag = "sod installation"
	ServiceTopsoilDelivery ServiceTag = "topsoil delivery"
	ServiceMulch           ServiceTag = "mulch"
	ServiceSnowRemoval     ServiceTag = "snow removal"
	ServiceOther           ServiceTag = "other"
)

// QuoteRequest represents a customer's service inquiry
// Records are immutable after creation: no update or delete exists
type QuoteRequest struct {
	ID      int64
	Name    string
	Email   string
	City    string
	Address string
	Phone   string

	// Optional free-form fields, NULL in storage when absent
	Service  *string
	Comments *string

	CreatedAt time.Time
}
