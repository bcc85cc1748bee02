package handler

import "github.com/esghir/sales-frontend/internal/core/domain"

// checkoutRequest is the billing and payment form. Presence-only
// validation: the backend owns everything beyond "the field was filled
// in", and none of this is ever persisted here.
type checkoutRequest struct {
	FullName   string `json:"fullName"   validate:"required"`
	Email      string `json:"email"      validate:"required"`
	Address    string `json:"address"    validate:"required"`
	City       string `json:"city"       validate:"required"`
	ZipCode    string `json:"zipCode"    validate:"required"`
	Country    string `json:"country"    validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required"`
	CardExpiry string `json:"cardExpiry" validate:"required"`
	CardCVC    string `json:"cardCvc"    validate:"required"`
}

type checkoutResponse struct {
	State    domain.CheckoutState `json:"state"`
	Order    *domain.Order        `json:"order,omitempty"`
	Redirect string               `json:"redirect,omitempty"`
}
