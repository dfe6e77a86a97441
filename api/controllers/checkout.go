package controllers

import (
	"net/http"

	"github.com/zaiqaeats/storefront/api/middleware"
	"github.com/zaiqaeats/storefront/api/responses"
	"github.com/zaiqaeats/storefront/api/validators"
	checkoutsvc "github.com/zaiqaeats/storefront/internal/checkout"
	"github.com/zaiqaeats/storefront/pkg/logger"
)

type checkoutRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	Email         string `json:"email" validate:"required,max=254"`
	Phone         string `json:"phone" validate:"required,max=30"`
	Address       string `json:"address" validate:"required,max=500"`
	PaymentMethod string `json:"payment_method" validate:"required,max=20"`
}

// CheckoutSubmit runs the order submission workflow for the session's cart.
// The request carries only the form; the cart itself lives server-side. Field
// rules beyond basic shape live in the checkout service so the API and any
// future callers enforce the same ones.
func CheckoutSubmit(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		fields := checkoutsvc.Fields{
			Name:          payload.Name,
			Email:         payload.Email,
			Phone:         payload.Phone,
			Address:       payload.Address,
			PaymentMethod: payload.PaymentMethod,
		}

		confirmation, err := svc.Submit(r.Context(), middleware.SessionID(r.Context()), fields)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, confirmation)
	}
}
