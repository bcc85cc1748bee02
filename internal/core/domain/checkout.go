package domain

// CheckoutState tracks the linear checkout submission flow. There is no
// branching back: a failed submission returns the shopper to the form with
// the error surfaced, and the cart untouched.
type CheckoutState string

const (
	CheckoutFormEditing  CheckoutState = "form_editing"
	CheckoutSubmitting   CheckoutState = "submitting"
	CheckoutOrderCreated CheckoutState = "order_created"
	CheckoutCartCleared  CheckoutState = "cart_cleared"
	CheckoutRedirected   CheckoutState = "redirected"
	CheckoutFailed       CheckoutState = "submission_failed"
)
