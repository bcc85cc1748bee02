package handler

import (
	"bytes"
	"strconv"

	"github.com/esghir/sales-frontend/internal/core/domain"
)

// looseQuantity unmarshals the add-to-cart quantity field leniently:
// a JSON number, a numeric string, or garbage all produce a usable value,
// with anything non-numeric or below one collapsing to one. This is the
// input policy for the quantity widget — requests never carry less than
// one unit.
type looseQuantity int

func (q *looseQuantity) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		n = 1
	}
	*q = looseQuantity(n)
	return nil
}

type addItemRequest struct {
	ProductID int64         `json:"productId" validate:"required"`
	Quantity  looseQuantity `json:"quantity"`
}

// updateItemRequest takes a plain integer: zero is meaningful here (the
// minus button reaching zero removes the line).
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
}
