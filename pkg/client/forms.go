package client

import (
	"errors"
	"strconv"
	"strings"

	"github.com/velvetcart/admin-api/internal/application/dto"
)

// Form validation errors. These are raised before any request is built, so
// an invalid form never reaches the network.
var (
	ErrMissingVariant    = errors.New("select a size and color variant")
	ErrMissingAdjustment = errors.New("enter an adjustment amount")
	ErrInvalidAdjustment = errors.New("adjustment must be a non-zero integer")
	ErrMissingProduct    = errors.New("no product selected")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
)

// AdjustmentForm holds the raw inputs of the stock adjustment dialog.
// Adjustment stays a string until Parse so partial input ("-") never
// corrupts state.
type AdjustmentForm struct {
	ProductID      string
	Size           string
	Color          string
	Adjustment     string
	AdjustmentType string
	Reason         string
	Notes          string
}

// Parse validates the form and returns the typed request body.
// A signed string like "-5" becomes the integer -5.
func (f *AdjustmentForm) Parse() (dto.AdjustRequest, error) {
	if strings.TrimSpace(f.ProductID) == "" {
		return dto.AdjustRequest{}, ErrMissingProduct
	}
	if strings.TrimSpace(f.Size) == "" || strings.TrimSpace(f.Color) == "" {
		return dto.AdjustRequest{}, ErrMissingVariant
	}
	raw := strings.TrimSpace(f.Adjustment)
	if raw == "" {
		return dto.AdjustRequest{}, ErrMissingAdjustment
	}
	delta, err := strconv.Atoi(raw)
	if err != nil || delta == 0 {
		return dto.AdjustRequest{}, ErrInvalidAdjustment
	}

	adjType := f.AdjustmentType
	if adjType == "" {
		adjType = "manual"
	}
	return dto.AdjustRequest{
		ProductID:      f.ProductID,
		Size:           strings.TrimSpace(f.Size),
		Color:          strings.TrimSpace(f.Color),
		Adjustment:     delta,
		AdjustmentType: adjType,
		Reason:         strings.TrimSpace(f.Reason),
		Notes:          strings.TrimSpace(f.Notes),
	}, nil
}

// Reset clears the form back to its empty defaults.
func (f *AdjustmentForm) Reset() {
	*f = AdjustmentForm{}
}

// ReorderForm holds the raw inputs of the reorder dialog. Size, Color and
// Quantity are all optional: left empty they mean "every low-stock variant"
// and "use the product's default reorder quantity".
type ReorderForm struct {
	ProductID string
	Size      string
	Color     string
	Quantity  string
	Notes     string
}

// Parse validates the form and returns the typed request body. An empty
// quantity serializes as an omitted field, which the server reads as "use
// the product default".
func (f *ReorderForm) Parse() (dto.ReorderRequestDTO, error) {
	if strings.TrimSpace(f.ProductID) == "" {
		return dto.ReorderRequestDTO{}, ErrMissingProduct
	}
	req := dto.ReorderRequestDTO{
		ProductID: f.ProductID,
		Size:      strings.TrimSpace(f.Size),
		Color:     strings.TrimSpace(f.Color),
		Notes:     strings.TrimSpace(f.Notes),
	}
	if raw := strings.TrimSpace(f.Quantity); raw != "" {
		qty, err := strconv.Atoi(raw)
		if err != nil || qty <= 0 {
			return dto.ReorderRequestDTO{}, ErrInvalidQuantity
		}
		req.Quantity = &qty
	}
	return req, nil
}

// Reset clears the form back to its empty defaults.
func (f *ReorderForm) Reset() {
	*f = ReorderForm{}
}
