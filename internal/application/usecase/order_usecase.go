package usecase

import (
	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/domain"
	"github.com/velvetcart/admin-api/internal/domain/entity"
	"github.com/velvetcart/admin-api/internal/domain/repository"
)

const defaultOrderPageSize = 20

// OrderUseCase read + status-update operations over customer orders.
// Orders are created by the storefront; the admin side never creates them.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

// NewOrderUseCase builds the use case.
func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo}
}

// List returns one page of orders, newest first, optionally filtered by status.
func (uc *OrderUseCase) List(status string, page, limit int) (*dto.OrderListResponse, error) {
	if status != "" && !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = defaultOrderPageSize
	}
	total, err := uc.orderRepo.Count(status)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.List(status, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.ToOrderResponse(o))
	}
	totalPages := (total + limit - 1) / limit
	return &dto.OrderListResponse{
		Success: true,
		Orders:  out,
		Pagination: dto.PaginationDTO{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// GetByID returns one order.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToOrderResponse(order)
	return &resp, nil
}

// UpdateStatus moves a single order to a new status (the status modal
// contract: one record mutated, caller refetches the list).
// Terminal orders (delivered, cancelled) no longer move.
func (uc *OrderUseCase) UpdateStatus(id, status string) error {
	if !entity.ValidOrderStatus(status) {
		return domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status == entity.OrderStatusDelivered || order.Status == entity.OrderStatusCancelled {
		return domain.ErrConflict
	}
	return uc.orderRepo.UpdateStatus(id, status)
}
