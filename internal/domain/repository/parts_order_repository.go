// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for parts persistence.
var (
	// ErrPartsOrderNotFound is returned when a parts order is not found.
	ErrPartsOrderNotFound = errors.New("parts order not found")
	// ErrDuplicateOrderNumber is returned when an order number is already taken.
	ErrDuplicateOrderNumber = errors.New("parts order already exists")
	// ErrPartNotFound is returned when a part line is not found.
	ErrPartNotFound = errors.New("part not found")
	// ErrStatusConflict is returned when a status update observes a stored
	// status different from the one the caller read.
	ErrStatusConflict = errors.New("part status changed concurrently")
)

// PartsOrderRepository defines the standard operations for parts order persistence.
type PartsOrderRepository interface {
	// CreateOrder persists a parts order together with all of its lines.
	CreateOrder(ctx context.Context, order *entity.PartsOrder) error

	// FindOrder retrieves a parts order with its lines by order number.
	FindOrder(ctx context.Context, orderNumber string) (*entity.PartsOrder, error)

	// FindOrdersByVIN retrieves every parts order placed against a vehicle.
	FindOrdersByVIN(ctx context.Context, vin string) ([]*entity.PartsOrder, error)

	// CountByVIN returns how many parts orders exist for a vehicle. Used to
	// derive the next sequence number when generating order numbers.
	CountByVIN(ctx context.Context, vin string) (int64, error)

	// FindPart retrieves a single part line.
	FindPart(ctx context.Context, orderNumber, vendorPartsNumber string) (*entity.Part, error)

	// UpdatePartStatus moves a part line from one status to another. The
	// update only applies if the stored status still equals from; otherwise
	// ErrStatusConflict is returned and nothing changes.
	UpdatePartStatus(ctx context.Context, orderNumber, vendorPartsNumber string, from, to entity.PartStatus) error

	// HasOpenParts reports whether the vehicle has any part line that has
	// not reached Installed.
	HasOpenParts(ctx context.Context, vin string) (bool, error)
}
