package kanban

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"gardgear/internal/dto"
	"gardgear/internal/store"
	"gardgear/pkg/status"
)

// Column is one of the four fixed board columns, identified by its
// display-form status id.
type Column struct {
	ID    string
	Label string
	Cards []dto.MaintenanceRequestDTO
}

// Controller resolves drag gestures over the board into status updates
// against the store. It deliberately performs no transition validation:
// any column accepts a drop from any other, backward moves included.
type Controller struct {
	store  *store.Store
	logger *zap.Logger

	activeID uint64
	dragging bool
}

func NewController(st *store.Store, logger *zap.Logger) *Controller {
	return &Controller{store: st, logger: logger}
}

// Columns returns the four columns in fixed order with their current
// cards.
func (c *Controller) Columns() []Column {
	columns := make([]Column, 0, len(status.AllDisplay))
	for _, id := range status.AllDisplay {
		cards, err := c.store.RequestsByStatus(id)
		if err != nil {
			// Unreachable for the fixed column set; guard anyway.
			c.logger.Error("column lookup failed", zap.String("column", id), zap.Error(err))
			cards = nil
		}
		storage, _ := status.ToStorage(id)
		columns = append(columns, Column{
			ID:    id,
			Label: status.Label(storage),
			Cards: cards,
		})
	}
	return columns
}

// DragStart records the card being dragged so the UI can render a
// floating preview.
func (c *Controller) DragStart(requestID uint64) {
	c.activeID = requestID
	c.dragging = true
}

// ActiveID returns the card under drag, if any.
func (c *Controller) ActiveID() (uint64, bool) {
	return c.activeID, c.dragging
}

// DragEnd clears the active card without mutating anything.
func (c *Controller) DragEnd() {
	c.activeID = 0
	c.dragging = false
}

// Drop resolves the drop target and, when it lands on a different
// column, issues exactly one status update for the active card.
//
// Resolution order: a target id equal to a column id wins outright;
// otherwise the target is treated as another card's id and the columns
// are scanned in fixed order for it, the first match giving the
// destination. An unresolved target, or a destination equal to the
// card's current column, is a no-op.
func (c *Controller) Drop(ctx context.Context, targetID string) error {
	if !c.dragging {
		return nil
	}
	requestID := c.activeID
	c.DragEnd()

	destination := c.resolveDestination(targetID)
	if destination == "" {
		return nil
	}

	current, ok := c.columnOf(requestID)
	if !ok || current == destination {
		return nil
	}
	return c.store.UpdateRequestStatus(ctx, requestID, destination)
}

func (c *Controller) resolveDestination(targetID string) string {
	for _, id := range status.AllDisplay {
		if targetID == id {
			return id
		}
	}

	cardID, err := strconv.ParseUint(targetID, 10, 64)
	if err != nil {
		return ""
	}
	if column, ok := c.columnOf(cardID); ok {
		return column
	}
	return ""
}

func (c *Controller) columnOf(requestID uint64) (string, bool) {
	for _, id := range status.AllDisplay {
		cards, err := c.store.RequestsByStatus(id)
		if err != nil {
			continue
		}
		for _, card := range cards {
			if card.ID == requestID {
				return id, true
			}
		}
	}
	return "", false
}

// StartWork is the per-card shortcut that moves a New request straight
// to In Progress.
func (c *Controller) StartWork(ctx context.Context, requestID uint64) error {
	if column, ok := c.columnOf(requestID); !ok || column != status.DisplayNew {
		return nil
	}
	return c.store.UpdateRequestStatus(ctx, requestID, status.DisplayInProgress)
}

// Complete finishes an In Progress request as either repaired or scrap.
func (c *Controller) Complete(ctx context.Context, requestID uint64, outcome string) error {
	if outcome != status.DisplayRepaired && outcome != status.DisplayScrap {
		return status.ErrUnknown
	}
	if column, ok := c.columnOf(requestID); !ok || column != status.DisplayInProgress {
		return nil
	}
	return c.store.UpdateRequestStatus(ctx, requestID, outcome)
}
