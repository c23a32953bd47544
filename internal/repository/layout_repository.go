package repository

import (
	"context"

	"flowcanvas/internal/layout"
	"flowcanvas/internal/models"
	"flowcanvas/pkg/errors"

	"gorm.io/gorm"
)

// LayoutRepository persists per-session layout state as rows.
type LayoutRepository struct {
	db *gorm.DB
}

// NewLayoutRepository creates a row-backed layout store.
func NewLayoutRepository(db *gorm.DB) *LayoutRepository {
	return &LayoutRepository{db: db}
}

// Save creates the session row if absent and overwrites only the columns
// present in the update.
func (r *LayoutRepository) Save(ctx context.Context, sessionID string, update layout.Update) error {
	var row models.UserLayout
	result := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&row)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return errors.DatabaseError("load layout", result.Error)
		}
		row = models.UserLayout{SessionID: sessionID}
	}

	if update.PanelState != nil {
		row.PanelState = models.JSONText(update.PanelState)
	}
	if update.CanvasState != nil {
		row.CanvasState = models.JSONText(update.CanvasState)
	}

	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return errors.DatabaseError("save layout", err)
	}
	return nil
}

// Load returns the stored state for the session, or an empty mapping when
// the session has never saved layout data.
func (r *LayoutRepository) Load(ctx context.Context, sessionID string) (map[string]any, error) {
	var row models.UserLayout
	result := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return map[string]any{}, nil
		}
		return nil, errors.DatabaseError("load layout", result.Error)
	}

	state := map[string]any{}
	if row.PanelState != nil {
		state["panel_state"] = map[string]any(row.PanelState)
	}
	if row.CanvasState != nil {
		state["canvas_state"] = map[string]any(row.CanvasState)
	}
	return state, nil
}
