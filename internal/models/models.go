// Package models contains the GORM model definitions for the relational
// persistence backend.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// JSONText stores a free-form mapping as a serialized JSON string in a
// TEXT column. A nil map is stored as NULL and scans back as nil.
type JSONText map[string]interface{}

// Value implements driver.Valuer.
func (j JSONText) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	data, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (j *JSONText) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, j)
}

// Workflow is a saved workflow row. WorkflowData carries the serialized
// nodes/connections graph.
type Workflow struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:100;not null;default:'Untitled Workflow'" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	WorkflowData JSONText  `gorm:"type:text" json:"workflow_data"`
	IsTemplate   bool      `gorm:"not null;default:false" json:"is_template"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name.
func (Workflow) TableName() string {
	return "workflows"
}

// ToAPI projects the row into the wire shape, deserializing workflow_data.
// A NULL workflow_data becomes an empty mapping.
func (w *Workflow) ToAPI() map[string]interface{} {
	data := map[string]interface{}(w.WorkflowData)
	if data == nil {
		data = map[string]interface{}{}
	}
	return map[string]interface{}{
		"id":            w.ID,
		"name":          w.Name,
		"description":   w.Description,
		"workflow_data": data,
		"is_template":   w.IsTemplate,
		"created_at":    w.CreatedAt.Format(time.RFC3339),
		"updated_at":    w.UpdatedAt.Format(time.RFC3339),
	}
}

// UserLayout is a per-session UI layout row. PanelState and CanvasState
// are independent sub-documents; partial updates touch one column only.
type UserLayout struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID   string    `gorm:"size:100;not null;uniqueIndex" json:"session_id"`
	PanelState  JSONText  `gorm:"type:text" json:"panel_state"`
	CanvasState JSONText  `gorm:"type:text" json:"canvas_state"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name.
func (UserLayout) TableName() string {
	return "user_layouts"
}

// ToAPI projects the row into the wire shape with NULL columns as empty
// mappings.
func (l *UserLayout) ToAPI() map[string]interface{} {
	panel := map[string]interface{}(l.PanelState)
	if panel == nil {
		panel = map[string]interface{}{}
	}
	canvas := map[string]interface{}(l.CanvasState)
	if canvas == nil {
		canvas = map[string]interface{}{}
	}
	return map[string]interface{}{
		"panel_state":  panel,
		"canvas_state": canvas,
	}
}

// AllModels returns every model for migration.
func AllModels() []interface{} {
	return []interface{}{
		&Workflow{},
		&UserLayout{},
	}
}
