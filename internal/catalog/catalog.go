// Package catalog loads the tool palette served to the canvas editor.
package catalog

import (
	"encoding/json"
	"os"

	"flowcanvas/pkg/logger"
	"flowcanvas/pkg/validator"
)

// PropertySpec describes one configurable field of a tool.
type PropertySpec struct {
	Type        string   `json:"type"`
	Options     []string `json:"options,omitempty"`
	Default     any      `json:"default,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Readonly    bool     `json:"readonly,omitempty"`
}

// ToolDefinition is one draggable node type in the palette.
type ToolDefinition struct {
	ID          string                  `json:"id" validate:"required"`
	Name        string                  `json:"name" validate:"required"`
	Icon        string                  `json:"icon"`
	Category    string                  `json:"category"`
	Description string                  `json:"description"`
	Properties  map[string]PropertySpec `json:"properties"`
}

// Catalog is an immutable, ordered set of tool definitions.
type Catalog struct {
	tools []ToolDefinition
}

// Load reads tool definitions from a JSON file. A missing or malformed
// file yields an empty catalog; the editor renders an empty palette
// rather than failing to start.
func Load(path string, log logger.Logger) *Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("tool catalog unavailable, serving empty palette", "path", path, "error", err)
		return &Catalog{}
	}

	var parsed []ToolDefinition
	if err := json.Unmarshal(data, &parsed); err != nil {
		log.Warn("tool catalog malformed, serving empty palette", "path", path, "error", err)
		return &Catalog{}
	}

	v := validator.New()
	tools := make([]ToolDefinition, 0, len(parsed))
	for _, tool := range parsed {
		if err := v.Struct(tool); err != nil {
			log.Warn("skipping invalid tool definition", "id", tool.ID, "error", err)
			continue
		}
		tools = append(tools, tool)
	}

	log.Info("tool catalog loaded", "path", path, "tools", len(tools))
	return &Catalog{tools: tools}
}

// Tools returns the definitions in file order. Never nil.
func (c *Catalog) Tools() []ToolDefinition {
	if c.tools == nil {
		return []ToolDefinition{}
	}
	return c.tools
}

// Get looks a tool up by id.
func (c *Catalog) Get(id string) (ToolDefinition, bool) {
	for _, t := range c.tools {
		if t.ID == id {
			return t, true
		}
	}
	return ToolDefinition{}, false
}

// Len reports the number of tools.
func (c *Catalog) Len() int {
	return len(c.tools)
}
