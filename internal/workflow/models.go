package workflow

import "time"

// Position is a node's location on the canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a single step placed on the canvas. Properties is a free-form
// bag whose shape is described by the tool catalog entry for Type; the
// catalog schema is advisory UI metadata and is not enforced here.
type Node struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Position   Position       `json:"position"`
	Properties map[string]any `json:"properties"`
}

// Connection is a directed edge between two nodes. From and To are node
// ids; endpoints are not checked against the node list, and dangling
// references are persisted as-is.
type Connection struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Document is a saved workflow graph together with its save metadata.
type Document struct {
	Name        string         `json:"name"`
	Nodes       []Node         `json:"nodes"`
	Connections []Connection   `json:"connections"`
	Meta        map[string]any `json:"meta"`
	SavedAt     time.Time      `json:"saved_at"`
	FilePath    string         `json:"file_path"`
}

// Normalize replaces nil collections with empty ones so documents always
// serialize as [] and {} rather than null.
func (d *Document) Normalize() {
	if d.Nodes == nil {
		d.Nodes = []Node{}
	}
	if d.Connections == nil {
		d.Connections = []Connection{}
	}
	if d.Meta == nil {
		d.Meta = map[string]any{}
	}
}

// GraphData is the nodes/connections payload embedded in templates and in
// the relational workflow_data column.
type GraphData struct {
	Nodes       []Node       `json:"nodes"`
	Connections []Connection `json:"connections"`
}

// Template is a built-in, immutable workflow seeded at startup.
type Template struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	WorkflowData GraphData `json:"workflow_data"`
}
