package workflow

import "sync"

// TemplateRegistry holds the built-in templates, seeded once at startup.
// Templates are immutable and never written to the mutable store.
type TemplateRegistry struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]Template
}

// NewTemplateRegistry creates a registry seeded with the built-in templates.
func NewTemplateRegistry() *TemplateRegistry {
	r := &TemplateRegistry{byID: make(map[string]Template)}
	for _, t := range builtinTemplates() {
		r.add(t)
	}
	return r
}

func (r *TemplateRegistry) add(t Template) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[t.ID]; !exists {
		r.order = append(r.order, t.ID)
	}
	r.byID[t.ID] = t
}

// Get returns the template with the given id.
func (r *TemplateRegistry) Get(id string) (Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	return t, ok
}

// List returns all templates in insertion order.
func (r *TemplateRegistry) List() []Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Template, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

func builtinTemplates() []Template {
	return []Template{
		{
			ID:          "template1",
			Name:        "Simple API Workflow",
			Description: "Basic HTTP request and email notification",
			WorkflowData: GraphData{
				Nodes: []Node{
					{ID: "node1", Type: "http_request", Position: Position{X: 100, Y: 100}, Properties: map[string]any{
						"method": "GET",
						"url":    "https://jsonplaceholder.typicode.com/posts/1",
					}},
					{ID: "node2", Type: "email_send", Position: Position{X: 400, Y: 100}, Properties: map[string]any{
						"to":      "user@example.com",
						"subject": "API Response",
					}},
				},
				Connections: []Connection{
					{ID: "conn1", From: "node1", To: "node2"},
				},
			},
		},
		{
			ID:          "template2",
			Name:        "Data Processing Pipeline",
			Description: "Webhook trigger with data filtering and database storage",
			WorkflowData: GraphData{
				Nodes: []Node{
					{ID: "node1", Type: "webhook", Position: Position{X: 100, Y: 100}, Properties: map[string]any{
						"method": "POST",
					}},
					{ID: "node2", Type: "data_filter", Position: Position{X: 300, Y: 100}, Properties: map[string]any{
						"filter_condition": "status == 'active'",
					}},
					{ID: "node3", Type: "database_query", Position: Position{X: 500, Y: 100}, Properties: map[string]any{
						"query": "INSERT INTO processed_data (data) VALUES (?)",
					}},
				},
				Connections: []Connection{
					{ID: "conn1", From: "node1", To: "node2"},
					{ID: "conn2", From: "node2", To: "node3"},
				},
			},
		},
		{
			ID:          "template3",
			Name:        "File Processing Workflow",
			Description: "Process files with conditional logic and notifications",
			WorkflowData: GraphData{
				Nodes: []Node{
					{ID: "node1", Type: "file_processor", Position: Position{X: 100, Y: 100}, Properties: map[string]any{
						"operation": "read",
					}},
					{ID: "node2", Type: "condition", Position: Position{X: 300, Y: 100}, Properties: map[string]any{
						"condition": "file_size > 1000",
					}},
					{ID: "node3", Type: "email_send", Position: Position{X: 500, Y: 50}, Properties: map[string]any{
						"subject": "Large file processed",
					}},
					{ID: "node4", Type: "delay", Position: Position{X: 500, Y: 150}, Properties: map[string]any{
						"duration": 5,
					}},
				},
				Connections: []Connection{
					{ID: "conn1", From: "node1", To: "node2"},
					{ID: "conn2", From: "node2", To: "node3"},
					{ID: "conn3", From: "node2", To: "node4"},
				},
			},
		},
	}
}
