package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRegistry(t *testing.T) {
	r := NewTemplateRegistry()

	t.Run("seeds three templates in insertion order", func(t *testing.T) {
		list := r.List()
		require.Len(t, list, 3)
		assert.Equal(t, []string{"template1", "template2", "template3"},
			[]string{list[0].ID, list[1].ID, list[2].ID})
	})

	t.Run("lookup by id", func(t *testing.T) {
		tpl, ok := r.Get("template2")
		require.True(t, ok)
		assert.Equal(t, "Data Processing Pipeline", tpl.Name)
		assert.Len(t, tpl.WorkflowData.Nodes, 3)
		assert.Len(t, tpl.WorkflowData.Connections, 2)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := r.Get("template9")
		assert.False(t, ok)
	})

	t.Run("connections reference template nodes", func(t *testing.T) {
		for _, tpl := range r.List() {
			ids := map[string]bool{}
			for _, n := range tpl.WorkflowData.Nodes {
				ids[n.ID] = true
			}
			for _, c := range tpl.WorkflowData.Connections {
				assert.True(t, ids[c.From], "template %s connection %s", tpl.ID, c.ID)
				assert.True(t, ids[c.To], "template %s connection %s", tpl.ID, c.ID)
			}
		}
	})
}
