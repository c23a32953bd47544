package repository

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"time"

	"flowcanvas/internal/models"
	"flowcanvas/internal/workflow"
	"flowcanvas/pkg/errors"
	"flowcanvas/pkg/logger"

	"gorm.io/gorm"
)

// WorkflowRepository persists workflow documents as rows. It satisfies the
// same contract as the file store: Save and Delete key on the sanitized
// document name, Load resolves the numeric row id and then the template
// registry.
type WorkflowRepository struct {
	db        *gorm.DB
	templates *workflow.TemplateRegistry
	log       logger.Logger
	now       func() time.Time
}

// NewWorkflowRepository creates a row-backed workflow store.
func NewWorkflowRepository(db *gorm.DB, templates *workflow.TemplateRegistry, log logger.Logger) *WorkflowRepository {
	return &WorkflowRepository{
		db:        db,
		templates: templates,
		log:       log,
		now:       time.Now,
	}
}

// Save upserts the row whose sanitized name matches the document's. The
// returned filename keeps the <sanitized>.json shape of the file backend
// so the save response is identical across backends.
func (r *WorkflowRepository) Save(ctx context.Context, doc *workflow.Document) (*workflow.SaveResult, error) {
	if doc.Name == "" {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Workflow{}).
			Where("is_template = ?", false).Count(&count).Error; err != nil {
			return nil, errors.DatabaseError("count workflows", err)
		}
		doc.Name = fmt.Sprintf("Workflow %d", count+1)
	}

	safe := workflow.SafeFilename(doc.Name, r.now())
	filename := safe + ".json"

	doc.Normalize()
	doc.SavedAt = r.now()
	doc.FilePath = path.Join("workflows", filename)

	data := models.JSONText{
		"nodes":       doc.Nodes,
		"connections": doc.Connections,
		"meta":        doc.Meta,
	}

	existing, err := r.findBySafeName(ctx, safe)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Name = doc.Name
		existing.WorkflowData = data
		if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
			return nil, errors.DatabaseError("update workflow", err)
		}
	} else {
		row := &models.Workflow{Name: doc.Name, WorkflowData: data}
		if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
			return nil, errors.DatabaseError("create workflow", err)
		}
	}

	r.log.InfoContext(ctx, "workflow saved", "name", doc.Name, "file", filename)

	return &workflow.SaveResult{Filename: filename, Path: doc.FilePath}, nil
}

// Load resolves id as a row id first, then as a template id.
func (r *WorkflowRepository) Load(ctx context.Context, id string) (any, error) {
	if rowID, err := strconv.ParseUint(id, 10, 64); err == nil {
		var row models.Workflow
		result := r.db.WithContext(ctx).First(&row, rowID)
		if result.Error == nil {
			return row.ToAPI(), nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.DatabaseError("load workflow", result.Error)
		}
	}

	if tpl, ok := r.templates.Get(id); ok {
		return tpl, nil
	}

	return nil, errors.NewNotFoundError("Workflow not found").WithContext("id", id)
}

// Templates returns the seeded templates.
func (r *WorkflowRepository) Templates(ctx context.Context) []workflow.Template {
	return r.templates.List()
}

// Delete removes the row whose sanitized name matches.
func (r *WorkflowRepository) Delete(ctx context.Context, name string) (string, error) {
	safe := workflow.Sanitize(name)
	if safe == "" {
		return "", errors.New(errors.ErrorTypeValidation, errors.CodeInvalidFilename, "Invalid workflow name")
	}

	row, err := r.findBySafeName(ctx, safe)
	if err != nil {
		return "", err
	}
	if row == nil {
		return "", errors.New(errors.ErrorTypeNotFound, errors.CodeFileNotFound, "Workflow file not found")
	}

	if err := r.db.WithContext(ctx).Delete(row).Error; err != nil {
		return "", errors.DatabaseError("delete workflow", err)
	}

	r.log.InfoContext(ctx, "workflow deleted", "name", name, "id", row.ID)

	return safe + ".json", nil
}

// findBySafeName scans non-template rows for one whose sanitized name
// matches. Sanitization happens in Go, so the match cannot be pushed into
// the query.
func (r *WorkflowRepository) findBySafeName(ctx context.Context, safe string) (*models.Workflow, error) {
	var rows []models.Workflow
	if err := r.db.WithContext(ctx).
		Where("is_template = ?", false).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, errors.DatabaseError("list workflows", err)
	}

	for i := range rows {
		if workflow.Sanitize(rows[i].Name) == safe {
			return &rows[i], nil
		}
	}
	return nil, nil
}
