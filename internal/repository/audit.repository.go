package repository

import (
	"context"
	"encoding/json"

	"github.com/wingman/logbook/internal/model"
	"github.com/wingman/logbook/pkg/pg"
)

type AuditRepository struct {
	*pg.DB
}

func NewAuditRepository(db *pg.DB) *AuditRepository {
	return &AuditRepository{
		db,
	}
}

// Append writes one history entry for a mutation. Snapshots are
// serialized to JSON; a nil snapshot is stored as NULL. Append resolves
// through Write(ctx), so inside a unit of work the entry commits and
// rolls back together with the mutation it describes.
func (r *AuditRepository) Append(ctx context.Context, table string, action model.AuditAction, recordID int64, oldSnapshot, newSnapshot any) (*model.AuditEntry, error) {
	oldData, err := marshalSnapshot(oldSnapshot)
	if err != nil {
		return nil, err
	}
	newData, err := marshalSnapshot(newSnapshot)
	if err != nil {
		return nil, err
	}

	entity := &AuditEntity{
		Table:    table,
		Action:   string(action),
		RecordID: recordID,
		OldData:  oldData,
		NewData:  newData,
	}

	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toAuditModel(entity), nil
}

// List returns audit entries, newest or oldest first, filtered by table
// and record id.
func (r *AuditRepository) List(ctx context.Context, f model.AuditFilter) ([]*model.AuditEntry, int64, error) {
	q := r.Read(ctx).WithContext(ctx).Model(&AuditEntity{})

	if f.TableName != nil && *f.TableName != "" {
		q = q.Where("table_name = ?", *f.TableName)
	}
	if f.RecordID != nil {
		q = q.Where("record_id = ?", *f.RecordID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "log_id"
	if f.Desc {
		order += " DESC"
	} else {
		order += " ASC"
	}

	limit := f.Limit
	if limit <= 0 || limit > 1000 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var entities []*AuditEntity
	if err := q.Order(order).Limit(limit).Offset(offset).Find(&entities).Error; err != nil {
		return nil, 0, err
	}

	return toAuditModels(entities), total, nil
}

func marshalSnapshot(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}
