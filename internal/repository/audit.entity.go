package repository

import (
	"time"

	"github.com/wingman/logbook/internal/model"
)

type AuditEntity struct {
	ID       int64     `db:"log_id"     gorm:"primaryKey;autoIncrement;column:log_id"`
	Table    string    `db:"table_name" gorm:"column:table_name;not null;index"`
	Action   string    `db:"action"     gorm:"column:action;not null"`
	RecordID int64     `db:"record_id"  gorm:"column:record_id;not null;index"`
	OldData  *string   `db:"old_data"   gorm:"column:old_data;type:text"`
	NewData  *string   `db:"new_data"   gorm:"column:new_data;type:text"`
	LoggedAt time.Time `db:"timestamp"  gorm:"column:timestamp;autoCreateTime"`
}

func (AuditEntity) TableName() string {
	return "logs"
}

func toAuditModel(e *AuditEntity) *model.AuditEntry {
	if e == nil {
		return nil
	}
	return &model.AuditEntry{
		ID:        e.ID,
		TableName: e.Table,
		Action:    model.AuditAction(e.Action),
		RecordID:  e.RecordID,
		OldData:   e.OldData,
		NewData:   e.NewData,
		Timestamp: e.LoggedAt,
	}
}

func toAuditModels(entities []*AuditEntity) []*model.AuditEntry {
	if entities == nil {
		return nil
	}
	models := make([]*model.AuditEntry, len(entities))
	for i, e := range entities {
		models[i] = toAuditModel(e)
	}
	return models
}
