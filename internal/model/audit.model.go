package model

import "time"

// AuditAction is the kind of mutation an audit entry describes.
type AuditAction string

const (
	AuditActionInsert AuditAction = "INSERT"
)

const (
	AuditTableCustomers    = "customers"
	AuditTableTransactions = "transactions"
)

// AuditEntry is an immutable record of a single mutation's before/after
// state. OldData is nil for creations.
type AuditEntry struct {
	ID        int64       `json:"log_id"`
	TableName string      `json:"table_name"`
	Action    AuditAction `json:"action"`
	RecordID  int64       `json:"record_id"`
	OldData   *string     `json:"old_data"`
	NewData   *string     `json:"new_data"`
	Timestamp time.Time   `json:"timestamp"`
}

// AuditFilter controls audit trail listings.
type AuditFilter struct {
	TableName *string
	RecordID  *int64
	Limit     int
	Offset    int
	Desc      bool
}
