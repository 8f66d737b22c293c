package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Export lifecycle states stored on CVDocument.Status.
const (
	StatusDraft          = "draft"
	StatusExporting      = "exporting"
	StatusExported       = "exported"
	StatusExportFailed   = "export_failed"
	StatusExportTimedOut = "export_timed_out"
)

// User is an account. The builder itself is single-user per session; the
// table exists so hosted deployments can scope documents.
type User struct {
	gorm.Model
	Username     string       `gorm:"uniqueIndex;size:64"`
	PasswordHash string       `gorm:"size:255"`
	Documents    []CVDocument `gorm:"constraint:OnDelete:CASCADE"`
}

// CVDocument persists one CV record. Content holds the full record as JSONB
// keyed by the record's own uuid, so the document survives client storage
// loss and the worker can load it without the browser.
type CVDocument struct {
	gorm.Model
	CVID     string         `gorm:"uniqueIndex;size:64"`
	Content  datatypes.JSON `gorm:"type:jsonb"`
	Language string         `gorm:"size:8"`
	Template string         `gorm:"size:64"`
	UserID   uint           `gorm:"index"`
	User     User           `gorm:"constraint:OnDelete:CASCADE"`
	PDFKey   string         `gorm:"size:512"`
	Status   string         `gorm:"size:32"`
}
