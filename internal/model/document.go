package model

import (
	"time"

	"github.com/google/uuid"
)

// Document is a technical document resource managed by admins and granted
// to customers through DocumentAssignment rows.
type Document struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"not null"`
	URL        string    `gorm:"not null"`
	UploadedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time

	Uploader *User `gorm:"foreignKey:UploadedBy"`
}

func (Document) TableName() string { return "technical_documents" }

// DocumentAssignment is the many-to-many grant ledger between documents and
// customers. Rows are created and deleted, never updated. The composite
// unique index enforces the one-grant-per-pair policy at the persistence
// boundary.
type DocumentAssignment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_document_customer,priority:1"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_document_customer,priority:2"`
	AssignedAt time.Time `gorm:"not null;autoCreateTime"`

	Document *Document `gorm:"foreignKey:DocumentID"`
	Customer *Customer `gorm:"foreignKey:CustomerID"`
}
