package models

import (
	"strings"

	"gorm.io/gorm"
)

// Document is an uploaded file attached to a project and/or an order.
//
// The row cascades away with its project or order. The backing file is
// only removed on an explicit document delete, see the document
// controller.
type Document struct {
	DefaultModel
	Name        string `json:"name"`
	Filename    string `json:"filename"`
	FileType    string `json:"fileType"`
	ProjectID   *uint  `json:"projectId"`
	OrderID     *uint  `json:"orderId"`
	Description string `json:"description"`
}

// DocumentExtensions lists the accepted file extensions for uploads.
var DocumentExtensions = []string{"pdf", "doc", "docx", "jpg", "jpeg", "png"}

// BeforeSave trims whitespace and checks required fields.
func (d *Document) BeforeSave(_ *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return ErrDocumentNameRequired
	}

	return nil
}
