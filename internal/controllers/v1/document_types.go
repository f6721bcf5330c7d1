package v1

import (
	"regexp"
	"strings"

	"github.com/bloggerdesk/backend/internal/models"
)

// DocumentEditable holds the metadata fields of a document. The file
// itself is part of the multipart upload and cannot be changed later.
type DocumentEditable struct {
	Name        string `form:"name" json:"name" example:"Signed contract"` // Display name of the document
	ProjectID   *uint  `form:"projectId" json:"projectId" example:"7"`     // ID of the project the document belongs to
	OrderID     *uint  `form:"orderId" json:"orderId" example:"42"`        // ID of the order the document belongs to
	Description string `form:"description" json:"description" example:"both parties signed"`
}

// Document is the API representation of a document.
type Document struct {
	models.DefaultModel
	DocumentEditable
	Filename string `json:"filename" example:"contract.pdf"` // Name the file was uploaded with
	FileType string `json:"fileType" example:"pdf"`          // Lowercased extension of the file
}

// newDocument returns the API representation of the resource
func newDocument(model models.Document) Document {
	return Document{
		DefaultModel: model.DefaultModel,
		DocumentEditable: DocumentEditable{
			Name:        model.Name,
			ProjectID:   model.ProjectID,
			OrderID:     model.OrderID,
			Description: model.Description,
		},
		Filename: model.Filename,
		FileType: model.FileType,
	}
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// sanitizeFilename strips everything from the uploaded name that has no
// business in a path on disk.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

// fileExtension returns the lowercased extension without the dot.
func fileExtension(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

type DocumentResponse struct {
	Data  *Document `json:"data"`  // The document data, if the request was successful
	Error *string   `json:"error"` // The error, if any occurred
}

type DocumentListResponse struct {
	Data  []Document `json:"data"`  // List of documents
	Error *string    `json:"error"` // The error, if any occurred
}

type DocumentQueryFilter struct {
	ProjectID uint `form:"project"` // Filter by project ID
	OrderID   uint `form:"order"`   // Filter by order ID
}
