package v1

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/bloggerdesk/backend/internal/httputil"
	"github.com/bloggerdesk/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thoas/go-funk"
	"gorm.io/gorm"
)

// RegisterDocumentRoutes registers the routes for documents with
// the RouterGroup that is passed.
func RegisterDocumentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDocumentList)
		r.GET("", GetDocuments)
		r.POST("", CreateDocument)
	}

	// Document with ID
	{
		r.OPTIONS("/:id", OptionsDocumentDetail)
		r.GET("/:id", GetDocument)
		r.GET("/:id/file", GetDocumentFile)
		r.PATCH("/:id", UpdateDocument)
		r.DELETE("/:id", DeleteDocument)
	}
}

// storagePath is where the uploaded file of a document lives on disk.
// Files are stored under their sanitized original filename. Uploading
// the same filename again overwrites the stored file, the last write
// wins.
func storagePath(document models.Document) string {
	return filepath.Join(appConfig.App.UploadDir, document.Filename)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Documents
// @Success		204
// @Router			/v1/documents [options]
func OptionsDocumentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Documents
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint	true	"ID of the document"
// @Router			/v1/documents/{id} [options]
func OptionsDocumentDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.First(&models.Document{}, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Upload document
// @Description	Creates a new document from a multipart form with a "file" part. Allowed extensions are pdf, doc, docx, jpg, jpeg and png.
// @Tags			Documents
// @Accept			multipart/form-data
// @Produce		json
// @Success		201			{object}	DocumentResponse
// @Failure		400			{object}	DocumentResponse
// @Param			file		formData	file	true	"The file itself"
// @Param			name		formData	string	true	"Display name of the document"
// @Param			projectId	formData	uint	false	"ID of the project"
// @Param			orderId		formData	uint	false	"ID of the order"
// @Router			/v1/documents [post]
func CreateDocument(c *gin.Context) {
	var editable DocumentEditable
	if err := c.ShouldBind(&editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DocumentResponse{Error: &e})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		e := errNoFilePost.Error()
		c.JSON(http.StatusBadRequest, DocumentResponse{Error: &e})
		return
	}

	filename := sanitizeFilename(file.Filename)
	extension := fileExtension(filename)
	if !funk.ContainsString(models.DocumentExtensions, extension) {
		e := errWrongFileExtension.Error()
		c.JSON(http.StatusBadRequest, DocumentResponse{Error: &e})
		return
	}

	document := models.Document{
		Name:        editable.Name,
		Filename:    filename,
		FileType:    extension,
		ProjectID:   editable.ProjectID,
		OrderID:     editable.OrderID,
		Description: editable.Description,
	}

	// The row and the file land together or not at all: a failed write
	// to disk rolls the row back
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&document).Error; err != nil {
			return err
		}

		return c.SaveUploadedFile(file, storagePath(document))
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DocumentResponse{Error: &e})
		return
	}

	data := newDocument(document)
	c.JSON(http.StatusCreated, DocumentResponse{Data: &data})
}

// @Summary		Get documents
// @Description	Returns the list of documents, newest first
// @Tags			Documents
// @Produce		json
// @Success		200	{object}	DocumentListResponse
// @Failure		500	{object}	DocumentListResponse
// @Param			project	query	uint	false	"Filter by project ID"
// @Param			order	query	uint	false	"Filter by order ID"
// @Router			/v1/documents [get]
func GetDocuments(c *gin.Context) {
	var filter DocumentQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DocumentListResponse{Error: &e})
		return
	}

	q := models.DB.Order("id DESC")

	if filter.ProjectID != 0 {
		q = q.Where("project_id = ?", filter.ProjectID)
	}

	if filter.OrderID != 0 {
		q = q.Where("order_id = ?", filter.OrderID)
	}

	var documents []models.Document
	if err := q.Find(&documents).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), DocumentListResponse{Error: &e})
		return
	}

	data := make([]Document, 0)
	for _, document := range documents {
		data = append(data, newDocument(document))
	}

	c.JSON(http.StatusOK, DocumentListResponse{Data: data})
}

// @Summary		Get document
// @Description	Returns the metadata of a specific document
// @Tags			Documents
// @Produce		json
// @Success		200	{object}	DocumentResponse
// @Failure		404	{object}	DocumentResponse
// @Param			id	path		uint	true	"ID of the document"
// @Router			/v1/documents/{id} [get]
func GetDocument(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), DocumentResponse{Error: &e})
		return
	}

	var document models.Document
	if err := models.DB.First(&document, uri.ID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), DocumentResponse{Error: &e})
		return
	}

	data := newDocument(document)
	c.JSON(http.StatusOK, DocumentResponse{Data: &data})
}

// @Summary		Download document
// @Description	Returns the file of a specific document as an attachment
// @Tags			Documents
// @Produce		octet-stream
// @Success		200
// @Failure		404	{object}	httpError
// @Param			id	path		uint	true	"ID of the document"
// @Router			/v1/documents/{id}/file [get]
func GetDocumentFile(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var document models.Document
	if err := models.DB.First(&document, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	path := storagePath(document)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, httpError{Error: "there is no file stored for this document"})
		return
	}

	c.FileAttachment(path, document.Filename)
}

// @Summary		Update document
// @Description	Updates the metadata of an existing document. The file itself cannot be replaced.
// @Tags			Documents
// @Accept			json
// @Produce		json
// @Success		200			{object}	DocumentResponse
// @Failure		400			{object}	DocumentResponse
// @Failure		404			{object}	DocumentResponse
// @Param			id			path		uint				true	"ID of the document"
// @Param			document	body		DocumentEditable	true	"Document"
// @Router			/v1/documents/{id} [patch]
func UpdateDocument(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), DocumentResponse{Error: &e})
		return
	}

	var document models.Document
	if err := models.DB.First(&document, uri.ID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), DocumentResponse{Error: &e})
		return
	}

	var editable DocumentEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DocumentResponse{Error: &e})
		return
	}

	update := models.Document{
		Name:        editable.Name,
		ProjectID:   editable.ProjectID,
		OrderID:     editable.OrderID,
		Description: editable.Description,
	}

	err := models.DB.Model(&document).
		Select("*").
		Omit("id", "created_at", "filename", "file_type").
		Updates(update).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DocumentResponse{Error: &e})
		return
	}

	data := newDocument(document)
	c.JSON(http.StatusOK, DocumentResponse{Data: &data})
}

// @Summary		Delete document
// @Description	Deletes a document and its file. A file that is already gone from disk does not block the deletion.
// @Tags			Documents
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint	true	"ID of the document"
// @Router			/v1/documents/{id} [delete]
func DeleteDocument(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var document models.Document
	if err := models.DB.First(&document, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&document).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// A missing file is fine, the row is the source of truth
	if err := os.Remove(storagePath(document)); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Uint("document", document.ID).Msg("could not remove stored file")
	}

	c.JSON(http.StatusNoContent, nil)
}
