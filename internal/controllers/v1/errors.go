package v1

import (
	"errors"
	"net/http"

	"github.com/bloggerdesk/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no order matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Auth errors
var errPasswordIncorrect = errors.New("the password is incorrect")

// Blogger errors
var (
	errBloggerPlatformInvalid = errors.New("the specified platform is invalid, must be one of tiktok, tg, insta, youtube")
)

// Order errors
var (
	errOrderDateFormat     = errors.New("the order date must use the dd.mm.yyyy format")
	errOrderStatusInvalid  = errors.New("the specified order status is invalid, must be one of negotiation, agreed, paid, published")
	errOrderAmountNegative = errors.New("cost and blogger fee must not be negative")
)

// Document errors
var (
	errNoFilePost         = errors.New("you must send a file to this endpoint")
	errWrongFileExtension = errors.New("this endpoint only supports files of the following types: pdf, doc, docx, jpg, jpeg, png")
)
