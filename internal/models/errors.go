package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrBloggerNameRequired    = errors.New("the blogger name must be set")
	ErrAdvertiserNameRequired = errors.New("the advertiser name must be set")
	ErrProjectNameRequired    = errors.New("the project name must be set")
	ErrDocumentNameRequired   = errors.New("the document name must be set")
)
