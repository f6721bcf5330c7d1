package v1_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	v1 "github.com/bloggerdesk/backend/internal/controllers/v1"
	"github.com/bloggerdesk/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upload builds a multipart body with a file part and the given form
// fields.
func upload(suite *TestSuiteStandard, filename string, fields map[string]string) (*bytes.Buffer, string) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.Nil(suite.T(), err)
	_, err = part.Write([]byte("file content"))
	require.Nil(suite.T(), err)

	for field, value := range fields {
		require.Nil(suite.T(), writer.WriteField(field, value))
	}

	require.Nil(suite.T(), writer.Close())

	return body, writer.FormDataContentType()
}

func (suite *TestSuiteStandard) createTestDocument(filename string, fields map[string]string) v1.DocumentResponse {
	body, contentType := upload(suite, filename, fields)

	recorder := suite.request(http.MethodPost, "/v1/documents", body, map[string]string{"Content-Type": contentType})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.DocumentResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestDocumentUpload() {
	response := suite.createTestDocument("contract.pdf", map[string]string{"name": "Signed contract"})

	assert.Equal(suite.T(), "Signed contract", response.Data.Name)
	assert.Equal(suite.T(), "contract.pdf", response.Data.Filename)
	assert.Equal(suite.T(), "pdf", response.Data.FileType)
}

func (suite *TestSuiteStandard) TestDocumentUploadWrongExtension() {
	body, contentType := upload(suite, "malware.exe", map[string]string{"name": "Nope"})

	recorder := suite.request(http.MethodPost, "/v1/documents", body, map[string]string{"Content-Type": contentType})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestDocumentUploadNoFile() {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	require.Nil(suite.T(), writer.WriteField("name", "No file attached"))
	require.Nil(suite.T(), writer.Close())

	recorder := suite.request(http.MethodPost, "/v1/documents", body, map[string]string{"Content-Type": writer.FormDataContentType()})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestDocumentFilenameSanitized() {
	response := suite.createTestDocument("my contract (final).pdf", map[string]string{"name": "Contract"})
	assert.Equal(suite.T(), "my_contract__final_.pdf", response.Data.Filename)
}

func (suite *TestSuiteStandard) TestDocumentUploadSameFilenameOverwrites() {
	_ = suite.createTestDocument("contract.pdf", map[string]string{"name": "First"})
	_ = suite.createTestDocument("contract.pdf", map[string]string{"name": "Second"})

	// Both rows exist, but on disk the last write wins
	recorder := suite.request(http.MethodGet, "/v1/documents", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.DocumentListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)

	entries, err := os.ReadDir(os.Getenv("UPLOAD_DIR"))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), entries, 1)
	assert.Equal(suite.T(), "contract.pdf", entries[0].Name())
}

func (suite *TestSuiteStandard) TestDocumentDownload() {
	response := suite.createTestDocument("contract.pdf", map[string]string{"name": "Contract"})

	recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/documents/%d/file", response.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	assert.Equal(suite.T(), "file content", recorder.Body.String())
	assert.Contains(suite.T(), recorder.Header().Get("Content-Disposition"), "contract.pdf")
}

func (suite *TestSuiteStandard) TestDocumentDownloadFileMissing() {
	response := suite.createTestDocument("contract.pdf", map[string]string{"name": "Contract"})

	// Wipe the upload directory behind the API's back
	require.Nil(suite.T(), os.RemoveAll(os.Getenv("UPLOAD_DIR")))

	recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/documents/%d/file", response.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestDocumentDelete() {
	response := suite.createTestDocument("contract.pdf", map[string]string{"name": "Contract"})

	recorder := suite.request(http.MethodDelete, fmt.Sprintf("/v1/documents/%d", response.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	// The stored file is gone as well
	entries, err := os.ReadDir(os.Getenv("UPLOAD_DIR"))
	require.Nil(suite.T(), err)
	assert.Empty(suite.T(), entries)
}

func (suite *TestSuiteStandard) TestDocumentDeleteFileAlreadyGone() {
	response := suite.createTestDocument("contract.pdf", map[string]string{"name": "Contract"})

	path := filepath.Join(os.Getenv("UPLOAD_DIR"), "contract.pdf")
	require.Nil(suite.T(), os.Remove(path))

	// The delete must not fail on the missing file
	recorder := suite.request(http.MethodDelete, fmt.Sprintf("/v1/documents/%d", response.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
}

func (suite *TestSuiteStandard) TestDocumentListFilter() {
	project := suite.createTestProject(`{"name": "GlowSkin"}`)

	_ = suite.createTestDocument("contract.pdf", map[string]string{
		"name":      "Contract",
		"projectId": fmt.Sprintf("%d", project.Data.ID),
	})
	_ = suite.createTestDocument("invoice.pdf", map[string]string{"name": "Invoice"})

	recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/documents?project=%d", project.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.DocumentListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Contract", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestDocumentUpdateMetadata() {
	response := suite.createTestDocument("contract.pdf", map[string]string{"name": "Contract"})

	recorder := suite.request(http.MethodPatch, fmt.Sprintf("/v1/documents/%d", response.Data.ID), `{"name": "Contract v2", "description": "resigned"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var updated v1.DocumentResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	assert.Equal(suite.T(), "Contract v2", updated.Data.Name)
	assert.Equal(suite.T(), "resigned", updated.Data.Description)

	// The file reference is untouched
	assert.Equal(suite.T(), "contract.pdf", updated.Data.Filename)
	assert.Equal(suite.T(), "pdf", updated.Data.FileType)
}
