package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// uploadDocumentHandler handles POST /api/v1/chatbots/:id/documents.
// Multipart upload with the PDF under the "file" field. The declared part
// size is checked against the cap before any byte hits disk.
func (s *Server) uploadDocumentHandler(c *echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart field 'file' is required")
	}
	if fileHeader.Size > s.maxBody {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "document exceeds the maximum allowed size")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read uploaded file")
	}
	defer f.Close()

	doc, err := s.documentService.Upload(c.Request().Context(),
		c.Param("id"), fileHeader.Filename, f, fileHeader.Size)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusAccepted, doc)
}

// listDocumentsHandler handles GET /api/v1/chatbots/:id/documents.
func (s *Server) listDocumentsHandler(c *echo.Context) error {
	docs, err := s.documentService.ListDocuments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, docs)
}

// getDocumentHandler handles GET /api/v1/chatbots/:id/documents/:doc_id.
func (s *Server) getDocumentHandler(c *echo.Context) error {
	doc, err := s.documentService.GetDocument(c.Request().Context(),
		c.Param("id"), c.Param("doc_id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

// deleteDocumentHandler handles DELETE /api/v1/chatbots/:id/documents/:doc_id.
func (s *Server) deleteDocumentHandler(c *echo.Context) error {
	err := s.documentService.DeleteDocument(c.Request().Context(),
		c.Param("id"), c.Param("doc_id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// documentProgressHandler handles GET /api/v1/chatbots/:id/documents/:doc_id/progress.
func (s *Server) documentProgressHandler(c *echo.Context) error {
	progress, err := s.documentService.GetProgress(c.Request().Context(),
		c.Param("id"), c.Param("doc_id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, progress)
}
