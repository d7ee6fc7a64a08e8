package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/invoicedesk/internal/currency"
	"github.com/smallbiznis/invoicedesk/internal/invoice/codec"
	"github.com/smallbiznis/invoicedesk/internal/invoice/mutate"
)

// editRequest is the body of every field edit. Values always travel as
// text; numeric fields are coerced by the mutation layer, exactly as
// the on-paper form sends them.
type editRequest struct {
	Value string `json:"value"`
}

func (s *Server) ListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": currency.List()})
}

func (s *Server) GetDocument(c *gin.Context) {
	doc, totals := s.editor.Snapshot()
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"document": doc,
		"totals":   totals,
	}})
}

func (s *Server) SetRootField(c *gin.Context) {
	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("value", "invalid_body", "invalid request body"))
		return
	}

	field := mutate.RootField(strings.TrimSpace(c.Param("field")))
	if err := s.editor.SetRootField(field, req.Value); err != nil {
		AbortWithError(c, err)
		return
	}

	s.respondWithDocument(c)
}

func (s *Server) SetSectionField(c *gin.Context) {
	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("value", "invalid_body", "invalid request body"))
		return
	}

	section := mutate.Section(strings.TrimSpace(c.Param("section")))
	field := strings.TrimSpace(c.Param("field"))
	if err := s.editor.SetSectionField(section, field, req.Value); err != nil {
		AbortWithError(c, err)
		return
	}

	s.respondWithDocument(c)
}

func (s *Server) AddItem(c *gin.Context) {
	item := s.editor.AddItem()
	c.JSON(http.StatusCreated, gin.H{"data": item})
}

func (s *Server) SetItemField(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("value", "invalid_body", "invalid request body"))
		return
	}

	field := mutate.ItemField(strings.TrimSpace(c.Param("field")))
	if err := s.editor.SetItemField(id, field, req.Value); err != nil {
		AbortWithError(c, err)
		return
	}

	s.respondWithDocument(c)
}

func (s *Server) DeleteItem(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	s.editor.DeleteItem(id)
	s.respondWithDocument(c)
}

func (s *Server) TriggerExport(c *gin.Context) {
	s.editor.TriggerExport()
	c.JSON(http.StatusAccepted, gin.H{"status": "requested"})
}

func (s *Server) DownloadDocument(c *gin.Context) {
	doc, _ := s.editor.Snapshot()
	data, err := codec.Encode(doc)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invoice.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

func (s *Server) UploadDocument(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		AbortWithError(c, newValidationError("body", "invalid_body", "unreadable request body"))
		return
	}

	doc, err := codec.Decode(data)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.editor.LoadSnapshot(doc)
	s.respondWithDocument(c)
}

func (s *Server) respondWithDocument(c *gin.Context) {
	doc, totals := s.editor.Snapshot()
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"document": doc,
		"totals":   totals,
	}})
}

func parseItemID(c *gin.Context) (snowflake.ID, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := snowflake.ParseString(raw)
	if err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return 0, false
	}
	return id, true
}
