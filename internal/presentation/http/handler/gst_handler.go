package handler

import (
	"github.com/bizmanager/backend/internal/presentation/http/dto/response"
	"github.com/bizmanager/backend/pkg/gst"
	"github.com/gin-gonic/gin"
)

// GSTHandler handles GST utility endpoints
type GSTHandler struct{}

// NewGSTHandler creates a new GST handler
func NewGSTHandler() *GSTHandler {
	return &GSTHandler{}
}

// ValidateGSTIN checks a GSTIN and resolves its registration state
func (h *GSTHandler) ValidateGSTIN(c *gin.Context) {
	gstin := c.Query("gstin")
	if gstin == "" {
		response.BadRequest(c, "The gstin query parameter is required")
		return
	}

	valid := gst.ValidateGSTIN(gstin)
	data := gin.H{"gstin": gstin, "valid": valid}
	if valid {
		data["state"] = gst.StateFromGSTIN(gstin)
	}

	response.OK(c, "GSTIN checked", data)
}
