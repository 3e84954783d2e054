package api

import (
	"context"
	"net/http"

	"github.com/Domenick1991/skyward/internal/journey"
	"github.com/gin-gonic/gin"
)

type JourneySearcher interface {
	Search(ctx context.Context, req journey.SearchRequest) (*journey.SearchResponse, error)
}

// JourneyHandler proxies the external journey-search backend. When the
// backend is down the client gets a 502 and keeps using the local catalog.
type JourneyHandler struct {
	client JourneySearcher
}

func NewJourneyHandler(client JourneySearcher) *JourneyHandler {
	return &JourneyHandler{client: client}
}

func (h *JourneyHandler) Register(router *gin.RouterGroup) {
	router.POST("/search", h.search)
}

func (h *JourneyHandler) search(c *gin.Context) {
	var req journey.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.client.Search(c.Request.Context(), req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
