package api

import (
	"net/http"

	"github.com/Domenick1991/skyward/internal/domain"
	"github.com/Domenick1991/skyward/internal/search"
	"github.com/Domenick1991/skyward/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service catalog.CatalogUseCase
}

func NewFlightHandler(service catalog.CatalogUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/search", h.search)
	router.GET("/:id", h.get)
}

// list returns the catalog, optionally ordered by ?sort=price|duration|
// departureTime and ?order=asc|desc.
func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	if key := c.Query("sort"); key != "" {
		order := search.SortOrder(c.DefaultQuery("order", string(search.Ascending)))
		flights = search.Sort(flights, search.SortKey(key), order)
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) search(c *gin.Context) {
	flights, err := h.service.Search(c.Request.Context(), c.Query("from"), c.Query("to"), c.Query("date"))
	if err != nil {
		renderError(c, err)
		return
	}

	if key := c.Query("sort"); key != "" {
		order := search.SortOrder(c.DefaultQuery("order", string(search.Ascending)))
		flights = search.Sort(flights, search.SortKey(key), order)
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	if flight == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrFlightNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}
