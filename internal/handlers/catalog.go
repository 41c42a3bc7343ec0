package handlers

import (
	"net/http"
	"strconv"

	"catalog_service/internal/service"

	"github.com/gin-gonic/gin"
)

// positiveQueryInt parses an optional positive integer query parameter.
// An absent parameter yields 0.
func positiveQueryInt(c *gin.Context, key string) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, service.ErrInvalidPaging
	}
	return n, nil
}

// @Summary      List catalog
// @Description  Items ordered by position then id, newest first, with the global tag set.
// @Tags         catalog
// @Produce      json
// @Param        page   query     int     false  "Page number"  default(1)
// @Param        limit  query     int     false  "Page size"    default(12)
// @Param        tag    query     string  false  "Exact tag to filter by"
// @Success      200    {object}  service.CatalogPage
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /catalog [get]
func (h *Handler) listCatalog(c *gin.Context) {
	page, err := positiveQueryInt(c, "page")
	if err != nil {
		h.respondError(c, "catalog_bad_query", err, "page", c.Query("page"))
		return
	}
	limit, err := positiveQueryInt(c, "limit")
	if err != nil {
		h.respondError(c, "catalog_bad_query", err, "limit", c.Query("limit"))
		return
	}

	q := service.CatalogQuery{Page: page, Limit: limit, Tag: c.Query("tag")}
	out, err := h.services.Catalog.List(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, "catalog_list_failed", err, "page", q.Page, "limit", q.Limit, "tag", q.Tag)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
