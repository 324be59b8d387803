package search

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/modelmart/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.search)
}

func (h *Handler) search(c *gin.Context) {
	kind := Kind(c.DefaultQuery("kind", string(KindPost)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	results, err := h.svc.Search(kind, c.Query("q"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, results)
}
