package model

import (
	"github.com/gin-gonic/gin"
	"github.com/modelmart/core/internal/middleware"
	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/pagination"
	"github.com/modelmart/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/models")

	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.GET("/slug/:slug", h.getBySlug)
	g.POST("/:id/download", h.download)

	a := g.Group("", authMW)
	a.POST("", h.create)
	a.PATCH("/:id", h.update)
	a.DELETE("/:id", h.remove)
	a.PUT("/:id/reviews", h.review)
	a.DELETE("/:id/reviews", h.deleteReview)
	a.PUT("/:id/versions", h.addVersion)
	a.PUT("/:id/versions/current/:version", h.setCurrentVersion)
	a.POST("/:id/star", h.star)
	a.DELETE("/:id/star", h.unstar)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	lq := ListQuery{Sort: c.Query("sort")}
	if v := c.Query("category"); v != "" {
		cat := models.ModelCategory(v)
		lq.Category = &cat
	}
	if v := c.Query("framework"); v != "" {
		fw := models.ModelFramework(v)
		lq.Framework = &fw
	}
	if v := c.Query("featured"); v != "" {
		featured := v == "true" || v == "1"
		lq.Featured = &featured
	}

	items, pag, err := h.svc.List(q, lq)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paged(c, items, pag)
}

func (h *Handler) get(c *gin.Context) {
	m, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if m == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, m)
}

func (h *Handler) getBySlug(c *gin.Context) {
	m, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if m == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, m)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateModelDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}
	m, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateModelDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}
	m, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	if m == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, m)
}

func (h *Handler) remove(c *gin.Context) {
	ok, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ok {
		response.NotFound(c)
		return
	}
	response.NoContent(c)
}

func (h *Handler) review(c *gin.Context) {
	var dto ReviewDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}
	review, err := h.svc.AddOrUpdateReview(c.Param("id"), middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, review)
}

func (h *Handler) deleteReview(c *gin.Context) {
	ok, err := h.svc.DeleteReview(c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ok {
		response.NotFound(c)
		return
	}
	response.NoContent(c)
}

func (h *Handler) addVersion(c *gin.Context) {
	var dto VersionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}
	ok, err := h.svc.AddOrUpdateVersion(c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, gin.H{"version": dto.Version})
}

func (h *Handler) setCurrentVersion(c *gin.Context) {
	ok, err := h.svc.SetCurrentVersion(c.Param("id"), c.Param("version"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ok {
		response.BadRequest(c, "version does not exist on this model")
		return
	}
	response.OK(c, gin.H{"current_version": c.Param("version")})
}

func (h *Handler) download(c *gin.Context) {
	if err := h.svc.IncrementDownloads(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"ok": 1})
}

func (h *Handler) star(c *gin.Context)   { h.toggleStar(c, true) }
func (h *Handler) unstar(c *gin.Context) { h.toggleStar(c, false) }

func (h *Handler) toggleStar(c *gin.Context, star bool) {
	ok, err := h.svc.ToggleStar(c.Param("id"), middleware.CurrentUserID(c), star)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, gin.H{"starred": star})
}
