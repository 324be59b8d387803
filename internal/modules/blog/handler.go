package blog

import (
	"github.com/gin-gonic/gin"
	"github.com/modelmart/core/internal/middleware"
	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/pagination"
	"github.com/modelmart/core/internal/pkg/response"
)

type Handler struct {
	svc   *Service
	users *userResolver
}

// userResolver answers "is this actor an admin" without the handler owning
// the user service.
type userResolver struct {
	lookup func(id string) (*models.UserModel, error)
}

func NewHandler(svc *Service, lookup func(id string) (*models.UserModel, error)) *Handler {
	return &Handler{svc: svc, users: &userResolver{lookup: lookup}}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/blog")

	g.GET("", middleware.OptionalAuth(), h.list)
	g.GET("/:slug", middleware.OptionalAuth(), h.get)
	g.POST("/:slug/views", h.incrementViews)

	a := g.Group("", authMW)
	a.POST("", h.create)
	a.PATCH("/id/:id", h.update)
	a.DELETE("/id/:id", h.remove)
	a.POST("/id/:id/like", h.like)
	a.DELETE("/id/:id/like", h.unlike)
	a.POST("/id/:id/comments", h.addComment)
}

func (h *Handler) isAdmin(c *gin.Context) bool {
	id := middleware.CurrentUserID(c)
	if id == "" {
		return false
	}
	u, err := h.users.lookup(id)
	if err != nil || u == nil {
		return false
	}
	return u.Role == models.RoleAdmin || u.Role == models.RoleModerator
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	lq := ListQuery{}
	if v := c.Query("status"); v != "" {
		status := models.BlogStatus(v)
		lq.Status = &status
	}
	if v := c.Query("category"); v != "" {
		lq.Category = &v
	}
	if v := c.Query("tag"); v != "" {
		lq.Tag = &v
	}

	items, pag, err := h.svc.List(q, lq, h.isAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paged(c, items, pag)
}

func (h *Handler) get(c *gin.Context) {
	b, err := h.svc.GetBySlug(c.Param("slug"), h.isAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	if b == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, b)
}

func (h *Handler) incrementViews(c *gin.Context) {
	b, err := h.svc.GetBySlug(c.Param("slug"), false)
	if err != nil {
		response.Error(c, err)
		return
	}
	if b == nil {
		response.NotFound(c)
		return
	}
	if err := h.svc.IncrementViews(b.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"ok": 1})
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}
	b, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, b)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}
	b, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	if b == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, b)
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

func (h *Handler) like(c *gin.Context)   { h.toggleLike(c, true) }
func (h *Handler) unlike(c *gin.Context) { h.toggleLike(c, false) }

func (h *Handler) toggleLike(c *gin.Context, like bool) {
	ok, err := h.svc.ToggleLike(c.Param("id"), middleware.CurrentUserID(c), like)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, gin.H{"liked": like})
}

func (h *Handler) addComment(c *gin.Context) {
	var dto AddCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}
	comment, err := h.svc.AddComment(c.Param("id"), middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comment)
}
