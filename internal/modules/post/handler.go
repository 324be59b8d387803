package post

import (
	"strconv"

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
	g := rg.Group("/posts")

	g.GET("", h.list)
	g.GET("/trending", h.trending)
	g.GET("/:id", h.get)

	a := g.Group("", authMW)
	a.POST("", h.create)
	a.PATCH("/:id", h.update)
	a.DELETE("/:id", h.remove)
	a.POST("/:id/like", h.like)
	a.DELETE("/:id/like", h.unlike)
	a.POST("/:id/comments", h.addComment)
	a.DELETE("/:id/comments/:commentId", h.deleteComment)
	a.POST("/:id/comments/:commentId/like", h.likeComment)
	a.DELETE("/:id/comments/:commentId/like", h.unlikeComment)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	lq := ListQuery{Sort: c.Query("sort")}
	if v := c.Query("author"); v != "" {
		lq.AuthorID = &v
	}
	if v := c.Query("tag"); v != "" {
		lq.Tag = &v
	}
	if v := c.Query("visibility"); v != "" {
		vis := models.PostVisibility(v)
		lq.Visibility = &vis
	}

	posts, pag, err := h.svc.List(q, lq)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paged(c, posts, pag)
}

func (h *Handler) trending(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	posts, err := h.svc.ListTrending(limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, posts)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if p == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, p)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}
	p, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, p)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}
	p, err := h.svc.Update(c.Param("id"), middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	if p == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, p)
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

func (h *Handler) deleteComment(c *gin.Context) {
	ok, err := h.svc.DeleteComment(c.Param("id"), c.Param("commentId"), middleware.CurrentUserID(c))
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

func (h *Handler) likeComment(c *gin.Context)   { h.toggleCommentLike(c, true) }
func (h *Handler) unlikeComment(c *gin.Context) { h.toggleCommentLike(c, false) }

func (h *Handler) toggleCommentLike(c *gin.Context, like bool) {
	ok, err := h.svc.ToggleCommentLike(c.Param("id"), c.Param("commentId"), middleware.CurrentUserID(c), like)
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
