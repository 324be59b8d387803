package user

import (
	"github.com/gin-gonic/gin"
	"github.com/modelmart/core/internal/middleware"
	"github.com/modelmart/core/internal/pkg/pagination"
	"github.com/modelmart/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/users")

	g.POST("", h.create)
	g.POST("/login", h.login)
	g.GET("", h.list)
	g.GET("/:id", h.get)

	a := g.Group("", authMW)
	a.PATCH("/:id", h.update)
	a.DELETE("/:id", h.remove)
	a.POST("/:id/follow", h.follow)
	a.DELETE("/:id/follow", h.unfollow)
	a.POST("/saved/:postId", h.savePost)
	a.DELETE("/saved/:postId", h.unsavePost)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}
	u, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, u)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}
	token, u, err := h.svc.Login(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"token": token, "user": u})
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	users, total, totalPages, err := h.svc.List(q.Page, q.Size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paged(c, users, response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   totalPages,
		Size:        q.Size,
		HasNextPage: q.Page < totalPages,
	})
}

func (h *Handler) get(c *gin.Context) {
	u, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if u == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, u)
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")
	if middleware.CurrentUserID(c) != id {
		response.Forbidden(c)
		return
	}
	var dto UpdateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}
	u, err := h.svc.Update(id, &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	if u == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, u)
}

func (h *Handler) remove(c *gin.Context) {
	id := c.Param("id")
	if middleware.CurrentUserID(c) != id {
		response.Forbidden(c)
		return
	}
	ok, err := h.svc.Delete(id)
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

func (h *Handler) follow(c *gin.Context) {
	ok, err := h.svc.Follow(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, gin.H{"following": true})
}

func (h *Handler) unfollow(c *gin.Context) {
	ok, err := h.svc.Unfollow(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, gin.H{"following": false})
}

func (h *Handler) savePost(c *gin.Context) {
	ok, err := h.svc.SavePost(middleware.CurrentUserID(c), c.Param("postId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, gin.H{"saved": true})
}

func (h *Handler) unsavePost(c *gin.Context) {
	ok, err := h.svc.UnsavePost(middleware.CurrentUserID(c), c.Param("postId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, gin.H{"saved": false})
}
