package handlers

import (
	"errors"
	"net/http"

	"blog_api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errListBlogs  = "failed to load blogs"
	errGetBlog    = "failed to load blog"
	errSaveBlog   = "failed to save blog"
	errDeleteBlog = "failed to delete blog"
)

// BlogRequest is the body for creating and updating a post.
type BlogRequest struct {
	Title   string `json:"title" binding:"required,min=3" example:"Hello World"`
	Content string `json:"content" binding:"required,min=3" example:"My first post"`
}

func (r BlogRequest) params() service.PostParams {
	return service.PostParams{Title: r.Title, Content: r.Content}
}

// @Summary      List own blogs
// @Tags         blogs
// @Produce      json
// @Success      200  {array}   models.Post
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blogs/ [get]
// @Security     BearerAuth
func (h *Handler) listBlogs(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	posts, err := h.services.Blog.List(c.Request.Context(), caller)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListBlogs, "blog_list_failed", err, "user_id", caller.ID)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// @Summary      Get blog by id
// @Description  Any authenticated user may read any post by id.
// @Tags         blogs
// @Produce      json
// @Param        id   path      int  true  "Blog id"  minimum(1)
// @Success      200  {object}  models.Post
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /blogs/blog/{id} [get]
// @Security     BearerAuth
func (h *Handler) getBlog(c *gin.Context) {
	if _, ok := requireCaller(c); !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	post, err := h.services.Blog.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errBlogNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errGetBlog, "blog_get_failed", err, "blog_id", id)
		return
	}
	c.JSON(http.StatusOK, post)
}

// @Summary      Create blog
// @Tags         blogs
// @Accept       json
// @Param        body  body  BlogRequest  true  "Blog payload"
// @Success      201
// @Failure      401  {object}  map[string]string
// @Failure      422  {object}  map[string]interface{}
// @Router       /blogs/blog [post]
// @Security     BearerAuth
func (h *Handler) createBlog(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req BlogRequest
	if !h.bindJSONOrUnprocessable(c, &req) {
		return
	}
	post, err := h.services.Blog.Create(c.Request.Context(), caller, req.params())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errSaveBlog, "blog_create_failed", err, "user_id", caller.ID)
		return
	}
	if h.log != nil {
		h.log.Infow("blog_created", "blog_id", post.ID, "user_id", caller.ID)
	}
	c.Status(http.StatusCreated)
}

// @Summary      Update own blog
// @Description  Only the title is applied; the stored content is kept.
// @Tags         blogs
// @Accept       json
// @Param        id    path  int          true  "Blog id"  minimum(1)
// @Param        body  body  BlogRequest  true  "Blog payload"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]interface{}
// @Router       /blogs/blog/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateBlog(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req BlogRequest
	if !h.bindJSONOrUnprocessable(c, &req) {
		return
	}
	if err := h.services.Blog.Update(c.Request.Context(), caller, id, req.params()); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errBlogNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errSaveBlog, "blog_update_failed", err, "blog_id", id, "user_id", caller.ID)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Delete own blog
// @Tags         blogs
// @Param        id   path  int  true  "Blog id"  minimum(1)
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /blogs/blog/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteBlog(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.services.Blog.Delete(c.Request.Context(), caller, id); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errBlogNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteBlog, "blog_delete_failed", err, "blog_id", id, "user_id", caller.ID)
		return
	}
	c.Status(http.StatusNoContent)
}
