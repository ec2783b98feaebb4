package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-admin/dto"
	"blog-admin/models"
	"blog-admin/services"
)

// @Summary List blogs for admin
// @Description List blogs newest first with optional search over title and summary
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size (<=100)" default(10)
// @Param search query string false "Case-insensitive match on title or summary"
// @Param active query bool false "Filter by active flag"
// @Success 200 {object} dto.PaginationBlogDTO
// @Failure 401 {object} dto.ErrorResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/blogs [get]
func AdminListBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.List(c.Request.Context(), services.ListBlogsInput{
			Page:   queryInt(c, "page", 1),
			Limit:  queryInt(c, "limit", 0),
			Search: c.Query("search"),
			Active: queryBoolPtr(c, "active"),
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// @Summary Get a blog
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.BlogDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/blogs/{id} [get]
func AdminGetBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		blog, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// @Summary Create a blog
// @Description Title, image and textSummary are required. redirectLink must be an absolute http(s) URL when set.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.BlogForm true "Blog"
// @Success 201 {object} dto.BlogDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/blogs [post]
func AdminCreateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.BlogForm
		if err := c.ShouldBindJSON(&form); err != nil {
			badRequest(c, err)
			return
		}
		blog, err := svc.Create(c.Request.Context(), form)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, blog)
	}
}

// @Summary Update a blog
// @Description Only the fields present in the body change. The merged record must still be valid.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Param body body models.BlogPatch true "Changed fields"
// @Success 200 {object} dto.BlogDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/blogs/{id} [patch]
func AdminUpdateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var patch models.BlogPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badRequest(c, err)
			return
		}
		blog, err := svc.Update(c.Request.Context(), id, patch)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// @Summary Toggle blog active flag
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.BlogDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/blogs/{id}/toggle-active [post]
func AdminToggleBlogActiveHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		blog, err := svc.ToggleActive(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// @Summary Delete a blog
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.MessageResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/blogs/{id} [delete]
func AdminDeleteBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Blog deleted successfully."})
	}
}

// @Summary Import blogs from an RSS/Atom feed
// @Description Items whose link already exists are skipped
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ImportFeedRequestDTO true "Feed"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 502 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/blogs/import [post]
func AdminImportFeedHandler(svc *services.ImportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ImportFeedRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		res, err := svc.ImportFeed(c.Request.Context(), services.ImportInput{
			FeedURL: req.FeedURL,
			Limit:   req.Limit,
			Active:  req.Active,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
