package handlers

import (
	"net/http"

	"blog-cms/models"
	"blog-cms/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
}

func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// SubmitComment handles POST /comments. The response shape is fixed:
// 200 {success, comment, message} or 400 {success, error} — the request
// always terminates with a JSON outcome, never an unhandled fault.
func (h *CommentHandler) SubmitComment(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.CommentResponse{
			Success: false,
			Error:   "authentication required",
		})
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CommentResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	comment, err := h.commentService.SubmitComment(req, username.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CommentResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.CommentResponse{
		Success: true,
		Comment: comment,
		Message: "Comment added",
	})
}
