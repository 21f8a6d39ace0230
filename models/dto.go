package models

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Article payloads are validated through the helper's validator so clients
// get the translated field -> messages map instead of a single binding error.
type CreateArticleRequest struct {
	Title      string        `json:"title" validate:"required,max=80"`
	Perex      string        `json:"perex" validate:"max=200"`
	Content    string        `json:"content" validate:"required,max=3000"`
	PrivateDoc bool          `json:"private_doc"`
	Image      FeaturedImage `json:"cloudinary_img"`
}

type UpdateArticleRequest struct {
	Title      string        `json:"title" validate:"required,max=80"`
	Perex      string        `json:"perex" validate:"max=200"`
	Content    string        `json:"content" validate:"required,max=3000"`
	PrivateDoc bool          `json:"private_doc"`
	Image      FeaturedImage `json:"cloudinary_img"`
}

type CreateCommentRequest struct {
	ArticleID uint   `json:"articleId" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

// CommentResponse is the wire shape of the comment creation endpoint.
// Error is a plain string; Comment is only present on success.
type CommentResponse struct {
	Success bool     `json:"success"`
	Comment *Comment `json:"comment,omitempty"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type ArticleListParams struct {
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	SortBy    string `form:"sort_by,default=created_at"`
	SortOrder string `form:"sort_order,default=desc"`
}
