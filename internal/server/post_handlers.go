package server

import (
	"postboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /posts
//
//	@Summary	List posts
//	@Tags		posts
//	@Produce	json
//	@Success	200	{array}	models.Post
//	@Router		/posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return respondWithServiceError(c, err)
	}
	return c.JSON(posts)
}

// CreatePost handles POST /posts
//
//	@Summary	Create a post
//	@Tags		posts
//	@Accept		json
//	@Produce	json
//	@Param		post	body		models.PostInput	true	"Post title and content"
//	@Success	200		{object}	models.Post
//	@Failure	422		{object}	models.ErrorResponse
//	@Router		/posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	title, content, err := parsePostInput(c)
	if err != nil {
		return nil
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		Title:   title,
		Content: content,
	})
	if err != nil {
		return respondWithServiceError(c, err)
	}
	return c.JSON(post)
}

// GetPost handles GET /posts/:id
//
//	@Summary	Get a post
//	@Tags		posts
//	@Produce	json
//	@Param		id	path		int	true	"Post ID"
//	@Success	200	{object}	models.Post
//	@Failure	404	{object}	models.ErrorResponse
//	@Router		/posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return respondWithServiceError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost handles PUT /posts/:id
//
//	@Summary	Replace a post's title and content
//	@Tags		posts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Post ID"
//	@Param		post	body		models.PostInput	true	"New title and content"
//	@Success	200		{object}	models.Post
//	@Failure	404		{object}	models.ErrorResponse
//	@Failure	422		{object}	models.ErrorResponse
//	@Router		/posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	title, content, err := parsePostInput(c)
	if err != nil {
		return nil
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		PostID:  id,
		Title:   title,
		Content: content,
	})
	if err != nil {
		return respondWithServiceError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /posts/:id
//
//	@Summary	Delete a post
//	@Tags		posts
//	@Produce	json
//	@Param		id	path		int	true	"Post ID"
//	@Success	200	{object}	models.Post
//	@Failure	404	{object}	models.ErrorResponse
//	@Router		/posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.DeletePost(c.UserContext(), id)
	if err != nil {
		return respondWithServiceError(c, err)
	}
	return c.JSON(post)
}
