package handlers

import (
	"classboard/internal/database"
	"classboard/internal/middleware"
	"classboard/internal/models"
	"database/sql"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultPostsPageLimit = 5

// ListPosts returns a page of posts, newest first, optionally filtered by a
// case-insensitive substring match on the title.
func ListPosts(c *gin.Context) {
	q := parseListQuery(c.Query("page"), c.Query("limit"), c.Query("search"), defaultPostsPageLimit)

	db := database.DB

	countQuery := `SELECT COUNT(*) FROM posts`
	pageQuery := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	var total int
	var err error
	var rows *sql.Rows

	if q.Pattern != "" {
		countQuery = `SELECT COUNT(*) FROM posts WHERE lower(title) LIKE $1`
		pageQuery = `
			SELECT id, title, content, author_id, created_at, updated_at
			FROM posts
			WHERE lower(title) LIKE $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2 OFFSET $3`

		if err = db.QueryRow(countQuery, q.Pattern).Scan(&total); err != nil {
			log.Printf("Error counting posts: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing posts"})
			return
		}
		rows, err = db.Query(pageQuery, q.Pattern, q.Limit, q.Offset)
	} else {
		if err = db.QueryRow(countQuery).Scan(&total); err != nil {
			log.Printf("Error counting posts: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing posts"})
			return
		}
		rows, err = db.Query(pageQuery, q.Limit, q.Offset)
	}

	if err != nil {
		log.Printf("Error listing posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing posts"})
		return
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt); err != nil {
			log.Printf("Error scanning post: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing posts"})
			return
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error iterating posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing posts"})
		return
	}

	c.JSON(http.StatusOK, listEnvelope(q, total, posts))
}

// GetPost returns a single post by ID
func GetPost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	db := database.DB
	var post models.Post
	query := `SELECT id, title, content, author_id, created_at, updated_at FROM posts WHERE id = $1`
	err = db.QueryRow(query, postID).
		Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found", "id": postID})
			return
		}
		log.Printf("Error retrieving post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost creates a post authored by the authenticated user.
func CreatePost(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
		return
	}

	db := database.DB
	var post models.Post
	post.Title = req.Title
	post.Content = req.Content
	query := `INSERT INTO posts (title, content, author_id) VALUES ($1, $2, $3)
		RETURNING id, author_id, created_at, updated_at`
	err := db.QueryRow(query, req.Title, req.Content, userID).
		Scan(&post.ID, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		log.Printf("Error inserting post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Post created successfully",
		"post":      post,
		"createdBy": userID,
	})
}

// UpdatePost replaces a post's title and content. Any authenticated caller
// may update any post; there is no ownership check.
func UpdatePost(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
		return
	}

	db := database.DB
	var post models.Post
	query := `
		UPDATE posts
		SET title = $1, content = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING id, title, content, author_id, created_at, updated_at`
	err = db.QueryRow(query, req.Title, req.Content, postID).
		Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found", "id": postID})
			return
		}
		log.Printf("Error updating post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Post updated successfully",
		"post":      post,
		"updatedBy": userID,
	})
}

// DeletePost removes a post and echoes the deleted row.
func DeletePost(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	db := database.DB
	var post models.Post
	query := `
		DELETE FROM posts
		WHERE id = $1
		RETURNING id, title, content, author_id, created_at, updated_at`
	err = db.QueryRow(query, postID).
		Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found", "id": postID})
			return
		}
		log.Printf("Error deleting post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Post deleted successfully",
		"deletedPost": post,
		"deletedBy":   userID,
	})
}
