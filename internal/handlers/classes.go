package handlers

import (
	"classboard/internal/database"
	"classboard/internal/middleware"
	"classboard/internal/models"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultClassesPageLimit = 10

// ListClasses returns a page of classes, newest first, optionally filtered
// by a case-insensitive substring match on the name.
func ListClasses(c *gin.Context) {
	q := parseListQuery(c.Query("page"), c.Query("limit"), c.Query("search"), defaultClassesPageLimit)

	db := database.DB

	countQuery := `SELECT COUNT(*) FROM classes`
	pageQuery := `
		SELECT id, name, description, created_by, created_at, updated_at
		FROM classes
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	var total int
	var err error
	var rows *sql.Rows

	if q.Pattern != "" {
		countQuery = `SELECT COUNT(*) FROM classes WHERE lower(name) LIKE $1`
		pageQuery = `
			SELECT id, name, description, created_by, created_at, updated_at
			FROM classes
			WHERE lower(name) LIKE $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2 OFFSET $3`

		if err = db.QueryRow(countQuery, q.Pattern).Scan(&total); err != nil {
			log.Printf("Error counting classes: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing classes"})
			return
		}
		rows, err = db.Query(pageQuery, q.Pattern, q.Limit, q.Offset)
	} else {
		if err = db.QueryRow(countQuery).Scan(&total); err != nil {
			log.Printf("Error counting classes: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing classes"})
			return
		}
		rows, err = db.Query(pageQuery, q.Limit, q.Offset)
	}

	if err != nil {
		log.Printf("Error listing classes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing classes"})
		return
	}
	defer rows.Close()

	classes := []models.Class{}
	for rows.Next() {
		var class models.Class
		if err := rows.Scan(&class.ID, &class.Name, &class.Description, &class.CreatedBy, &class.CreatedAt, &class.UpdatedAt); err != nil {
			log.Printf("Error scanning class: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing classes"})
			return
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error iterating classes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing classes"})
		return
	}

	c.JSON(http.StatusOK, listEnvelope(q, total, classes))
}

// GetClass returns a single class by ID
func GetClass(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID"})
		return
	}

	db := database.DB
	var class models.Class
	query := `SELECT id, name, description, created_by, created_at, updated_at FROM classes WHERE id = $1`
	err = db.QueryRow(query, classID).
		Scan(&class.ID, &class.Name, &class.Description, &class.CreatedBy, &class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found", "id": classID})
			return
		}
		log.Printf("Error retrieving class: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving class"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Class retrieved successfully",
		"class":   class,
	})
}

// CreateClass creates a class owned by the authenticated user.
func CreateClass(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	var description *string
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		if trimmed != "" {
			description = &trimmed
		}
	}

	db := database.DB
	var class models.Class
	query := `INSERT INTO classes (name, description, created_by) VALUES ($1, $2, $3)
		RETURNING id, name, description, created_by, created_at, updated_at`
	err := db.QueryRow(query, name, description, userID).
		Scan(&class.ID, &class.Name, &class.Description, &class.CreatedBy, &class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		log.Printf("Error inserting class: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating class"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Class created successfully",
		"class":   class,
	})
}

// UpdateClass applies a partial update. Name must stay non-empty; the
// description may be cleared by sending an empty string.
func UpdateClass(c *gin.Context) {
	if _, ok := middleware.UserIDFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	classID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID"})
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	setClauses := []string{}
	args := []any{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != "" {
			args = append(args, name)
			setClauses = append(setClauses, fmt.Sprintf("name = $%d", len(args)))
		}
	}
	if req.Description != nil {
		args = append(args, strings.TrimSpace(*req.Description))
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", len(args)))
	}

	if len(setClauses) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid fields to update"})
		return
	}

	setClauses = append(setClauses, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, classID)

	query := fmt.Sprintf(`
		UPDATE classes
		SET %s
		WHERE id = $%d
		RETURNING id, name, description, created_by, created_at, updated_at`,
		strings.Join(setClauses, ", "), len(args))

	db := database.DB
	var class models.Class
	err = db.QueryRow(query, args...).
		Scan(&class.ID, &class.Name, &class.Description, &class.CreatedBy, &class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found", "id": classID})
			return
		}
		if isSchemaViolation(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid field values"})
			return
		}
		log.Printf("Error updating class: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating class"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Class updated successfully",
		"class":   class,
	})
}

// DeleteClass removes a class and echoes the deleted row. Enrollments go
// with it via ON DELETE CASCADE.
func DeleteClass(c *gin.Context) {
	if _, ok := middleware.UserIDFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	classID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID"})
		return
	}

	db := database.DB
	var class models.Class
	query := `
		DELETE FROM classes
		WHERE id = $1
		RETURNING id, name, description, created_by, created_at, updated_at`
	err = db.QueryRow(query, classID).
		Scan(&class.ID, &class.Name, &class.Description, &class.CreatedBy, &class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found", "id": classID})
			return
		}
		log.Printf("Error deleting class: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting class"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Class deleted successfully",
		"deletedClass": class,
	})
}
