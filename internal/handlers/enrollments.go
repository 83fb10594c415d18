package handlers

import (
	"classboard/internal/database"
	"classboard/internal/middleware"
	"classboard/internal/models"
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const alreadyMemberMessage = "already a member of this class"

// JoinClass enrolls the authenticated user into a class. The operation is
// idempotent: repeated or concurrent joins for the same (user, class) pair
// all succeed and leave exactly one enrollment row.
func JoinClass(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	classID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID"})
		return
	}

	db := database.DB

	var className string
	err = db.QueryRow(`SELECT name FROM classes WHERE id = $1`, classID).Scan(&className)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found", "id": classID})
			return
		}
		log.Printf("Error checking class: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error joining class"})
		return
	}

	// Cheap short-circuit for the common repeat-join case. The unique
	// constraint below still guards the race this check cannot see.
	var existingID int
	err = db.QueryRow(
		`SELECT id FROM enrollments WHERE user_id = $1 AND class_id = $2`,
		userID, classID,
	).Scan(&existingID)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": alreadyMemberMessage})
		return
	}
	if err != sql.ErrNoRows {
		log.Printf("Error checking enrollment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error joining class"})
		return
	}

	var enrollment models.Enrollment
	err = db.QueryRow(
		`INSERT INTO enrollments (user_id, class_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, class_id) DO NOTHING
		 RETURNING id, user_id, class_id, role, status, joined_at`,
		userID, classID,
	).Scan(&enrollment.ID, &enrollment.UserID, &enrollment.ClassID, &enrollment.Role, &enrollment.Status, &enrollment.JoinedAt)
	if err != nil {
		// No row back means a concurrent join won the insert. That is
		// success, not an error.
		if err == sql.ErrNoRows || isUniqueViolation(err) {
			c.JSON(http.StatusOK, gin.H{"message": alreadyMemberMessage})
			return
		}
		log.Printf("Error creating enrollment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error joining class"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Joined " + className + " successfully",
		"enrollment": enrollment,
	})
}
