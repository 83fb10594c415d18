package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

func TestListClassesSearchAndPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(`SELECT COUNT\(\*\) FROM classes WHERE lower\(name\) LIKE \$1`).
		WithArgs("%algebra%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	now := time.Now()
	mock.
		ExpectQuery(`SELECT id, name, description, created_by, created_at, updated_at`).
		WithArgs("%algebra%", 2, 0).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "description", "created_by", "created_at", "updated_at"}).
				AddRow(3, "Algebra II", "Advanced", 7, now, now).
				AddRow(1, "Linear Algebra", nil, nil, now, now),
		)

	router := gin.New()
	router.GET("/api/classes", ListClasses)

	req := httptest.NewRequest(http.MethodGet, "/api/classes?limit=2&search=Algebra", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	expectHTTP200(t, resp.Code)

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if int(out["total"].(float64)) != 3 {
		t.Fatalf("expected total=3, got %#v", out["total"])
	}
	if int(out["totalPages"].(float64)) != 2 {
		t.Fatalf("expected totalPages=2, got %#v", out["totalPages"])
	}
	if out["hasNext"] != true {
		t.Fatalf("expected hasNext=true")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCreateClassRequiresName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/api/classes", withTestUser(7), CreateClass)

	resp := postJSON(t, router, "/api/classes", map[string]string{
		"name":        "   ",
		"description": "whitespace-only name",
	})
	mustStatus(t, resp.Code, http.StatusBadRequest)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no sql statements expected: %v", err)
	}
}

func TestCreateClassSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.
		ExpectQuery(regexp.QuoteMeta(`INSERT INTO classes (name, description, created_by) VALUES ($1, $2, $3)`)).
		WithArgs("Go 101", "Intro course", 7).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "description", "created_by", "created_at", "updated_at"}).
				AddRow(3, "Go 101", "Intro course", 7, now, now),
		)

	router := gin.New()
	router.POST("/api/classes", withTestUser(7), CreateClass)

	// Name and description arrive padded; both are stored trimmed.
	resp := postJSON(t, router, "/api/classes", map[string]string{
		"name":        "  Go 101  ",
		"description": " Intro course ",
	})
	mustStatus(t, resp.Code, http.StatusCreated)

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	class, _ := out["class"].(map[string]any)
	if class["name"] != "Go 101" {
		t.Fatalf("expected trimmed name, got %#v", class["name"])
	}
	if int(class["createdBy"].(float64)) != 7 {
		t.Fatalf("expected createdBy=7, got %#v", class["createdBy"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestUpdateClassNoUsableFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.PUT("/api/classes/:id", withTestUser(7), UpdateClass)

	// A whitespace-only name is not a usable update.
	req := httptest.NewRequest(http.MethodPut, "/api/classes/3",
		jsonBody(t, map[string]string{"name": "  "}))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusBadRequest)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no sql statements expected: %v", err)
	}
}

func TestUpdateClassSchemaViolation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(`UPDATE classes`).
		WithArgs("Go 101", 3).
		WillReturnError(&pq.Error{Code: "23514", Constraint: "classes_name_check"})

	router := gin.New()
	router.PUT("/api/classes/:id", withTestUser(7), UpdateClass)

	req := httptest.NewRequest(http.MethodPut, "/api/classes/3",
		jsonBody(t, map[string]string{"name": "Go 101"}))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusUnprocessableEntity)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestUpdateClassClearsDescription(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.
		ExpectQuery(`UPDATE classes`).
		WithArgs("", 3).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "description", "created_by", "created_at", "updated_at"}).
				AddRow(3, "Go 101", "", 7, now, now),
		)

	router := gin.New()
	router.PUT("/api/classes/:id", withTestUser(7), UpdateClass)

	req := httptest.NewRequest(http.MethodPut, "/api/classes/3",
		jsonBody(t, map[string]string{"description": ""}))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	expectHTTP200(t, resp.Code)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestDeleteClassNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(`DELETE FROM classes`).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_by", "created_at", "updated_at"}))

	router := gin.New()
	router.DELETE("/api/classes/:id", withTestUser(7), DeleteClass)

	req := httptest.NewRequest(http.MethodDelete, "/api/classes/42", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusNotFound)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
