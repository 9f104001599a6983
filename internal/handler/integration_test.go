package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stratoview-taxonomy-api/internal/domain"
	"stratoview-taxonomy-api/internal/metrics"
	"stratoview-taxonomy-api/internal/middleware"
	"stratoview-taxonomy-api/internal/repository"
	"stratoview-taxonomy-api/internal/service"
)

// Shared metrics instance for all tests to avoid duplicate registration
var testMetrics = metrics.NewWithRegistry(prometheus.NewRegistry(), nil)

// setupIntegrationTestDB creates an in-memory SQLite database for integration testing
func setupIntegrationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err, "Failed to connect to test database")

	// Register callback to generate UUIDs for SQLite (since it doesn't support gen_random_uuid())
	db.Callback().Create().Before("gorm:create").Register("generate_uuid", func(db *gorm.DB) {
		if db.Statement.Schema != nil {
			for _, field := range db.Statement.Schema.PrimaryFields {
				if field.DataType == "uuid" {
					fieldValue := field.ReflectValueOf(db.Statement.Context, db.Statement.ReflectValue)
					if fieldValue.IsZero() {
						field.Set(db.Statement.Context, db.Statement.ReflectValue, uuid.New())
					}
				}
			}
		}
	})

	// Create tables manually for SQLite compatibility
	statements := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			user_type TEXT NOT NULL,
			last_login DATETIME,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE intelligence_areas (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			color_code TEXT NOT NULL,
			is_active INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE topic_areas (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			parent_themes TEXT,
			is_active INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE geographic_areas (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			population INTEGER,
			area_km2 REAL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE contents (
			id TEXT PRIMARY KEY,
			creator_id TEXT NOT NULL,
			content_type TEXT NOT NULL,
			titolo TEXT NOT NULL,
			descrizione_breve TEXT NOT NULL,
			descrizione_estesa TEXT,
			is_company_generated INTEGER NOT NULL DEFAULT 0,
			visibility TEXT NOT NULL,
			content_source TEXT NOT NULL,
			intelligence_area_id TEXT NOT NULL,
			topic_area_id TEXT,
			themes TEXT,
			geographic_coverage TEXT NOT NULL,
			data_creazione DATETIME NOT NULL,
			ultima_modifica DATETIME NOT NULL
		)`,
		`CREATE TABLE content_indices (
			content_id TEXT PRIMARY KEY,
			index_type TEXT NOT NULL,
			data_level TEXT NOT NULL,
			calculation_formula TEXT,
			geographic_resolution TEXT NOT NULL,
			has_map_view INTEGER NOT NULL DEFAULT 1,
			has_index_view INTEGER NOT NULL DEFAULT 1,
			has_data_viz_view INTEGER NOT NULL DEFAULT 1,
			default_view_mode TEXT NOT NULL DEFAULT 'mapview'
		)`,
		`CREATE TABLE content_scenarios (
			content_id TEXT PRIMARY KEY,
			probabilita TEXT NOT NULL,
			scenario_text TEXT NOT NULL,
			scenario_format TEXT NOT NULL DEFAULT 'html'
		)`,
		`CREATE TABLE content_trend_radars (
			content_id TEXT PRIMARY KEY,
			time_month INTEGER NOT NULL,
			time_year INTEGER NOT NULL,
			radar_image_key TEXT NOT NULL,
			original_filename TEXT NOT NULL,
			radar_format TEXT NOT NULL DEFAULT 'image',
			radar_data TEXT
		)`,
		`CREATE TABLE content_participatory_data (
			content_id TEXT PRIMARY KEY,
			collection_date DATE NOT NULL,
			data_format TEXT NOT NULL DEFAULT 'visualization',
			visualization_key TEXT NOT NULL,
			original_filename TEXT NOT NULL,
			methodology TEXT
		)`,
		`CREATE TABLE scenario_images (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			scenario_id TEXT NOT NULL,
			file_key TEXT NOT NULL,
			original_name TEXT NOT NULL,
			file_size INTEGER NOT NULL,
			upload_date DATETIME NOT NULL
		)`,
		`CREATE TABLE projects (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			user_id TEXT NOT NULL,
			nome TEXT NOT NULL,
			descrizione TEXT,
			saved_layout_mode TEXT NOT NULL DEFAULT 'grid',
			project_state TEXT NOT NULL DEFAULT 'empty',
			content_block_count INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE content_blocks (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			project_id TEXT NOT NULL,
			content_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			is_active INTEGER NOT NULL DEFAULT 1,
			current_view_mode TEXT NOT NULL DEFAULT 'default',
			single_view_active INTEGER NOT NULL DEFAULT 0,
			last_interaction DATETIME NOT NULL,
			block_state TEXT,
			UNIQUE(project_id, position)
		)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error, "Failed to create table")
	}

	return db
}

// setupIntegrationRouter creates a router with real services and repositories
func setupIntegrationRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Test middleware sets user_id from header instead of a JWT
	router.Use(func(c *gin.Context) {
		if userIDStr := c.GetHeader("X-User-ID"); userIDStr != "" {
			if userID, err := uuid.Parse(userIDStr); err == nil {
				c.Set("user_id", userID)
			}
		}
		c.Next()
	})

	logger := zap.NewNop()

	userRepo := repository.NewUserRepository(db)
	taxonomyRepo := repository.NewTaxonomyRepository(db)
	contentRepo := repository.NewContentRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	taxonomyService := service.NewTaxonomyService(taxonomyRepo, nil, logger)
	contentService := service.NewContentService(contentRepo, userRepo, taxonomyRepo, nil, testMetrics, logger)
	projectService := service.NewProjectService(projectRepo, contentRepo, userRepo, testMetrics, logger)
	userService := service.NewUserService(userRepo, logger)

	taxonomyHandler := NewTaxonomyHandler(taxonomyService)
	contentHandler := NewContentHandler(contentService)
	projectHandler := NewProjectHandler(projectService)
	userHandler := NewUserHandler(userService)

	adminOnly := middleware.RequireAdmin(userRepo)

	api := router.Group("/api/taxonomy")
	{
		intelligence := api.Group("/areas/intelligence")
		{
			intelligence.GET("", taxonomyHandler.ListIntelligenceAreas)
			intelligence.GET("/:id", taxonomyHandler.GetIntelligenceArea)
			intelligence.POST("", adminOnly, taxonomyHandler.CreateIntelligenceArea)
			intelligence.PUT("/:id", adminOnly, taxonomyHandler.UpdateIntelligenceArea)
			intelligence.DELETE("/:id", adminOnly, taxonomyHandler.DeleteIntelligenceArea)
		}

		contents := api.Group("/contents")
		{
			contents.POST("", contentHandler.CreateContent)
			contents.GET("", contentHandler.ListContents)
			contents.GET("/:id", contentHandler.GetContent)
			contents.PUT("/:id", contentHandler.UpdateContent)
			contents.DELETE("/:id", contentHandler.DeleteContent)
		}

		projects := api.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("/:id/blocks", projectHandler.AddContentBlock)
			projects.PUT("/:id/blocks/:blockId", projectHandler.UpdateContentBlock)
			projects.DELETE("/:id/blocks/:blockId", projectHandler.RemoveContentBlock)
		}

		users := api.Group("/users")
		{
			users.POST("", adminOnly, userHandler.CreateUser)
			users.GET("/me", userHandler.GetCurrentUser)
		}
	}

	return router
}

// seedUser inserts a user directly into the database
func seedUser(t *testing.T, db *gorm.DB, userType domain.UserType) *domain.User {
	user := &domain.User{
		ID:        uuid.New(),
		Username:  fmt.Sprintf("user-%s", uuid.New().String()[:8]),
		UserType:  userType,
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(user).Error, "Failed to seed user")
	return user
}

// seedTaxonomy inserts the taxonomy rows content tests reference
func seedTaxonomy(t *testing.T, db *gorm.DB) {
	require.NoError(t, db.Create(&domain.IntelligenceArea{
		ID: "ambiente", Name: "Ambiente", ColorCode: "#2D7D46", IsActive: true,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}).Error)
	require.NoError(t, db.Create(&domain.GeographicArea{
		ID: "provincia-di-brescia", Name: "Provincia di Brescia", Type: domain.AreaTypeProvince,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}).Error)
}

func doJSON(router *gin.Engine, method, path string, userID uuid.UUID, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != uuid.Nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var envelope struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestIntegration_TaxonomyAdminGate(t *testing.T) {
	db := setupIntegrationTestDB(t)
	router := setupIntegrationRouter(db)
	admin := seedUser(t, db, domain.UserTypeAdmin)
	customer := seedUser(t, db, domain.UserTypeCustomer)

	body := map[string]interface{}{
		"id":        "Economia",
		"name":      "Economia",
		"colorCode": "#1565c0",
	}

	t.Run("customer write forbidden", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/taxonomy/areas/intelligence", customer.ID, body)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unauthenticated write rejected", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/taxonomy/areas/intelligence", uuid.Nil, body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("admin write lands normalized", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/taxonomy/areas/intelligence", admin.ID, body)
		require.Equal(t, http.StatusCreated, w.Code)
		data := dataField(t, w)
		assert.Equal(t, "economia", data["id"])
		assert.Equal(t, "#1565C0", data["colorCode"])
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/taxonomy/areas/intelligence", admin.ID, body)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("customer can read", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/taxonomy/areas/intelligence/economia", customer.ID, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestIntegration_ContentLifecycle(t *testing.T) {
	db := setupIntegrationTestDB(t)
	router := setupIntegrationRouter(db)
	seedTaxonomy(t, db)
	customer := seedUser(t, db, domain.UserTypeCustomer)
	other := seedUser(t, db, domain.UserTypeCustomer)

	createBody := map[string]interface{}{
		"contentType":        "scenario",
		"titolo":             "Stress idrico estivo 2030",
		"descrizioneBreve":   "Scenario di scarsità idrica",
		"visibility":         "private",
		"intelligenceArea":   "ambiente",
		"geographicCoverage": []string{"provincia-di-brescia"},
		"scenario": map[string]interface{}{
			"probabilita":  "medium",
			"scenarioText": strings.Repeat("La domanda idrica supera la capacità di invaso. ", 3),
		},
	}

	w := doJSON(router, http.MethodPost, "/api/taxonomy/contents", customer.ID, createBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := dataField(t, w)
	contentID := data["contentId"].(string)
	assert.Equal(t, "user_created", data["contentSource"])
	require.NotNil(t, data["scenario"])

	t.Run("owner reads it back", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/taxonomy/contents/"+contentID, customer.ID, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("foreign private content reads as not found", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/taxonomy/contents/"+contentID, other.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("customer cannot flip it public", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/taxonomy/contents/"+contentID, customer.ID,
			map[string]interface{}{"visibility": "public"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("owner updates title", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/taxonomy/contents/"+contentID, customer.ID,
			map[string]interface{}{"titolo": "Stress idrico 2031"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := dataField(t, w)
		assert.Equal(t, "Stress idrico 2031", data["titolo"])
	})

	t.Run("owner deletes it", func(t *testing.T) {
		w := doJSON(router, http.MethodDelete, "/api/taxonomy/contents/"+contentID, customer.ID, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(router, http.MethodGet, "/api/taxonomy/contents/"+contentID, customer.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestIntegration_ProjectBlockFlow(t *testing.T) {
	db := setupIntegrationTestDB(t)
	router := setupIntegrationRouter(db)
	seedTaxonomy(t, db)
	customer := seedUser(t, db, domain.UserTypeCustomer)

	// Create a content item to reference from blocks
	w := doJSON(router, http.MethodPost, "/api/taxonomy/contents", customer.ID, map[string]interface{}{
		"contentType":        "scenario",
		"titolo":             "Scenario di riferimento",
		"descrizioneBreve":   "Per il cruscotto",
		"visibility":         "private",
		"intelligenceArea":   "ambiente",
		"geographicCoverage": []string{"provincia-di-brescia"},
		"scenario": map[string]interface{}{
			"probabilita":  "low",
			"scenarioText": strings.Repeat("Scenario di riferimento per il cruscotto idrico. ", 3),
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	contentID := dataField(t, w)["contentId"].(string)

	w = doJSON(router, http.MethodPost, "/api/taxonomy/projects", customer.ID,
		map[string]interface{}{"nome": "Osservatorio idrico"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	projectData := dataField(t, w)
	projectID := projectData["projectId"].(string)
	assert.Equal(t, "empty", projectData["projectState"])

	w = doJSON(router, http.MethodPost, "/api/taxonomy/projects/"+projectID+"/blocks", customer.ID,
		map[string]interface{}{"contentId": contentID, "position": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	blockID := dataField(t, w)["blockId"].(string)

	t.Run("project turns active with one block", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/taxonomy/projects/"+projectID, customer.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := dataField(t, w)
		assert.Equal(t, "active", data["projectState"])
		assert.Equal(t, float64(1), data["contentBlockCount"])
	})

	t.Run("taken position conflicts", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/taxonomy/projects/"+projectID+"/blocks", customer.ID,
			map[string]interface{}{"contentId": contentID, "position": 1})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("deactivating the only block empties the project", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/taxonomy/projects/"+projectID+"/blocks/"+blockID, customer.ID,
			map[string]interface{}{"isActive": false})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doJSON(router, http.MethodGet, "/api/taxonomy/projects/"+projectID, customer.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := dataField(t, w)
		assert.Equal(t, "empty", data["projectState"])
		assert.Equal(t, float64(0), data["contentBlockCount"])
	})

	t.Run("removing the block keeps the project empty", func(t *testing.T) {
		w := doJSON(router, http.MethodDelete, "/api/taxonomy/projects/"+projectID+"/blocks/"+blockID, customer.ID, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(router, http.MethodGet, "/api/taxonomy/projects/"+projectID, customer.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := dataField(t, w)
		assert.Equal(t, "empty", data["projectState"])
	})

	t.Run("foreign project reads as not found", func(t *testing.T) {
		other := seedUser(t, db, domain.UserTypeCustomer)
		w := doJSON(router, http.MethodGet, "/api/taxonomy/projects/"+projectID, other.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
