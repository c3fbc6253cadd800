package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/controllers"
	"github.com/yeremiapane/restaurant-pos/database"
	"github.com/yeremiapane/restaurant-pos/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	menuCtrl := controllers.NewMenuController(db)
	router.GET("/menus", menuCtrl.GetAllMenus)
	router.POST("/menus", menuCtrl.CreateMenu)
	router.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
	router.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMenuCRUD(t *testing.T) {
	db := setupTestDB(t)
	router := setupMenuRouter(db)

	// Create
	w := doJSON(t, router, http.MethodPost, "/menus", map[string]interface{}{
		"name":  "Pongal",
		"price": 30.0,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp struct {
		Status bool `json:"status"`
		Data   struct {
			ID    uint    `json:"id"`
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	assert.True(t, createResp.Status)
	assert.NotZero(t, createResp.Data.ID)

	url := "/menus/" + strconv.Itoa(int(createResp.Data.ID))

	// List: seeded items + the new one, name ascending
	w = doJSON(t, router, http.MethodGet, "/menus", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Data, 4)
	assert.Equal(t, "Dosai", listResp.Data[0].Name)

	// Update
	w = doJSON(t, router, http.MethodPatch, url, map[string]interface{}{
		"name":  "Ven Pongal",
		"price": 35.0,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete, twice: second delete is still a success
	w = doJSON(t, router, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateMenuRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	router := setupMenuRouter(db)

	// empty name
	w := doJSON(t, router, http.MethodPost, "/menus", map[string]interface{}{
		"name":  "   ",
		"price": 10.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// negative price
	w = doJSON(t, router, http.MethodPost, "/menus", map[string]interface{}{
		"name":  "Vadai",
		"price": -5.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// duplicate of a seeded name
	w = doJSON(t, router, http.MethodPost, "/menus", map[string]interface{}{
		"name":  "Tea",
		"price": 10.0,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateMissingMenuIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	router := setupMenuRouter(db)

	w := doJSON(t, router, http.MethodPatch, "/menus/999", map[string]interface{}{
		"name":  "Ghost",
		"price": 1.0,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
