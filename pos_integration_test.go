package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/cart"
	"github.com/yeremiapane/restaurant-pos/database"
	"github.com/yeremiapane/restaurant-pos/router"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/store"
	"github.com/yeremiapane/restaurant-pos/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

type recordingMailer struct {
	fail bool
	sent int
}

func (r *recordingMailer) SendBackup(_ context.Context, jsonPath, pdfPath string) error {
	if r.fail {
		return errors.New("mail gateway unreachable")
	}
	r.sent++
	return nil
}

func setupTestApp(t *testing.T, mailer services.BackupMailer) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	backupSvc := services.NewBackupService(store.NewOrderStore(db), mailer, t.TempDir())
	return router.SetupRouter(db, cart.New(), backupSvc), db
}

func request(t *testing.T, r *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func countOrders(t *testing.T, r *gin.Engine) int {
	t.Helper()
	w := request(t, r, http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []json.RawMessage `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return len(resp.Data)
}

// TestEndToEndFlow walks the main register flow:
// 1. Seeded menu is listed
// 2. Items go into the cart, one gets decremented
// 3. Checkout persists the order and clears the cart
// 4. Order history and its items read back
// 5. Backup emails both artifacts and purges the history
func TestEndToEndFlow(t *testing.T) {
	mailer := &recordingMailer{}
	r, _ := setupTestApp(t, mailer)

	// 1. menu
	w := request(t, r, http.MethodGet, "/menus", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var menus struct {
		Data []struct {
			ID    uint    `json:"id"`
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &menus))
	assert.Len(t, menus.Data, 3)

	// 2. cart: two teas, one dosai, then one tea decremented
	request(t, r, http.MethodPost, "/cart/items", map[string]interface{}{"menu_id": 1})
	request(t, r, http.MethodPost, "/cart/items", map[string]interface{}{"menu_id": 1})
	request(t, r, http.MethodPost, "/cart/items", map[string]interface{}{"menu_id": 2})
	request(t, r, http.MethodPost, "/cart/items/1/decrease", nil)

	w = request(t, r, http.MethodGet, "/cart", nil)
	var cartResp struct {
		Data struct {
			Total     float64 `json:"total"`
			LineCount int     `json:"line_count"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartResp))
	assert.Equal(t, 55.0, cartResp.Data.Total) // 1x Tea(10) + 1x Dosai(45)
	assert.Equal(t, 2, cartResp.Data.LineCount)

	// 3. checkout
	w = request(t, r, http.MethodPost, "/checkout", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	var checkout struct {
		Data struct {
			ID    uint    `json:"id"`
			Total float64 `json:"total"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &checkout))
	assert.Equal(t, 55.0, checkout.Data.Total)

	w = request(t, r, http.MethodGet, "/cart", nil)
	cartResp.Data.LineCount = -1
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartResp))
	assert.Equal(t, 0, cartResp.Data.LineCount)

	// 4. history
	assert.Equal(t, 1, countOrders(t, r))
	w = request(t, r, http.MethodGet, fmt.Sprintf("/orders/%d/items", checkout.Data.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// 5. backup and reset
	w = request(t, r, http.MethodPost, "/admin/backup", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, 0, countOrders(t, r))
}

func TestBackupFailureLeavesHistoryIntact(t *testing.T) {
	mailer := &recordingMailer{fail: true}
	r, _ := setupTestApp(t, mailer)

	request(t, r, http.MethodPost, "/cart/items", map[string]interface{}{"menu_id": 3, "qty": 2})
	w := request(t, r, http.MethodPost, "/checkout", nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = request(t, r, http.MethodPost, "/admin/backup", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, 1, countOrders(t, r))
}
