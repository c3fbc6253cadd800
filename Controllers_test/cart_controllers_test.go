package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/cart"
	"github.com/yeremiapane/restaurant-pos/controllers"
)

func setupCartRouter(db *gorm.DB) (*gin.Engine, *cart.Cart) {
	gin.SetMode(gin.TestMode)
	posCart := cart.New()
	router := gin.New()
	cartCtrl := controllers.NewCartController(posCart, db)
	router.GET("/cart", cartCtrl.GetCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.POST("/cart/items/:menu_id/decrease", cartCtrl.DecreaseItem)
	router.DELETE("/cart/items/:menu_id", cartCtrl.RemoveItem)
	router.DELETE("/cart", cartCtrl.ClearCart)
	return router, posCart
}

type cartResponse struct {
	Data struct {
		Items []struct {
			ID    uint    `json:"id"`
			Name  string  `json:"name"`
			Price float64 `json:"price"`
			Qty   int     `json:"qty"`
		} `json:"items"`
		Total     float64 `json:"total"`
		LineCount int     `json:"line_count"`
	} `json:"data"`
}

// A register session driven through the HTTP surface.
func TestCartAddDecrementFlow(t *testing.T) {
	db := setupTestDB(t)
	router, _ := setupCartRouter(db)

	// add seeded Tea (id 1, price 10)
	w := doJSON(t, router, http.MethodPost, "/cart/items", map[string]interface{}{"menu_id": 1})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp cartResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Items, 1)
	assert.Equal(t, "Tea", resp.Data.Items[0].Name)
	assert.Equal(t, 1, resp.Data.Items[0].Qty)
	assert.Equal(t, 10.0, resp.Data.Total)

	// add again: merged, not duplicated
	w = doJSON(t, router, http.MethodPost, "/cart/items", map[string]interface{}{"menu_id": 1})
	resp = cartResponse{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Items, 1)
	assert.Equal(t, 2, resp.Data.Items[0].Qty)
	assert.Equal(t, 20.0, resp.Data.Total)

	// decrement back down to one, then to empty
	w = doJSON(t, router, http.MethodPost, "/cart/items/1/decrease", nil)
	resp = cartResponse{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Items[0].Qty)
	assert.Equal(t, 10.0, resp.Data.Total)

	w = doJSON(t, router, http.MethodPost, "/cart/items/1/decrease", nil)
	resp = cartResponse{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Items)
	assert.Equal(t, 0, resp.Data.LineCount)
}

func TestCartAddUnknownMenuIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	router, _ := setupCartRouter(db)

	w := doJSON(t, router, http.MethodPost, "/cart/items", map[string]interface{}{"menu_id": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartRemoveAndClear(t *testing.T) {
	db := setupTestDB(t)
	router, posCart := setupCartRouter(db)

	doJSON(t, router, http.MethodPost, "/cart/items", map[string]interface{}{"menu_id": 1, "qty": 3})
	doJSON(t, router, http.MethodPost, "/cart/items", map[string]interface{}{"menu_id": 2})

	w := doJSON(t, router, http.MethodDelete, "/cart/items/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, posCart.TotalLineCount())

	w = doJSON(t, router, http.MethodDelete, "/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, posCart.TotalLineCount())
}
