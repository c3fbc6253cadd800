package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/cart"
	"github.com/yeremiapane/restaurant-pos/store"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type CartController struct {
	Cart  *cart.Cart
	Menus *store.MenuStore
}

func NewCartController(posCart *cart.Cart, db *gorm.DB) *CartController {
	return &CartController{Cart: posCart, Menus: store.NewMenuStore(db)}
}

type cartView struct {
	Items     []cart.Line `json:"items"`
	Total     float64     `json:"total"`
	LineCount int         `json:"line_count"`
}

func (cc *CartController) view() cartView {
	return cartView{
		Items:     cc.Cart.Lines(),
		Total:     cc.Cart.TotalPrice(),
		LineCount: cc.Cart.TotalLineCount(),
	}
}

// GetCart
func (cc *CartController) GetCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart contents", cc.view())
}

// AddItem merges one menu item into the cart, snapshotting its current name
// and price.
func (cc *CartController) AddItem(c *gin.Context) {
	var body struct {
		MenuID uint `json:"menu_id" binding:"required"`
		Qty    int  `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu, err := cc.Menus.GetMenuItem(body.MenuID)
	if err != nil {
		utils.RespondError(c, storeErrorStatus(err), err)
		return
	}

	cc.Cart.AddOrIncrement(cart.Item{
		MenuID: menu.ID,
		Name:   menu.Name,
		Price:  menu.Price,
	}, body.Qty)

	utils.RespondJSON(c, http.StatusOK, "Item added to cart", cc.view())
}

// DecreaseItem
func (cc *CartController) DecreaseItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("menu_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cc.Cart.Decrement(uint(id))
	utils.RespondJSON(c, http.StatusOK, "Item quantity decreased", cc.view())
}

// RemoveItem
func (cc *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("menu_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cc.Cart.Remove(uint(id))
	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", cc.view())
}

// ClearCart
func (cc *CartController) ClearCart(c *gin.Context) {
	cc.Cart.Clear()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", cc.view())
}
