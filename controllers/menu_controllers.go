package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/store"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type MenuController struct {
	Store *store.MenuStore
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{Store: store.NewMenuStore(db)}
}

type menuRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image *string `json:"image"`
}

// GetAllMenus
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	menus, err := mc.Store.ListMenuItems()
	if err != nil {
		utils.RespondError(c, storeErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// CreateMenu
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var body menuRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu, err := mc.Store.AddMenuItem(body.Name, body.Price, body.Image)
	if err != nil {
		utils.RespondError(c, storeErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu created", menu)
}

// UpdateMenu
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("menu_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var body menuRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu, err := mc.Store.UpdateMenuItem(uint(id), body.Name, body.Price, body.Image)
	if err != nil {
		utils.RespondError(c, storeErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu updated successfully", menu)
}

// DeleteMenu removes a menu item; deleting an unknown id still succeeds.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("menu_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := mc.Store.DeleteMenuItem(uint(id)); err != nil {
		utils.RespondError(c, storeErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{"menu_id": id})
}

// ResetMenu wipes the whole menu table (admin maintenance).
func (mc *MenuController) ResetMenu(c *gin.Context) {
	if err := mc.Store.ResetMenu(); err != nil {
		utils.RespondError(c, storeErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu reset", nil)
}

// CleanupDuplicates removes duplicate menu names left behind by installs
// that predate the unique index.
func (mc *MenuController) CleanupDuplicates(c *gin.Context) {
	if err := mc.Store.CleanupDuplicates(); err != nil {
		utils.RespondError(c, storeErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Duplicate menu entries removed", nil)
}
