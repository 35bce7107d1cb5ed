package controllers

import (
	"scoup/pkg/resp"
	"scoup/services"
	"scoup/utils"

	"github.com/gin-gonic/gin"
)

type ShopController struct {
	cafeService *services.CafeService
	menuService *services.MenuService
}

func NewShopController(cafes *services.CafeService, menus *services.MenuService) *ShopController {
	return &ShopController{cafeService: cafes, menuService: menus}
}

// POST /shop/:shopId
func (sc *ShopController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	cafeID, ok := paramID(c, "shopId")
	if !ok {
		return
	}

	if err := sc.cafeService.AddCafe(c.Request.Context(), uid, cafeID); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, MsgAddCafe, nil)
}

// GET /shop?keyword=
func (sc *ShopController) Search(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	cafes, err := sc.cafeService.Search(c.Request.Context(), uid, c.Query("keyword"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, MsgSearchCafe, cafes)
}

// GET /shop/:shopId/menu
func (sc *ShopController) Menus(c *gin.Context) {
	cafeID, ok := paramID(c, "shopId")
	if !ok {
		return
	}

	menus, err := sc.menuService.ListByCafe(c.Request.Context(), cafeID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, MsgMenuCheck, menus)
}
