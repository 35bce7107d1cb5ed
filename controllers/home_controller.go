package controllers

import (
	"scoup/pkg/resp"
	"scoup/services"
	"scoup/utils"

	"github.com/gin-gonic/gin"
)

type HomeController struct {
	cafeService  *services.CafeService
	menuService  *services.MenuService
	eventService *services.EventService
}

func NewHomeController(cafes *services.CafeService, menus *services.MenuService, events *services.EventService) *HomeController {
	return &HomeController{cafeService: cafes, menuService: menus, eventService: events}
}

// GET /home
func (hc *HomeController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	cafes, err := hc.cafeService.ListHomeCafes(c.Request.Context(), uid)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, MsgHomeCheck, cafes)
}

// PATCH /home  (cafeId header, or ?cafeId=)
func (hc *HomeController) Patch(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	raw := c.GetHeader("cafeId")
	if raw == "" {
		raw = c.Query("cafeId")
	}
	cafeID, ok := parseID(c, "cafeId", raw)
	if !ok {
		return
	}

	if err := hc.cafeService.PatchHomeCafe(c.Request.Context(), uid, cafeID); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, MsgHomePatch, nil)
}

// DELETE /home/:shopId
func (hc *HomeController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	cafeID, ok := paramID(c, "shopId")
	if !ok {
		return
	}

	if err := hc.cafeService.RemoveCafe(c.Request.Context(), uid, cafeID); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, MsgHomeDelete, nil)
}

// GET /home/:shopId/:orderId
func (hc *HomeController) OrderMenus(c *gin.Context) {
	cafeID, ok := paramID(c, "shopId")
	if !ok {
		return
	}
	orderID, ok := paramID(c, "orderId")
	if !ok {
		return
	}

	out, err := hc.menuService.OrderMenus(c.Request.Context(), cafeID, orderID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, MsgMenuCheck, out)
}

// GET /home/:shopId/event
func (hc *HomeController) Events(c *gin.Context) {
	cafeID, ok := paramID(c, "shopId")
	if !ok {
		return
	}

	events, err := hc.eventService.List(c.Request.Context(), cafeID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, MsgEventCheck, events)
}
