package controllers

import (
	"scoup/pkg/resp"
	"scoup/services"
	"scoup/utils"

	"github.com/gin-gonic/gin"
)

// AdminController serves the master-only routes. The master flag itself is
// checked by the services.
type AdminController struct {
	adminService  *services.AdminService
	eventService  *services.EventService
	couponService *services.CouponService
}

func NewAdminController(admin *services.AdminService, events *services.EventService, coupons *services.CouponService) *AdminController {
	return &AdminController{adminService: admin, eventService: events, couponService: coupons}
}

// POST /admin/shop
func (ac *AdminController) CreateCafe(c *gin.Context) {
	var req services.CafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cafe, err := ac.adminService.CreateCafe(c.Request.Context(), utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, MsgCafeCreate, gin.H{"cafeId": cafe.ID, "name": cafe.Name})
}

// PATCH /admin/shop/:shopId
func (ac *AdminController) PatchCafe(c *gin.Context) {
	cafeID, ok := paramID(c, "shopId")
	if !ok {
		return
	}
	var req services.PatchCafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cafe, err := ac.adminService.PatchCafe(c.Request.Context(), utils.CurrentUserID(c), cafeID, &req)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, MsgCafePatch, gin.H{"cafeId": cafe.ID, "name": cafe.Name})
}

// DELETE /admin/shop/:shopId
func (ac *AdminController) DeleteCafe(c *gin.Context) {
	cafeID, ok := paramID(c, "shopId")
	if !ok {
		return
	}

	if err := ac.adminService.DeleteCafe(c.Request.Context(), utils.CurrentUserID(c), cafeID); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, MsgCafeDelete, nil)
}

// POST /admin/shop/:shopId/event
func (ac *AdminController) CreateEvent(c *gin.Context) {
	cafeID, ok := paramID(c, "shopId")
	if !ok {
		return
	}
	var req services.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ev, err := ac.eventService.Create(c.Request.Context(), utils.CurrentUserID(c), cafeID, &req)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, MsgEventCreate, ev)
}

// DELETE /admin/event/:eventId
func (ac *AdminController) DeleteEvent(c *gin.Context) {
	eventID, ok := paramID(c, "eventId")
	if !ok {
		return
	}

	if err := ac.eventService.Delete(c.Request.Context(), utils.CurrentUserID(c), eventID); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, MsgEventDelete, nil)
}

// POST /admin/coupon
func (ac *AdminController) IssueCoupon(c *gin.Context) {
	var req services.IssueCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ac.couponService.Issue(c.Request.Context(), utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, MsgCouponIssue, out)
}
