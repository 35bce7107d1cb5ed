package controllers

import (
	"scoup/pkg/resp"
	"scoup/services"
	"scoup/utils"

	"github.com/gin-gonic/gin"
)

type CouponController struct {
	couponService *services.CouponService
}

func NewCouponController(s *services.CouponService) *CouponController {
	return &CouponController{couponService: s}
}

// GET /mypage/coupon
func (cc *CouponController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	coupons, err := cc.couponService.List(c.Request.Context(), uid)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, MsgCouponCheck, coupons)
}

// POST /mypage/coupon/:couponId
func (cc *CouponController) Redeem(c *gin.Context) {
	couponID, ok := paramID(c, "couponId")
	if !ok {
		return
	}

	out, err := cc.couponService.Redeem(c.Request.Context(), couponID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, MsgCouponRedeem, out)
}
