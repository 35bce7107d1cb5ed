package controllers

import (
	"strconv"
	"strings"

	"scoup/pkg/resp"

	"github.com/gin-gonic/gin"
)

// success messages
const (
	MsgHomeCheck     = "home cafes fetched"
	MsgHomePatch     = "home cafe added"
	MsgHomeDelete    = "home cafe removed"
	MsgAddCafe       = "cafe added"
	MsgSearchCafe    = "cafes searched"
	MsgMenuCheck     = "menus fetched"
	MsgEventCheck    = "events fetched"
	MsgEventCreate   = "event created"
	MsgEventDelete   = "event deleted"
	MsgCouponCheck   = "coupons fetched"
	MsgCouponRedeem  = "coupon redeemed"
	MsgCouponIssue   = "coupon issued"
	MsgReceiptSubmit = "receipt recorded"
	MsgCafeCreate    = "cafe created"
	MsgCafePatch     = "cafe updated"
	MsgCafeDelete    = "cafe deleted"
)

// paramID parses a positive id path param, answering 400 when it is not.
func paramID(c *gin.Context, name string) (uint, bool) {
	return parseID(c, name, c.Param(name))
}

func parseID(c *gin.Context, name, raw string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || n == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(n), true
}
