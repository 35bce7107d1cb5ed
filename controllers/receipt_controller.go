package controllers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"scoup/pkg/idempotency"
	"scoup/pkg/metrics"
	"scoup/pkg/resp"
	"scoup/services"
	"scoup/utils"

	"github.com/gin-gonic/gin"
)

const idempotencyHeader = "Idempotency-Key"

type ReceiptController struct {
	receiptService *services.ReceiptService
	idem           *idempotency.Manager // nil disables Idempotency-Key handling
	idemTTL        time.Duration
}

func NewReceiptController(s *services.ReceiptService, idem *idempotency.Manager, idemTTL time.Duration) *ReceiptController {
	return &ReceiptController{receiptService: s, idem: idem, idemTTL: idemTTL}
}

// POST /receipt
func (rc *ReceiptController) Submit(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	key := strings.TrimSpace(c.GetHeader(idempotencyHeader))
	if rc.idem == nil || key == "" {
		out, err := rc.receiptService.Submit(c.Request.Context(), uid, &req)
		if err != nil {
			resp.Fail(c, err)
			return
		}
		resp.Created(c, MsgReceiptSubmit, out)
		return
	}

	// keys are per user so two users cannot collide
	scoped := fmt.Sprintf("receipt:%d:%s", uid, key)
	res, err := rc.idem.Execute(c.Request.Context(), scoped, rc.idemTTL, func(ctx context.Context) (interface{}, error) {
		return rc.receiptService.Submit(ctx, uid, &req)
	})
	if err != nil {
		resp.Fail(c, err)
		return
	}
	if res.FromCache {
		metrics.RecordIdempotentReplay()
		c.Header("Idempotent-Replayed", "true")
	}
	resp.Created(c, MsgReceiptSubmit, res.Response)
}
