package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TriggerHandler struct {
	pollService PollService
}

func NewTriggerHandler(pollService PollService) *TriggerHandler {
	return &TriggerHandler{pollService: pollService}
}

// Poll runs a full cycle. The cycle is not cancelled when the caller goes away.
func (h *TriggerHandler) Poll(c *gin.Context) {
	report := h.pollService.Poll(context.WithoutCancel(c.Request.Context()))

	c.JSON(http.StatusOK, fromDomainCycleReport(report))
}
