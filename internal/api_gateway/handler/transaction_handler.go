package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/payments-engine/internal/domain/account"
	"github.com/payments-engine/internal/domain/shared"
	"github.com/payments-engine/internal/processor"
)

// TransactionHandler applies transaction records submitted over HTTP.
type TransactionHandler struct {
	service processor.ProcessingService
	logger  *slog.Logger
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(logger *slog.Logger, service processor.ProcessingService) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		logger:  logger,
	}
}

// Submit applies one record. A malformed body is 400; a record the engine
// rejects is 422 with the rejection code; success returns 200.
func (h *TransactionHandler) Submit(c *gin.Context) {
	var req SubmitTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	op, err := shared.ParseOperationType(req.Type)
	if err != nil {
		h.logger.Error("invalid operation type", "type", req.Type)
		RespondBadRequest(c, "Invalid operation type")
		return
	}

	tx := shared.Transaction{
		ID:        shared.TransactionID(req.Tx),
		ClientID:  shared.ClientID(req.Client),
		Operation: op,
	}
	if req.Amount != "" {
		amount, err := shared.ParseAmount(req.Amount)
		if err != nil {
			h.logger.Error("invalid amount", "amount", req.Amount, "error", err)
			RespondBadRequest(c, "Invalid amount")
			return
		}
		tx.Amount = &amount
	}

	if err := h.service.ProcessTransaction(c.Request.Context(), tx); err != nil {
		code, known := account.RejectionCode(err)
		if !known {
			RespondInternalError(c)
			return
		}
		RespondUnprocessable(c, code, err.Error())
		return
	}

	RespondOK(c, gin.H{"tx": req.Tx, "client": req.Client, "status": "APPLIED"})
}
