package handler

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/payments-engine/internal/domain/shared"
	"github.com/payments-engine/internal/engine"
)

// AccountReader renders account state without mutating it.
type AccountReader interface {
	Report() []engine.Row
	Snapshot(id shared.ClientID) (engine.Row, bool)
}

// AccountHandler serves account state over HTTP.
type AccountHandler struct {
	accounts AccountReader
	logger   *slog.Logger
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(logger *slog.Logger, accounts AccountReader) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// List renders the whole report, one row per account in first-insertion
// order.
func (h *AccountHandler) List(c *gin.Context) {
	rows := h.accounts.Report()

	accounts := make([]AccountResponse, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, mapRowToResponse(row))
	}

	RespondOK(c, AccountListResponse{Accounts: accounts})
}

// GetByID renders one account, 404 when the client was never referenced.
func (h *AccountHandler) GetByID(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 16)
	if err != nil {
		h.logger.Error("invalid client id", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid client id")
		return
	}

	row, ok := h.accounts.Snapshot(shared.ClientID(id))
	if !ok {
		RespondNotFound(c, "Account not found")
		return
	}

	RespondOK(c, mapRowToResponse(row))
}
