package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payments-engine/internal/domain/shared"
	"github.com/payments-engine/internal/engine"
)

func newAccountRouter(t *testing.T, e *engine.Engine) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewAccountHandler(testLogger(), e)

	router := gin.New()
	router.GET("/api/v1/accounts", h.List)
	router.GET("/api/v1/accounts/:id", h.GetByID)
	return router
}

func seedDeposit(t *testing.T, e *engine.Engine, client shared.ClientID, id shared.TransactionID, amount string) {
	t.Helper()
	a, err := shared.ParseAmount(amount)
	require.NoError(t, err)
	tx := shared.Transaction{ID: id, ClientID: client, Operation: shared.OperationDeposit, Amount: &a}
	require.NoError(t, e.Apply(tx))
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAccountHandler_List(t *testing.T) {
	e := engine.New()
	seedDeposit(t, e, 42, 1, "1.5")
	seedDeposit(t, e, 7, 2, "2.0")
	router := newAccountRouter(t, e)

	rec := get(t, router, "/api/v1/accounts")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data AccountListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Data.Accounts, 2)
	assert.Equal(t, uint16(42), resp.Data.Accounts[0].Client)
	assert.Equal(t, uint16(7), resp.Data.Accounts[1].Client)
	assert.Equal(t, "1.5000", resp.Data.Accounts[0].Available)
	assert.Equal(t, "1.5000", resp.Data.Accounts[0].Total)
	assert.False(t, resp.Data.Accounts[0].Locked)
}

func TestAccountHandler_List_Empty(t *testing.T) {
	router := newAccountRouter(t, engine.New())

	rec := get(t, router, "/api/v1/accounts")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data AccountListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Accounts)
}

func TestAccountHandler_GetByID(t *testing.T) {
	e := engine.New()
	seedDeposit(t, e, 3, 1, "10.0")
	router := newAccountRouter(t, e)

	t.Run("Found", func(t *testing.T) {
		rec := get(t, router, "/api/v1/accounts/3")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data AccountResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint16(3), resp.Data.Client)
		assert.Equal(t, "10.0000", resp.Data.Available)
		assert.Equal(t, "0.0000", resp.Data.Held)
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := get(t, router, "/api/v1/accounts/9")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		rec := get(t, router, "/api/v1/accounts/not-a-number")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("OutOfRangeID", func(t *testing.T) {
		// Client ids are 16-bit.
		rec := get(t, router, "/api/v1/accounts/70000")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
