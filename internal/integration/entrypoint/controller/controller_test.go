package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/application/adapter/mocks"
	"github.com/ledgerline/receivables/internal/application/usecase/dunning"
	"github.com/ledgerline/receivables/internal/application/usecase/reconciliation"
	"github.com/ledgerline/receivables/internal/domain/entity"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
	"github.com/ledgerline/receivables/internal/integration/entrypoint/dto"
	"github.com/ledgerline/receivables/internal/integration/entrypoint/middleware"
)

var fixedNow = time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC)

type controllerFixture struct {
	txnRepo     *mocks.MockBankTransactionRepository
	invoiceRepo *mocks.MockInvoiceRepository
	attemptRepo *mocks.MockPaymentAttemptRepository
	router      *gin.Engine
	tenantID    uuid.UUID
}

func newControllerFixture(t *testing.T) *controllerFixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &controllerFixture{
		txnRepo:     mocks.NewMockBankTransactionRepository(ctrl),
		invoiceRepo: mocks.NewMockInvoiceRepository(ctrl),
		attemptRepo: mocks.NewMockPaymentAttemptRepository(ctrl),
		tenantID:    uuid.New(),
	}
	clock := adapter.ClockFunc(func() time.Time { return fixedNow })
	config := valueobject.DefaultDunningConfig()

	recon := NewReconciliationController(
		reconciliation.NewMatchTransactionsUseCase(f.txnRepo, f.invoiceRepo, nil, clock),
		reconciliation.NewFindDuplicatesUseCase(f.txnRepo),
		reconciliation.NewGetMatchingStatsUseCase(f.txnRepo, f.invoiceRepo),
		valueobject.DefaultMatchCriteria(),
		valueobject.DefaultDuplicateCriteria(),
	)
	dun := NewDunningController(
		dunning.NewProcessDunningUseCase(f.invoiceRepo, nil, f.attemptRepo, nil, nil, nil, clock),
		dunning.NewGetDunningStatusUseCase(f.invoiceRepo, f.attemptRepo, config, clock),
		dunning.NewGetInvoiceAgingUseCase(f.invoiceRepo, clock),
		config,
	)

	r := gin.New()
	api := r.Group("/api/v1", func(c *gin.Context) {
		if c.GetHeader("X-No-Tenant") == "" {
			c.Set(string(middleware.TenantIDKey), f.tenantID)
		}
		c.Next()
	})
	api.POST("/reconciliation/connections/:connectionId/reconcile", recon.Reconcile)
	api.GET("/reconciliation/connections/:connectionId/duplicates", recon.GetDuplicates)
	api.GET("/reconciliation/connections/:connectionId/stats", recon.GetStats)
	api.POST("/dunning/run", dun.Run)
	api.GET("/dunning/invoices/:invoiceId/status", dun.GetStatus)
	api.GET("/dunning/aging", dun.GetAging)
	f.router = r
	return f
}

func (f *controllerFixture) do(method, path string, body []byte, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestReconciliationController_Reconcile(t *testing.T) {
	f := newControllerFixture(t)
	connectionID := uuid.New()
	invoice := entity.NewInvoice(f.tenantID, nil, "INV-1", 10000, "USD")
	invoice.Status = entity.InvoiceStatusSent
	txn := entity.NewBankTransaction(f.tenantID, connectionID, decimal.NewFromInt(100), "Payment INV-1", fixedNow, entity.TransactionDirectionCredit)

	f.txnRepo.EXPECT().ListUnmatched(gomock.Any(), connectionID, f.tenantID).Return([]*entity.BankTransaction{txn}, nil)
	f.invoiceRepo.EXPECT().FindMatchCandidates(gomock.Any(), f.tenantID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, window valueobject.DateRange) ([]*entity.Invoice, error) {
			assert.Equal(t, fixedNow.AddDate(0, 0, -7), window.Start)
			return []*entity.Invoice{invoice}, nil
		})
	f.txnRepo.EXPECT().CommitMatch(gomock.Any(), gomock.Any()).Return(nil)

	rec := f.do(http.MethodPost, "/api/v1/reconciliation/connections/"+connectionID.String()+"/reconcile", []byte(`{"date_window_days":7}`))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[dto.ReconcileResponse](t, rec)
	assert.Equal(t, 1, body.Matched)
	assert.Equal(t, 1, body.Attempted)
	require.Len(t, body.Matches, 1)
	assert.Equal(t, "INV-1", body.Matches[0].InvoiceNumber)
	assert.InDelta(t, 0.8, body.Matches[0].Score, 1e-9)
}

func TestReconciliationController_BadRequests(t *testing.T) {
	f := newControllerFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/reconciliation/connections/not-a-uuid/reconcile", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(domainerror.ErrCodeInvalidConnectionID), decode[dto.ErrorResponse](t, rec).Code)

	rec = f.do(http.MethodPost, "/api/v1/reconciliation/connections/"+uuid.NewString()+"/reconcile", []byte(`{"amount_tolerance":"abc"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(domainerror.ErrCodeInvalidCriteria), decode[dto.ErrorResponse](t, rec).Code)

	rec = f.do(http.MethodGet, "/api/v1/reconciliation/connections/"+uuid.NewString()+"/stats", nil, "X-No-Tenant", "1")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestReconciliationController_DuplicatesAndStats(t *testing.T) {
	f := newControllerFixture(t)
	connectionID := uuid.New()
	a := &entity.BankTransaction{ID: uuid.New(), Amount: decimal.NewFromInt(50), Description: "Coffee shop", Date: fixedNow}
	b := &entity.BankTransaction{ID: uuid.New(), Amount: decimal.NewFromInt(50), Description: "Coffee shop", Date: fixedNow.Add(time.Hour)}

	f.txnRepo.EXPECT().ListByConnection(gomock.Any(), connectionID, f.tenantID).Return([]*entity.BankTransaction{a, b}, nil)

	rec := f.do(http.MethodGet, "/api/v1/reconciliation/connections/"+connectionID.String()+"/duplicates", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	dups := decode[dto.DuplicatesResponse](t, rec)
	require.Len(t, dups.Duplicates, 1)
	assert.Equal(t, []string{b.ID.String()}, dups.Duplicates[0].Duplicates)
	assert.Equal(t, "50.00", dups.Duplicates[0].Amount)

	f.txnRepo.EXPECT().GetStats(gomock.Any(), connectionID, f.tenantID).Return(nil, errors.New("db down"))

	rec = f.do(http.MethodGet, "/api/v1/reconciliation/connections/"+connectionID.String()+"/stats", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, string(domainerror.ErrCodeStatsFailed), decode[dto.ErrorResponse](t, rec).Code)
}

func TestDunningController_Run(t *testing.T) {
	f := newControllerFixture(t)

	f.invoiceRepo.EXPECT().ListUnpaid(gomock.Any(), f.tenantID).Return([]*entity.Invoice{}, nil)

	rec := f.do(http.MethodPost, "/api/v1/dunning/run", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[dto.DunningResultResponse](t, rec)
	assert.Zero(t, body.Processed)
	assert.Equal(t, []string{}, body.Errors)
}

func TestDunningController_GetStatus(t *testing.T) {
	f := newControllerFixture(t)
	invoice := entity.NewInvoice(f.tenantID, nil, "INV-9", 500, "USD")
	invoice.Status = entity.InvoiceStatusUnpaid
	invoice.CreatedAt = fixedNow.AddDate(0, 0, -2)
	foreign := entity.NewInvoice(uuid.New(), nil, "INV-X", 500, "USD")
	missing := uuid.New()

	f.invoiceRepo.EXPECT().GetByID(gomock.Any(), invoice.ID).Return(invoice, nil)
	f.attemptRepo.EXPECT().ListByInvoice(gomock.Any(), invoice.ID).Return(nil, nil)
	f.invoiceRepo.EXPECT().GetByID(gomock.Any(), foreign.ID).Return(foreign, nil)
	f.attemptRepo.EXPECT().ListByInvoice(gomock.Any(), foreign.ID).Return(nil, nil)
	f.invoiceRepo.EXPECT().GetByID(gomock.Any(), missing).Return(nil, domainerror.ErrInvoiceNotFound)

	rec := f.do(http.MethodGet, "/api/v1/dunning/invoices/"+invoice.ID.String()+"/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode[dto.DunningStatusResponse](t, rec)
	assert.Equal(t, 2, status.DaysOverdue)
	require.NotNil(t, status.NextRetryDue)
	assert.Equal(t, 3, *status.NextRetryDue)
	assert.False(t, status.IsEscalated)
	assert.Nil(t, status.LastRetryAt)

	rec = f.do(http.MethodGet, "/api/v1/dunning/invoices/"+foreign.ID.String()+"/status", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/dunning/invoices/"+missing.String()+"/status", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, string(domainerror.ErrCodeInvoiceNotFound), decode[dto.ErrorResponse](t, rec).Code)

	rec = f.do(http.MethodGet, "/api/v1/dunning/invoices/nope/status", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(domainerror.ErrCodeInvalidInvoiceID), decode[dto.ErrorResponse](t, rec).Code)
}

func TestDunningController_GetAging(t *testing.T) {
	f := newControllerFixture(t)
	old := entity.NewInvoice(f.tenantID, nil, "INV-1", 700, "USD")
	old.CreatedAt = fixedNow.AddDate(0, 0, -100)

	f.invoiceRepo.EXPECT().ListUnpaid(gomock.Any(), f.tenantID).Return([]*entity.Invoice{old}, nil)

	rec := f.do(http.MethodGet, "/api/v1/dunning/aging", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[dto.AgingResponse](t, rec)
	require.Len(t, body.Buckets, 4)
	assert.Nil(t, body.Buckets[3].MaxDays)
	assert.Equal(t, 1, body.Buckets[3].InvoiceCount)
	assert.Equal(t, int64(700), body.Buckets[3].TotalAmount)
	require.NotNil(t, body.Buckets[0].MaxDays)
	assert.Equal(t, 30, *body.Buckets[0].MaxDays)
}

func TestHealthController_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHealthController(map[string]HealthCheck{
		"database": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return errors.New("down") },
	})
	r.GET("/health", h.Check)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[HealthResponse](t, rec)
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "connected", body.Dependencies["database"])
	assert.Equal(t, "disconnected", body.Dependencies["redis"])
}
