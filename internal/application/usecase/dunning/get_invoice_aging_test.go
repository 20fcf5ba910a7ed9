package dunning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/application/adapter/mocks"
	"github.com/ledgerline/receivables/internal/domain/entity"
)

func TestGetInvoiceAging(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	tenantID := uuid.New()

	aged := func(days int, cents int64) *entity.Invoice {
		inv := entity.NewInvoice(tenantID, nil, "INV", cents, "USD")
		inv.CreatedAt = now.AddDate(0, 0, -days)
		return inv
	}

	invoiceRepo.EXPECT().ListUnpaid(gomock.Any(), tenantID).Return([]*entity.Invoice{
		aged(0, 100),
		aged(30, 200),
		aged(31, 400),
		aged(45, 10000),
		aged(60, 800),
		aged(61, 1600),
		aged(90, 3200),
		aged(91, 6400),
		aged(400, 12800),
		aged(-2, 5), // future-dated
	}, nil)

	uc := NewGetInvoiceAgingUseCase(invoiceRepo, adapter.ClockFunc(func() time.Time { return now }))
	buckets, err := uc.Execute(context.Background(), tenantID)

	require.NoError(t, err)
	require.Len(t, buckets, 4)

	assert.Equal(t, "Current", buckets[0].Name)
	assert.Equal(t, 3, buckets[0].InvoiceCount)
	assert.Equal(t, int64(305), buckets[0].TotalAmount)

	assert.Equal(t, "31-60 Days", buckets[1].Name)
	assert.Equal(t, 3, buckets[1].InvoiceCount)
	assert.Equal(t, int64(11200), buckets[1].TotalAmount)

	assert.Equal(t, "61-90 Days", buckets[2].Name)
	assert.Equal(t, 2, buckets[2].InvoiceCount)
	assert.Equal(t, int64(4800), buckets[2].TotalAmount)

	assert.Equal(t, "90+ Days", buckets[3].Name)
	assert.Equal(t, 2, buckets[3].InvoiceCount)
	assert.Equal(t, int64(19200), buckets[3].TotalAmount)
}

func TestGetInvoiceAging_EmptyTenantReturnsZeroBuckets(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	invoiceRepo.EXPECT().ListUnpaid(gomock.Any(), gomock.Any()).Return(nil, nil)

	buckets, err := NewGetInvoiceAgingUseCase(invoiceRepo, nil).Execute(context.Background(), uuid.New())

	require.NoError(t, err)
	require.Len(t, buckets, 4)
	for _, b := range buckets {
		assert.Zero(t, b.InvoiceCount)
		assert.Zero(t, b.TotalAmount)
	}
}

func TestGetInvoiceAging_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	invoiceRepo.EXPECT().ListUnpaid(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := NewGetInvoiceAgingUseCase(invoiceRepo, nil).Execute(context.Background(), uuid.New())

	assert.ErrorContains(t, err, "boom")
}
