package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/receivables/internal/domain/entity"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
	"github.com/ledgerline/receivables/internal/integration/persistence/model"
)

func invoiceModel(tenantID uuid.UUID, clientID *uuid.UUID, number string, cents int64, status entity.InvoiceStatus, createdAt time.Time) *model.InvoiceModel {
	inv := entity.NewInvoice(tenantID, clientID, number, cents, "USD")
	inv.Status = status
	inv.CreatedAt = createdAt
	return model.InvoiceFromEntity(inv)
}

func TestInvoiceRepository_FindMatchCandidates(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	tenantID := uuid.New()

	inWindowSent := invoiceModel(tenantID, nil, "INV-1", 100, entity.InvoiceStatusSent, day.AddDate(0, 0, -3))
	inWindowUnpaid := invoiceModel(tenantID, nil, "INV-2", 100, entity.InvoiceStatusUnpaid, day.AddDate(0, 0, 3))
	outsideWindow := invoiceModel(tenantID, nil, "INV-3", 100, entity.InvoiceStatusUnpaid, day.AddDate(0, 0, -4))
	paid := invoiceModel(tenantID, nil, "INV-4", 100, entity.InvoiceStatusPaid, day)
	draft := invoiceModel(tenantID, nil, "INV-5", 100, entity.InvoiceStatusDraft, day)
	otherTenant := invoiceModel(uuid.New(), nil, "INV-6", 100, entity.InvoiceStatusUnpaid, day)
	insert(t, db, inWindowSent, inWindowUnpaid, outsideWindow, paid, draft, otherTenant)

	window := valueobject.DefaultMatchCriteria().DateWindow(day)
	invoices, err := repo.FindMatchCandidates(context.Background(), tenantID, window)

	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "INV-1", invoices[0].Number)
	assert.Equal(t, "INV-2", invoices[1].Number)
}

func TestInvoiceRepository_ListUnpaidPreloadsClient(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	tenantID := uuid.New()

	client := model.ClientFromEntity(&entity.Client{ID: uuid.New(), TenantID: tenantID, Email: "ap@acme.test", Name: "Acme"})
	withClient := invoiceModel(tenantID, &client.ID, "INV-1", 100, entity.InvoiceStatusUnpaid, day)
	withoutClient := invoiceModel(tenantID, nil, "INV-2", 200, entity.InvoiceStatusUnpaid, day.Add(time.Hour))
	sent := invoiceModel(tenantID, nil, "INV-3", 300, entity.InvoiceStatusSent, day)
	insert(t, db, client, withClient, withoutClient, sent)

	invoices, err := repo.ListUnpaid(context.Background(), tenantID)

	require.NoError(t, err)
	require.Len(t, invoices, 2)
	require.NotNil(t, invoices[0].Client)
	assert.Equal(t, "ap@acme.test", invoices[0].Client.Email)
	assert.Nil(t, invoices[1].Client)
}

func TestInvoiceRepository_StatusTransitions(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	inv := invoiceModel(tenantID, nil, "INV-1", 100, entity.InvoiceStatusUnpaid, day)
	insert(t, db, inv)

	first := day.AddDate(0, 0, 14)
	require.NoError(t, repo.MarkEscalated(ctx, tenantID, inv.ID, first))
	require.NoError(t, repo.MarkEscalated(ctx, tenantID, inv.ID, first.AddDate(0, 0, 1)))

	got, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusUnpaid, got.Status)
	require.NotNil(t, got.EscalatedAt)
	assert.True(t, got.EscalatedAt.Equal(first))

	paidAt := day.AddDate(0, 0, 20)
	require.NoError(t, repo.MarkPaid(ctx, tenantID, inv.ID, paidAt))

	got, err = repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, got.Status)
	require.NotNil(t, got.PaidAt)
	assert.True(t, got.PaidAt.Equal(paidAt))

	assert.ErrorIs(t, repo.MarkPaid(ctx, tenantID, uuid.New(), paidAt), domainerror.ErrInvoiceNotFound)
}

func TestInvoiceRepository_MutationsAreTenantScoped(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()
	owner := uuid.New()

	inv := invoiceModel(owner, nil, "INV-1", 100, entity.InvoiceStatusUnpaid, day)
	insert(t, db, inv)

	other := uuid.New()
	assert.ErrorIs(t, repo.MarkPaid(ctx, other, inv.ID, day), domainerror.ErrInvoiceNotFound)
	require.NoError(t, repo.MarkEscalated(ctx, other, inv.ID, day))

	got, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusUnpaid, got.Status)
	assert.Nil(t, got.PaidAt)
	assert.Nil(t, got.EscalatedAt)
}

func TestInvoiceRepository_GetByIDNotFound(t *testing.T) {
	repo := NewInvoiceRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerror.ErrInvoiceNotFound)
}

func TestInvoiceRepository_StatsAndTenants(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()
	tenantA, tenantB := uuid.New(), uuid.New()

	insert(t, db,
		invoiceModel(tenantA, nil, "A-1", 50000, entity.InvoiceStatusUnpaid, day),
		invoiceModel(tenantA, nil, "A-2", 1234, entity.InvoiceStatusPaid, day),
		invoiceModel(tenantB, nil, "B-1", 999, entity.InvoiceStatusPaid, day),
	)

	stats, err := repo.GetStats(ctx, tenantA)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, int64(51234), stats.TotalCents)

	empty, err := repo.GetStats(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, empty.Count)
	assert.Zero(t, empty.TotalCents)

	tenants, err := repo.ListTenantIDsWithUnpaid(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{tenantA}, tenants)
}
