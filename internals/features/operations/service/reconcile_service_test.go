package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	expenseModel "ftms_backend/internals/features/expenses/model"
	opsModel "ftms_backend/internals/features/operations/model"
	refModel "ftms_backend/internals/features/reference/model"
	refService "ftms_backend/internals/features/reference/service"
	revenueModel "ftms_backend/internals/features/revenues/model"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func trip(paymentMethod, fuel string) opsModel.BusTripCache {
	return opsModel.BusTripCache{
		TripPaymentMethod: paymentMethod,
		TripFuelExpense:   d(fuel),
		TripRevenue:       d("800.00"),
	}
}

func assignment(typ string) opsModel.AssignmentCache {
	return opsModel.AssignmentCache{AssignmentType: typ}
}

func TestCalculateReimbursementPercentage(t *testing.T) {
	// Percentage reimburses the flat fuel expense, despite the type name.
	split := CalculateReimbursement(
		trip(refModel.PaymentMethodReimbursement, "100.00"),
		assignment(opsModel.AssignmentTypePercentage),
	)
	assert.True(t, split.Total.Equal(d("100.00")), "total %s", split.Total)
	assert.True(t, split.DriverAmount.Equal(d("50.00")), "driver %s", split.DriverAmount)
	assert.True(t, split.ConductorAmount.Equal(d("50.00")), "conductor %s", split.ConductorAmount)
}

func TestCalculateReimbursementIndependentRounding(t *testing.T) {
	// Each half rounds to 2dp on its own; with an odd cent the two halves
	// together exceed the total by 0.01. Existing ledger data was produced
	// this way.
	split := CalculateReimbursement(
		trip(refModel.PaymentMethodReimbursement, "100.01"),
		assignment(opsModel.AssignmentTypePercentage),
	)
	assert.True(t, split.DriverAmount.Equal(d("50.01")), "driver %s", split.DriverAmount)
	assert.True(t, split.ConductorAmount.Equal(d("50.01")), "conductor %s", split.ConductorAmount)
	assert.True(t, split.Total.Equal(d("100.01")))
}

func TestCalculateReimbursementBoundary(t *testing.T) {
	// Boundary: company covers fuel directly, nothing to reimburse.
	split := CalculateReimbursement(
		trip(refModel.PaymentMethodReimbursement, "250.00"),
		assignment(opsModel.AssignmentTypeBoundary),
	)
	assert.True(t, split.Total.IsZero())
	assert.True(t, split.DriverAmount.IsZero())
	assert.True(t, split.ConductorAmount.IsZero())
}

func TestCalculateReimbursementCashTrip(t *testing.T) {
	// Cash trips never reimburse, regardless of assignment type.
	for _, typ := range []string{
		opsModel.AssignmentTypePercentage,
		opsModel.AssignmentTypeBoundary,
		opsModel.AssignmentTypeBusRental,
	} {
		split := CalculateReimbursement(
			trip(refModel.PaymentMethodCash, "100.00"),
			assignment(typ),
		)
		assert.True(t, split.Total.IsZero(), "type %s", typ)
	}
}

func TestCalculateReimbursementUnknownType(t *testing.T) {
	split := CalculateReimbursement(
		trip(refModel.PaymentMethodReimbursement, "100.00"),
		assignment("Charter"),
	)
	assert.True(t, split.Total.IsZero())
}

func TestCalculateReimbursementZeroFuel(t *testing.T) {
	split := CalculateReimbursement(
		trip(refModel.PaymentMethodReimbursement, "0"),
		assignment(opsModel.AssignmentTypePercentage),
	)
	assert.True(t, split.Total.IsZero())
}

/* ===================== Trip reconciliation ===================== */

type fakeRefLookup struct {
	categories map[string]*refModel.GlobalCategory
	methods    map[string]*refModel.GlobalPaymentMethod
	statuses   map[string]*refModel.GlobalPaymentStatus
	sources    map[string]*refModel.GlobalSource
}

func (f *fakeRefLookup) CategoryByName(name string) (*refModel.GlobalCategory, error) {
	if row, ok := f.categories[name]; ok {
		return row, nil
	}
	return nil, refService.ErrNotFound
}

func (f *fakeRefLookup) PaymentMethodByName(name string) (*refModel.GlobalPaymentMethod, error) {
	if row, ok := f.methods[name]; ok {
		return row, nil
	}
	return nil, refService.ErrNotFound
}

func (f *fakeRefLookup) PaymentStatusByName(name string) (*refModel.GlobalPaymentStatus, error) {
	if row, ok := f.statuses[name]; ok {
		return row, nil
	}
	return nil, refService.ErrNotFound
}

func (f *fakeRefLookup) SourceByName(name string) (*refModel.GlobalSource, error) {
	if row, ok := f.sources[name]; ok {
		return row, nil
	}
	return nil, refService.ErrNotFound
}

type fakeReconcileRepo struct {
	trips       map[uuid.UUID]*opsModel.BusTripCache
	assignments map[uuid.UUID]*opsModel.AssignmentCache
	revenues    []revenueModel.RevenueRecord
	expenses    []expenseModel.Expense
	fanOuts     [][]expenseModel.Reimbursement
}

func (f *fakeReconcileRepo) TripByID(id uuid.UUID) (*opsModel.BusTripCache, error) {
	if row, ok := f.trips[id]; ok {
		return row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReconcileRepo) AssignmentByID(id uuid.UUID) (*opsModel.AssignmentCache, error) {
	if row, ok := f.assignments[id]; ok {
		return row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReconcileRepo) TripRevenue(tripID, assignmentID, categoryID uuid.UUID) (*revenueModel.RevenueRecord, error) {
	for i := range f.revenues {
		r := &f.revenues[i]
		if r.RevenueBusTripID != nil && *r.RevenueBusTripID == tripID &&
			r.RevenueAssignmentID != nil && *r.RevenueAssignmentID == assignmentID &&
			r.RevenueCategoryID == categoryID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReconcileRepo) TripExpense(tripID, assignmentID uuid.UUID) (*expenseModel.Expense, error) {
	for i := range f.expenses {
		e := &f.expenses[i]
		if e.ExpenseBusTripID != nil && *e.ExpenseBusTripID == tripID &&
			e.ExpenseAssignmentID != nil && *e.ExpenseAssignmentID == assignmentID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReconcileRepo) SaveTripRevenue(record *revenueModel.RevenueRecord, trip *opsModel.BusTripCache, actorID uuid.UUID) error {
	record.RevenueID = uuid.New()
	f.revenues = append(f.revenues, *record)
	trip.IsRevenueRecorded = true
	return nil
}

func (f *fakeReconcileRepo) SaveTripExpense(exp *expenseModel.Expense, fanOut []expenseModel.Reimbursement, trip *opsModel.BusTripCache, actorID uuid.UUID) error {
	exp.ExpenseID = uuid.New()
	f.expenses = append(f.expenses, *exp)
	f.fanOuts = append(f.fanOuts, fanOut)
	trip.IsExpenseRecorded = true
	return nil
}

func strptr(s string) *string { return &s }

func seededLookup() *fakeRefLookup {
	category := func(name string) *refModel.GlobalCategory {
		return &refModel.GlobalCategory{CategoryID: uuid.New(), CategoryName: name}
	}
	method := func(name string) *refModel.GlobalPaymentMethod {
		return &refModel.GlobalPaymentMethod{PaymentMethodID: uuid.New(), PaymentMethodName: name}
	}
	return &fakeRefLookup{
		categories: map[string]*refModel.GlobalCategory{
			opsModel.AssignmentTypeBoundary:   category(opsModel.AssignmentTypeBoundary),
			opsModel.AssignmentTypePercentage: category(opsModel.AssignmentTypePercentage),
			opsModel.AssignmentTypeBusRental:  category(opsModel.AssignmentTypeBusRental),
			"Fuel":                            category("Fuel"),
		},
		methods: map[string]*refModel.GlobalPaymentMethod{
			refModel.PaymentMethodCash:          method(refModel.PaymentMethodCash),
			refModel.PaymentMethodReimbursement: method(refModel.PaymentMethodReimbursement),
		},
		statuses: map[string]*refModel.GlobalPaymentStatus{
			refModel.PaymentStatusPending: {PaymentStatusID: uuid.New(), PaymentStatusName: refModel.PaymentStatusPending},
		},
		sources: map[string]*refModel.GlobalSource{
			"Bus Operations": {SourceID: uuid.New(), SourceName: "Bus Operations"},
		},
	}
}

func newReconcilerFixture(lookup *fakeRefLookup) (*Reconciler, *fakeReconcileRepo, uuid.UUID) {
	a := &opsModel.AssignmentCache{
		AssignmentCacheID:             uuid.New(),
		AssignmentExternalID:          "ASG-1",
		AssignmentBusRoute:            "Terminal A - Terminal B",
		AssignmentType:                opsModel.AssignmentTypePercentage,
		AssignmentDriverExternalID:    strptr("EMP-1"),
		AssignmentConductorExternalID: strptr("EMP-2"),
	}
	tr := &opsModel.BusTripCache{
		BusTripCacheID:    uuid.New(),
		BusTripExternalID: "TRIP-1",
		AssignmentCacheID: a.AssignmentCacheID,
		BusTripDate:       time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		TripRevenue:       d("800.00"),
		TripFuelExpense:   d("100.00"),
		TripPaymentMethod: refModel.PaymentMethodReimbursement,
	}
	repo := &fakeReconcileRepo{
		trips:       map[uuid.UUID]*opsModel.BusTripCache{tr.BusTripCacheID: tr},
		assignments: map[uuid.UUID]*opsModel.AssignmentCache{a.AssignmentCacheID: a},
	}
	return &Reconciler{Repo: repo, Store: lookup}, repo, tr.BusTripCacheID
}

func TestCreateRevenueFromBusTripIdempotent(t *testing.T) {
	rec, repo, tripID := newReconcilerFixture(seededLookup())
	actor := uuid.New()

	first, created, err := rec.CreateRevenueFromBusTrip(tripID, actor)
	require.NoError(t, err)
	require.True(t, created)
	require.Len(t, repo.revenues, 1)
	assert.True(t, first.RevenueTotalAmount.Equal(d("800.00")))
	assert.True(t, first.RevenueOutstandingBalance.Equal(d("800.00")))
	assert.True(t, repo.trips[tripID].IsRevenueRecorded)

	// The second call returns the existing record instead of duplicating it.
	second, created, err := rec.CreateRevenueFromBusTrip(tripID, actor)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.RevenueID, second.RevenueID)
	assert.Len(t, repo.revenues, 1)
}

func TestCreateRevenueFromBusTripUnknownTrip(t *testing.T) {
	rec, _, _ := newReconcilerFixture(seededLookup())

	_, _, err := rec.CreateRevenueFromBusTrip(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestCreateRevenueFromBusTripMissingPendingStatus(t *testing.T) {
	lookup := seededLookup()
	delete(lookup.statuses, refModel.PaymentStatusPending)
	rec, repo, tripID := newReconcilerFixture(lookup)

	// A deployment without the Pending seed row fails hard, nothing saved.
	_, _, err := rec.CreateRevenueFromBusTrip(tripID, uuid.New())
	require.ErrorIs(t, err, ErrPendingStatusMissing)
	assert.Empty(t, repo.revenues)
}

func TestCreateExpenseFromBusTripIdempotent(t *testing.T) {
	rec, repo, tripID := newReconcilerFixture(seededLookup())
	actor := uuid.New()

	first, created, err := rec.CreateExpenseFromBusTrip(tripID, actor)
	require.NoError(t, err)
	require.True(t, created)
	require.Len(t, repo.expenses, 1)
	assert.True(t, first.ExpenseTotalAmount.Equal(d("100.00")))
	assert.True(t, repo.trips[tripID].IsExpenseRecorded)

	// Driver and conductor each get half the fuel expense.
	require.Len(t, repo.fanOuts, 1)
	require.Len(t, repo.fanOuts[0], 2)
	assert.True(t, repo.fanOuts[0][0].ReimbursementAmount.Equal(d("50.00")))
	assert.True(t, repo.fanOuts[0][1].ReimbursementAmount.Equal(d("50.00")))

	second, created, err := rec.CreateExpenseFromBusTrip(tripID, actor)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ExpenseID, second.ExpenseID)
	assert.Len(t, repo.expenses, 1)
}
