package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	auditService "ftms_backend/internals/features/audits/service"
	expenseModel "ftms_backend/internals/features/expenses/model"
	opsModel "ftms_backend/internals/features/operations/model"
	refModel "ftms_backend/internals/features/reference/model"
	refService "ftms_backend/internals/features/reference/service"
	revenueModel "ftms_backend/internals/features/revenues/model"
)

var (
	ErrTripNotFound       = errors.New("bus trip not found")
	ErrAssignmentNotFound = errors.New("assignment not found")

	// The "Pending" payment status is seed data; a missing row is a
	// deployment fault, not a business outcome.
	ErrPendingStatusMissing = errors.New("payment status seed row Pending is missing")
)

var two = decimal.NewFromInt(2)

// ReimbursementSplit is the crew payout computed from one trip.
type ReimbursementSplit struct {
	DriverAmount    decimal.Decimal `json:"driver_amount"`
	ConductorAmount decimal.Decimal `json:"conductor_amount"`
	Total           decimal.Decimal `json:"total"`
}

// CalculateReimbursement computes the crew reimbursement for a trip.
// Reimbursement is paid only when the trip's payment method is
// "Reimbursement". For Percentage assignments the reimbursable amount is the
// trip's fuel expense; for Boundary the company covers fuel directly, so the
// amount is zero. The total splits 50/50 between driver and conductor with
// each half rounded to 2 decimal places independently; existing ledger data
// was produced this way, so the rounding order is load-bearing.
func CalculateReimbursement(trip opsModel.BusTripCache, assignment opsModel.AssignmentCache) ReimbursementSplit {
	zero := ReimbursementSplit{
		DriverAmount:    decimal.Zero,
		ConductorAmount: decimal.Zero,
		Total:           decimal.Zero,
	}
	if trip.TripPaymentMethod != refModel.PaymentMethodReimbursement {
		return zero
	}

	var total decimal.Decimal
	switch assignment.AssignmentType {
	case opsModel.AssignmentTypePercentage:
		total = trip.TripFuelExpense
	case opsModel.AssignmentTypeBoundary:
		return zero
	default:
		return zero
	}
	if !total.IsPositive() {
		return zero
	}

	return ReimbursementSplit{
		DriverAmount:    total.Div(two).Round(2),
		ConductorAmount: total.Div(two).Round(2),
		Total:           total,
	}
}

// referenceLookup is the slice of the reference store the reconciler needs.
type referenceLookup interface {
	CategoryByName(name string) (*refModel.GlobalCategory, error)
	PaymentMethodByName(name string) (*refModel.GlobalPaymentMethod, error)
	PaymentStatusByName(name string) (*refModel.GlobalPaymentStatus, error)
	SourceByName(name string) (*refModel.GlobalSource, error)
}

// reconcileRepo is the persistence surface behind the reconciler. Lookups
// return gorm.ErrRecordNotFound when no row matches.
type reconcileRepo interface {
	TripByID(id uuid.UUID) (*opsModel.BusTripCache, error)
	AssignmentByID(id uuid.UUID) (*opsModel.AssignmentCache, error)
	TripRevenue(tripID, assignmentID, categoryID uuid.UUID) (*revenueModel.RevenueRecord, error)
	TripExpense(tripID, assignmentID uuid.UUID) (*expenseModel.Expense, error)
	SaveTripRevenue(record *revenueModel.RevenueRecord, trip *opsModel.BusTripCache, actorID uuid.UUID) error
	SaveTripExpense(exp *expenseModel.Expense, fanOut []expenseModel.Reimbursement, trip *opsModel.BusTripCache, actorID uuid.UUID) error
}

// Reconciler derives financial records from cached trips.
type Reconciler struct {
	Repo  reconcileRepo
	Store referenceLookup
}

func NewReconciler(db *gorm.DB, store *refService.Store) *Reconciler {
	return &Reconciler{Repo: &gormReconcileRepo{DB: db}, Store: store}
}

// categoryForAssignment resolves the revenue category by the normalized
// assignment type, falling back to "Bus Rental" when unrecognized.
func (r *Reconciler) categoryForAssignment(assignmentType string) (*refModel.GlobalCategory, error) {
	name := strings.TrimSpace(assignmentType)
	switch {
	case strings.EqualFold(name, opsModel.AssignmentTypeBoundary):
		name = opsModel.AssignmentTypeBoundary
	case strings.EqualFold(name, opsModel.AssignmentTypePercentage):
		name = opsModel.AssignmentTypePercentage
	default:
		name = opsModel.AssignmentTypeBusRental
	}
	return r.Store.CategoryByName(name)
}

// CreateRevenueFromBusTrip derives a revenue record from a cached trip.
// Idempotent: an existing non-deleted revenue keyed by (bus_trip_id,
// assignment_id, category) is returned as-is; a partial unique index in the
// database closes the remaining check-then-act window. On success the trip's
// is_revenue_recorded flag flips locally; upstream state aligns via
// webhooks/refresh, never via a PATCH from here.
func (r *Reconciler) CreateRevenueFromBusTrip(tripID uuid.UUID, actorID uuid.UUID) (*revenueModel.RevenueRecord, bool, error) {
	trip, err := r.Repo.TripByID(tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrTripNotFound
		}
		return nil, false, err
	}
	assignment, err := r.Repo.AssignmentByID(trip.AssignmentCacheID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrAssignmentNotFound
		}
		return nil, false, err
	}

	category, err := r.categoryForAssignment(assignment.AssignmentType)
	if err != nil {
		return nil, false, fmt.Errorf("resolve revenue category: %w", err)
	}

	// Existing record wins; never duplicate.
	existing, err := r.Repo.TripRevenue(trip.BusTripCacheID, assignment.AssignmentCacheID, category.CategoryID)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, err
	}

	pending, err := r.Store.PaymentStatusByName(refModel.PaymentStatusPending)
	if err != nil {
		if errors.Is(err, refService.ErrNotFound) {
			return nil, false, ErrPendingStatusMissing
		}
		return nil, false, err
	}

	source, err := r.Store.SourceByName("Bus Operations")
	if err != nil {
		return nil, false, fmt.Errorf("resolve revenue source: %w", err)
	}
	method, err := r.Store.PaymentMethodByName(trip.TripPaymentMethod)
	if err != nil {
		// Trip compensation channels outside the reference table settle as cash.
		method, err = r.Store.PaymentMethodByName(refModel.PaymentMethodCash)
		if err != nil {
			return nil, false, fmt.Errorf("resolve payment method: %w", err)
		}
	}

	refType := revenueModel.ExternalRefBusTrip
	refID := trip.BusTripExternalID
	tripIDCopy := trip.BusTripCacheID
	assignmentIDCopy := assignment.AssignmentCacheID

	record := revenueModel.RevenueRecord{
		RevenueCategoryID:      category.CategoryID,
		RevenueSourceID:        source.SourceID,
		RevenuePaymentMethodID: method.PaymentMethodID,
		RevenuePaymentStatusID: pending.PaymentStatusID,

		RevenueDescription: fmt.Sprintf("Trip revenue %s — %s (%s)",
			trip.BusTripExternalID, assignment.AssignmentBusRoute, assignment.AssignmentType),
		RevenueTotalAmount:        trip.TripRevenue,
		RevenueCollectionDate:     trip.BusTripDate,
		RevenueOutstandingBalance: trip.TripRevenue,

		RevenueBusTripID:    &tripIDCopy,
		RevenueAssignmentID: &assignmentIDCopy,

		RevenueExternalRefType: &refType,
		RevenueExternalRefID:   &refID,

		RevenueCreatedBy: actorID,
	}

	if err := r.Repo.SaveTripRevenue(&record, trip, actorID); err != nil {
		return nil, false, err
	}
	return &record, true, nil
}

// CreateExpenseFromBusTrip derives the trip's fuel expense plus the crew
// reimbursement fan-out. Same idempotency pattern as the revenue path.
func (r *Reconciler) CreateExpenseFromBusTrip(tripID uuid.UUID, actorID uuid.UUID) (*expenseModel.Expense, bool, error) {
	trip, err := r.Repo.TripByID(tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrTripNotFound
		}
		return nil, false, err
	}
	assignment, err := r.Repo.AssignmentByID(trip.AssignmentCacheID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrAssignmentNotFound
		}
		return nil, false, err
	}

	existing, err := r.Repo.TripExpense(trip.BusTripCacheID, assignment.AssignmentCacheID)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, err
	}

	if !trip.TripFuelExpense.IsPositive() {
		return nil, false, fmt.Errorf("trip %s has no fuel expense to record", trip.BusTripExternalID)
	}

	category, err := r.Store.CategoryByName("Fuel")
	if err != nil {
		return nil, false, fmt.Errorf("resolve expense category: %w", err)
	}
	method, err := r.Store.PaymentMethodByName(trip.TripPaymentMethod)
	if err != nil {
		method, err = r.Store.PaymentMethodByName(refModel.PaymentMethodCash)
		if err != nil {
			return nil, false, fmt.Errorf("resolve payment method: %w", err)
		}
	}

	tripIDCopy := trip.BusTripCacheID
	assignmentIDCopy := assignment.AssignmentCacheID

	exp := expenseModel.Expense{
		ExpenseCategoryID:      category.CategoryID,
		ExpensePaymentMethodID: method.PaymentMethodID,
		ExpenseDescription: fmt.Sprintf("Fuel expense for trip %s — %s",
			trip.BusTripExternalID, assignment.AssignmentBusRoute),
		ExpenseTotalAmount:  trip.TripFuelExpense,
		ExpenseDate:         trip.BusTripDate,
		ExpenseBusTripID:    &tripIDCopy,
		ExpenseAssignmentID: &assignmentIDCopy,
		ExpenseCreatedBy:    actorID,
	}

	split := CalculateReimbursement(*trip, *assignment)
	var fanOut []expenseModel.Reimbursement
	if split.Total.IsPositive() {
		crew := []struct {
			externalID *string
			role       string
			amount     decimal.Decimal
		}{
			{assignment.AssignmentDriverExternalID, "Driver", split.DriverAmount},
			{assignment.AssignmentConductorExternalID, "Conductor", split.ConductorAmount},
		}
		for _, member := range crew {
			if member.externalID == nil {
				continue
			}
			fanOut = append(fanOut, expenseModel.Reimbursement{
				ReimbursementEmployeeExternalID: *member.externalID,
				ReimbursementEmployeeName:       member.role + " " + *member.externalID,
				ReimbursementAmount:             member.amount,
				ReimbursementStatus:             expenseModel.ReimbursementStatusPending,
			})
		}
	}

	if err := r.Repo.SaveTripExpense(&exp, fanOut, trip, actorID); err != nil {
		return nil, false, err
	}
	return &exp, true, nil
}

// gormReconcileRepo is the production repo over GORM. Each Save runs in one
// transaction with the trip flag flip and the audit row.
type gormReconcileRepo struct {
	DB *gorm.DB
}

func (g *gormReconcileRepo) TripByID(id uuid.UUID) (*opsModel.BusTripCache, error) {
	var trip opsModel.BusTripCache
	if err := g.DB.First(&trip, "bus_trip_cache_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (g *gormReconcileRepo) AssignmentByID(id uuid.UUID) (*opsModel.AssignmentCache, error) {
	var assignment opsModel.AssignmentCache
	if err := g.DB.First(&assignment, "assignment_cache_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (g *gormReconcileRepo) TripRevenue(tripID, assignmentID, categoryID uuid.UUID) (*revenueModel.RevenueRecord, error) {
	var existing revenueModel.RevenueRecord
	err := g.DB.Where("revenue_bus_trip_id = ? AND revenue_assignment_id = ? AND revenue_category_id = ?",
		tripID, assignmentID, categoryID).
		First(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (g *gormReconcileRepo) TripExpense(tripID, assignmentID uuid.UUID) (*expenseModel.Expense, error) {
	var existing expenseModel.Expense
	err := g.DB.Where("expense_bus_trip_id = ? AND expense_assignment_id = ?",
		tripID, assignmentID).
		First(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (g *gormReconcileRepo) SaveTripRevenue(record *revenueModel.RevenueRecord, trip *opsModel.BusTripCache, actorID uuid.UUID) error {
	return g.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		if err := tx.Model(trip).Update("bus_trip_is_revenue_recorded", true).Error; err != nil {
			return err
		}
		return auditService.Record(tx, "CREATE", "revenue_record", record.RevenueID, actorID,
			"derived revenue from bus trip "+trip.BusTripExternalID, nil)
	})
}

func (g *gormReconcileRepo) SaveTripExpense(exp *expenseModel.Expense, fanOut []expenseModel.Reimbursement, trip *opsModel.BusTripCache, actorID uuid.UUID) error {
	return g.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(exp).Error; err != nil {
			return err
		}
		for i := range fanOut {
			fanOut[i].ReimbursementExpenseID = exp.ExpenseID
			if err := tx.Create(&fanOut[i]).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(trip).Update("bus_trip_is_expense_recorded", true).Error; err != nil {
			return err
		}
		return auditService.Record(tx, "CREATE", "expense", exp.ExpenseID, actorID,
			"derived fuel expense from bus trip "+trip.BusTripExternalID, nil)
	})
}
