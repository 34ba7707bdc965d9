package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	expenseController "ftms_backend/internals/features/expenses/controller"
	refService "ftms_backend/internals/features/reference/service"
)

// Staff portal: record expenses and follow up own claims.
func ExpenseUserRoutes(user fiber.Router, db *gorm.DB, store *refService.Store) {
	h := &expenseController.Handler{DB: db, Store: store}

	grp := user.Group("/expenses")
	grp.Get("/", h.ListExpenses)
	grp.Get("/:id", h.GetExpense)
	grp.Post("/", h.CreateExpense)

	rb := user.Group("/reimbursements")
	rb.Get("/", h.ListReimbursements)
	rb.Post("/:id/cancel", h.CancelReimbursement)
}

// Admin portal: full workflow including approval and payout.
func ExpenseAdminRoutes(admin fiber.Router, db *gorm.DB, store *refService.Store) {
	h := &expenseController.Handler{DB: db, Store: store}

	grp := admin.Group("/expenses")
	grp.Get("/", h.ListExpenses)
	grp.Get("/:id", h.GetExpense)
	grp.Post("/", h.CreateExpense)

	rb := admin.Group("/reimbursements")
	rb.Get("/", h.ListReimbursements)
	rb.Post("/:id/approve", h.ApproveReimbursement)
	rb.Post("/:id/reject", h.RejectReimbursement)
	rb.Post("/:id/cancel", h.CancelReimbursement)
	rb.Post("/:id/pay", h.PayReimbursement)
}
