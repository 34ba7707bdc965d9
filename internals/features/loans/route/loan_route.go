package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	loanController "ftms_backend/internals/features/loans/controller"
)

func LoansAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &loanController.Handler{DB: db}

	grp := admin.Group("/loans")
	grp.Get("/", h.ListLoans)
	grp.Get("/:id", h.GetLoan)
	grp.Post("/", h.CreateLoan)
	grp.Post("/:id/payments", h.CreateLoanPayment)
}
