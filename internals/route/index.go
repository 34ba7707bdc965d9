package routes

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"ftms_backend/internals/configs"
	"ftms_backend/internals/constants"
	attachService "ftms_backend/internals/features/attachments/service"
	hrService "ftms_backend/internals/features/hr/service"
	opsService "ftms_backend/internals/features/operations/service"
	refService "ftms_backend/internals/features/reference/service"
	"ftms_backend/internals/integrations/hrapi"
	"ftms_backend/internals/integrations/opsapi"
	middleware "ftms_backend/internals/middlewares"
	authMiddleware "ftms_backend/internals/middlewares/auth"

	accountRoute "ftms_backend/internals/features/accounting/chart_of_accounts/route"
	journalRoute "ftms_backend/internals/features/accounting/journal/route"
	attachRoute "ftms_backend/internals/features/attachments/route"
	auditRoute "ftms_backend/internals/features/audits/route"
	expenseRoute "ftms_backend/internals/features/expenses/route"
	hrRoute "ftms_backend/internals/features/hr/route"
	loanRoute "ftms_backend/internals/features/loans/route"
	opsRoute "ftms_backend/internals/features/operations/route"
	refRoute "ftms_backend/internals/features/reference/route"
	revenueRoute "ftms_backend/internals/features/revenues/route"
	userRoute "ftms_backend/internals/features/users/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	zlog := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// ===================== SHARED SERVICES =====================
	store := refService.NewStore(db)
	hrSyncer := hrService.NewSyncer(db, hrapi.NewClient(configs.HRAPIBaseURL, configs.HRAPIKey, zlog), zlog)
	opsSyncer := opsService.NewSyncer(db, opsapi.NewClient(configs.OpsAPIBaseURL, configs.OpsAPIKey, zlog), zlog)

	var storage attachService.Storage
	if configs.AttachmentBucket != "" {
		gcs, err := attachService.NewGCSStorage(context.Background(), configs.AttachmentBucket)
		if err != nil {
			log.Printf("[WARN] GCS init failed (%v), falling back to local storage", err)
			storage = attachService.NewLocalStorage()
		} else {
			log.Println("✅ Attachment storage: GCS bucket " + configs.AttachmentBucket)
			storage = gcs
		}
	} else {
		log.Println("✅ Attachment storage: local disk")
		storage = attachService.NewLocalStorage()
	}

	// ===================== GROUPS =====================

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	log.Println("[INFO] Setting up STAFF group...")
	user := app.Group("/api/u",
		authMiddleware.AuthJWT(),
		authMiddleware.RequireRole(constants.RoleAdmin, constants.RoleStaff),
	)

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(),
		authMiddleware.RequireRole(constants.RoleAdmin),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Auth routes...")
	loginGroup := app.Group("/api", middleware.LoginRateLimiter())
	userRoute.AuthPublicRoutes(loginGroup, db)
	userRoute.AuthUserRoutes(user, db)

	log.Println("[INFO] Mounting Reference routes...")
	refRoute.ReferenceUserRoutes(user, store)
	refRoute.ReferenceAdminRoutes(admin, store)

	log.Println("[INFO] Mounting Accounting routes...")
	accountRoute.ChartOfAccountsUserRoutes(user, db)
	accountRoute.ChartOfAccountsAdminRoutes(admin, db)
	journalRoute.JournalUserRoutes(user, db)
	journalRoute.JournalAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Revenue routes...")
	revenueRoute.RevenueUserRoutes(user, db, store)
	revenueRoute.RevenueAdminRoutes(admin, db, store)

	log.Println("[INFO] Mounting Expense routes...")
	expenseRoute.ExpenseUserRoutes(user, db, store)
	expenseRoute.ExpenseAdminRoutes(admin, db, store)

	log.Println("[INFO] Mounting Loan routes...")
	loanRoute.LoansAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Operations routes...")
	opsRoute.OperationsUserRoutes(user, db, store, opsSyncer)
	opsRoute.OperationsAdminRoutes(admin, db, store, opsSyncer)

	log.Println("[INFO] Mounting HR routes...")
	hrRoute.HRUserRoutes(user, hrSyncer)
	hrRoute.HRAdminRoutes(admin, hrSyncer)

	log.Println("[INFO] Mounting Webhook routes...")
	webhooks := public.Group("", middleware.WebhookRateLimiter())
	opsRoute.OperationsWebhookRoutes(webhooks, db, store, opsSyncer)
	hrRoute.HRWebhookRoutes(webhooks, hrSyncer)

	log.Println("[INFO] Mounting Attachment routes...")
	attachRoute.AttachmentUserRoutes(user, db, storage)
	attachRoute.AttachmentAdminRoutes(admin, db, storage)

	log.Println("[INFO] Mounting Audit routes...")
	auditRoute.AuditAdminRoutes(admin, db)

	DocsRoutes(app)
}
