package seeds

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ftms_backend/internals/constants"
	accountModel "ftms_backend/internals/features/accounting/chart_of_accounts/model"
	accountService "ftms_backend/internals/features/accounting/chart_of_accounts/service"
	refModel "ftms_backend/internals/features/reference/model"
	userModel "ftms_backend/internals/features/users/model"
)

// Run inserts the baseline rows every deployment needs. Every insert is
// ON CONFLICT DO NOTHING, so reruns are harmless.
func Run(db *gorm.DB) error {
	if err := seedPaymentStatuses(db); err != nil {
		return err
	}
	if err := seedPaymentMethods(db); err != nil {
		return err
	}
	if err := seedCategories(db); err != nil {
		return err
	}
	if err := seedSources(db); err != nil {
		return err
	}
	if err := seedSystemAccounts(db); err != nil {
		return err
	}
	if err := seedDefaultAdmin(db); err != nil {
		return err
	}
	log.Println("✅ Seed data in place.")
	return nil
}

// Trip→revenue creation hard-fails without the "Pending" row.
func seedPaymentStatuses(db *gorm.DB) error {
	for _, name := range []string{
		refModel.PaymentStatusPending,
		refModel.PaymentStatusPartial,
		refModel.PaymentStatusPaid,
	} {
		row := refModel.GlobalPaymentStatus{PaymentStatusName: name}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedPaymentMethods(db *gorm.DB) error {
	for _, name := range []string{
		refModel.PaymentMethodCash,
		refModel.PaymentMethodReimbursement,
		refModel.PaymentMethodBankTransfer,
		refModel.PaymentMethodCheck,
	} {
		row := refModel.GlobalPaymentMethod{PaymentMethodName: name}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// Categories match the Operations assignment types plus common expense
// buckets; trip reconciliation resolves them by name.
func seedCategories(db *gorm.DB) error {
	rows := []refModel.GlobalCategory{
		{CategoryName: "Boundary", CategoryApplicableTo: "revenue"},
		{CategoryName: "Percentage", CategoryApplicableTo: "revenue"},
		{CategoryName: "Bus Rental", CategoryApplicableTo: "revenue"},
		{CategoryName: "Loan Payment", CategoryApplicableTo: "revenue"},
		{CategoryName: "Other Income", CategoryApplicableTo: "revenue"},
		{CategoryName: "Fuel", CategoryApplicableTo: "expense"},
		{CategoryName: "Maintenance", CategoryApplicableTo: "expense"},
		{CategoryName: "Salaries", CategoryApplicableTo: "expense"},
		{CategoryName: "Office Supplies", CategoryApplicableTo: "expense"},
	}
	for _, row := range rows {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedSources(db *gorm.DB) error {
	for _, name := range []string{"Bus Operations", "Rental", "Loan Payment", "Other Income"} {
		row := refModel.GlobalSource{SourceName: name}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// System accounts cannot be edited or archived; normal_balance is derived
// from the account type, same as the create path.
func seedSystemAccounts(db *gorm.DB) error {
	accounts := []struct {
		code string
		name string
		typ  accountModel.AccountType
	}{
		{"1000", "Cash", accountModel.AccountTypeAsset},
		{"1100", "Accounts Receivable", accountModel.AccountTypeAsset},
		{"2000", "Accounts Payable", accountModel.AccountTypeLiability},
		{"3000", "Owner Equity", accountModel.AccountTypeEquity},
		{"4000", "Trip Revenue", accountModel.AccountTypeRevenue},
		{"4100", "Rental Revenue", accountModel.AccountTypeRevenue},
		{"5000", "Fuel Expense", accountModel.AccountTypeExpense},
		{"5100", "Reimbursement Expense", accountModel.AccountTypeExpense},
	}
	for _, a := range accounts {
		row := accountModel.ChartOfAccount{
			AccountCode:     a.code,
			AccountName:     a.name,
			AccountType:     a.typ,
			NormalBalance:   accountService.GetNormalBalance(a.typ),
			IsSystemAccount: true,
			IsActive:        true,
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedDefaultAdmin(db *gorm.DB) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ SEED_ADMIN_EMAIL/PASSWORD not set, skipping admin seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	row := userModel.User{
		UserName:     "Administrator",
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     constants.RoleAdmin,
		UserIsActive: true,
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}
