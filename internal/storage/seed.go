package storage

import (
	"time"

	"github.com/neonfinance/neon/internal/model"
	"github.com/neonfinance/neon/internal/money"
)

// Seed data returned for collections that have never been saved.
// Transactions and budgets have no seed: they start empty.

// SeedCategories returns the default category taxonomy. cat_salary is the
// reserved income category.
func SeedCategories() []model.Category {
	return []model.Category{
		{
			ID:    "cat_food",
			Name:  "Food",
			Color: "#ef4444",
			SubCategories: []model.SubCategory{
				{ID: "sub_bf", Name: "Breakfast"},
				{ID: "sub_lunch", Name: "Lunch"},
				{ID: "sub_dinner", Name: "Dinner"},
				{ID: "sub_snack", Name: "Snack"},
			},
		},
		{
			ID:    "cat_leisure",
			Name:  "Leisure",
			Color: "#e879f9",
			SubCategories: []model.SubCategory{
				{ID: "sub_ent", Name: "Entertainment"},
				{ID: "sub_sub", Name: "Subscriptions"},
				{ID: "sub_travel", Name: "Travel"},
			},
		},
		{
			ID:    "cat_personal",
			Name:  "Personal",
			Color: "#f472b6",
		},
		{
			ID:    "cat_comm",
			Name:  "Communication",
			Color: "#60a5fa",
			SubCategories: []model.SubCategory{
				{ID: "sub_internet", Name: "Internet"},
				{ID: "sub_phone", Name: "Mobile"},
			},
		},
		{
			ID:    "cat_invest",
			Name:  "Professional Development",
			Color: "#34d399",
			SubCategories: []model.SubCategory{
				{ID: "sub_course", Name: "Courses"},
				{ID: "sub_books", Name: "Books"},
			},
		},
		{
			ID:    "cat_transport",
			Name:  "Transport",
			Color: "#fbbf24",
			SubCategories: []model.SubCategory{
				{ID: "sub_fuel", Name: "Fuel"},
				{ID: "sub_uber", Name: "Rideshare"},
			},
		},
		{
			ID:    "cat_edu",
			Name:  "Education",
			Color: "#818cf8",
		},
		{
			ID:    "cat_housing",
			Name:  "Housing",
			Color: "#a78bfa",
			SubCategories: []model.SubCategory{
				{ID: "sub_rent", Name: "Rent"},
				{ID: "sub_utils", Name: "Utilities"},
			},
		},
		{
			ID:    model.IncomeCategoryID,
			Name:  "Salary",
			Color: "#22d3ee",
		},
	}
}

// SeedAccounts returns the default bank accounts.
func SeedAccounts() []model.Account {
	return []model.Account{
		{ID: "acc_1", Name: "Main Account", BankName: "Banco do Brasil", Type: model.AccountTypeChecking, Balance: money.MustParse("5200.00"), LogoColor: "#facc15"},
		{ID: "acc_2", Name: "Emergency Fund", BankName: "Inter", Type: model.AccountTypeSavings, Balance: money.MustParse("12000.00"), LogoColor: "#ff7a00"},
		{ID: "acc_3", Name: "Brokerage", BankName: "Rico", Type: model.AccountTypeInvestment, Balance: money.MustParse("25000.00"), LogoColor: "#ea1d2c"},
		{ID: "acc_4", Name: "Cash Wallet", BankName: "Cash", Type: model.AccountTypeWallet, Balance: money.MustParse("150.00"), LogoColor: "#10b981"},
	}
}

// SeedGoals returns the default savings goals.
func SeedGoals() []model.Goal {
	return []model.Goal{
		{
			ID:            "goal_1",
			Name:          "Japan Trip",
			TargetAmount:  money.MustParse("20000"),
			CurrentAmount: money.MustParse("5500"),
			Deadline:      model.NewDate(2025, time.December, 1),
			Icon:          "plane",
		},
		{
			ID:            "goal_2",
			Name:          "New Car",
			TargetAmount:  money.MustParse("80000"),
			CurrentAmount: money.MustParse("15000"),
			Deadline:      model.NewDate(2026, time.June, 1),
			Icon:          "car",
		},
	}
}
