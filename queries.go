package main

import (
	"bukukas/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const transactionsPerPage = 15

// txFilters are the optional equality filters on transaction lists.
type txFilters struct {
	GroupID *uint
	Type    *models.TransactionType
}

// pageMeta mirrors the pagination block the SPA expects.
type pageMeta struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}

// txStats is the aggregate block served by the dashboard and statistics
// endpoints. Balance is always income minus expense.
type txStats struct {
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpense     decimal.Decimal `json:"total_expense"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int64           `json:"transaction_count"`
}

// scopedTransactions applies the ownership scope (mandatory for plain
// users) and the optional filters, newest first.
func scopedTransactions(scope *uint, f txFilters) *gorm.DB {
	q := db.Model(&models.Transaction{})
	if scope != nil {
		q = q.Where("user_id = ?", *scope)
	}
	if f.GroupID != nil {
		q = q.Where("transaction_group_id = ?", *f.GroupID)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	return q
}

// listTransactions runs in one of two mutually exclusive modes: a flat
// capped list (limit != nil, no meta) or a paginated list with meta.
func listTransactions(scope *uint, f txFilters, limit *int, page int) ([]models.Transaction, *pageMeta, error) {
	items := []models.Transaction{}
	base := scopedTransactions(scope, f).Session(&gorm.Session{})
	q := base.
		Preload("User").Preload("Creator").Preload("TransactionGroup").
		Order("created_at DESC, id DESC")

	if limit != nil {
		if err := q.Limit(*limit).Find(&items).Error; err != nil {
			return nil, nil, err
		}
		return items, nil, nil
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, nil, err
	}
	if page < 1 {
		page = 1
	}
	lastPage := int((total + transactionsPerPage - 1) / transactionsPerPage)
	if lastPage < 1 {
		lastPage = 1
	}
	offset := (page - 1) * transactionsPerPage
	if err := q.Offset(offset).Limit(transactionsPerPage).Find(&items).Error; err != nil {
		return nil, nil, err
	}
	meta := &pageMeta{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     transactionsPerPage,
		Total:       total,
	}
	return items, meta, nil
}

// transactionStats computes the totals within the same ownership scope
// as listTransactions. Written as portable SQL so it runs on Postgres
// and on the SQLite test database alike.
func transactionStats(scope *uint) (txStats, error) {
	var stats txStats
	q := scopedTransactions(scope, txFilters{})
	err := q.Select(
		"COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income, " +
			"COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expense, " +
			"COUNT(*) AS transaction_count").
		Scan(&stats).Error
	if err != nil {
		return txStats{}, err
	}
	stats.Balance = stats.TotalIncome.Sub(stats.TotalExpense)
	return stats, nil
}

var defaultGroups = []models.TransactionGroup{
	{Name: "Gaji", Type: models.TypeIncome},
	{Name: "Freelance", Type: models.TypeIncome},
	{Name: "Makanan", Type: models.TypeExpense, Category: strPtr(models.ExpenseCategoryOperational)},
	{Name: "Transportasi", Type: models.TypeExpense, Category: strPtr(models.ExpenseCategoryOperational)},
}

func strPtr(s string) *string { return &s }

// groupOptions lists a user's groups, seeding the defaults the first time
// the user has none. The insert ignores conflicts on the
// (user_id, name, type) unique index, so two concurrent first reads
// cannot double-seed and a failed seed is simply retried on the next read.
func groupOptions(userID uint, t *models.TransactionType) ([]models.TransactionGroup, error) {
	var total int64
	if err := db.Model(&models.TransactionGroup{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, err
	}
	if total == 0 {
		seed := make([]models.TransactionGroup, len(defaultGroups))
		copy(seed, defaultGroups)
		for i := range seed {
			seed[i].UserID = userID
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			return nil, err
		}
	}
	groups := []models.TransactionGroup{}
	q := db.Where("user_id = ?", userID)
	if t != nil {
		q = q.Where("type = ?", *t)
	}
	if err := q.Order("id").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}
