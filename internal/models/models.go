package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	TTypeDebit  = "DR"
	TTypeCredit = "CR"
)

const (
	TypeExpense     = "expense"
	TypeProductSale = "product_sale"
	TypeServiceSale = "service_sale"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
}

type Product struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"not null"                 json:"name"`
	SKU       string  `gorm:"column:sku;not null"      json:"sku"`
	Stock     int     `gorm:"not null"                 json:"stock"`
	CostPrice float64 `gorm:"not null"                 json:"cost_price"`
	SellPrice float64 `gorm:"not null"                 json:"sell_price"`
}

type Service struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Description string  `gorm:"not null"                 json:"description"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Cost        float64 `gorm:"not null"                 json:"cost"`
}

// Transaction is a ledger row. Rows are only ever inserted.
type Transaction struct {
	ID      uint           `gorm:"primaryKey;autoIncrement"    json:"id"`
	Type    string         `gorm:"size:64;index"               json:"type"`
	TType   string         `gorm:"column:t_type;size:2;not null" json:"t_type"`
	Details datatypes.JSON `json:"details"`
	Amount  float64        `gorm:"not null"                    json:"amount"`
	Cost    float64        `gorm:"not null"                    json:"cost"`
	Notes   string         `gorm:"not null"                    json:"notes"`
	Date    time.Time      `gorm:"column:date;autoCreateTime;index" json:"date"`
}

func All() []any {
	return []any{&User{}, &Product{}, &Service{}, &Transaction{}}
}
