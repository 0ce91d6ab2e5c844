package transport

import (
	"encoding/json"
	"time"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ProductRequest struct {
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Stock     Number `json:"stock"`
	CostPrice Number `json:"cost_price"`
	SellPrice Number `json:"sell_price"`
}

type CreateServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Number `json:"price"`
	Cost        Number `json:"cost"`
}

// UpdateServiceRequest fields that are empty or unset keep the stored value.
type UpdateServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Number `json:"price"`
	Cost        Number `json:"cost"`
}

type SellRequest struct {
	ProductID    Number `json:"product_id"`
	Quantity     Number `json:"quantity"`
	SellingPrice Number `json:"selling_price"`
	CustomerName string `json:"customer_name"`
}

type ServeRequest struct {
	ServiceID    Number `json:"service_id"`
	SellingPrice Number `json:"selling_price"`
	CustomerName string `json:"customer_name"`
}

type AddStockRequest struct {
	ProductID Number `json:"product_id"`
	Quantity  Number `json:"quantity"`
	Notes     string `json:"notes"`
}

type CreateTransactionRequest struct {
	Type    string          `json:"type"`
	TType   string          `json:"t_type"`
	Details json.RawMessage `json:"details"`
	Amount  Number          `json:"amount"`
	Cost    Number          `json:"cost"`
	Notes   string          `json:"notes"`
}

type IDResponse struct {
	ID uint `json:"id"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Msg     string `json:"msg,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ProfitAndLoss struct {
	Revenue           float64 `json:"revenue"`
	Cost              float64 `json:"cost"`
	Profit            float64 `json:"profit"`
	TransactionsCount int64   `json:"transactionsCount"`
}

type BalanceEntry struct {
	ID      uint      `json:"id"`
	Date    time.Time `json:"date"`
	Type    string    `json:"type"`
	TType   string    `json:"t_type"`
	Details any       `json:"details"`
	Amount  float64   `json:"amount"`
	Cost    float64   `json:"cost"`
	Notes   string    `json:"notes"`
}

type BalanceSheet struct {
	TotalDr      float64        `json:"totalDr"`
	TotalCr      float64        `json:"totalCr"`
	NetBalance   float64        `json:"netBalance"`
	Transactions []BalanceEntry `json:"transactions"`
}

type ProductSearchResponse struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	Size     int   `json:"size"`
	Products any   `json:"products"`
}

// TransactionCSV is one row of the ledger export.
type TransactionCSV struct {
	ID      uint    `csv:"id"`
	Date    string  `csv:"date"`
	Type    string  `csv:"type"`
	TType   string  `csv:"t_type"`
	Amount  float64 `csv:"amount"`
	Cost    float64 `csv:"cost"`
	Notes   string  `csv:"notes"`
	Details string  `csv:"details"`
}
