package models

import (
	"bytes"
	"encoding/json"

	"gorm.io/datatypes"
)

// Details is the decoded form of Transaction.Details. The concrete type is
// chosen by Transaction.Type.
type Details interface {
	Kind() string
}

// StockDetails is written when stock is received, either on product
// creation (Quantity) or through a restock (QuantityAdded).
type StockDetails struct {
	ProductID     uint   `json:"product_id"`
	ProductName   string `json:"product_name,omitempty"`
	Quantity      int    `json:"quantity,omitempty"`
	QuantityAdded int    `json:"quantity_added,omitempty"`
}

type ProductSaleDetails struct {
	ProductID    uint    `json:"product_id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	SellingPrice float64 `json:"selling_price"`
	CustomerName string  `json:"customer_name,omitempty"`
}

type ServiceSaleDetails struct {
	ServiceID    uint   `json:"service_id"`
	ServiceName  string `json:"service_name"`
	CustomerName string `json:"customer_name,omitempty"`
}

// RawDetails holds details of unknown shape.
type RawDetails map[string]any

func (StockDetails) Kind() string       { return TypeExpense }
func (ProductSaleDetails) Kind() string { return TypeProductSale }
func (ServiceSaleDetails) Kind() string { return TypeServiceSale }
func (RawDetails) Kind() string         { return "raw" }

func EncodeDetails(d Details) (datatypes.JSON, error) {
	if d == nil {
		return datatypes.JSON("{}"), nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// DecodeDetails never fails: anything that is not a JSON object decodes to
// an empty RawDetails, and objects that do not fit the typed shape for
// txType are returned as RawDetails.
func DecodeDetails(txType string, raw []byte) Details {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return RawDetails{}
	}

	var m RawDetails
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return RawDetails{}
	}

	switch txType {
	case TypeExpense:
		if _, ok := m["product_id"]; ok {
			var d StockDetails
			if decodeStrict(raw, &d) {
				return d
			}
		}
	case TypeProductSale:
		var d ProductSaleDetails
		if decodeStrict(raw, &d) {
			return d
		}
	case TypeServiceSale:
		var d ServiceSaleDetails
		if decodeStrict(raw, &d) {
			return d
		}
	}
	return m
}

func decodeStrict(raw []byte, dst any) bool {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(dst) == nil
}
