package model

import "time"

const (
	ChangeAdd    = "ADD"
	ChangeRemove = "REMOVE"
)

// InventoryLogEntry is a row in the append-only inventory_log table.
type InventoryLogEntry struct {
	LogID           int64      `json:"Log_ID"`
	ProductID       int64      `json:"Product_ID"`
	LogDate         *time.Time `json:"Log_Date,omitempty"`
	ChangeType      string     `json:"Change_Type"`
	QuantityChanged int        `json:"Quantity_Changed"`
	Remarks         string     `json:"Remarks,omitempty"`
}
