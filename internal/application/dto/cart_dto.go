package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-pos/internal/domain"
)

// StartCartRequest tipo de carrito a iniciar: sale | purchase.
type StartCartRequest struct {
	Kind string `json:"kind"`
}

// AddLineRequest producto y cantidad. Sin price se usa el precio del producto
// (venta: price, compra: purchasePrice).
type AddLineRequest struct {
	ProductID int64            `json:"productId"`
	Quantity  int              `json:"quantity"`
	Price     *decimal.Decimal `json:"price"`
}

// CounterpartyRequest cliente (venta) o proveedor en texto libre (compra).
type CounterpartyRequest struct {
	CustomerID int64  `json:"customerId"`
	Supplier   string `json:"supplier"`
}

// SubmitRequest datos del envío. CreatedAt (YYYY-MM-DDTHH:MM) solo aplica a compras.
type SubmitRequest struct {
	PaidAmount decimal.Decimal `json:"paidAmount"`
	Remark     string          `json:"remark"`
	CreatedAt  string          `json:"createdAt"`
}

// CartLineResponse línea del carrito con su posición.
type CartLineResponse struct {
	Index       int             `json:"index"`
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// CounterpartyResponse contraparte elegida.
type CounterpartyResponse struct {
	ID           int64           `json:"id,omitempty"`
	Name         string          `json:"name"`
	ExistingDebt decimal.Decimal `json:"existingDebt"`
}

// CartResponse vista del carrito.
type CartResponse struct {
	ID                 string                `json:"id"`
	Kind               string                `json:"kind"`
	MergePolicy        string                `json:"mergePolicy"`
	Lines              []CartLineResponse    `json:"lines"`
	Total              decimal.Decimal       `json:"total"`
	TotalQty           int                   `json:"totalQty"`
	Counterparty       *CounterpartyResponse `json:"counterparty,omitempty"`
	CounterpartyLocked bool                  `json:"counterpartyLocked"`
	PurchaseID         int64                 `json:"purchaseId,omitempty"`
	StartedAt          time.Time             `json:"startedAt"`
}

// SettlementResponse vista previa de la deuda y validación del envío.
type SettlementResponse struct {
	TotalAmount  decimal.Decimal    `json:"totalAmount"`
	PaidAmount   decimal.Decimal    `json:"paidAmount"`
	DebtDelta    decimal.Decimal    `json:"debtDelta"`
	ExistingDebt decimal.Decimal    `json:"existingDebt"`
	Valid        bool               `json:"valid"`
	Violations   []domain.Violation `json:"violations,omitempty"`
}

// SubmitResponse resultado autoritativo devuelto por la API remota.
// Replayed indica que la clave ya estaba completada y no se volvió a enviar.
type SubmitResponse struct {
	Kind           string          `json:"kind"`
	ID             int64           `json:"id"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	Debt           decimal.Decimal `json:"debt"`
	IdempotencyKey string          `json:"idempotencyKey"`
	Replayed       bool            `json:"replayed"`
	Updated        bool            `json:"updated,omitempty"`
	Message        string          `json:"message,omitempty"`
}
