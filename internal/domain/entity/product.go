package entity

import "github.com/shopspring/decimal"

// Product producto del catálogo de la API remota.
// Stock lo descuenta el servidor al registrar ventas; aquí es solo el último valor conocido.
type Product struct {
	ID            int64
	Name          string
	Category      string // productType en la API
	Color         string
	PurchasePrice decimal.Decimal // precio unitario de compra
	Price         decimal.Decimal // precio unitario de venta
	Stock         int
	Remark        string
}

// Ref referencia mínima a un producto dentro de ventas y compras.
type ProductRef struct {
	ID   int64
	Name string
}
