// Package cart acumula líneas de venta o compra antes de enviarlas a la API remota.
//
// Un carrito es transitorio: nace vacío al iniciar un checkout y muere al enviarse,
// descartarse o cerrarse la sesión. Nunca se persiste. No es seguro para uso concurrente;
// quien lo guarde debe serializar las mutaciones.
package cart

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-pos/internal/domain"
)

// Kind tipo de transacción que acumula el carrito.
type Kind string

const (
	KindSale     Kind = "sale"
	KindPurchase Kind = "purchase"
)

// Valid indica si el tipo es conocido.
func (k Kind) Valid() bool { return k == KindSale || k == KindPurchase }

// MergePolicy decide el precio unitario cuando se vuelve a agregar un producto ya presente.
type MergePolicy string

const (
	// KeepFirstPrice conserva el precio de la primera línea y descarta el nuevo.
	KeepFirstPrice MergePolicy = "keep_first"
	// UseLatestPrice re-precia toda la línea con el último precio ingresado.
	UseLatestPrice MergePolicy = "use_latest"
)

// ParseMergePolicy convierte el valor de configuración. Vacío equivale a KeepFirstPrice.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch MergePolicy(s) {
	case "", KeepFirstPrice:
		return KeepFirstPrice, nil
	case UseLatestPrice:
		return UseLatestPrice, nil
	}
	return "", fmt.Errorf("política de fusión desconocida: %q", s)
}

// Errores de validación de líneas. Todos cumplen errors.Is(err, domain.ErrInvalidInput)
// excepto ErrInsufficientStock (domain.ErrInsufficientStock) y ErrCounterpartyLocked (domain.ErrConflict).
var (
	ErrMissingProduct     = domain.NewValidationError("productId", domain.ReasonRequired)
	ErrInvalidQuantity    = domain.NewValidationError("quantity", domain.ReasonMustBePositive)
	ErrInvalidPrice       = domain.NewValidationError("price", domain.ReasonMustNotBeNegative)
	ErrLineNotFound       = domain.NewValidationError("index", domain.ReasonLineNotFound).WithCause(domain.ErrNotFound)
	ErrInsufficientStock  = domain.NewValidationError("quantity", domain.ReasonInsufficientStock).WithCause(domain.ErrInsufficientStock)
	ErrCounterpartyLocked = domain.NewValidationError("counterparty", domain.ReasonCounterpartyLocked).WithCause(domain.ErrConflict)
)

// ProductRef lo que el carrito necesita saber de un producto.
// Stock solo se verifica en carritos de venta cuando TrackStock es true.
type ProductRef struct {
	ID         int64
	Name       string
	Stock      int
	TrackStock bool
}

// Line línea del carrito. A lo sumo una por producto.
type Line struct {
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// LineTotal cantidad × precio unitario.
func (l Line) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Counterparty cliente (venta) o proveedor (compra). Un proveedor es texto libre y lleva ID 0.
// ExistingDebt es la deuda del cliente al momento de elegirlo.
type Counterparty struct {
	ID           int64
	Name         string
	ExistingDebt decimal.Decimal
}

// IsZero indica que no hay contraparte elegida.
func (c Counterparty) IsZero() bool { return c.ID == 0 && c.Name == "" }

func (c Counterparty) same(o Counterparty) bool {
	if c.ID != 0 || o.ID != 0 {
		return c.ID == o.ID
	}
	return c.Name == o.Name
}

// Cart carrito de una sesión.
type Cart struct {
	kind         Kind
	policy       MergePolicy
	lines        []Line
	stock        map[int64]int
	counterparty Counterparty
}

// New crea un carrito vacío.
func New(kind Kind, policy MergePolicy) *Cart {
	if policy == "" {
		policy = KeepFirstPrice
	}
	return &Cart{kind: kind, policy: policy, stock: make(map[int64]int)}
}

// Kind tipo del carrito.
func (c *Cart) Kind() Kind { return c.kind }

// Policy política de fusión vigente.
func (c *Cart) Policy() MergePolicy { return c.policy }

// AddLine agrega quantity unidades de product a unitPrice. Si el producto ya está en el carrito
// suma la cantidad a su línea y aplica la política de fusión al precio. Ante error el carrito
// queda sin cambios.
func (c *Cart) AddLine(product ProductRef, quantity int, unitPrice decimal.Decimal) error {
	if product.ID == 0 {
		return ErrMissingProduct
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return ErrInvalidPrice
	}

	idx := c.indexOf(product.ID)
	newQty := quantity
	if idx >= 0 {
		if quantity > math.MaxInt-c.lines[idx].Quantity {
			return ErrInvalidQuantity
		}
		newQty += c.lines[idx].Quantity
	}

	if c.kind == KindSale {
		if product.TrackStock {
			c.stock[product.ID] = product.Stock
		}
		if stock, ok := c.stock[product.ID]; ok && newQty > stock {
			return ErrInsufficientStock
		}
	}

	if idx >= 0 {
		c.lines[idx].Quantity = newQty
		if c.policy == UseLatestPrice {
			c.lines[idx].UnitPrice = unitPrice
		}
		return nil
	}
	c.lines = append(c.lines, Line{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	})
	return nil
}

// Seed carga líneas existentes (edición de una compra) aplicando las mismas reglas que AddLine.
func (c *Cart) Seed(lines []Line) error {
	for _, l := range lines {
		ref := ProductRef{ID: l.ProductID, Name: l.ProductName}
		if err := c.AddLine(ref, l.Quantity, l.UnitPrice); err != nil {
			return err
		}
	}
	return nil
}

// RemoveLine quita la línea en la posición index. Si el carrito queda vacío la contraparte
// vuelve a ser editable.
func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrLineNotFound
	}
	delete(c.stock, c.lines[index].ProductID)
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// Total suma de los totales de línea, recalculada en cada lectura.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// TotalQty suma de cantidades.
func (c *Cart) TotalQty() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Lines copia de las líneas en orden de inserción.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len cantidad de líneas.
func (c *Cart) Len() int { return len(c.lines) }

// IsEmpty indica si no hay líneas.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Counterparty contraparte elegida (puede ser cero).
func (c *Cart) Counterparty() Counterparty { return c.counterparty }

// CounterpartyLocked la contraparte queda bloqueada mientras haya líneas.
func (c *Cart) CounterpartyLocked() bool { return len(c.lines) > 0 }

// SetCounterparty elige la contraparte. Con líneas en el carrito y una contraparte ya elegida
// solo se acepta la misma (para refrescar su deuda); otra devuelve ErrCounterpartyLocked.
func (c *Cart) SetCounterparty(cp Counterparty) error {
	if c.CounterpartyLocked() && !c.counterparty.IsZero() && !c.counterparty.same(cp) {
		return ErrCounterpartyLocked
	}
	c.counterparty = cp
	return nil
}

// RefreshDebt actualiza la deuda vigente de la contraparte elegida sin cambiarla.
func (c *Cart) RefreshDebt(debt decimal.Decimal) {
	c.counterparty.ExistingDebt = debt
}

func (c *Cart) indexOf(productID int64) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}
