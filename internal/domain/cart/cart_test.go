package cart_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/internal/domain/cart"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var productX = cart.ProductRef{ID: 7, Name: "Coca Cola"}

func TestAddLine_FusionaCantidadesDelMismoProducto(t *testing.T) {
	c := cart.New(cart.KindSale, cart.KeepFirstPrice)

	require.NoError(t, c.AddLine(productX, 2, d("5.00")))
	assert.True(t, c.Total().Equal(d("10.00")))

	require.NoError(t, c.AddLine(productX, 3, d("5.00")))
	lines := c.Lines()
	require.Len(t, lines, 1, "un producto repetido no crea una segunda línea")
	assert.Equal(t, 5, lines[0].Quantity)
	assert.True(t, lines[0].LineTotal().Equal(d("25.00")))
	assert.True(t, c.Total().Equal(d("25.00")))
}

func TestAddLine_KeepFirstPriceDescartaPrecioNuevo(t *testing.T) {
	c := cart.New(cart.KindPurchase, cart.KeepFirstPrice)
	require.NoError(t, c.AddLine(productX, 1, d("4.00")))
	require.NoError(t, c.AddLine(productX, 1, d("9.00")))

	lines := c.Lines()
	assert.True(t, lines[0].UnitPrice.Equal(d("4.00")))
	assert.True(t, c.Total().Equal(d("8.00")))
}

func TestAddLine_UseLatestPriceReprecia(t *testing.T) {
	c := cart.New(cart.KindPurchase, cart.UseLatestPrice)
	require.NoError(t, c.AddLine(productX, 1, d("4.00")))
	require.NoError(t, c.AddLine(productX, 1, d("9.00")))

	lines := c.Lines()
	assert.True(t, lines[0].UnitPrice.Equal(d("9.00")))
	assert.True(t, c.Total().Equal(d("18.00")))
}

func TestAddLine_Validaciones(t *testing.T) {
	cases := []struct {
		name    string
		product cart.ProductRef
		qty     int
		price   string
		want    error
	}{
		{"sin producto", cart.ProductRef{}, 1, "1", cart.ErrMissingProduct},
		{"cantidad cero", productX, 0, "1", cart.ErrInvalidQuantity},
		{"cantidad negativa", productX, -2, "1", cart.ErrInvalidQuantity},
		{"precio negativo", productX, 1, "-0.01", cart.ErrInvalidPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := cart.New(cart.KindSale, cart.KeepFirstPrice)
			err := c.AddLine(tc.product, tc.qty, d(tc.price))
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.True(t, c.IsEmpty())
		})
	}
}

func TestAddLine_PrecioCeroPermitido(t *testing.T) {
	c := cart.New(cart.KindSale, cart.KeepFirstPrice)
	require.NoError(t, c.AddLine(productX, 1, decimal.Zero))
	assert.True(t, c.Total().IsZero())
}

func TestAddLine_StockInsuficienteEnVenta(t *testing.T) {
	c := cart.New(cart.KindSale, cart.KeepFirstPrice)
	p := cart.ProductRef{ID: 1, Name: "Arroz", Stock: 4, TrackStock: true}

	require.NoError(t, c.AddLine(p, 3, d("1")))
	err := c.AddLine(p, 2, d("1"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, c.Lines()[0].Quantity, "el carrito no cambia ante un error")
}

func TestAddLine_CompraIgnoraStock(t *testing.T) {
	c := cart.New(cart.KindPurchase, cart.KeepFirstPrice)
	p := cart.ProductRef{ID: 1, Name: "Arroz", Stock: 0, TrackStock: true}
	require.NoError(t, c.AddLine(p, 50, d("1")))
}

func TestAddLine_FusionQueDesbordaSeRechaza(t *testing.T) {
	c := cart.New(cart.KindPurchase, cart.KeepFirstPrice)
	require.NoError(t, c.AddLine(productX, math.MaxInt, d("3")))

	err := c.AddLine(productX, 1, d("3"))
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	assert.Equal(t, math.MaxInt, c.Lines()[0].Quantity, "el carrito no cambia ante un error")
	assert.True(t, c.Total().IsPositive())
}

func TestRefreshDebt_ConservaLaContraparte(t *testing.T) {
	c := cart.New(cart.KindSale, cart.KeepFirstPrice)
	require.NoError(t, c.SetCounterparty(cart.Counterparty{ID: 4, Name: "Sok", ExistingDebt: d("1")}))
	require.NoError(t, c.AddLine(productX, 1, d("5")))

	c.RefreshDebt(d("8.50"))
	cp := c.Counterparty()
	assert.Equal(t, int64(4), cp.ID)
	assert.True(t, cp.ExistingDebt.Equal(d("8.50")))
	assert.True(t, c.CounterpartyLocked())
}

func TestTotal_SumaDeLineasEnCadaLectura(t *testing.T) {
	c := cart.New(cart.KindSale, cart.KeepFirstPrice)
	require.NoError(t, c.AddLine(cart.ProductRef{ID: 1}, 2, d("1.25")))
	require.NoError(t, c.AddLine(cart.ProductRef{ID: 2}, 3, d("0.10")))
	require.NoError(t, c.AddLine(cart.ProductRef{ID: 3}, 1, d("7")))

	sum := decimal.Zero
	for _, l := range c.Lines() {
		sum = sum.Add(l.LineTotal())
	}
	assert.True(t, c.Total().Equal(sum))
	assert.True(t, c.Total().Equal(d("9.80")))
	assert.Equal(t, 6, c.TotalQty())

	require.NoError(t, c.RemoveLine(1))
	assert.True(t, c.Total().Equal(d("9.50")))
}

func TestRemoveLine_FueraDeRango(t *testing.T) {
	c := cart.New(cart.KindSale, cart.KeepFirstPrice)
	assert.ErrorIs(t, c.RemoveLine(0), cart.ErrLineNotFound)
	assert.ErrorIs(t, c.RemoveLine(-1), domain.ErrNotFound)
}

func TestCounterparty_BloqueoYDesbloqueo(t *testing.T) {
	c := cart.New(cart.KindSale, cart.KeepFirstPrice)
	alice := cart.Counterparty{ID: 1, Name: "Alice"}
	bob := cart.Counterparty{ID: 2, Name: "Bob"}

	require.NoError(t, c.SetCounterparty(alice))
	assert.False(t, c.CounterpartyLocked())

	require.NoError(t, c.AddLine(productX, 1, d("5.00")))
	assert.True(t, c.CounterpartyLocked())
	assert.ErrorIs(t, c.SetCounterparty(bob), cart.ErrCounterpartyLocked)
	assert.ErrorIs(t, c.SetCounterparty(bob), domain.ErrConflict)

	refreshed := alice
	refreshed.ExistingDebt = d("3")
	require.NoError(t, c.SetCounterparty(refreshed), "la misma contraparte se puede refrescar")

	require.NoError(t, c.RemoveLine(0))
	assert.False(t, c.CounterpartyLocked())
	assert.True(t, c.Total().Equal(decimal.Zero))
	require.NoError(t, c.SetCounterparty(bob))
	assert.Equal(t, "Bob", c.Counterparty().Name)
}

func TestCounterparty_ProveedorPorNombre(t *testing.T) {
	c := cart.New(cart.KindPurchase, cart.KeepFirstPrice)
	require.NoError(t, c.SetCounterparty(cart.Counterparty{Name: "Mayorista A"}))
	require.NoError(t, c.AddLine(productX, 1, d("1")))
	assert.ErrorIs(t, c.SetCounterparty(cart.Counterparty{Name: "Mayorista B"}), cart.ErrCounterpartyLocked)
	require.NoError(t, c.SetCounterparty(cart.Counterparty{Name: "Mayorista A"}))
}

func TestSeed_FusionaLineas(t *testing.T) {
	c := cart.New(cart.KindPurchase, cart.KeepFirstPrice)
	require.NoError(t, c.Seed([]cart.Line{
		{ProductID: 1, ProductName: "A", Quantity: 2, UnitPrice: d("3")},
		{ProductID: 1, ProductName: "A", Quantity: 1, UnitPrice: d("3")},
		{ProductID: 2, ProductName: "B", Quantity: 1, UnitPrice: d("10")},
	}))
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Total().Equal(d("19")))
}

func TestParseMergePolicy(t *testing.T) {
	p, err := cart.ParseMergePolicy("")
	require.NoError(t, err)
	assert.Equal(t, cart.KeepFirstPrice, p)

	p, err = cart.ParseMergePolicy("use_latest")
	require.NoError(t, err)
	assert.Equal(t, cart.UseLatestPrice, p)

	_, err = cart.ParseMergePolicy("average")
	assert.Error(t, err)
}
