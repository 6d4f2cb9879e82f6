// Package checkout orquesta el ciclo de vida de un carrito: inicio, líneas, contraparte,
// vista previa de la liquidación y envío idempotente a la API remota.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/internal/domain/cart"
	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
	"github.com/jhoicas/ventas-pos/internal/domain/settlement"
	"github.com/jhoicas/ventas-pos/pkg/format"
	"github.com/jhoicas/ventas-pos/pkg/logger"
)

// Deps dependencias del caso de uso. Now y Location son opcionales.
type Deps struct {
	Products  repository.ProductRepository
	Customers repository.CustomerRepository
	Sales     repository.SaleRepository
	Purchases repository.PurchaseRepository
	Ledger    repository.SubmissionRepository
	Carts     CartStore
	Policy    cart.MergePolicy
	IdleTTL   time.Duration
	Location  *time.Location
	Log       *logger.Logger
	Now       func() time.Time
}

// CheckoutUseCase casos de uso del carrito.
type CheckoutUseCase struct {
	products  repository.ProductRepository
	customers repository.CustomerRepository
	sales     repository.SaleRepository
	purchases repository.PurchaseRepository
	ledger    repository.SubmissionRepository
	carts     CartStore
	policy    cart.MergePolicy
	idleTTL   time.Duration
	loc       *time.Location
	log       *logger.Logger
	now       func() time.Time
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(d Deps) *CheckoutUseCase {
	uc := &CheckoutUseCase{
		products:  d.Products,
		customers: d.Customers,
		sales:     d.Sales,
		purchases: d.Purchases,
		ledger:    d.Ledger,
		carts:     d.Carts,
		policy:    d.Policy,
		idleTTL:   d.IdleTTL,
		loc:       d.Location,
		log:       d.Log,
		now:       d.Now,
	}
	if uc.policy == "" {
		uc.policy = cart.KeepFirstPrice
	}
	if uc.loc == nil {
		uc.loc = time.UTC
	}
	if uc.log == nil {
		uc.log = logger.Nop()
	}
	uc.log = uc.log.Component("checkout")
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc
}

// Start abre un carrito vacío de tipo kind para la sesión.
func (uc *CheckoutUseCase) Start(ctx context.Context, sessionID string, kind cart.Kind) (*dto.CartResponse, error) {
	if !kind.Valid() {
		return nil, domain.NewValidationError("kind", domain.ReasonInvalidFormat)
	}
	sc := uc.newStored(sessionID, cart.New(kind, uc.policy))
	uc.carts.Put(sc)
	uc.log.Debug().Str("cart", sc.ID).Str("kind", string(kind)).Msg("carrito iniciado")
	return uc.view(sc), nil
}

// StartPurchaseEdit abre un carrito de compra precargado con una compra existente.
// Al enviarlo se actualiza esa compra en lugar de crear otra.
func (uc *CheckoutUseCase) StartPurchaseEdit(ctx context.Context, sessionID string, purchaseID int64) (*dto.CartResponse, error) {
	if purchaseID <= 0 {
		return nil, domain.NewValidationError("purchaseId", domain.ReasonRequired)
	}
	p, err := uc.purchases.GetByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	c := cart.New(cart.KindPurchase, uc.policy)
	lines := make([]cart.Line, 0, len(p.Items))
	for _, it := range p.Items {
		lines = append(lines, cart.Line{
			ProductID:   it.Product.ID,
			ProductName: it.Product.Name,
			Quantity:    it.Quantity,
			UnitPrice:   it.Price,
		})
	}
	if err := c.SetCounterparty(cart.Counterparty{Name: p.Supplier}); err != nil {
		return nil, err
	}
	if err := c.Seed(lines); err != nil {
		return nil, fmt.Errorf("compra %d: %w", purchaseID, err)
	}
	sc := uc.newStored(sessionID, c)
	sc.PurchaseID = p.ID
	sc.CreatedAt = p.CreatedAt
	sc.Remark = p.Remark
	uc.carts.Put(sc)
	return uc.view(sc), nil
}

// Get vista actual del carrito.
func (uc *CheckoutUseCase) Get(ctx context.Context, sessionID, cartID string) (*dto.CartResponse, error) {
	sc, err := uc.lookup(sessionID, cartID)
	if err != nil {
		return nil, err
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return uc.view(sc), nil
}

// Discard descarta el carrito sin enviar nada.
func (uc *CheckoutUseCase) Discard(ctx context.Context, sessionID, cartID string) error {
	if _, err := uc.lookup(sessionID, cartID); err != nil {
		return err
	}
	uc.carts.Delete(cartID)
	return nil
}

// DiscardSession descarta todos los carritos de la sesión (logout).
func (uc *CheckoutUseCase) DiscardSession(sessionID string) int {
	return uc.carts.DeleteBySession(sessionID)
}

// AddLine agrega un producto. Sin precio explícito se usa el precio de venta (ventas)
// o el de compra (compras) del producto.
func (uc *CheckoutUseCase) AddLine(ctx context.Context, sessionID, cartID string, in dto.AddLineRequest) (*dto.CartResponse, error) {
	if in.ProductID <= 0 {
		return nil, cart.ErrMissingProduct
	}
	if in.Quantity <= 0 {
		return nil, cart.ErrInvalidQuantity
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, cart.ErrInvalidPrice
	}
	sc, err := uc.lookup(sessionID, cartID)
	if err != nil {
		return nil, err
	}
	p, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	kind := sc.Cart.Kind()
	price := p.Price
	if kind == cart.KindPurchase {
		price = p.PurchasePrice
	}
	if in.Price != nil {
		price = *in.Price
	}
	ref := cart.ProductRef{ID: p.ID, Name: p.Name, Stock: p.Stock, TrackStock: kind == cart.KindSale}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if err := sc.Cart.AddLine(ref, in.Quantity, price); err != nil {
		return nil, err
	}
	return uc.view(sc), nil
}

// RemoveLine quita la línea index.
func (uc *CheckoutUseCase) RemoveLine(ctx context.Context, sessionID, cartID string, index int) (*dto.CartResponse, error) {
	sc, err := uc.lookup(sessionID, cartID)
	if err != nil {
		return nil, err
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if err := sc.Cart.RemoveLine(index); err != nil {
		return nil, err
	}
	return uc.view(sc), nil
}

// SetCounterparty elige cliente (venta, por id) o proveedor (compra, texto libre).
func (uc *CheckoutUseCase) SetCounterparty(ctx context.Context, sessionID, cartID string, in dto.CounterpartyRequest) (*dto.CartResponse, error) {
	sc, err := uc.lookup(sessionID, cartID)
	if err != nil {
		return nil, err
	}

	var cp cart.Counterparty
	switch sc.Cart.Kind() {
	case cart.KindSale:
		if in.CustomerID <= 0 {
			return nil, domain.NewValidationError("customerId", domain.ReasonRequired)
		}
		c, err := uc.customers.GetByID(ctx, in.CustomerID)
		if err != nil {
			return nil, err
		}
		cp = cart.Counterparty{ID: c.ID, Name: c.Name, ExistingDebt: c.TotalDebt}
	default:
		name := strings.TrimSpace(in.Supplier)
		if name == "" {
			return nil, domain.NewValidationError("supplier", domain.ReasonRequired)
		}
		cp = cart.Counterparty{Name: name}
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if err := sc.Cart.SetCounterparty(cp); err != nil {
		return nil, err
	}
	return uc.view(sc), nil
}

// Preview liquida el carrito para paid sin enviar nada. Usa la deuda del cliente
// tomada al elegirlo.
func (uc *CheckoutUseCase) Preview(ctx context.Context, sessionID, cartID string, paid decimal.Decimal) (*dto.SettlementResponse, error) {
	sc, err := uc.lookup(sessionID, cartID)
	if err != nil {
		return nil, err
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()

	check := checkFor(sc.Cart, paid)
	res := settlement.Settle(check.Total, paid)
	v := settlement.Validate(check)
	return &dto.SettlementResponse{
		TotalAmount:  res.TotalAmount,
		PaidAmount:   res.PaidAmount,
		DebtDelta:    res.DebtDelta,
		ExistingDebt: check.ExistingDebt,
		Valid:        v.OK(),
		Violations:   v.Violations,
	}, nil
}

// Submit envía el carrito a la API remota.
//
// key identifica el envío; vacío usa el id del carrito. Una clave ya completada devuelve el
// resultado guardado sin volver a enviar; una clave en curso devuelve domain.ErrSubmissionPending.
// Si la validación o la API remota fallan la clave se libera y el carrito queda intacto.
func (uc *CheckoutUseCase) Submit(ctx context.Context, sessionID, cartID string, in dto.SubmitRequest, key string) (*dto.SubmitResponse, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		key = cartID
	}
	var createdAt time.Time
	if in.CreatedAt != "" {
		t, err := format.ParseDateTimeInput(in.CreatedAt, uc.loc)
		if err != nil {
			return nil, domain.NewValidationError("createdAt", domain.ReasonInvalidFormat)
		}
		createdAt = t
	}

	sc, err := uc.lookup(sessionID, cartID)
	if err != nil {
		// el carrito ya no existe: puede ser un reintento de un envío completado
		if sub, ferr := uc.ledger.FindByKey(ctx, key); ferr == nil && sub.Status == entity.SubmissionCompleted {
			return replay(sub), nil
		}
		return nil, err
	}
	kind := sc.Cart.Kind()

	existing, reserved, err := uc.ledger.Reserve(ctx, key, string(kind))
	if err != nil {
		return nil, err
	}
	if !reserved {
		if existing.Status == entity.SubmissionCompleted {
			return replay(existing), nil
		}
		return nil, domain.ErrSubmissionPending
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	var out *dto.SubmitResponse
	if sc.submitted {
		// otro envío con distinta clave ganó la carrera
		err = fmt.Errorf("carrito %s: %w", cartID, domain.ErrNotFound)
	} else if kind == cart.KindSale {
		out, err = uc.submitSale(ctx, sc, in, key)
	} else {
		out, err = uc.submitPurchase(ctx, sc, in, key, createdAt)
	}
	if err != nil {
		if rerr := uc.ledger.Release(ctx, key); rerr != nil {
			uc.log.Error().Err(rerr).Str("key", key).Msg("no se pudo liberar la clave de idempotencia")
		}
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			uc.log.Error().Err(err).Str("cart", sc.ID).Str("kind", string(kind)).Msg("envío fallido")
		}
		return nil, err
	}

	now := uc.now()
	sub := &entity.Submission{
		Key:        key,
		Kind:       string(kind),
		Status:     entity.SubmissionCompleted,
		ResultID:   out.ID,
		TotalPrice: out.TotalPrice,
		PaidAmount: out.PaidAmount,
		Debt:       out.Debt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.ledger.Complete(ctx, sub); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo registrar el envío completado")
	}
	sc.submitted = true
	uc.carts.Delete(sc.ID)
	uc.log.Info().Str("kind", string(kind)).Int64("id", out.ID).Str("key", key).Msg("carrito enviado")
	return out, nil
}

func (uc *CheckoutUseCase) submitSale(ctx context.Context, sc *StoredCart, in dto.SubmitRequest, key string) (*dto.SubmitResponse, error) {
	c := sc.Cart
	check := checkFor(c, in.PaidAmount)
	res := settlement.Validate(check)
	if !onlyLiability(res) {
		return nil, res.Err()
	}

	// La deuda pudo cambiar desde que se eligió al cliente.
	cp := c.Counterparty()
	fresh, err := uc.customers.GetByID(ctx, cp.ID)
	if err != nil {
		return nil, err
	}
	c.RefreshDebt(fresh.TotalDebt)
	check.ExistingDebt = fresh.TotalDebt
	if err := settlement.Validate(check).Err(); err != nil {
		return nil, err
	}

	lines := c.Lines()
	draft := entity.SaleDraft{
		CustomerID: cp.ID,
		Items:      make([]entity.SaleDraftItem, 0, len(lines)),
		PaidAmount: in.PaidAmount,
		Remark:     strings.TrimSpace(in.Remark),
	}
	for _, l := range lines {
		draft.Items = append(draft.Items, entity.SaleDraftItem{ProductID: l.ProductID, Qty: l.Quantity, Price: l.UnitPrice})
	}
	sale, err := uc.sales.Create(ctx, draft, key)
	if err != nil {
		return nil, err
	}
	return &dto.SubmitResponse{
		Kind:           string(cart.KindSale),
		ID:             sale.ID,
		TotalPrice:     sale.TotalPrice,
		PaidAmount:     sale.PaidAmount,
		Debt:           sale.Debt,
		IdempotencyKey: key,
	}, nil
}

func (uc *CheckoutUseCase) submitPurchase(ctx context.Context, sc *StoredCart, in dto.SubmitRequest, key string, createdAt time.Time) (*dto.SubmitResponse, error) {
	c := sc.Cart
	if err := settlement.Validate(checkFor(c, decimal.Zero)).Err(); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		createdAt = sc.CreatedAt
	}
	if createdAt.IsZero() {
		createdAt = uc.now().In(uc.loc)
	}
	remark := strings.TrimSpace(in.Remark)
	if remark == "" {
		remark = sc.Remark
	}

	lines := c.Lines()
	p := &entity.Purchase{
		ID:         sc.PurchaseID,
		Supplier:   c.Counterparty().Name,
		Items:      make([]entity.PurchaseItem, 0, len(lines)),
		TotalPrice: c.Total(),
		Remark:     remark,
		CreatedAt:  createdAt,
	}
	for _, l := range lines {
		p.Items = append(p.Items, entity.PurchaseItem{
			Product:   entity.ProductRef{ID: l.ProductID, Name: l.ProductName},
			Quantity:  l.Quantity,
			Price:     l.UnitPrice,
			LineTotal: l.LineTotal(),
		})
	}

	var saved *entity.Purchase
	var err error
	if sc.PurchaseID != 0 {
		saved, err = uc.purchases.Update(ctx, p, key)
	} else {
		saved, err = uc.purchases.Create(ctx, p, key)
	}
	if err != nil {
		return nil, err
	}
	return &dto.SubmitResponse{
		Kind:           string(cart.KindPurchase),
		ID:             saved.ID,
		TotalPrice:     saved.TotalPrice,
		PaidAmount:     decimal.Zero,
		Debt:           decimal.Zero,
		IdempotencyKey: key,
		Updated:        sc.PurchaseID != 0,
	}, nil
}

// SessionSweeper cierra las sesiones vencidas junto con sus carritos.
type SessionSweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// RunSweeper elimina periódicamente los carritos inactivos y, si sessions no es nil,
// las sesiones vencidas, hasta que ctx se cancele.
func (uc *CheckoutUseCase) RunSweeper(ctx context.Context, interval time.Duration, sessions SessionSweeper) {
	if interval <= 0 || (uc.idleTTL <= 0 && sessions == nil) {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			uc.sweep(ctx, sessions)
		}
	}
}

func (uc *CheckoutUseCase) sweep(ctx context.Context, sessions SessionSweeper) {
	if sessions != nil {
		n, err := sessions.SweepExpired(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Msg("no se pudieron limpiar las sesiones vencidas")
		} else if n > 0 {
			uc.log.Info().Int("sessions", n).Msg("sesiones vencidas cerradas")
		}
	}
	if n := uc.SweepIdle(); n > 0 {
		uc.log.Info().Int("carts", n).Msg("carritos inactivos descartados")
	}
}

// SweepIdle elimina los carritos sin actividad durante el TTL configurado.
func (uc *CheckoutUseCase) SweepIdle() int {
	if uc.idleTTL <= 0 {
		return 0
	}
	return uc.carts.DeleteIdle(uc.now().Add(-uc.idleTTL))
}

func (uc *CheckoutUseCase) newStored(sessionID string, c *cart.Cart) *StoredCart {
	now := uc.now()
	sc := &StoredCart{ID: uuid.NewString(), SessionID: sessionID, Cart: c, StartedAt: now}
	sc.Touch(now)
	return sc
}

// lookup busca el carrito de la sesión. Un carrito ajeno o vencido se informa como inexistente.
func (uc *CheckoutUseCase) lookup(sessionID, cartID string) (*StoredCart, error) {
	sc, ok := uc.carts.Get(cartID)
	if !ok || sc.SessionID != sessionID {
		return nil, fmt.Errorf("carrito %s: %w", cartID, domain.ErrNotFound)
	}
	now := uc.now()
	if uc.idleTTL > 0 && now.Sub(sc.TouchedAt()) > uc.idleTTL {
		uc.carts.Delete(cartID)
		return nil, fmt.Errorf("carrito %s vencido: %w", cartID, domain.ErrNotFound)
	}
	sc.Touch(now)
	return sc, nil
}

func (uc *CheckoutUseCase) view(sc *StoredCart) *dto.CartResponse {
	c := sc.Cart
	lines := c.Lines()
	out := &dto.CartResponse{
		ID:                 sc.ID,
		Kind:               string(c.Kind()),
		MergePolicy:        string(c.Policy()),
		Lines:              make([]dto.CartLineResponse, 0, len(lines)),
		Total:              c.Total(),
		TotalQty:           c.TotalQty(),
		CounterpartyLocked: c.CounterpartyLocked(),
		PurchaseID:         sc.PurchaseID,
		StartedAt:          sc.StartedAt,
	}
	for i, l := range lines {
		out.Lines = append(out.Lines, dto.CartLineResponse{
			Index:       i,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal(),
		})
	}
	if cp := c.Counterparty(); !cp.IsZero() {
		out.Counterparty = &dto.CounterpartyResponse{ID: cp.ID, Name: cp.Name, ExistingDebt: cp.ExistingDebt}
	}
	return out
}

func checkFor(c *cart.Cart, paid decimal.Decimal) settlement.Check {
	cp := c.Counterparty()
	return settlement.Check{
		LineCount:       c.Len(),
		HasCounterparty: !cp.IsZero(),
		Total:           c.Total(),
		Paid:            paid,
		ExistingDebt:    cp.ExistingDebt,
		SkipPaid:        c.Kind() == cart.KindPurchase,
	}
}

// onlyLiability indica que no hay violaciones o que la única es el tope del monto pagado,
// que depende de la deuda vigente.
func onlyLiability(res domain.ValidationResult) bool {
	for _, v := range res.Violations {
		if v.Reason != domain.ReasonPaidExceedsLiability {
			return false
		}
	}
	return true
}

func replay(sub *entity.Submission) *dto.SubmitResponse {
	return &dto.SubmitResponse{
		Kind:           sub.Kind,
		ID:             sub.ResultID,
		TotalPrice:     sub.TotalPrice,
		PaidAmount:     sub.PaidAmount,
		Debt:           sub.Debt,
		IdempotencyKey: sub.Key,
		Replayed:       true,
	}
}
