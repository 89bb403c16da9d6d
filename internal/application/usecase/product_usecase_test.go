package usecase_test

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shopping-api/internal/application/dto"
	"github.com/jhoicas/shopping-api/internal/application/usecase"
	"github.com/jhoicas/shopping-api/internal/domain"
	"github.com/jhoicas/shopping-api/internal/domain/entity"
	"github.com/jhoicas/shopping-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del puerto ProductRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	seq        int64
	items      map[int64]*entity.Product
	categories map[int64]string
	// registra el último threshold recibido para verificar el default
	lastThreshold int
	failWith      error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		items:      map[int64]*entity.Product{},
		categories: map[int64]string{1: "Electronics", 2: "Books"},
	}
}

func (f *fakeProductRepo) clone(p *entity.Product) *entity.Product {
	cp := *p
	if p.CategoryID != nil {
		id := *p.CategoryID
		cp.CategoryID = &id
		if name, ok := f.categories[id]; ok {
			cp.CategoryName = &name
		}
	}
	return &cp
}

func (f *fakeProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var list []*entity.Product
	for _, p := range f.items {
		list = append(list, f.clone(p))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return f.clone(p), nil
}

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	if p.CategoryID != nil {
		if _, ok := f.categories[*p.CategoryID]; !ok {
			return 0, domain.ErrForeignKey
		}
	}
	f.seq++
	cp := *p
	cp.ID = f.seq
	f.items[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeProductRepo) UpdatePartial(ctx context.Context, id int64, patch entity.ProductPatch) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	if patch.IsEmpty() {
		return false, nil
	}
	p, ok := f.items[id]
	if !ok {
		return false, nil
	}
	if patch.CategoryID.Set && !patch.CategoryID.Null {
		if _, ok := f.categories[patch.CategoryID.Value]; !ok {
			return false, domain.ErrForeignKey
		}
	}
	if patch.Name.Set {
		p.Name = patch.Name.Value
	}
	if patch.Description.Set {
		p.Description = patch.Description.Value
	}
	if patch.Price.Set {
		p.Price = patch.Price.Value
	}
	if patch.StockQuantity.Set {
		p.StockQuantity = patch.StockQuantity.Value
	}
	if patch.CategoryID.Set {
		if patch.CategoryID.Null {
			p.CategoryID = nil
		} else {
			id := patch.CategoryID.Value
			p.CategoryID = &id
		}
	}
	return true, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	_, ok := f.items[id]
	delete(f.items, id)
	return ok, nil
}

func (f *fakeProductRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range f.items {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			list = append(list, f.clone(p))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (f *fakeProductRepo) ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	f.lastThreshold = threshold
	var list []*entity.Product
	for _, p := range f.items {
		if p.StockQuantity < threshold {
			list = append(list, f.clone(p))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].StockQuantity < list[j].StockQuantity })
	return list, nil
}

func (f *fakeProductRepo) AdjustStock(ctx context.Context, id int64, delta int) (bool, error) {
	p, ok := f.items[id]
	if !ok {
		return false, nil
	}
	if p.StockQuantity+delta < 0 {
		return false, domain.ErrCheckFailed
	}
	p.StockQuantity += delta
	return true, nil
}

func (f *fakeProductRepo) CheckStock(ctx context.Context, id int64, required int) (repository.StockCheck, error) {
	p, ok := f.items[id]
	if !ok {
		return repository.StockProductNotFound, nil
	}
	if p.StockQuantity >= required {
		return repository.StockSufficient, nil
	}
	return repository.StockInsufficient, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func intPtr(v int) *int { return &v }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func setField[T any](v T) entity.Field[T] {
	return entity.Field[T]{Set: true, Value: v}
}

func createLaptop(t *testing.T, uc *usecase.ProductUseCase) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Laptop",
		Description:   "portátil de trabajo",
		Price:         decPtr(50000),
		StockQuantity: intPtr(10),
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Para todo create válido, GetByID(id generado) devuelve los mismos campos escribibles.
func TestCreate_LuegoGetDevuelveMismosCampos(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	created := createLaptop(t, uc)

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Laptop", got.Name)
	assert.Equal(t, "portátil de trabajo", got.Description)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, 10, got.StockQuantity)
}

// La validación corre antes del write y trae detalle por campo.
func TestCreate_CamposRequeridosAusentes(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "name")
	assert.Contains(t, vErr.Fields, "price")
	assert.Contains(t, vErr.Fields, "stock_quantity")
	assert.Empty(t, repo.items, "no debe escribirse nada si la validación falla")
}

func TestCreate_PrecioNegativoRechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Laptop",
		Price:         decPtr(-1),
		StockQuantity: intPtr(1),
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "price")
}

// category_id inexistente: violación de foreign key del storage, no validación.
func TestCreate_CategoriaInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	cat := int64(999)
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Laptop",
		Price:         decPtr(100),
		StockQuantity: intPtr(1),
		CategoryID:    &cat,
	})
	assert.ErrorIs(t, err, domain.ErrForeignKey)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update parcial
// ──────────────────────────────────────────────────────────────────────────────

// update(id, {}) devuelve false y no escribe nada.
func TestUpdate_PatchVacioEsNoOp(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	created := createLaptop(t, uc)

	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.False(t, updated, "patch vacío es señal de no-op, no un update")

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.StockQuantity, got.StockQuantity)
	assert.Equal(t, created.Name, got.Name)
}

// Solo el campo presente cambia; el resto queda intacto.
func TestUpdate_SoloStockCambia(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	created := createLaptop(t, uc)

	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		StockQuantity: setField(7),
	})
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.StockQuantity)
	assert.Equal(t, "Laptop", got.Name, "name no debe cambiar")
	assert.True(t, got.Price.Equal(decimal.NewFromInt(50000)), "price no debe cambiar")
	assert.Equal(t, "portátil de trabajo", got.Description, "description no debe cambiar")
}

// Null explícito en category_id descategoriza; null en columna NOT NULL se rechaza.
func TestUpdate_NullExplicito(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	cat := int64(1)
	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Laptop", Price: decPtr(100), StockQuantity: intPtr(5), CategoryID: &cat,
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), out.ID, dto.UpdateProductRequest{
		CategoryID: entity.Field[int64]{Set: true, Null: true},
	})
	require.NoError(t, err)
	assert.True(t, updated)

	got, _ := uc.GetByID(context.Background(), out.ID)
	assert.Nil(t, got.CategoryID, "null explícito debe descategorizar")

	_, err = uc.Update(context.Background(), out.ID, dto.UpdateProductRequest{
		Name: entity.Field[string]{Set: true, Null: true},
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "name")
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	updated, err := uc.Update(context.Background(), 999999, dto.UpdateProductRequest{
		StockQuantity: setField(1),
	})
	require.NoError(t, err)
	assert.False(t, updated)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

// delete de un id inexistente devuelve false, no error; repetirlo también.
func TestDelete_Idempotente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	created := createLaptop(t, uc)

	deleted, err := uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "segundo delete del mismo id devuelve false")

	deleted, err = uc.Delete(context.Background(), 424242)
	require.NoError(t, err)
	assert.False(t, deleted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Low stock
// ──────────────────────────────────────────────────────────────────────────────

// Nunca devuelve productos con stock >= threshold y sale ordenado ascendente.
func TestListLowStock_FiltraYOrdena(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	for _, p := range []struct {
		name  string
		stock int
	}{{"A", 8}, {"B", 2}, {"C", 0}, {"D", 4}, {"E", 5}} {
		_, err := uc.Create(context.Background(), dto.CreateProductRequest{
			Name: p.name, Price: decPtr(10), StockQuantity: intPtr(p.stock),
		})
		require.NoError(t, err)
	}

	items, err := uc.ListLowStock(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, it := range items {
		assert.Less(t, it.StockQuantity, 5)
	}
	assert.Equal(t, []int{0, 2, 4}, []int{
		items[0].StockQuantity, items[1].StockQuantity, items[2].StockQuantity,
	}, "más agotados primero")
}

// threshold <= 0 usa el default (5).
func TestListLowStock_ThresholdPorDefecto(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	_, err := uc.ListLowStock(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, usecase.DefaultLowStockThreshold, repo.lastThreshold)
}

// Las fallas del storage suben tal cual al caller (el clasificador las mapea).
func TestList_PropagaErrorDeStorage(t *testing.T) {
	repo := newFakeProductRepo()
	repo.failWith = domain.NewStorageError("list products", assert.AnError)
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.List(context.Background())
	var sErr *domain.StorageError
	assert.ErrorAs(t, err, &sErr)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock
// ──────────────────────────────────────────────────────────────────────────────

// adjustStock(-3) seguido de adjustStock(+3) restaura el stock exacto.
func TestAdjustStock_RoundTrip(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	created := createLaptop(t, uc)

	ok, err := uc.AdjustStock(context.Background(), created.ID, -3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.AdjustStock(context.Background(), created.ID, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	got, _ := uc.GetByID(context.Background(), created.ID)
	assert.Equal(t, 10, got.StockQuantity, "el round-trip debe restaurar el stock original")
}

// CheckStock separa producto inexistente de stock insuficiente.
func TestCheckStock_TresVias(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	created := createLaptop(t, uc) // stock 10

	result, err := uc.CheckStock(context.Background(), created.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, repository.StockSufficient, result)

	result, err = uc.CheckStock(context.Background(), created.ID, 11)
	require.NoError(t, err)
	assert.Equal(t, repository.StockInsufficient, result)

	result, err = uc.CheckStock(context.Background(), 999999, 1)
	require.NoError(t, err)
	assert.Equal(t, repository.StockProductNotFound, result)
}
