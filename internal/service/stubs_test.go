package service

import (
	"context"
	"errors"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/model"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory store ───────────────────────────────────────────────────────────

// memDB backs all repository stubs in this package. Values are stored by
// value so a transaction snapshot is a plain map copy.
type memDB struct {
	recipes      map[uint]model.Recipe
	orders       map[uint]model.ProductionOrder
	batches      map[uint]model.Batch
	disps        map[uint]model.BatchMaterialDispensing
	materials    map[uint]model.RecipeMaterial
	rawMaterials map[uint]model.Material
	users        map[uint]model.User
	seq          uint

	failDispensingDelete bool
}

func newMemDB() *memDB {
	return &memDB{
		recipes:      make(map[uint]model.Recipe),
		orders:       make(map[uint]model.ProductionOrder),
		batches:      make(map[uint]model.Batch),
		disps:        make(map[uint]model.BatchMaterialDispensing),
		materials:    make(map[uint]model.RecipeMaterial),
		rawMaterials: make(map[uint]model.Material),
		users:        make(map[uint]model.User),
	}
}

func (d *memDB) nextID() uint {
	d.seq++
	return d.seq
}

type memSnapshot struct {
	recipes   map[uint]model.Recipe
	orders    map[uint]model.ProductionOrder
	batches   map[uint]model.Batch
	disps     map[uint]model.BatchMaterialDispensing
	materials map[uint]model.RecipeMaterial
	users     map[uint]model.User
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (d *memDB) snapshot() memSnapshot {
	return memSnapshot{
		recipes:   copyMap(d.recipes),
		orders:    copyMap(d.orders),
		batches:   copyMap(d.batches),
		disps:     copyMap(d.disps),
		materials: copyMap(d.materials),
		users:     copyMap(d.users),
	}
}

func (d *memDB) restore(s memSnapshot) {
	d.recipes = s.recipes
	d.orders = s.orders
	d.batches = s.batches
	d.disps = s.disps
	d.materials = s.materials
	d.users = s.users
}

// transact emulates the all-or-nothing repo transaction: state is rolled back
// when fn fails.
func (d *memDB) transact(fn func(tx *gorm.DB) error) error {
	snap := d.snapshot()
	if err := fn(nil); err != nil {
		d.restore(snap)
		return err
	}
	return nil
}

func (d *memDB) seedUser(username string) model.User {
	u := model.User{
		ID:       d.nextID(),
		Username: username,
		Name:     username,
		Role:     "operator",
		Active:   true,
	}
	d.users[u.ID] = u
	return u
}

// ── Stub repositories ─────────────────────────────────────────────────────────

type stubUserRepo struct{ db *memDB }

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range r.db.users {
		if existing.Username == u.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	u.ID = r.db.nextID()
	r.db.users[u.ID] = *u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := r.db.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.db.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context, includeInactive bool) ([]model.User, error) {
	var out []model.User
	for _, u := range r.db.users {
		if !includeInactive && !u.Active {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.db.users[u.ID] = *u
	return nil
}

func (r *stubUserRepo) Deactivate(_ context.Context, id uint) error {
	u, ok := r.db.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Active = false
	r.db.users[id] = u
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

type stubRecipeRepo struct{ db *memDB }

func (r *stubRecipeRepo) Create(_ context.Context, rec *model.Recipe) error {
	for _, existing := range r.db.recipes {
		if existing.Code == rec.Code ||
			(existing.BarcodeID != nil && rec.BarcodeID != nil && *existing.BarcodeID == *rec.BarcodeID) {
			return gorm.ErrDuplicatedKey
		}
	}
	rec.ID = r.db.nextID()
	r.db.recipes[rec.ID] = *rec
	return nil
}

func (r *stubRecipeRepo) FindByID(_ context.Context, id uint) (*model.Recipe, error) {
	rec, ok := r.db.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &rec, nil
}

func (r *stubRecipeRepo) FindByBarcode(_ context.Context, barcodeID string) (*model.Recipe, error) {
	for _, rec := range r.db.recipes {
		if rec.BarcodeID != nil && *rec.BarcodeID == barcodeID {
			return &rec, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRecipeRepo) List(_ context.Context) ([]model.Recipe, error) {
	var out []model.Recipe
	for _, rec := range r.db.recipes {
		out = append(out, rec)
	}
	return out, nil
}

func (r *stubRecipeRepo) Update(_ context.Context, rec *model.Recipe) error {
	for id, existing := range r.db.recipes {
		if id == rec.ID {
			continue
		}
		if existing.Code == rec.Code ||
			(existing.BarcodeID != nil && rec.BarcodeID != nil && *existing.BarcodeID == *rec.BarcodeID) {
			return gorm.ErrDuplicatedKey
		}
	}
	r.db.recipes[rec.ID] = *rec
	return nil
}

func (r *stubRecipeRepo) Transaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.transact(fn)
}

func (r *stubRecipeRepo) DeleteTx(_ *gorm.DB, id uint) error {
	delete(r.db.recipes, id)
	return nil
}

var _ repository.RecipeRepository = (*stubRecipeRepo)(nil)

type stubOrderRepo struct{ db *memDB }

func (r *stubOrderRepo) Create(_ context.Context, o *model.ProductionOrder) error {
	for _, existing := range r.db.orders {
		if existing.OrderNumber == o.OrderNumber ||
			(existing.BarcodeID != nil && o.BarcodeID != nil && *existing.BarcodeID == *o.BarcodeID) {
			return gorm.ErrDuplicatedKey
		}
	}
	o.ID = r.db.nextID()
	r.db.orders[o.ID] = *o
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uint) (*model.ProductionOrder, error) {
	o, ok := r.db.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &o, nil
}

func (r *stubOrderRepo) FindByBarcode(_ context.Context, barcodeID string) (*model.ProductionOrder, error) {
	for _, o := range r.db.orders {
		if o.BarcodeID != nil && *o.BarcodeID == barcodeID {
			return &o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubOrderRepo) List(_ context.Context) ([]model.ProductionOrder, error) {
	var out []model.ProductionOrder
	for _, o := range r.db.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *stubOrderRepo) Update(_ context.Context, o *model.ProductionOrder) error {
	r.db.orders[o.ID] = *o
	return nil
}

func (r *stubOrderRepo) Transaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.transact(fn)
}

func (r *stubOrderRepo) DeleteTx(_ *gorm.DB, id uint) error {
	delete(r.db.orders, id)
	return nil
}

func (r *stubOrderRepo) ListIDsByRecipeTx(_ *gorm.DB, recipeID uint) ([]uint, error) {
	var ids []uint
	for id, o := range r.db.orders {
		if o.RecipeID == recipeID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *stubOrderRepo) DeleteByRecipeTx(_ *gorm.DB, recipeID uint) error {
	for id, o := range r.db.orders {
		if o.RecipeID == recipeID {
			delete(r.db.orders, id)
		}
	}
	return nil
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

type stubBatchRepo struct{ db *memDB }

func (r *stubBatchRepo) Create(_ context.Context, b *model.Batch) error {
	b.ID = r.db.nextID()
	r.db.batches[b.ID] = *b
	return nil
}

func (r *stubBatchRepo) FindByID(_ context.Context, id uint) (*model.Batch, error) {
	b, ok := r.db.batches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (r *stubBatchRepo) List(_ context.Context) ([]model.Batch, error) {
	var out []model.Batch
	for _, b := range r.db.batches {
		out = append(out, b)
	}
	return out, nil
}

func (r *stubBatchRepo) ListIDsByOrderIDsTx(_ *gorm.DB, orderIDs []uint) ([]uint, error) {
	var ids []uint
	for id, b := range r.db.batches {
		for _, oid := range orderIDs {
			if b.OrderID == oid {
				ids = append(ids, id)
			}
		}
	}
	return ids, nil
}

func (r *stubBatchRepo) DeleteByOrderIDsTx(_ *gorm.DB, orderIDs []uint) error {
	for id, b := range r.db.batches {
		for _, oid := range orderIDs {
			if b.OrderID == oid {
				delete(r.db.batches, id)
			}
		}
	}
	return nil
}

var _ repository.BatchRepository = (*stubBatchRepo)(nil)

type stubDispensingRepo struct{ db *memDB }

func (r *stubDispensingRepo) Create(_ context.Context, d *model.BatchMaterialDispensing) error {
	d.ID = r.db.nextID()
	r.db.disps[d.ID] = *d
	return nil
}

func (r *stubDispensingRepo) List(_ context.Context) ([]model.BatchMaterialDispensing, error) {
	var out []model.BatchMaterialDispensing
	for _, d := range r.db.disps {
		out = append(out, d)
	}
	return out, nil
}

func (r *stubDispensingRepo) DeleteByBatchIDsTx(_ *gorm.DB, batchIDs []uint) error {
	if r.db.failDispensingDelete {
		return errors.New("simulated dispensing delete failure")
	}
	for id, d := range r.db.disps {
		for _, bid := range batchIDs {
			if d.BatchID == bid {
				delete(r.db.disps, id)
			}
		}
	}
	return nil
}

var _ repository.DispensingRepository = (*stubDispensingRepo)(nil)

type stubRecipeMaterialRepo struct{ db *memDB }

func (r *stubRecipeMaterialRepo) Create(_ context.Context, m *model.RecipeMaterial) error {
	if m.RecipeID != nil {
		for _, existing := range r.db.materials {
			if existing.RecipeID != nil && *existing.RecipeID == *m.RecipeID {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	m.ID = r.db.nextID()
	r.db.materials[m.ID] = *m
	return nil
}

func (r *stubRecipeMaterialRepo) FindByID(_ context.Context, id uint) (*model.RecipeMaterial, error) {
	m, ok := r.db.materials[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (r *stubRecipeMaterialRepo) FindByRecipeID(_ context.Context, recipeID uint) (*model.RecipeMaterial, error) {
	for _, m := range r.db.materials {
		if m.RecipeID != nil && *m.RecipeID == recipeID {
			return &m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRecipeMaterialRepo) ListByRecipeID(_ context.Context, recipeID uint) ([]model.RecipeMaterial, error) {
	var out []model.RecipeMaterial
	for _, m := range r.db.materials {
		if m.RecipeID != nil && *m.RecipeID == recipeID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubRecipeMaterialRepo) List(_ context.Context) ([]model.RecipeMaterial, error) {
	var out []model.RecipeMaterial
	for _, m := range r.db.materials {
		out = append(out, m)
	}
	return out, nil
}

func (r *stubRecipeMaterialRepo) Update(_ context.Context, m *model.RecipeMaterial) error {
	r.db.materials[m.ID] = *m
	return nil
}

func (r *stubRecipeMaterialRepo) Delete(_ context.Context, id uint) error {
	delete(r.db.materials, id)
	return nil
}

func (r *stubRecipeMaterialRepo) DetachRecipeTx(_ *gorm.DB, recipeID uint) error {
	for id, m := range r.db.materials {
		if m.RecipeID != nil && *m.RecipeID == recipeID {
			m.RecipeID = nil
			r.db.materials[id] = m
		}
	}
	return nil
}

var _ repository.RecipeMaterialRepository = (*stubRecipeMaterialRepo)(nil)

type stubMaterialRepo struct{ db *memDB }

func (r *stubMaterialRepo) Create(_ context.Context, m *model.Material) error {
	for _, existing := range r.db.rawMaterials {
		if existing.Code == m.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	m.ID = r.db.nextID()
	r.db.rawMaterials[m.ID] = *m
	return nil
}

func (r *stubMaterialRepo) FindByID(_ context.Context, id uint) (*model.Material, error) {
	m, ok := r.db.rawMaterials[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (r *stubMaterialRepo) List(_ context.Context) ([]model.Material, error) {
	var out []model.Material
	for _, m := range r.db.rawMaterials {
		out = append(out, m)
	}
	return out, nil
}

func (r *stubMaterialRepo) Update(_ context.Context, m *model.Material) error {
	r.db.rawMaterials[m.ID] = *m
	return nil
}

func (r *stubMaterialRepo) Delete(_ context.Context, id uint) error {
	delete(r.db.rawMaterials, id)
	return nil
}

var _ repository.MaterialRepository = (*stubMaterialRepo)(nil)

// ── Pointer helpers ───────────────────────────────────────────────────────────

func strPtr(s string) *string   { return &s }
func uintPtr(v uint) *uint      { return &v }
func intPtr(v int) *int         { return &v }
func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}
