package services_test

import (
	"context"

	"github.com/google/uuid"

	"wadi/internal/models/db_models"
	"wadi/internal/repositories"
)

// Hand-written test doubles in the function-field style: each method is a
// function field, so a test sets only the behaviour it needs.

type mockAttractionRepo struct {
	listAll func(ctx context.Context) ([]db_models.Attraction, error)
	list    func(ctx context.Context, page, pageSize int) ([]db_models.Attraction, error)
	getByID func(ctx context.Context, id string) (*db_models.Attraction, error)
	create  func(ctx context.Context, attraction *db_models.Attraction) error
	update  func(ctx context.Context, attraction *db_models.Attraction) error
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockAttractionRepo) ListAll(ctx context.Context) ([]db_models.Attraction, error) {
	return m.listAll(ctx)
}
func (m *mockAttractionRepo) List(ctx context.Context, page, pageSize int) ([]db_models.Attraction, error) {
	return m.list(ctx, page, pageSize)
}
func (m *mockAttractionRepo) GetByID(ctx context.Context, id string) (*db_models.Attraction, error) {
	return m.getByID(ctx, id)
}
func (m *mockAttractionRepo) Create(ctx context.Context, attraction *db_models.Attraction) error {
	return m.create(ctx, attraction)
}
func (m *mockAttractionRepo) Update(ctx context.Context, attraction *db_models.Attraction) error {
	return m.update(ctx, attraction)
}
func (m *mockAttractionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repositories.AttractionRepository = (*mockAttractionRepo)(nil)

type mockLodgingRepo struct {
	listAll func(ctx context.Context) ([]db_models.Lodging, error)
	list    func(ctx context.Context, page, pageSize int) ([]db_models.Lodging, error)
	getByID func(ctx context.Context, id string) (*db_models.Lodging, error)
	create  func(ctx context.Context, lodging *db_models.Lodging) error
	update  func(ctx context.Context, lodging *db_models.Lodging) error
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockLodgingRepo) ListAll(ctx context.Context) ([]db_models.Lodging, error) {
	return m.listAll(ctx)
}
func (m *mockLodgingRepo) List(ctx context.Context, page, pageSize int) ([]db_models.Lodging, error) {
	return m.list(ctx, page, pageSize)
}
func (m *mockLodgingRepo) GetByID(ctx context.Context, id string) (*db_models.Lodging, error) {
	return m.getByID(ctx, id)
}
func (m *mockLodgingRepo) Create(ctx context.Context, lodging *db_models.Lodging) error {
	return m.create(ctx, lodging)
}
func (m *mockLodgingRepo) Update(ctx context.Context, lodging *db_models.Lodging) error {
	return m.update(ctx, lodging)
}
func (m *mockLodgingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repositories.LodgingRepository = (*mockLodgingRepo)(nil)

type mockProductRepo struct {
	listAll func(ctx context.Context) ([]db_models.Product, error)
	list    func(ctx context.Context, page, pageSize int) ([]db_models.Product, error)
	getByID func(ctx context.Context, id string) (*db_models.Product, error)
	create  func(ctx context.Context, product *db_models.Product) error
	update  func(ctx context.Context, product *db_models.Product) error
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockProductRepo) ListAll(ctx context.Context) ([]db_models.Product, error) {
	return m.listAll(ctx)
}
func (m *mockProductRepo) List(ctx context.Context, page, pageSize int) ([]db_models.Product, error) {
	return m.list(ctx, page, pageSize)
}
func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*db_models.Product, error) {
	return m.getByID(ctx, id)
}
func (m *mockProductRepo) Create(ctx context.Context, product *db_models.Product) error {
	return m.create(ctx, product)
}
func (m *mockProductRepo) Update(ctx context.Context, product *db_models.Product) error {
	return m.update(ctx, product)
}
func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repositories.ProductRepository = (*mockProductRepo)(nil)

// ---- fixture helpers --------------------------------------------------------

func attractionFixture(name, attractionType string, price float64) db_models.Attraction {
	a := db_models.Attraction{
		Name:           name,
		Description:    "About " + name,
		AttractionType: attractionType,
		TicketPrice:    price,
	}
	a.ID = uuid.New()
	return a
}

func lodgingFixture(name string, stars int) db_models.Lodging {
	l := db_models.Lodging{
		Name:        name,
		Description: "About " + name,
		Stars:       stars,
		PriceRange:  db_models.PriceRangeModerate,
	}
	l.ID = uuid.New()
	return l
}

func productFixture(name string, price float64) db_models.Product {
	p := db_models.Product{
		Name:        name,
		Description: "About " + name,
		Price:       price,
	}
	p.ID = uuid.New()
	return p
}

func attractionRepoWith(attractions ...db_models.Attraction) *mockAttractionRepo {
	return &mockAttractionRepo{
		listAll: func(_ context.Context) ([]db_models.Attraction, error) {
			return attractions, nil
		},
	}
}

func lodgingRepoWith(lodgings ...db_models.Lodging) *mockLodgingRepo {
	return &mockLodgingRepo{
		listAll: func(_ context.Context) ([]db_models.Lodging, error) {
			return lodgings, nil
		},
	}
}

func productRepoWith(products ...db_models.Product) *mockProductRepo {
	return &mockProductRepo{
		listAll: func(_ context.Context) ([]db_models.Product, error) {
			return products, nil
		},
	}
}
