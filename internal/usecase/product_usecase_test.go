package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/repository"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
)

func newTestProductUseCase(t *testing.T) (*ProductUseCase, *memProductRepo) {
	t.Helper()

	userRepo := newMemUserRepo()
	productRepo := newMemProductRepo()

	for _, u := range []*entity.User{
		{ID: "farmer-1", Name: "Ravi", UserType: entity.UserTypeFarmer},
		{ID: "buyer-1", Name: "Meera", UserType: entity.UserTypeBuyer},
	} {
		require.NoError(t, userRepo.Create(context.Background(), u))
	}

	return NewProductUseCase(productRepo, userRepo), productRepo
}

func TestCreateProduct(t *testing.T) {
	uc, _ := newTestProductUseCase(t)

	product, err := uc.CreateProduct(context.Background(), "farmer-1", CreateProductInput{
		Name:     "Basmati Rice",
		Category: "grains",
		Price:    entity.Price{Amount: 80, Unit: "kg"},
		Quantity: entity.Quantity{Available: 500, Unit: "kg"},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ProductStatusAvailable, product.Status)
	assert.Equal(t, entity.DefaultCurrency, product.Price.Currency)
	assert.Equal(t, 1.0, product.Quantity.Minimum)
}

func TestCreateProductFarmerOnly(t *testing.T) {
	uc, _ := newTestProductUseCase(t)

	_, err := uc.CreateProduct(context.Background(), "buyer-1", CreateProductInput{
		Name:  "Basmati Rice",
		Price: entity.Price{Amount: 80},
	})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.CreateProduct(context.Background(), "farmer-1", CreateProductInput{
		Name:  "Basmati Rice",
		Price: entity.Price{Amount: 0},
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUpdateProductOwnerOnly(t *testing.T) {
	uc, _ := newTestProductUseCase(t)

	product, err := uc.CreateProduct(context.Background(), "farmer-1", CreateProductInput{
		Name:     "Basmati Rice",
		Price:    entity.Price{Amount: 80},
		Quantity: entity.Quantity{Available: 500},
	})
	require.NoError(t, err)

	_, err = uc.UpdateProduct(context.Background(), "buyer-1", product.ID, UpdateProductInput{Name: "Hijacked"})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.UpdateProduct(context.Background(), "farmer-1", product.ID, UpdateProductInput{Status: "imaginary"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	updated, err := uc.UpdateProduct(context.Background(), "farmer-1", product.ID, UpdateProductInput{
		Name:   "Aged Basmati Rice",
		Status: entity.ProductStatusArchived,
	})
	require.NoError(t, err)
	assert.Equal(t, "Aged Basmati Rice", updated.Name)
	assert.Equal(t, entity.ProductStatusArchived, updated.Status)
}

func TestListProductsDefaultsToAvailable(t *testing.T) {
	uc, repo := newTestProductUseCase(t)

	require.NoError(t, repo.Create(context.Background(), &entity.Product{
		ID: "p1", FarmerID: "farmer-1", Name: "Rice", Status: entity.ProductStatusAvailable,
	}))
	require.NoError(t, repo.Create(context.Background(), &entity.Product{
		ID: "p2", FarmerID: "farmer-1", Name: "Old Wheat", Status: entity.ProductStatusArchived,
	}))

	products, total, err := uc.ListProducts(context.Background(), repository.ProductFilter{}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestReduceStockFlipsStatus(t *testing.T) {
	uc, repo := newTestProductUseCase(t)

	require.NoError(t, repo.Create(context.Background(), &entity.Product{
		ID:       "p1",
		FarmerID: "farmer-1",
		Name:     "Rice",
		Quantity: entity.Quantity{Available: 100, Minimum: 20},
		Status:   entity.ProductStatusAvailable,
	}))

	require.NoError(t, uc.ReduceStock(context.Background(), "p1", 85))
	product, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusLowStock, product.Status)

	require.NoError(t, uc.ReduceStock(context.Background(), "p1", 15))
	product, err = repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusSoldOut, product.Status)

	err = uc.ReduceStock(context.Background(), "p1", 1)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
