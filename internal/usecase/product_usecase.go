package usecase

import (
	"context"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/repository"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewProductUseCase(productRepo repository.ProductRepository, userRepo repository.UserRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

type CreateProductInput struct {
	Name        string
	Description string
	Category    string
	SubCategory string
	Images      []string
	Price       entity.Price
	Quantity    entity.Quantity
	Quality     entity.Quality
	Harvest     entity.Harvest
	Location    entity.GeoPoint
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, farmerID string, input CreateProductInput) (*entity.Product, error) {
	farmer, err := uc.userRepo.GetByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	if !farmer.IsFarmer() {
		return nil, errors.Forbidden("Only farmers can add products", nil)
	}

	if input.Price.Amount <= 0 {
		return nil, errors.BadRequest("Price must be positive", nil)
	}
	if input.Price.Currency == "" {
		input.Price.Currency = entity.DefaultCurrency
	}
	if input.Quantity.Minimum <= 0 {
		input.Quantity.Minimum = 1
	}

	product := &entity.Product{
		FarmerID:    farmerID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		SubCategory: input.SubCategory,
		Images:      input.Images,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Quality:     input.Quality,
		Harvest:     input.Harvest,
		Location:    input.Location,
		Status:      entity.ProductStatusAvailable,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// ListProducts returns the public catalog: available listings only.
func (uc *ProductUseCase) ListProducts(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int64, error) {
	if filter.Status == "" {
		filter.Status = entity.ProductStatusAvailable
	}
	return uc.productRepo.List(ctx, filter, limit, offset)
}

type UpdateProductInput struct {
	Name        string
	Description string
	Category    string
	SubCategory string
	Images      []string
	Price       *entity.Price
	Quantity    *entity.Quantity
	Quality     *entity.Quality
	Status      string
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, farmerID, productID string, input UpdateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.FarmerID != farmerID {
		return nil, errors.Forbidden("You do not own this product", nil)
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Category != "" {
		product.Category = input.Category
	}
	if input.SubCategory != "" {
		product.SubCategory = input.SubCategory
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.Price != nil {
		if input.Price.Amount <= 0 {
			return nil, errors.BadRequest("Price must be positive", nil)
		}
		product.Price = *input.Price
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.Quality != nil {
		product.Quality = *input.Quality
	}
	if input.Status != "" {
		switch input.Status {
		case entity.ProductStatusAvailable, entity.ProductStatusLowStock,
			entity.ProductStatusSoldOut, entity.ProductStatusArchived:
			product.Status = input.Status
		default:
			return nil, errors.BadRequest("Invalid product status", nil)
		}
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, farmerID, productID string) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.FarmerID != farmerID {
		return errors.Forbidden("You do not own this product", nil)
	}

	return uc.productRepo.Delete(ctx, productID)
}

// ReduceStock decrements availability after a sale, flipping status at
// the zero and minimum boundaries.
func (uc *ProductUseCase) ReduceStock(ctx context.Context, productID string, quantity float64) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	if product.Quantity.Available < quantity {
		return errors.BadRequest("Insufficient quantity available for "+product.Name, nil)
	}

	product.Quantity.Available -= quantity
	switch {
	case product.Quantity.Available <= 0:
		product.Status = entity.ProductStatusSoldOut
	case product.Quantity.Available < product.Quantity.Minimum:
		product.Status = entity.ProductStatusLowStock
	}

	return uc.productRepo.Update(ctx, product)
}
