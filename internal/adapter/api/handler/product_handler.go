package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/repository"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/usecase"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/response"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type priceRequest struct {
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Currency   string  `json:"currency"`
	Unit       string  `json:"unit" validate:"required"`
	Negotiable bool    `json:"negotiable"`
}

type quantityRequest struct {
	Available float64 `json:"available" validate:"required,gt=0"`
	Unit      string  `json:"unit" validate:"required"`
	Minimum   float64 `json:"minimum" validate:"omitempty,gte=0"`
}

type createProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Category    string           `json:"category" validate:"required"`
	SubCategory string           `json:"sub_category"`
	Images      []string         `json:"images"`
	Price       priceRequest     `json:"price" validate:"required"`
	Quantity    quantityRequest  `json:"quantity" validate:"required"`
	Quality     entity.Quality   `json:"quality"`
	Harvest     entity.Harvest   `json:"harvest"`
	Location    *locationRequest `json:"location"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Images:      req.Images,
		Price: entity.Price{
			Amount:     req.Price.Amount,
			Currency:   req.Price.Currency,
			Unit:       req.Price.Unit,
			Negotiable: req.Price.Negotiable,
		},
		Quantity: entity.Quantity{
			Available: req.Quantity.Available,
			Unit:      req.Quantity.Unit,
			Minimum:   req.Quantity.Minimum,
		},
		Quality: req.Quality,
		Harvest: req.Harvest,
	}
	if req.Location != nil {
		input.Location = entity.GeoPoint{
			Address:     req.Location.Address,
			Coordinates: req.Location.Coordinates,
		}
	}

	farmerID := c.Get("uid").(string)
	product, err := h.productUseCase.CreateProduct(c.Request().Context(), farmerID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	product, err := h.productUseCase.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter := repository.ProductFilter{
		Category: c.QueryParam("category"),
		Query:    c.QueryParam("q"),
		FarmerID: c.QueryParam("farmer_id"),
		Status:   c.QueryParam("status"),
	}

	if organic := c.QueryParam("organic"); organic != "" {
		v, err := strconv.ParseBool(organic)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid organic filter", err))
		}
		filter.Organic = v
	}
	if min := c.QueryParam("min_price"); min != "" {
		v, err := strconv.ParseFloat(min, 64)
		if err != nil || v < 0 {
			return response.Error(c, errors.BadRequest("Invalid min_price", err))
		}
		filter.MinPrice = v
	}
	if max := c.QueryParam("max_price"); max != "" {
		v, err := strconv.ParseFloat(max, 64)
		if err != nil || v < 0 {
			return response.Error(c, errors.BadRequest("Invalid max_price", err))
		}
		filter.MaxPrice = v
	}

	params := utils.GetPaginationParams(c)
	products, total, err := h.productUseCase.ListProducts(c.Request().Context(), filter, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, params.Page, params.PageSize)
}

type updateProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	SubCategory string           `json:"sub_category"`
	Images      []string         `json:"images"`
	Price       *priceRequest    `json:"price"`
	Quantity    *quantityRequest `json:"quantity"`
	Quality     *entity.Quality  `json:"quality"`
	Status      string           `json:"status"`
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	input := usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Images:      req.Images,
		Quality:     req.Quality,
		Status:      req.Status,
	}
	if req.Price != nil {
		input.Price = &entity.Price{
			Amount:     req.Price.Amount,
			Currency:   req.Price.Currency,
			Unit:       req.Price.Unit,
			Negotiable: req.Price.Negotiable,
		}
	}
	if req.Quantity != nil {
		input.Quantity = &entity.Quantity{
			Available: req.Quantity.Available,
			Unit:      req.Quantity.Unit,
			Minimum:   req.Quantity.Minimum,
		}
	}

	farmerID := c.Get("uid").(string)
	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), farmerID, c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	farmerID := c.Get("uid").(string)
	if err := h.productUseCase.DeleteProduct(c.Request().Context(), farmerID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted successfully",
	})
}
