package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/usecase"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	user, err := h.userUseCase.GetProfile(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type updateProfileRequest struct {
	Name         string           `json:"name"`
	Phone        string           `json:"phone"`
	Bio          string           `json:"bio"`
	ProfileImage string           `json:"profile_image"`
	Location     *locationRequest `json:"location"`
	CompanyName  string           `json:"company_name"`
	FarmSize     float64          `json:"farm_size" validate:"omitempty,gte=0"`
	FarmType     []string         `json:"farm_type"`
	Crops        []string         `json:"crops"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdateProfileInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
		CompanyName:  req.CompanyName,
		FarmSize:     req.FarmSize,
		FarmType:     req.FarmType,
		Crops:        req.Crops,
	}
	if req.Location != nil {
		input.Location = &entity.GeoPoint{
			Address:     req.Location.Address,
			Coordinates: req.Location.Coordinates,
		}
	}

	userID := c.Get("uid").(string)
	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
