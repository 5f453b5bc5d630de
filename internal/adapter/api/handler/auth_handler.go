package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/usecase"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type locationRequest struct {
	Address     string    `json:"address" validate:"required"`
	Coordinates []float64 `json:"coordinates" validate:"omitempty,len=2"`
}

type registerRequest struct {
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	UserType string          `json:"user_type" validate:"required,oneof=farmer buyer"`
	Location locationRequest `json:"location" validate:"required"`
	Phone    string          `json:"phone" validate:"required"`

	Bio         string   `json:"bio"`
	CompanyName string   `json:"company_name"`
	FarmSize    float64  `json:"farm_size"`
	FarmType    []string `json:"farm_type"`
	Crops       []string `json:"crops"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		UserType: req.UserType,
		Location: entity.GeoPoint{
			Address:     req.Location.Address,
			Coordinates: req.Location.Coordinates,
		},
		Phone:       req.Phone,
		Bio:         req.Bio,
		CompanyName: req.CompanyName,
		FarmSize:    req.FarmSize,
		FarmType:    req.FarmType,
		Crops:       req.Crops,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, authResponse{
		Token: result.Token,
		User:  result.User,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{
		Token: result.Token,
		User:  result.User,
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, err := h.authUseCase.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=6"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	if err := h.authUseCase.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Password updated successfully",
	})
}
