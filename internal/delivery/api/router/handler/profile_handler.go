package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the caller's profile and address book.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest replaces every editable profile field.
type UpdateProfileRequest struct {
	Name       string `json:"name" validate:"required"`
	Surname    string `json:"surname" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	IdentityNo string `json:"identityNo" validate:"required"`
	Gender     string `json:"gender" validate:"required"`
}

// AddressRequest adds or replaces an address.
type AddressRequest struct {
	ID         string `json:"id"`
	Label      string `json:"label" validate:"required"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// DeleteAddressRequest selects an address by id, or by label for older clients.
type DeleteAddressRequest struct {
	ID    string `json:"id" query:"id"`
	Label string `json:"label" query:"label"`
}

// ProfileResponse is the caller's profile with the address book.
type ProfileResponse struct {
	*UserResponse
	Addresses []AddressResponse `json:"addresses"`
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	out, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &ProfileResponse{
		UserResponse: toUserResponse(out.User),
		Addresses:    toAddressResponses(out.Addresses),
	}, "")
}

// UpdateProfile replaces the caller's profile fields.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:       req.Name,
		Surname:    req.Surname,
		Email:      req.Email,
		Phone:      req.Phone,
		IdentityNo: req.IdentityNo,
		Gender:     req.Gender,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile updated successfully")
}

// ListAddresses returns the caller's address book.
func (h *ProfileHandler) ListAddresses(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponses(addresses), "")
}

// UpsertAddress adds or replaces an address and returns the resulting list.
func (h *ProfileHandler) UpsertAddress(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	id, err := parseOptionalID(req.ID, "id")
	if err != nil {
		return err
	}

	addresses, err := h.addressUC.UpsertAddress(c.Request().Context(), userID, &usecase.UpsertAddressInput{
		ID:         id,
		Label:      req.Label,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponses(addresses), "Address saved")
}

// DeleteAddress removes an address selected by id or label.
func (h *ProfileHandler) DeleteAddress(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req DeleteAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid address input")
	}

	id, err := parseOptionalID(req.ID, "id")
	if err != nil {
		return err
	}
	if id == nil && req.Label == "" {
		return domainerrors.ErrValidationFailed.WithDetails("id or label is required")
	}

	addresses, err := h.addressUC.DeleteAddress(c.Request().Context(), userID, &usecase.DeleteAddressInput{
		ID:    id,
		Label: req.Label,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponses(addresses), "Address deleted")
}
