package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockusecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileFixture struct {
	profileUC *mockusecase.MockProfileUsecase
	addressUC *mockusecase.MockAddressUsecase
	userID    uuid.UUID
	e         *echo.Echo
}

func setupProfileHandler(t *testing.T) *profileFixture {
	t.Helper()

	f := &profileFixture{
		profileUC: mockusecase.NewMockProfileUsecase(t),
		addressUC: mockusecase.NewMockAddressUsecase(t),
		userID:    uuid.New(),
		e:         newTestEcho(),
	}
	h := NewProfileHandler(ProfileHandlerParams{
		ProfileUC: f.profileUC,
		AddressUC: f.addressUC,
		Logger:    newDiscardLogger(),
	})

	g := f.e.Group("/api/user", as(f.userID, entity.RoleUser))
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.UpdateProfile)
	g.GET("/address", h.ListAddresses)
	g.POST("/address", h.UpsertAddress)
	g.DELETE("/address", h.DeleteAddress)

	return f
}

func TestProfileHandler_GetProfile(t *testing.T) {
	f := setupProfileHandler(t)

	f.profileUC.EXPECT().GetProfile(mock.Anything, f.userID).Return(&usecase.ProfileOutput{
		User:      &entity.User{ID: f.userID, Name: "Ada", Email: "ada@example.com"},
		Addresses: []*entity.Address{{ID: uuid.New(), Label: "Home", City: "Izmir"}},
	}, nil)

	rec := doJSON(f.e, http.MethodGet, "/api/user/profile", "")

	requireStatus(t, rec, http.StatusOK)
	out := decodeData[map[string]any](t, rec)
	assert.Equal(t, "Ada", out["name"])
	require.Len(t, out["addresses"], 1)
}

func TestProfileHandler_UpdateProfile_RequiresAllFields(t *testing.T) {
	f := setupProfileHandler(t)

	rec := doJSON(f.e, http.MethodPut, "/api/user/profile", `{"name":"Ada","email":"ada@example.com"}`)

	requireStatus(t, rec, http.StatusBadRequest)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "surname is required")
}

func TestProfileHandler_UpsertAddress_ByID(t *testing.T) {
	f := setupProfileHandler(t)
	addressID := uuid.New()

	f.addressUC.EXPECT().
		UpsertAddress(mock.Anything, f.userID, mock.MatchedBy(func(in *usecase.UpsertAddressInput) bool {
			return in.ID != nil && *in.ID == addressID && in.Label == "Office"
		})).
		Return([]*entity.Address{{ID: addressID, Label: "Office"}}, nil)

	body := `{"id":"` + addressID.String() + `","label":"Office","street":"1 Main","city":"Izmir","state":"Izmir","postalCode":"35000","country":"TR"}`
	rec := doJSON(f.e, http.MethodPost, "/api/user/address", body)

	requireStatus(t, rec, http.StatusOK)
	out := decodeData[[]AddressResponse](t, rec)
	require.Len(t, out, 1)
	assert.Equal(t, addressID.String(), out[0].ID)
}

func TestProfileHandler_UpsertAddress_InvalidID(t *testing.T) {
	f := setupProfileHandler(t)

	body := `{"id":"not-a-uuid","label":"Office","street":"1 Main","city":"Izmir","state":"Izmir","postalCode":"35000","country":"TR"}`
	rec := doJSON(f.e, http.MethodPost, "/api/user/address", body)

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
}

func TestProfileHandler_DeleteAddress_ByLabel(t *testing.T) {
	f := setupProfileHandler(t)
	work := &entity.Address{ID: uuid.New(), Label: "Work"}

	f.addressUC.EXPECT().
		DeleteAddress(mock.Anything, f.userID, &usecase.DeleteAddressInput{Label: "Home"}).
		Return([]*entity.Address{work}, nil)

	rec := doJSON(f.e, http.MethodDelete, "/api/user/address?label=Home", "")

	requireStatus(t, rec, http.StatusOK)
	out := decodeData[[]AddressResponse](t, rec)
	require.Len(t, out, 1)
	assert.Equal(t, "Work", out[0].Label)
}

func TestProfileHandler_DeleteAddress_RequiresSelector(t *testing.T) {
	f := setupProfileHandler(t)

	rec := doJSON(f.e, http.MethodDelete, "/api/user/address", "")

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestProfileHandler_DeleteAddress_ForeignAddress(t *testing.T) {
	f := setupProfileHandler(t)
	foreign := uuid.New()

	f.addressUC.EXPECT().
		DeleteAddress(mock.Anything, f.userID, &usecase.DeleteAddressInput{ID: &foreign}).
		Return(nil, domainerrors.ErrAddressOwnershipViolation)

	rec := doJSON(f.e, http.MethodDelete, "/api/user/address", `{"id":"`+foreign.String()+`"}`)

	requireStatus(t, rec, http.StatusForbidden)
	assert.Equal(t, "ADDRESS_OWNERSHIP_VIOLATION", decodeEnvelope(t, rec).Error.Code)
}
