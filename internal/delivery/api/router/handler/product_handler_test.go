package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockusecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func setupProductHandler(t *testing.T, maxImageSize string) (*mockusecase.MockProductUsecase, *echo.Echo) {
	t.Helper()

	productUC := mockusecase.NewMockProductUsecase(t)
	h, err := NewProductHandler(ProductHandlerParams{
		ProductUC: productUC,
		Config:    &config.Config{Catalog: &config.CatalogConfig{MaxImageSize: maxImageSize}},
		Logger:    newDiscardLogger(),
	})
	require.NoError(t, err)

	e := newTestEcho()
	g := e.Group("/api/product")
	g.GET("/list", h.ListProducts)
	g.GET("/sizes", h.Sizes)
	g.POST("/single", h.GetProduct)
	admin := g.Group("", as(uuid.New(), entity.RoleAdmin))
	admin.POST("/add", h.AddProduct)
	admin.POST("/update", h.UpdateProduct)
	admin.POST("/remove", h.RemoveProduct)

	return productUC, e
}

type formFile struct {
	field string
	name  string
	data  []byte
}

func doMultipart(t *testing.T, e *echo.Echo, target string, fields map[string]string, files ...formFile) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.name+`"`)
		header.Set("Content-Type", "application/octet-stream")
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestProductHandler_AddProduct(t *testing.T) {
	productUC, e := setupProductHandler(t, "1MB")
	id := uuid.New()

	productUC.EXPECT().
		AddProduct(mock.Anything, mock.MatchedBy(func(in *usecase.AddProductInput) bool {
			return in.Name == "Runner" &&
				in.Price.Equal(decimal.RequireFromString("129.90")) &&
				assert.ObjectsAreEqual([]string{"41", "42"}, in.Sizes) &&
				assert.ObjectsAreEqual(map[string]int{"42": 3}, in.Stock) &&
				in.Bestseller && !in.NewSeason &&
				len(in.Images) == 1 && in.Images[0].ContentType == "image/png"
		})).
		Return(&entity.Product{
			ID:    id,
			Name:  "Runner",
			Price: decimal.RequireFromString("129.90"),
			Sizes: []entity.Size{"41.0", "42.0"},
			Stock: entity.Stock{"41.0": 0, "42.0": 3},
		}, nil)

	rec := doMultipart(t, e, "/api/product/add", map[string]string{
		"name":       "Runner",
		"category":   "Men",
		"price":      "129.90",
		"sizes":      `["41","42"]`,
		"stock":      `{"42":3}`,
		"bestseller": "true",
	}, formFile{field: "image1", name: "a.png", data: pngHeader})

	requireStatus(t, rec, http.StatusCreated)
	out := decodeData[ProductResponse](t, rec)
	assert.Equal(t, id.String(), out.ID)
	assert.InDelta(t, 129.90, out.Price, 0.001)
	assert.Equal(t, map[string]int{"41.0": 0, "42.0": 3}, out.Stock)
}

func TestProductHandler_AddProduct_InvalidForm(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]string
		details string
	}{
		{name: "price", fields: map[string]string{"price": "cheap"}, details: "price must be a number"},
		{name: "sizes", fields: map[string]string{"price": "1", "sizes": "41,42"}, details: "sizes must be a JSON array"},
		{name: "stock", fields: map[string]string{"price": "1", "sizes": `["42"]`, "stock": "[1]"}, details: "stock must be a JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, e := setupProductHandler(t, "1MB")

			rec := doMultipart(t, e, "/api/product/add", tt.fields)

			requireStatus(t, rec, http.StatusBadRequest)
			assert.Contains(t, decodeEnvelope(t, rec).Error.Details, tt.details)
		})
	}
}

func TestProductHandler_AddProduct_ImageTooLarge(t *testing.T) {
	_, e := setupProductHandler(t, "1KB")

	rec := doMultipart(t, e, "/api/product/add",
		map[string]string{"price": "10"},
		formFile{field: "image2", name: "big.png", data: append(pngHeader, bytes.Repeat([]byte{0}, 2048)...)},
	)

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "image2 exceeds 1.00KB")
}

func TestProductHandler_AddProduct_RejectsNonImage(t *testing.T) {
	_, e := setupProductHandler(t, "1MB")

	rec := doMultipart(t, e, "/api/product/add",
		map[string]string{"price": "10"},
		formFile{field: "image1", name: "notes.txt", data: []byte("plain text")},
	)

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "image1 must be an image")
}

func TestProductHandler_UpdateProduct_Partial(t *testing.T) {
	productUC, e := setupProductHandler(t, "1MB")
	id := uuid.New()

	productUC.EXPECT().
		UpdateProduct(mock.Anything, id, mock.MatchedBy(func(in *usecase.UpdateProductInput) bool {
			return in.Price != nil && in.Price.Equal(decimal.NewFromInt(99)) &&
				in.Name == nil && in.Sizes == nil && in.Stock == nil &&
				in.NewSeason != nil && *in.NewSeason &&
				in.Bestseller == nil && len(in.Images) == 0
		})).
		Return(&entity.Product{ID: id, Price: decimal.NewFromInt(99), NewSeason: true}, nil)

	rec := doMultipart(t, e, "/api/product/update", map[string]string{
		"id":        id.String(),
		"price":     "99",
		"newSeason": "true",
	})

	requireStatus(t, rec, http.StatusOK)
	assert.True(t, decodeData[ProductResponse](t, rec).NewSeason)
}

func TestProductHandler_UpdateProduct_NegativeStock(t *testing.T) {
	productUC, e := setupProductHandler(t, "1MB")
	id := uuid.New()

	productUC.EXPECT().
		UpdateProduct(mock.Anything, id, mock.Anything).
		Return(nil, domainerrors.ErrInvalidStock)

	rec := doMultipart(t, e, "/api/product/update", map[string]string{
		"id":    id.String(),
		"stock": `{"42":-1}`,
	})

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "INVALID_STOCK", decodeEnvelope(t, rec).Error.Code)
}

func TestProductHandler_ListProducts(t *testing.T) {
	productUC, e := setupProductHandler(t, "1MB")
	bestseller := true

	productUC.EXPECT().
		ListProducts(mock.Anything, entity.ProductFilter{Category: "Women", Bestseller: &bestseller, Search: "run"}).
		Return([]*entity.Product{{ID: uuid.New(), Name: "Runner"}}, nil)

	rec := doJSON(e, http.MethodGet, "/api/product/list?category=Women&bestseller=true&search=run", "")

	requireStatus(t, rec, http.StatusOK)
	out := decodeData[[]ProductResponse](t, rec)
	require.Len(t, out, 1)
	assert.Equal(t, []string{}, out[0].Images)
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	productUC, e := setupProductHandler(t, "1MB")
	id := uuid.New()

	productUC.EXPECT().GetProduct(mock.Anything, id).Return(nil, domainerrors.NewProductNotFoundError(id.String()))

	rec := doJSON(e, http.MethodPost, "/api/product/single", `{"productId":"`+id.String()+`"}`)

	requireStatus(t, rec, http.StatusNotFound)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)
	assert.Contains(t, env.Message, id.String())
}

func TestProductHandler_RemoveProduct(t *testing.T) {
	productUC, e := setupProductHandler(t, "1MB")
	id := uuid.New()

	productUC.EXPECT().RemoveProduct(mock.Anything, id).Return(nil)

	rec := doJSON(e, http.MethodPost, "/api/product/remove", `{"id":"`+id.String()+`"}`)

	requireStatus(t, rec, http.StatusOK)
}

func TestProductHandler_Sizes(t *testing.T) {
	productUC, e := setupProductHandler(t, "1MB")

	productUC.EXPECT().Sizes().Return([]entity.Size{"41.0", "41.5"})

	rec := doJSON(e, http.MethodGet, "/api/product/sizes", "")

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, []string{"41.0", "41.5"}, decodeData[[]string](t, rec))
}
