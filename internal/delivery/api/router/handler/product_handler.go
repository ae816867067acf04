package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// imageFields are the multipart file fields of the product form, in gallery order.
var imageFields = []string{"image1", "image2", "image3", "image4"}

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ProductHandler serves the catalog.
type ProductHandler struct {
	productUC    usecase.ProductUsecase
	maxImageSize int64
	logger       *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) (*ProductHandler, error) {
	maxImageSize, err := util.ParseByteSize(params.Config.Catalog.MaxImageSize)
	if err != nil {
		return nil, errors.Wrap(err, "catalog.maxImageSize")
	}

	return &ProductHandler{
		productUC:    params.ProductUC,
		maxImageSize: maxImageSize,
		logger:       params.Logger,
	}, nil
}

// ProductListRequest holds the catalog filters of GET /api/product/list.
type ProductListRequest struct {
	Category    string `query:"category"`
	SubCategory string `query:"subCategory"`
	Bestseller  string `query:"bestseller"`
	NewSeason   string `query:"newSeason"`
	Search      string `query:"search"`
	Limit       int    `query:"limit" validate:"min=0,max=200"`
	Offset      int    `query:"offset" validate:"min=0"`
}

// ProductIDRequest selects one product.
type ProductIDRequest struct {
	ProductID string `json:"productId"`
	ID        string `json:"id"`
}

func (r ProductIDRequest) value() string {
	if r.ProductID != "" {
		return r.ProductID
	}

	return r.ID
}

// ListProducts returns the catalog, newest first.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	var req ProductListRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product filter")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	bestseller, err := parseOptionalBool(req.Bestseller, "bestseller")
	if err != nil {
		return err
	}
	newSeason, err := parseOptionalBool(req.NewSeason, "newSeason")
	if err != nil {
		return err
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), entity.ProductFilter{
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Bestseller:  bestseller,
		NewSeason:   newSeason,
		Search:      req.Search,
		Limit:       req.Limit,
		Offset:      req.Offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "")
}

// GetProduct returns a single product.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	var req ProductIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product id")
	}

	id, err := parseID(req.value(), "productId")
	if err != nil {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "")
}

// Sizes lists the accepted size labels.
func (h *ProductHandler) Sizes(c echo.Context) error {
	sizes := h.productUC.Sizes()
	labels := make([]string, 0, len(sizes))
	for _, s := range sizes {
		labels = append(labels, s.String())
	}

	return response.Success(c, http.StatusOK, labels, "")
}

// AddProduct creates a product from the multipart admin form.
func (h *ProductHandler) AddProduct(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return response.BindingError(c, "Invalid product form")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(form.Get("price")))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("price must be a number")
	}

	sizes, err := parseSizesField(form.Get("sizes"))
	if err != nil {
		return err
	}
	stock, err := parseStockField(form.Get("stock"))
	if err != nil {
		return err
	}

	images, err := h.readImages(c)
	if err != nil {
		return err
	}

	product, err := h.productUC.AddProduct(c.Request().Context(), &usecase.AddProductInput{
		Name:        form.Get("name"),
		Description: form.Get("description"),
		Brand:       form.Get("brand"),
		Price:       price,
		Category:    form.Get("category"),
		SubCategory: form.Get("subCategory"),
		Color:       form.Get("color"),
		Sizes:       sizes,
		Stock:       stock,
		Bestseller:  form.Get("bestseller") == "true",
		NewSeason:   form.Get("newSeason") == "true",
		Images:      images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product), "Product added successfully")
}

// UpdateProduct applies the fields present in the multipart form.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return response.BindingError(c, "Invalid product form")
	}

	id, err := parseID(form.Get("id"), "id")
	if err != nil {
		return err
	}

	input := &usecase.UpdateProductInput{
		Name:        optionalField(form, "name"),
		Description: optionalField(form, "description"),
		Brand:       optionalField(form, "brand"),
		Category:    optionalField(form, "category"),
		SubCategory: optionalField(form, "subCategory"),
		Color:       optionalField(form, "color"),
	}

	if raw := optionalField(form, "price"); raw != nil {
		price, err := decimal.NewFromString(strings.TrimSpace(*raw))
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("price must be a number")
		}
		input.Price = &price
	}

	if raw := optionalField(form, "sizes"); raw != nil {
		if input.Sizes, err = parseSizesField(*raw); err != nil {
			return err
		}
	}
	if raw := optionalField(form, "stock"); raw != nil {
		if input.Stock, err = parseStockField(*raw); err != nil {
			return err
		}
	}

	if form.Has("bestseller") {
		v := form.Get("bestseller") == "true"
		input.Bestseller = &v
	}
	if form.Has("newSeason") {
		v := form.Get("newSeason") == "true"
		input.NewSeason = &v
	}

	if input.Images, err = h.readImages(c); err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product updated successfully")
}

// RemoveProduct deletes a product.
func (h *ProductHandler) RemoveProduct(c echo.Context) error {
	var req ProductIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product id")
	}

	id, err := parseID(req.value(), "id")
	if err != nil {
		return err
	}

	if err := h.productUC.RemoveProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product removed successfully")
}

// readImages collects image1..image4 in order. Requests that are not multipart carry no images.
func (h *ProductHandler) readImages(c echo.Context) ([]usecase.ImageUpload, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid multipart form")
	}

	var images []usecase.ImageUpload
	for _, field := range imageFields {
		files := form.File[field]
		if len(files) == 0 {
			continue
		}

		img, err := h.readImage(field, files[0])
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	return images, nil
}

func (h *ProductHandler) readImage(field string, fh *multipart.FileHeader) (usecase.ImageUpload, error) {
	if fh.Size > h.maxImageSize {
		return usecase.ImageUpload{}, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("%s exceeds %s", field, util.FormatBytes(h.maxImageSize)))
	}

	f, err := fh.Open()
	if err != nil {
		return usecase.ImageUpload{}, errors.Wrapf(err, "open %s", field)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxImageSize+1))
	if err != nil {
		return usecase.ImageUpload{}, errors.Wrapf(err, "read %s", field)
	}
	if int64(len(data)) > h.maxImageSize {
		return usecase.ImageUpload{}, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("%s exceeds %s", field, util.FormatBytes(h.maxImageSize)))
	}

	contentType := fh.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return usecase.ImageUpload{}, domainerrors.ErrValidationFailed.WithDetails(field + " must be an image")
	}

	return usecase.ImageUpload{
		Filename:    fh.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

// optionalField returns nil when the form does not carry key or carries it empty.
func optionalField(form url.Values, key string) *string {
	if !form.Has(key) {
		return nil
	}

	v := form.Get(key)
	if strings.TrimSpace(v) == "" {
		return nil
	}

	return &v
}

// parseSizesField reads the JSON array the admin form sends, e.g. ["41","42"].
func parseSizesField(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var sizes []string
	if err := json.Unmarshal([]byte(raw), &sizes); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sizes must be a JSON array of strings")
	}

	return sizes, nil
}

// parseStockField reads the JSON object the admin form sends, e.g. {"42":3}.
func parseStockField(raw string) (map[string]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var stock map[string]int
	if err := json.Unmarshal([]byte(raw), &stock); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock must be a JSON object of size to quantity")
	}

	return stock, nil
}
