package handler

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// UserResponse is the client view of a user. The password hash never leaves the server.
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Surname    string    `json:"surname"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	IdentityNo string    `json:"identityNo"`
	Gender     string    `json:"gender"`
	Roles      []string  `json:"roles"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:         u.ID.String(),
		Name:       u.Name,
		Surname:    u.Surname,
		Email:      u.Email,
		Phone:      u.Phone,
		IdentityNo: u.IdentityNo,
		Gender:     u.Gender,
		Roles:      u.Roles.ToStrings(),
		CreatedAt:  u.CreatedAt,
	}
}

// AddressResponse is one entry of the address book.
type AddressResponse struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func toAddressResponses(addresses []*entity.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, AddressResponse{
			ID:         a.ID.String(),
			Label:      a.Label,
			Street:     a.Street,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		})
	}

	return out
}

// CartResponse mirrors the client cart: product id -> size -> quantity.
type CartResponse map[string]map[string]int

func toCartResponse(cart entity.Cart) CartResponse {
	out := make(CartResponse, len(cart))
	for productID, sizes := range cart {
		entry := make(map[string]int, len(sizes))
		for size, qty := range sizes {
			entry[size.String()] = qty
		}
		out[productID.String()] = entry
	}

	return out
}

// ProductResponse is the catalog view of a product.
type ProductResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Brand       string         `json:"brand"`
	Price       float64        `json:"price"`
	Category    string         `json:"category"`
	SubCategory string         `json:"subCategory"`
	Color       string         `json:"color"`
	Sizes       []string       `json:"sizes"`
	Images      []string       `json:"image"`
	Bestseller  bool           `json:"bestseller"`
	NewSeason   bool           `json:"newSeason"`
	Stock       map[string]int `json:"stock"`
	Date        int64          `json:"date"`
}

func toProductResponse(p *entity.Product) *ProductResponse {
	sizes := make([]string, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		sizes = append(sizes, s.String())
	}

	stock := make(map[string]int, len(p.Stock))
	for size, qty := range p.Stock {
		stock[size.String()] = qty
	}

	images := p.Images
	if images == nil {
		images = []string{}
	}

	return &ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Brand:       p.Brand,
		Price:       money(p.Price),
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Color:       p.Color,
		Sizes:       sizes,
		Images:      images,
		Bestseller:  p.Bestseller,
		NewSeason:   p.NewSeason,
		Stock:       stock,
		Date:        p.CreatedAt.UnixMilli(),
	}
}

func toProductResponses(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}

	return out
}

// LineItemResponse is an ordered product snapshot.
type LineItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
}

// OrderResponse is an order as shown to its owner and to admins.
type OrderResponse struct {
	ID                 string                 `json:"id"`
	UserID             string                 `json:"userId"`
	Items              []LineItemResponse     `json:"items"`
	Address            entity.ShippingAddress `json:"address"`
	Amount             float64                `json:"amount"`
	PaymentMethod      string                 `json:"paymentMethod"`
	PaymentMethodLabel string                 `json:"paymentMethodLabel"`
	Payment            bool                   `json:"payment"`
	PaymentReference   string                 `json:"paymentReference,omitempty"`
	PaymentSimulated   bool                   `json:"paymentSimulated"`
	Status             string                 `json:"status"`
	StatusLabel        string                 `json:"statusLabel"`
	Date               int64                  `json:"date"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}

func toOrderResponse(o *entity.Order) *OrderResponse {
	items := make([]LineItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, LineItemResponse{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Brand:     item.Brand,
			Image:     item.Image,
			Price:     money(item.Price),
			Size:      item.Size.String(),
			Quantity:  item.Quantity,
		})
	}

	return &OrderResponse{
		ID:                 o.ID.String(),
		UserID:             o.UserID.String(),
		Items:              items,
		Address:            o.Address,
		Amount:             money(o.Amount),
		PaymentMethod:      o.PaymentMethod.String(),
		PaymentMethodLabel: o.PaymentMethod.Label(),
		Payment:            o.Payment,
		PaymentReference:   o.PaymentReference,
		PaymentSimulated:   o.PaymentSimulated,
		Status:             o.Status.String(),
		StatusLabel:        o.Status.Label(),
		Date:               o.CreatedAt.UnixMilli(),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}

	return out
}

// OrderListResponse is one page of the admin order list.
type OrderListResponse struct {
	Orders []*OrderResponse `json:"orders"`
	Total  int64            `json:"total"`
}

// AnalyticsResponse feeds the admin dashboard.
type AnalyticsResponse struct {
	TotalOrders       int64            `json:"totalOrders"`
	TotalRevenue      float64          `json:"totalRevenue"`
	AverageOrderValue float64          `json:"averageOrderValue"`
	PendingOrders     int64            `json:"pendingOrders"`
	DeliveredOrders   int64            `json:"deliveredOrders"`
	ByStatus          map[string]int64 `json:"byStatus"`
	Last30Days        int64            `json:"last30Days"`
	Previous30Days    int64            `json:"previous30Days"`
}

func toAnalyticsResponse(a *entity.OrderAnalytics) *AnalyticsResponse {
	byStatus := make(map[string]int64, len(a.ByStatus))
	for status, count := range a.ByStatus {
		byStatus[status.String()] = count
	}

	return &AnalyticsResponse{
		TotalOrders:       a.TotalOrders,
		TotalRevenue:      money(a.TotalRevenue),
		AverageOrderValue: money(a.AverageOrderValue),
		PendingOrders:     a.PendingOrders,
		DeliveredOrders:   a.DeliveredOrders,
		ByStatus:          byStatus,
		Last30Days:        a.LastPeriodOrders,
		Previous30Days:    a.PrevPeriodOrders,
	}
}

// OrderEventResponse is one timeline entry.
type OrderEventResponse struct {
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"statusLabel"`
	PrevStatus  string    `json:"prevStatus,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func toOrderEventResponses(events []*entity.OrderEvent) []OrderEventResponse {
	out := make([]OrderEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, OrderEventResponse{
			Type:        string(ev.Type),
			Status:      ev.Status.String(),
			StatusLabel: ev.Status.Label(),
			PrevStatus:  ev.PrevStatus.String(),
			OccurredAt:  ev.OccurredAt,
		})
	}

	return out
}

// money renders a decimal amount as a JSON number.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
