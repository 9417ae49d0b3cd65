package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/core/domain/model/review"
)

type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

func (l *Location) toPoint() (*kernel.Point, error) {
	if l == nil {
		return nil, nil
	}
	p, err := kernel.NewPoint(l.Longitude, l.Latitude)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func locationOf(p *kernel.Point) *Location {
	if p == nil {
		return nil
	}
	return &Location{Longitude: p.Lon(), Latitude: p.Lat()}
}

type Address struct {
	Label string `json:"label"`
	Line1 string `json:"line1"`
	Line2 string `json:"line2,omitempty"`
	City  string `json:"city"`
	Zip   string `json:"zip"`
}

type NewVendor struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    *Location `json:"location,omitempty"`
}

type Vendor struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"ownerId"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Location      *Location  `json:"location,omitempty"`
	AverageRating float64    `json:"averageRating"`
	TotalReviews  int        `json:"totalReviews"`
	MenuItems     []MenuItem `json:"menuItems,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func vendorOf(v *catalog.Vendor) Vendor {
	return Vendor{
		ID:            v.ID().String(),
		OwnerID:       v.OwnerID().String(),
		Name:          v.Name(),
		Description:   v.Description(),
		Location:      locationOf(v.Location()),
		AverageRating: v.AverageRating(),
		TotalReviews:  v.TotalReviews(),
		CreatedAt:     v.CreatedAt(),
	}
}

type NewMenuItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

type MenuItem struct {
	ID          string `json:"id"`
	VendorID    string `json:"vendorId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	Available   bool   `json:"availability"`
}

func menuItemOf(m *catalog.MenuItem) MenuItem {
	return MenuItem{
		ID:          m.ID().String(),
		VendorID:    m.VendorID().String(),
		Name:        m.Name(),
		Description: m.Description(),
		Price:       m.Price().Amount(),
		Available:   m.IsAvailable(),
	}
}

func viewLocationOf(l *queries.LocationView) *Location {
	if l == nil {
		return nil
	}
	return &Location{Longitude: l.Lon, Latitude: l.Lat}
}

func menuItemViewOf(v queries.MenuItemView) MenuItem {
	return MenuItem{
		ID:          v.ID.String(),
		VendorID:    v.VendorID.String(),
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
		Available:   v.Available,
	}
}

func vendorViewOf(v queries.VendorView) Vendor {
	var items []MenuItem
	if v.MenuItems != nil {
		items = make([]MenuItem, 0, len(v.MenuItems))
		for _, item := range v.MenuItems {
			items = append(items, menuItemViewOf(item))
		}
	}

	return Vendor{
		ID:            v.ID.String(),
		OwnerID:       v.OwnerID.String(),
		Name:          v.Name,
		Description:   v.Description,
		Location:      viewLocationOf(v.Location),
		AverageRating: v.AverageRating,
		TotalReviews:  v.TotalReviews,
		MenuItems:     items,
		CreatedAt:     v.CreatedAt,
	}
}

type VendorPage struct {
	Vendors    []Vendor   `json:"vendors"`
	Pagination Pagination `json:"pagination"`
}

func vendorPageOf(p queries.VendorPage) VendorPage {
	vendors := make([]Vendor, 0, len(p.Vendors))
	for _, v := range p.Vendors {
		vendors = append(vendors, vendorViewOf(v))
	}
	return VendorPage{
		Vendors:    vendors,
		Pagination: Pagination{CurrentPage: p.Page, TotalPages: p.TotalPages, Total: p.Total},
	}
}

type MenuItemPage struct {
	MenuItems  []MenuItem `json:"menuItems"`
	Pagination Pagination `json:"pagination"`
}

func menuItemPageOf(p queries.MenuItemPage) MenuItemPage {
	items := make([]MenuItem, 0, len(p.MenuItems))
	for _, v := range p.MenuItems {
		items = append(items, menuItemViewOf(v))
	}
	return MenuItemPage{
		MenuItems:  items,
		Pagination: Pagination{CurrentPage: p.Page, TotalPages: p.TotalPages, Total: p.Total},
	}
}

type VendorAnalytics struct {
	VendorID        string   `json:"vendorId"`
	Name            string   `json:"name"`
	AverageRating   float64  `json:"averageRating"`
	TotalReviews    int      `json:"totalReviews"`
	TotalOrders     int64    `json:"totalOrders"`
	CompletedOrders int64    `json:"completedOrders"`
	PendingOrders   int64    `json:"pendingOrders"`
	Revenue         int64    `json:"revenue"`
	RecentReviews   []Review `json:"recentReviews"`
}

func vendorAnalyticsOf(a queries.VendorAnalytics) VendorAnalytics {
	reviews := make([]Review, 0, len(a.RecentReviews))
	for _, v := range a.RecentReviews {
		reviews = append(reviews, reviewViewOf(v))
	}
	return VendorAnalytics{
		VendorID:        a.VendorID.String(),
		Name:            a.Name,
		AverageRating:   a.AverageRating,
		TotalReviews:    a.TotalReviews,
		TotalOrders:     a.TotalOrders,
		CompletedOrders: a.CompletedOrders,
		PendingOrders:   a.PendingOrders,
		Revenue:         a.Revenue,
		RecentReviews:   reviews,
	}
}

type Availability struct {
	Available *bool `json:"availability"`
}

type NewOrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note,omitempty"`
}

type NewOrder struct {
	Items           []NewOrderItem `json:"items"`
	DeliveryAddress Address        `json:"deliveryAddress"`
}

type OrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note,omitempty"`
}

type Order struct {
	ID              string      `json:"id"`
	CustomerID      string      `json:"customerId"`
	VendorID        string      `json:"vendorId"`
	Items           []OrderItem `json:"items"`
	TotalAmount     int64       `json:"totalAmount"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"paymentStatus"`
	DeliveryStatus  string      `json:"deliveryStatus"`
	DeliveryAddress Address     `json:"deliveryAddress"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func orderOf(o *order.Order) Order {
	items := make([]OrderItem, 0, len(o.Items()))
	for _, li := range o.Items() {
		items = append(items, OrderItem{
			MenuItemID: li.MenuItemID().String(),
			Name:       li.Name(),
			Price:      li.UnitPrice().Amount(),
			Quantity:   li.Quantity(),
			Note:       li.Note(),
		})
	}

	a := o.Address()
	return Order{
		ID:              o.ID().String(),
		CustomerID:      o.CustomerID().String(),
		VendorID:        o.VendorID().String(),
		Items:           items,
		TotalAmount:     o.Total().Amount(),
		Status:          o.Status().String(),
		PaymentStatus:   o.PaymentStatus().String(),
		DeliveryStatus:  o.DeliveryStatus().String(),
		DeliveryAddress: Address{Label: a.Label(), Line1: a.Line1(), Line2: a.Line2(), City: a.City(), Zip: a.Zip()},
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func orderViewOf(v queries.OrderView) Order {
	items := make([]OrderItem, 0, len(v.Items))
	for _, li := range v.Items {
		items = append(items, OrderItem{
			MenuItemID: li.MenuItemID.String(),
			Name:       li.Name,
			Price:      li.UnitPrice,
			Quantity:   li.Quantity,
			Note:       li.Note,
		})
	}

	return Order{
		ID:             v.ID.String(),
		CustomerID:     v.CustomerID.String(),
		VendorID:       v.VendorID.String(),
		Items:          items,
		TotalAmount:    v.Total,
		Status:         v.Status.String(),
		PaymentStatus:  v.PaymentStatus.String(),
		DeliveryStatus: v.DeliveryStatus.String(),
		DeliveryAddress: Address{
			Label: v.Address.Label,
			Line1: v.Address.Line1,
			Line2: v.Address.Line2,
			City:  v.Address.City,
			Zip:   v.Address.Zip,
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Total       int64 `json:"total"`
}

type OrderPage struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

func orderPageOf(p queries.OrderPage) OrderPage {
	orders := make([]Order, 0, len(p.Orders))
	for _, v := range p.Orders {
		orders = append(orders, orderViewOf(v))
	}
	return OrderPage{
		Orders:     orders,
		Pagination: Pagination{CurrentPage: p.Page, TotalPages: p.TotalPages, Total: p.Total},
	}
}

type StatusChange struct {
	Status string `json:"status"`
}

type NewPayment struct {
	OrderID string `json:"orderId"`
	Gateway string `json:"gateway"`
	Method  string `json:"method"`
	Amount  int64  `json:"amount"`
}

type PaymentCallback struct {
	TransactionID string `json:"transactionId"`
	Reason        string `json:"reason,omitempty"`
}

type RetryPayment struct {
	OrderID string `json:"orderId"`
}

type Payment struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"orderId"`
	Gateway       string    `json:"gateway"`
	Method        string    `json:"method"`
	TransactionID string    `json:"transactionId"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	FailureReason string    `json:"failureReason,omitempty"`
	RefundReason  string    `json:"refundReason,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func paymentOf(p *payment.Payment) Payment {
	return Payment{
		ID:            p.ID().String(),
		OrderID:       p.OrderID().String(),
		Gateway:       p.Gateway().String(),
		Method:        p.Method().String(),
		TransactionID: p.TransactionRef().String(),
		Amount:        p.Amount().Amount(),
		Status:        p.Status().String(),
		FailureReason: p.FailureReason(),
		RefundReason:  p.RefundReason(),
		CreatedAt:     p.CreatedAt(),
	}
}

func paymentViewOf(v queries.PaymentView) Payment {
	return Payment{
		ID:            v.ID.String(),
		OrderID:       v.OrderID.String(),
		Gateway:       v.Gateway.String(),
		Method:        v.Method.String(),
		TransactionID: v.TransactionRef,
		Amount:        v.Amount,
		Status:        v.Status.String(),
		FailureReason: v.FailureReason,
		RefundReason:  v.RefundReason,
		CreatedAt:     v.CreatedAt,
	}
}

type NewDeliveryAgent struct {
	UserID          string    `json:"userId"`
	Name            string    `json:"name"`
	Contact         string    `json:"contact"`
	CurrentLocation *Location `json:"currentLocation,omitempty"`
}

type DeliveryAgent struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Name            string    `json:"name"`
	Contact         string    `json:"contact"`
	CurrentLocation *Location `json:"currentLocation,omitempty"`
	CurrentOrders   []string  `json:"currentOrders"`
}

func deliveryAgentOf(a *agent.DeliveryAgent) DeliveryAgent {
	ids := a.Assignments().OrderIDs()
	orders := make([]string, 0, len(ids))
	for _, id := range ids {
		orders = append(orders, id.String())
	}

	return DeliveryAgent{
		ID:              a.ID().String(),
		UserID:          a.UserID().String(),
		Name:            a.Name(),
		Contact:         a.Contact(),
		CurrentLocation: locationOf(a.Location()),
		CurrentOrders:   orders,
	}
}

func agentViewOf(v queries.AgentView) DeliveryAgent {
	orders := make([]string, 0, len(v.ActiveOrderIDs))
	for _, id := range v.ActiveOrderIDs {
		orders = append(orders, id.String())
	}

	return DeliveryAgent{
		ID:              v.ID.String(),
		UserID:          v.UserID.String(),
		Name:            v.Name,
		Contact:         v.Contact,
		CurrentLocation: viewLocationOf(v.Location),
		CurrentOrders:   orders,
	}
}

type AgentPage struct {
	Agents     []DeliveryAgent `json:"agents"`
	Pagination Pagination      `json:"pagination"`
}

func agentPageOf(p queries.AgentPage) AgentPage {
	agents := make([]DeliveryAgent, 0, len(p.Agents))
	for _, v := range p.Agents {
		agents = append(agents, agentViewOf(v))
	}
	return AgentPage{
		Agents:     agents,
		Pagination: Pagination{CurrentPage: p.Page, TotalPages: p.TotalPages, Total: p.Total},
	}
}

type OrderRef struct {
	OrderID string `json:"orderId"`
}

type DeliveryUpdate struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

type NewReview struct {
	VendorID   string   `json:"vendorId"`
	MenuItemID *string  `json:"menuItemId,omitempty"`
	Rating     int      `json:"rating"`
	Comment    string   `json:"comment"`
	Images     []string `json:"images,omitempty"`
}

type ReviewRevision struct {
	Rating  int      `json:"rating"`
	Comment string   `json:"comment"`
	Images  []string `json:"images,omitempty"`
}

type Review struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	VendorID   string    `json:"vendorId"`
	MenuItemID *string   `json:"menuItemId,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Images     []string  `json:"images"`
	CreatedAt  time.Time `json:"createdAt"`
}

func reviewOf(r *review.Review) Review {
	return Review{
		ID:         r.ID().String(),
		CustomerID: r.CustomerID().String(),
		VendorID:   r.VendorID().String(),
		MenuItemID: optionalString(r.MenuItemID()),
		Rating:     r.Rating().Value(),
		Comment:    r.Comment(),
		Images:     r.Images(),
		CreatedAt:  r.CreatedAt(),
	}
}

type ReviewPage struct {
	Reviews    []Review   `json:"reviews"`
	Pagination Pagination `json:"pagination"`
}

func reviewPageOf(p queries.ReviewPage) ReviewPage {
	reviews := make([]Review, 0, len(p.Reviews))
	for _, v := range p.Reviews {
		reviews = append(reviews, reviewViewOf(v))
	}
	return ReviewPage{
		Reviews:    reviews,
		Pagination: Pagination{CurrentPage: p.Page, TotalPages: p.TotalPages, Total: p.Total},
	}
}

func reviewViewOf(v queries.ReviewView) Review {
	return Review{
		ID:         v.ID.String(),
		CustomerID: v.CustomerID.String(),
		VendorID:   v.VendorID.String(),
		MenuItemID: optionalString(v.MenuItemID),
		Rating:     v.Rating,
		Comment:    v.Comment,
		Images:     v.Images,
		CreatedAt:  v.CreatedAt,
	}
}

func optionalString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
