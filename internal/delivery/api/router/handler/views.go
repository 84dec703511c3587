package handler

import (
	"time"

	"autohub/internal/domain/entity"
	"autohub/internal/usecase"

	"github.com/google/uuid"
)

// UserView is the account as returned to its owner.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserView(u *entity.User) *UserView {
	if u == nil {
		return nil
	}

	return &UserView{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

// AuthView carries a token pair and optionally the signed-in user.
type AuthView struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	User         *UserView `json:"user,omitempty"`
}

// ProfileView is the marketplace profile.
type ProfileView struct {
	UserID      uuid.UUID  `json:"userId"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
	Phone       string     `json:"phone"`
	Role        string     `json:"role"`
	ShopID      *uuid.UUID `json:"shopId,omitempty"`
	ImageURL    string     `json:"imageUrl"`
	Persisted   bool       `json:"persisted"`
}

func newProfileView(p *entity.UserProfile) *ProfileView {
	if p == nil {
		return nil
	}

	return &ProfileView{
		UserID:      p.UserID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Phone:       p.Phone,
		Role:        p.Role.String(),
		ShopID:      p.ShopID,
		ImageURL:    p.ImageURL,
		Persisted:   p.Persisted,
	}
}

// SessionView tells the client which navigation branch to open.
type SessionView struct {
	PrincipalID uuid.UUID    `json:"principalId"`
	Path        string       `json:"path"`
	Degraded    bool         `json:"degraded"`
	Profile     *ProfileView `json:"profile"`
}

func newSessionView(s *entity.Session) *SessionView {
	return &SessionView{
		PrincipalID: s.PrincipalID,
		Path:        string(s.Path),
		Degraded:    s.Degraded,
		Profile:     newProfileView(s.Profile),
	}
}

// ShopView is a shop card.
type ShopView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	ImageURL    string    `json:"imageUrl"`
}

func newShopView(s *entity.Shop) *ShopView {
	return &ShopView{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Title:       s.Title,
		Description: s.Description,
		Address:     s.Address,
		City:        s.City,
		Phone:       s.Phone,
		Email:       s.Email,
		ImageURL:    s.ImageURL,
	}
}

// ShopDetailsView is a shop page with its catalog.
type ShopDetailsView struct {
	*ShopView
	AverageRating float64          `json:"averageRating"`
	Services      []*ServiceView   `json:"services"`
	SpareParts    []*SparePartView `json:"spareParts"`
}

// ServiceView is a bookable service.
type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	ShopID      uuid.UUID `json:"shopId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Rating      float64   `json:"rating"`
	ImageURL    string    `json:"imageUrl"`
}

func newServiceView(s *entity.ShopService) *ServiceView {
	return &ServiceView{
		ID:          s.ID,
		ShopID:      s.ShopID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Rating:      s.Rating,
		ImageURL:    s.ImageURL,
	}
}

// SparePartView is a spare part with its stock flags.
type SparePartView struct {
	ID              uuid.UUID `json:"id"`
	ShopID          uuid.UUID `json:"shopId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"imageUrl"`
	Price           int64     `json:"price"`
	ManageInventory bool      `json:"manageInventory"`
	Quantity        int       `json:"quantity"`
	LowStockLimit   int       `json:"lowStockLimit"`
	LowStock        bool      `json:"lowStock"`
	OutOfStock      bool      `json:"outOfStock"`
}

func newSparePartView(p *entity.SparePart) *SparePartView {
	return &SparePartView{
		ID:              p.ID,
		ShopID:          p.ShopID,
		Title:           p.Title,
		Description:     p.Description,
		ImageURL:        p.ImageURL,
		Price:           p.Price,
		ManageInventory: p.ManageInventory,
		Quantity:        p.Quantity,
		LowStockLimit:   p.LowStockLimit,
		LowStock:        p.IsLowStock(),
		OutOfStock:      p.IsOutOfStock(),
	}
}

func newShopDetailsView(d *usecase.ShopDetails) *ShopDetailsView {
	return &ShopDetailsView{
		ShopView:      newShopView(d.Shop),
		AverageRating: d.AverageRating,
		Services:      mapViews(d.Services, newServiceView),
		SpareParts:    mapViews(d.SpareParts, newSparePartView),
	}
}

// CustomerView is the customer attached to an order or appointment.
type CustomerView struct {
	ID      *uuid.UUID `json:"id,omitempty"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Contact string     `json:"contact"`
}

func newCustomerView(c entity.CustomerInfo) CustomerView {
	return CustomerView{ID: c.ID, Name: c.Name, Email: c.Email, Contact: c.Contact}
}

// OrderItemView is one line of an order.
type OrderItemView struct {
	Part     entity.PartSnapshot `json:"part"`
	Quantity int                 `json:"quantity"`
	Total    int64               `json:"total"`
}

// OrderView is an order with its computed total.
type OrderView struct {
	ID                  uuid.UUID       `json:"id"`
	ShopID              uuid.UUID       `json:"shopId"`
	Customer            CustomerView    `json:"customer"`
	Items               []OrderItemView `json:"items"`
	Status              string          `json:"status"`
	Address             string          `json:"address"`
	SpecialRequirements string          `json:"specialRequirements"`
	OrderDate           string          `json:"orderDate"`
	BookingID           string          `json:"bookingId,omitempty"`
	ManualEntry         bool            `json:"manualEntry"`
	Total               int64           `json:"total"`
	CreatedAt           time.Time       `json:"createdAt"`
}

func newOrderView(o *entity.Order) *OrderView {
	items := make([]OrderItemView, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemView{Part: item.Part, Quantity: item.Quantity, Total: item.LineTotal()})
	}

	return &OrderView{
		ID:                  o.ID,
		ShopID:              o.ShopID,
		Customer:            newCustomerView(o.Customer),
		Items:               items,
		Status:              o.Status.String(),
		Address:             o.Address,
		SpecialRequirements: o.SpecialRequirements,
		OrderDate:           o.OrderDate,
		BookingID:           o.BookingID,
		ManualEntry:         o.ManualEntry,
		Total:               o.Total(),
		CreatedAt:           o.CreatedAt,
	}
}

// AppointmentView is a booked service slot.
type AppointmentView struct {
	ID            uuid.UUID    `json:"id"`
	AppointmentID string       `json:"appointmentId,omitempty"`
	ShopID        uuid.UUID    `json:"shopId"`
	Customer      CustomerView `json:"customer"`
	ServiceID     uuid.UUID    `json:"serviceId"`
	ServiceName   string       `json:"serviceName"`
	ServiceImage  string       `json:"serviceImage"`
	ServicePrice  float64      `json:"servicePrice"`
	Status        string       `json:"status"`
	Date          string       `json:"date"`
	Time          string       `json:"time"`
	Bill          string       `json:"bill"`
	ManualEntry   bool         `json:"manualEntry"`
	CreatedAt     time.Time    `json:"createdAt"`
}

func newAppointmentView(a *entity.Appointment) *AppointmentView {
	return &AppointmentView{
		ID:            a.ID,
		AppointmentID: a.AppointmentID,
		ShopID:        a.ShopID,
		Customer:      newCustomerView(a.Customer),
		ServiceID:     a.ServiceID,
		ServiceName:   a.ServiceName,
		ServiceImage:  a.ServiceImage,
		ServicePrice:  a.ServicePrice,
		Status:        a.Status.String(),
		Date:          a.Date,
		Time:          a.Time,
		Bill:          a.Bill,
		ManualEntry:   a.ManualEntry,
		CreatedAt:     a.CreatedAt,
	}
}

// BillView itemises an appointment bill.
type BillView struct {
	AppointmentID uuid.UUID    `json:"appointmentId"`
	ServicePrice  float64      `json:"servicePrice"`
	PartsTotal    float64      `json:"partsTotal"`
	Total         float64      `json:"total"`
	Orders        []*OrderView `json:"orders"`
}

// ReviewView is a published review.
type ReviewView struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"authorId"`
	AuthorName string    `json:"authorName"`
	ShopID     uuid.UUID `json:"shopId"`
	ItemID     uuid.UUID `json:"itemId"`
	ItemType   string    `json:"itemType"`
	Rating     float64   `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

func newReviewView(r *entity.Review) *ReviewView {
	return &ReviewView{
		ID:         r.ID,
		AuthorID:   r.AuthorID,
		AuthorName: r.AuthorName,
		ShopID:     r.ShopID,
		ItemID:     r.ItemID,
		ItemType:   string(r.ItemType),
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

// RatingView is an average rating.
type RatingView struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// DashboardView is the shop's daily summary.
type DashboardView struct {
	ShopID            uuid.UUID `json:"shopId"`
	Date              string    `json:"date"`
	OrderSales        float64   `json:"orderSales"`
	AppointmentSales  float64   `json:"appointmentSales"`
	TotalSales        float64   `json:"totalSales"`
	PendingOrders     int       `json:"pendingOrders"`
	TodayAppointments int       `json:"todayAppointments"`
	TodayOrders       int       `json:"todayOrders"`
	LowStockParts     int       `json:"lowStockParts"`
	OutOfStockParts   int       `json:"outOfStockParts"`
	UnparsableBills   int       `json:"unparsableBills"`
}

// ActivityView is one entry of the merged activity feed.
type ActivityView struct {
	Kind        string           `json:"kind"`
	CreatedAt   time.Time        `json:"createdAt"`
	Order       *OrderView       `json:"order,omitempty"`
	Appointment *AppointmentView `json:"appointment,omitempty"`
}

func newActivityView(item entity.ActivityItem) *ActivityView {
	return entity.Match(item,
		func(o *entity.Order) *ActivityView {
			return &ActivityView{Kind: string(item.Kind()), CreatedAt: o.CreatedAt, Order: newOrderView(o)}
		},
		func(a *entity.Appointment) *ActivityView {
			return &ActivityView{Kind: string(item.Kind()), CreatedAt: a.CreatedAt, Appointment: newAppointmentView(a)}
		},
	)
}

// SnapshotView is one SSE payload of a watched list.
type SnapshotView struct {
	Stream       string             `json:"stream"`
	Orders       []*OrderView       `json:"orders,omitempty"`
	Appointments []*AppointmentView `json:"appointments,omitempty"`
}

func mapViews[T, V any](items []T, fn func(T) V) []V {
	views := make([]V, 0, len(items))
	for _, item := range items {
		views = append(views, fn(item))
	}

	return views
}
