package storefront

import "time"

// The backend is document-store based; identifiers travel as opaque "_id"
// strings and references may arrive populated (object) or as bare ids.

// Collection is a named product grouping with a cover image.
type Collection struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// CollectionRef is the populated form of a product's collection reference.
type CollectionRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Product is a catalog entry. Stock drives a derived status label that is
// never persisted server-side.
type Product struct {
	ID             string         `json:"_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	Stock          int            `json:"stock"`
	Sizes          []string       `json:"sizes"`
	HeroImage      string         `json:"heroImage"`
	ShowcaseImages []string       `json:"showcaseImages"`
	Collection     *CollectionRef `json:"collection,omitempty"`
	CreatedAt      time.Time      `json:"createdAt,omitempty"`
}

// HeroImage is one slide of the landing-page carousel.
type HeroImage struct {
	ID        string    `json:"_id"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Admin is a console operator account. Password is write-only: supplied on
// creation, never returned by the backend.
type Admin struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// User is a storefront customer profile.
type User struct {
	ID        string    `json:"_id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	Pincode   string    `json:"pincode,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Address is an order's shipping destination.
type Address struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductName string  `json:"productName"`
	Size        string  `json:"size,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// StatusHistoryEntry records one status transition of an order.
type StatusHistoryEntry struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
	ChangedBy string    `json:"changedBy,omitempty"`
}

// Order is a customer purchase. It is mutated only through the explicit
// status-change, cancel and refund operations, never by direct field edits.
type Order struct {
	ID            string               `json:"_id"`
	CustomerName  string               `json:"customerName"`
	CustomerEmail string               `json:"customerEmail,omitempty"`
	CustomerPhone string               `json:"customerPhone,omitempty"`
	Address       Address              `json:"address"`
	Items         []OrderItem          `json:"items"`
	TotalAmount   float64              `json:"totalAmount"`
	PaymentMethod string               `json:"paymentMethod"`
	PaymentStatus string               `json:"paymentStatus"`
	OrderStatus   string               `json:"orderStatus"`
	StatusHistory []StatusHistoryEntry `json:"statusHistory,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"createdAt,omitempty"`
	UpdatedAt     time.Time            `json:"updatedAt,omitempty"`
}

// StockItem is one row of the stock view.
type StockItem struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Stock    int    `json:"stock"`
}

// StockUpdate sets one product's stock quantity in a bulk update.
type StockUpdate struct {
	ProductID string `json:"productId"`
	Stock     int    `json:"stock"`
}

// StockSummary is the backend's aggregate count of products per stock status.
type StockSummary struct {
	Total      int `json:"total"`
	InStock    int `json:"inStock"`
	LowStock   int `json:"lowStock"`
	OutOfStock int `json:"outOfStock"`
}

// LandingConfig is the singleton curating the public storefront home page.
// Slice order is display order and must be preserved on every update.
type LandingConfig struct {
	Collections []Collection `json:"collections"`
	BestSellers []Product    `json:"bestSellers"`
	HeroImages  []HeroImage  `json:"heroImages,omitempty"`
}

// CartItem is one entry of a customer cart.
type CartItem struct {
	Product  Product `json:"productId"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size,omitempty"`
}

// Cart is a customer's cart, fetched in bulk for the analysis screen.
type Cart struct {
	ID     string     `json:"_id"`
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
}

// WishlistUser is a customer together with their wishlist, fetched in bulk.
type WishlistUser struct {
	ID       string    `json:"_id"`
	Name     string    `json:"name"`
	Wishlist []Product `json:"wishlist"`
}
