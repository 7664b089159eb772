package structs

import "time"

type WhatsAppLink struct {
	ShopID        string `json:"shopId"`
	ShopName      string `json:"shopName"`
	ShopPhone     string `json:"shopPhone"`
	WhatsappLink  string `json:"whatsappLink"`
	ItemCount     int64  `json:"itemCount"`
	TotalQuantity int64  `json:"totalQuantity"`
}

type BookingConfirmation struct {
	Success    bool           `json:"success"`
	BookingID  string         `json:"bookingId"`
	Message    string         `json:"message"`
	Links      []WhatsAppLink `json:"links"`
	TotalShops int64          `json:"totalShops"`
}

type ConfirmBooking struct {
	UserPhone string `json:"userPhone"`
	UserName  string `json:"userName"`
}

type Booking struct {
	ID         string    `json:"id"`
	UID        string    `json:"uid"`
	UserName   string    `json:"userName"`
	UserPhone  string    `json:"userPhone"`
	TotalShops int64     `json:"totalShops"`
	TotalItems int64     `json:"totalItems"`
	Items      []BagItem `json:"items"`
	CreatedAt  time.Time `json:"createdAt"`
}

type GetListBookingRequest struct {
	Limit  int64  `json:"limit"`
	Offset int64  `json:"offset"`
	UID    string `json:"uid"`
}

type GetListBookingResponse struct {
	Count    int64     `json:"count"`
	Bookings []Booking `json:"bookings"`
}

// BookingNotification is what the admin channel sees after a confirm.
type BookingNotification struct {
	BookingID  string
	UID        string
	UserName   string
	UserPhone  string
	TotalShops int64
	TotalItems int64
	ShopNames  []string
}
