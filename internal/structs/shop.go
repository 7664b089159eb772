package structs

import "time"

const (
	ShopCategoryRetail     = "RETAIL"
	ShopCategoryRestaurant = "RESTAURANT"
	ShopCategoryService    = "SERVICE"
	ShopCategoryOffice     = "OFFICE"
)

type Shop struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Whatsapp    string    `json:"whatsapp"`
	Description string    `json:"description"`
	ImgUrl      string    `json:"img_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateShop struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Whatsapp    string `json:"whatsapp"`
	Description string `json:"description"`
	ImgUrl      string `json:"img_url"`
}

type PatchShop struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Whatsapp    *string `json:"whatsapp"`
	Description *string `json:"description"`
	ImgUrl      *string `json:"img_url"`
	IsActive    *bool   `json:"is_active"`
}

type GetListShopRequest struct {
	Limit    int64  `json:"limit"`
	Offset   int64  `json:"offset"`
	Category string `json:"category"`
	Search   string `json:"search"`
}

type GetListShopResponse struct {
	Count int64  `json:"count"`
	Shops []Shop `json:"shops"`
}
