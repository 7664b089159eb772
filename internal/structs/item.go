package structs

import "time"

type Item struct {
	ID          string    `json:"id"`
	ShopID      string    `json:"shopId"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       *float64  `json:"price,omitempty"`
	Unit        string    `json:"unit"`
	ImgUrl      string    `json:"img_url"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateItem struct {
	ShopID      string   `json:"shopId"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       *float64 `json:"price,omitempty"`
	Unit        string   `json:"unit"`
	ImgUrl      string   `json:"img_url"`
}

type PatchItem struct {
	ID          string   `json:"id"`
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Unit        *string  `json:"unit"`
	ImgUrl      *string  `json:"img_url"`
	InStock     *bool    `json:"in_stock"`
}

type GetListItemRequest struct {
	ShopID   string `json:"shopId"`
	Category string `json:"category"`
	Search   string `json:"search"`
	Limit    int64  `json:"limit"`
	Offset   int64  `json:"offset"`
}

type GetListItemResponse struct {
	Count int64  `json:"count"`
	Items []Item `json:"items"`
}
