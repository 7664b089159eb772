package structs

import "time"

const DefaultUnit = "piece"

type BagItem struct {
	ItemID   string    `json:"itemId"`
	ItemName string    `json:"itemName"`
	ShopID   string    `json:"shopId"`
	ShopName string    `json:"shopName"`
	Quantity int64     `json:"quantity"`
	Unit     string    `json:"unit"`
	Price    *float64  `json:"price,omitempty"`
	AddedAt  time.Time `json:"addedAt"`
}

type ShopGroup struct {
	ShopID   string    `json:"shopId"`
	ShopName string    `json:"shopName"`
	Items    []BagItem `json:"items"`
}

type BagData struct {
	Items      []BagItem   `json:"items"`
	ShopGroups []ShopGroup `json:"shopGroups"`
	TotalItems int64       `json:"totalItems"`
	TotalShops int64       `json:"totalShops"`
}

type AddToBag struct {
	ItemID   string   `json:"itemId"`
	ItemName string   `json:"itemName"`
	ShopID   string   `json:"shopId"`
	ShopName string   `json:"shopName"`
	Quantity int64    `json:"quantity"`
	Unit     string   `json:"unit"`
	Price    *float64 `json:"price,omitempty"`
	// LineKey is a client-generated ksuid. Replaying an add with the same
	// key does not double the quantity.
	LineKey string `json:"lineKey,omitempty"`
}

type UpdateBagItem struct {
	Quantity int64 `json:"quantity"`
}

// EmptyBagData is the canonical zero snapshot: empty slices, never nil,
// so the wire shape stays {"items":[],"shopGroups":[],...}.
func EmptyBagData() BagData {
	return BagData{
		Items:      []BagItem{},
		ShopGroups: []ShopGroup{},
	}
}

// BuildBagData derives the grouped snapshot from a flat item list. Shops
// appear in the order their first item was added; items keep list order
// within their shop.
func BuildBagData(items []BagItem) BagData {
	data := EmptyBagData()
	index := map[string]int{}

	for _, it := range items {
		data.Items = append(data.Items, it)
		data.TotalItems += it.Quantity

		i, ok := index[it.ShopID]
		if !ok {
			i = len(data.ShopGroups)
			index[it.ShopID] = i
			data.ShopGroups = append(data.ShopGroups, ShopGroup{
				ShopID:   it.ShopID,
				ShopName: it.ShopName,
			})
		}
		data.ShopGroups[i].Items = append(data.ShopGroups[i].Items, it)
	}

	data.TotalShops = int64(len(data.ShopGroups))
	return data
}
