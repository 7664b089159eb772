package bagclient

import (
	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
)

// Reducer maintains a local BagData between fetches. A fetched snapshot
// always replaces local state; the mutation methods keep grouping and
// totals consistent until the next fetch lands.
type Reducer struct {
	data structs.BagData
}

func NewReducer() *Reducer {
	return &Reducer{data: structs.EmptyBagData()}
}

// Data returns the current snapshot.
func (r *Reducer) Data() structs.BagData {
	return r.data
}

// ReplaceAll adopts a server snapshot wholesale. The slices are copied so
// later mutations never touch the caller's copy of the snapshot.
func (r *Reducer) ReplaceAll(data structs.BagData) {
	next := structs.BagData{
		Items:      append([]structs.BagItem{}, data.Items...),
		ShopGroups: make([]structs.ShopGroup, 0, len(data.ShopGroups)),
		TotalItems: data.TotalItems,
		TotalShops: data.TotalShops,
	}
	for _, g := range data.ShopGroups {
		g.Items = append([]structs.BagItem{}, g.Items...)
		next.ShopGroups = append(next.ShopGroups, g)
	}
	r.data = next
}

// SetQuantity sets an item's quantity. Zero or below removes the item.
func (r *Reducer) SetQuantity(itemID string, quantity int64) {
	if quantity <= 0 {
		r.RemoveItem(itemID)
		return
	}
	for i := range r.data.Items {
		if r.data.Items[i].ItemID == itemID {
			r.data.Items[i].Quantity = quantity
			break
		}
	}
	for g := range r.data.ShopGroups {
		for i := range r.data.ShopGroups[g].Items {
			if r.data.ShopGroups[g].Items[i].ItemID == itemID {
				r.data.ShopGroups[g].Items[i].Quantity = quantity
			}
		}
	}
	r.recount()
}

// RemoveItem filters the item out of the flat list and out of its shop
// group. Groups keep their relative order; a group emptied by the removal
// is dropped.
func (r *Reducer) RemoveItem(itemID string) {
	items := make([]structs.BagItem, 0, len(r.data.Items))
	for _, it := range r.data.Items {
		if it.ItemID != itemID {
			items = append(items, it)
		}
	}
	r.data.Items = items

	groups := make([]structs.ShopGroup, 0, len(r.data.ShopGroups))
	for _, g := range r.data.ShopGroups {
		kept := make([]structs.BagItem, 0, len(g.Items))
		for _, it := range g.Items {
			if it.ItemID != itemID {
				kept = append(kept, it)
			}
		}
		if len(kept) == 0 {
			continue
		}
		g.Items = kept
		groups = append(groups, g)
	}
	r.data.ShopGroups = groups
	r.recount()
}

func (r *Reducer) Clear() {
	r.data = structs.EmptyBagData()
}

func (r *Reducer) recount() {
	var total int64
	for _, it := range r.data.Items {
		total += it.Quantity
	}
	r.data.TotalItems = total
	r.data.TotalShops = int64(len(r.data.ShopGroups))
}
