package bagclient

import (
	"testing"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
)

func sampleBag() structs.BagData {
	return structs.BuildBagData([]structs.BagItem{
		{ItemID: "i1", ItemName: "Rice", ShopID: "s1", ShopName: "Sharma Store", Quantity: 2},
		{ItemID: "i2", ItemName: "Soap", ShopID: "s2", ShopName: "Gupta Mart", Quantity: 1},
		{ItemID: "i3", ItemName: "Sugar", ShopID: "s1", ShopName: "Sharma Store", Quantity: 3},
	})
}

func TestReducerReplaceAllWins(t *testing.T) {
	r := NewReducer()
	r.ReplaceAll(sampleBag())
	r.SetQuantity("i1", 9)

	fetched := structs.BuildBagData([]structs.BagItem{
		{ItemID: "i1", ItemName: "Rice", ShopID: "s1", ShopName: "Sharma Store", Quantity: 2},
	})
	r.ReplaceAll(fetched)

	data := r.Data()
	if len(data.Items) != 1 || data.Items[0].Quantity != 2 {
		t.Errorf("fetched snapshot must win over local edits, got %+v", data.Items)
	}
}

func TestReducerSetQuantityUpdatesTotals(t *testing.T) {
	r := NewReducer()
	r.ReplaceAll(sampleBag())

	r.SetQuantity("i1", 5)

	data := r.Data()
	if data.TotalItems != 9 {
		t.Errorf("TotalItems = %d, want 9", data.TotalItems)
	}
	if data.TotalShops != 2 {
		t.Errorf("TotalShops = %d, want 2", data.TotalShops)
	}
}

func TestReducerSetQuantityZeroRemoves(t *testing.T) {
	r := NewReducer()
	r.ReplaceAll(sampleBag())

	r.SetQuantity("i2", 0)

	data := r.Data()
	for _, it := range data.Items {
		if it.ItemID == "i2" {
			t.Fatal("item with quantity 0 must be removed")
		}
	}
	if data.TotalShops != 1 {
		t.Errorf("emptied shop group must be dropped, TotalShops = %d", data.TotalShops)
	}
	for _, g := range data.ShopGroups {
		if len(g.Items) == 0 {
			t.Errorf("empty group %s left behind", g.ShopID)
		}
	}
}

func TestReducerRemoveKeepsOtherShops(t *testing.T) {
	r := NewReducer()
	r.ReplaceAll(sampleBag())

	r.RemoveItem("i1")

	data := r.Data()
	if data.TotalItems != 4 {
		t.Errorf("TotalItems = %d, want 4", data.TotalItems)
	}
	if data.TotalShops != 2 {
		t.Errorf("shop s1 still holds i3, TotalShops = %d, want 2", data.TotalShops)
	}
	if data.ShopGroups[0].ShopID != "s1" {
		t.Errorf("group order must survive removal, got %s first", data.ShopGroups[0].ShopID)
	}
	if len(data.ShopGroups[0].Items) != 1 || data.ShopGroups[0].Items[0].ItemID != "i3" {
		t.Errorf("s1 group must be filtered to i3, got %+v", data.ShopGroups[0].Items)
	}
}

func TestReducerLeavesCallerSnapshotAlone(t *testing.T) {
	snap := sampleBag()

	r := NewReducer()
	r.ReplaceAll(snap)
	r.RemoveItem("i1")
	r.SetQuantity("i2", 7)

	if snap.Items[0].ItemID != "i1" || snap.Items[0].Quantity != 2 {
		t.Errorf("caller's snapshot mutated, first item now %+v", snap.Items[0])
	}
	if snap.ShopGroups[1].Items[0].Quantity != 1 {
		t.Errorf("caller's group mutated, i2 quantity now %d", snap.ShopGroups[1].Items[0].Quantity)
	}
}

func TestReducerClear(t *testing.T) {
	r := NewReducer()
	r.ReplaceAll(sampleBag())

	r.Clear()

	data := r.Data()
	if len(data.Items) != 0 || data.TotalItems != 0 || data.TotalShops != 0 {
		t.Errorf("clear must reset to the canonical empty bag, got %+v", data)
	}
	if data.Items == nil || data.ShopGroups == nil {
		t.Error("cleared bag must keep empty slices, not nil")
	}
}
