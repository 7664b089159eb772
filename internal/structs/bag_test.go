package structs

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEmptyBagDataWireShape(t *testing.T) {
	raw, err := json.Marshal(EmptyBagData())
	if err != nil {
		t.Fatal(err)
	}
	s := string(raw)
	if strings.Contains(s, "null") {
		t.Errorf("empty bag must serialize with empty arrays, got %s", s)
	}
}

func TestBuildBagDataGroupsByShopInInsertionOrder(t *testing.T) {
	items := []BagItem{
		{ItemID: "i1", ItemName: "Rice", ShopID: "s1", ShopName: "Sharma Store", Quantity: 2},
		{ItemID: "i2", ItemName: "Soap", ShopID: "s2", ShopName: "Gupta Mart", Quantity: 1},
		{ItemID: "i3", ItemName: "Sugar", ShopID: "s1", ShopName: "Sharma Store", Quantity: 3},
	}

	data := BuildBagData(items)

	if data.TotalItems != 6 {
		t.Errorf("TotalItems = %d, want 6", data.TotalItems)
	}
	if data.TotalShops != 2 {
		t.Errorf("TotalShops = %d, want 2", data.TotalShops)
	}
	if len(data.ShopGroups) != 2 {
		t.Fatalf("got %d groups, want 2", len(data.ShopGroups))
	}
	if data.ShopGroups[0].ShopID != "s1" || data.ShopGroups[1].ShopID != "s2" {
		t.Errorf("groups out of insertion order: %s, %s",
			data.ShopGroups[0].ShopID, data.ShopGroups[1].ShopID)
	}
	if len(data.ShopGroups[0].Items) != 2 {
		t.Fatalf("shop s1 should hold 2 items, got %d", len(data.ShopGroups[0].Items))
	}
	if data.ShopGroups[0].Items[0].ItemID != "i1" || data.ShopGroups[0].Items[1].ItemID != "i3" {
		t.Errorf("items within a shop must keep list order")
	}
}

func TestBuildBagDataEmpty(t *testing.T) {
	data := BuildBagData(nil)
	if data.TotalItems != 0 || data.TotalShops != 0 {
		t.Errorf("empty input must yield zero totals, got %+v", data)
	}
	if data.Items == nil || data.ShopGroups == nil {
		t.Error("empty input must yield empty slices, not nil")
	}
}
