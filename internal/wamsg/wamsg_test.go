package wamsg

import (
	"net/url"
	"strings"
	"testing"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
)

func TestBuildIncludesCustomerBlock(t *testing.T) {
	msg := Build(ShopMessage{
		ShopName:  "Sharma General Store",
		UserName:  "Ravi",
		UserPhone: "+91 98765 43210",
		BookingID: "bk-1",
		Items: []structs.BagItem{
			{ItemName: "Rice", Quantity: 2, Unit: "kg"},
			{ItemName: "Sugar", Quantity: 1},
		},
	})

	if !strings.Contains(msg, "Sharma General Store") {
		t.Errorf("message missing shop name: %q", msg)
	}
	if !strings.Contains(msg, "Customer: Ravi (+91 98765 43210)") {
		t.Errorf("message missing customer block: %q", msg)
	}
	if !strings.Contains(msg, "1. Rice × 2 kg") {
		t.Errorf("message missing first item line: %q", msg)
	}
	if !strings.Contains(msg, "2. Sugar × 1 piece") {
		t.Errorf("unit should default to piece: %q", msg)
	}
	if !strings.Contains(msg, "Booking ref: bk-1") {
		t.Errorf("message missing booking ref: %q", msg)
	}
}

func TestBuildOmitsEmptyCustomerBlock(t *testing.T) {
	msg := Build(ShopMessage{
		ShopName:  "Corner Shop",
		BookingID: "bk-2",
		Items:     []structs.BagItem{{ItemName: "Milk", Quantity: 1, Unit: "litre"}},
	})

	if strings.Contains(msg, "Customer:") {
		t.Errorf("customer block should be omitted when name and phone are empty: %q", msg)
	}
}

func TestBuildLinkEncodesText(t *testing.T) {
	link := BuildLink("+91 98765-43210", "Namaste! Order no 5 & more")
	if link == "" {
		t.Fatal("expected a link")
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if u.Scheme != "https" || u.Host != "wa.me" {
		t.Errorf("unexpected link base: %s", link)
	}
	if u.Path != "/919876543210" {
		t.Errorf("phone should be digits only, got path %q", u.Path)
	}
	if got := u.Query().Get("text"); got != "Namaste! Order no 5 & more" {
		t.Errorf("text param round trip failed: %q", got)
	}
}

func TestBuildLinkNoDigits(t *testing.T) {
	if link := BuildLink("n/a", "hello"); link != "" {
		t.Errorf("expected empty link for phone without digits, got %q", link)
	}
	if link := BuildLink("", "hello"); link != "" {
		t.Errorf("expected empty link for empty phone, got %q", link)
	}
}
