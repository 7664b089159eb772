package booking

import (
	"context"
	"strings"
	"testing"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"
)

type fakeBagRepo struct {
	items []structs.BagItem
}

func (f *fakeBagRepo) Upsert(ctx context.Context, uid string, req structs.AddToBag) error {
	return nil
}

func (f *fakeBagRepo) GetByUID(ctx context.Context, uid string) ([]structs.BagItem, error) {
	return f.items, nil
}

func (f *fakeBagRepo) UpdateQuantity(ctx context.Context, uid, itemID string, quantity int64) (int64, error) {
	return 0, nil
}

func (f *fakeBagRepo) Remove(ctx context.Context, uid, itemID string) error { return nil }
func (f *fakeBagRepo) Clear(ctx context.Context, uid string) error          { return nil }
func (f *fakeBagRepo) Count(ctx context.Context, uid string) (int64, error) { return 0, nil }

type fakeBookingRepo struct {
	created *structs.Booking
}

func (f *fakeBookingRepo) CreateAndClearBag(ctx context.Context, b structs.Booking) error {
	f.created = &b
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (structs.Booking, error) {
	return structs.Booking{}, structs.ErrNotFound
}

func (f *fakeBookingRepo) GetList(ctx context.Context, req structs.GetListBookingRequest) (structs.GetListBookingResponse, error) {
	return structs.GetListBookingResponse{}, nil
}

type fakeShopRepo struct {
	shops map[string]structs.Shop
}

func (f *fakeShopRepo) Create(ctx context.Context, req structs.CreateShop) (string, error) {
	return "", nil
}

func (f *fakeShopRepo) GetByID(ctx context.Context, id string) (structs.Shop, error) {
	shop, ok := f.shops[id]
	if !ok {
		return structs.Shop{}, structs.ErrNotFound
	}
	return shop, nil
}

func (f *fakeShopRepo) GetList(ctx context.Context, req structs.GetListShopRequest) (structs.GetListShopResponse, error) {
	return structs.GetListShopResponse{}, nil
}

func (f *fakeShopRepo) Patch(ctx context.Context, req structs.PatchShop) (int64, error) {
	return 0, nil
}

func (f *fakeShopRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeBagSvc struct {
	invalidated []string
}

func (f *fakeBagSvc) Add(ctx context.Context, uid string, req structs.AddToBag) error { return nil }

func (f *fakeBagSvc) Get(ctx context.Context, uid string) (structs.BagData, error) {
	return structs.EmptyBagData(), nil
}

func (f *fakeBagSvc) UpdateQuantity(ctx context.Context, uid, itemID string, quantity int64) error {
	return nil
}

func (f *fakeBagSvc) Remove(ctx context.Context, uid, itemID string) error { return nil }
func (f *fakeBagSvc) Clear(ctx context.Context, uid string) error          { return nil }
func (f *fakeBagSvc) Count(ctx context.Context, uid string) (int64, error) { return 0, nil }

func (f *fakeBagSvc) Invalidate(ctx context.Context, uid string) {
	f.invalidated = append(f.invalidated, uid)
}

func newTestService(bagRepo *fakeBagRepo, bookingRepo *fakeBookingRepo, shopRepo *fakeShopRepo, bagSvc *fakeBagSvc) Service {
	return New(Params{
		BagRepo:     bagRepo,
		BookingRepo: bookingRepo,
		ShopRepo:    shopRepo,
		BagSvc:      bagSvc,
		Logger:      logger.New("error"),
	})
}

func TestConfirmEmptyBag(t *testing.T) {
	svc := newTestService(&fakeBagRepo{}, &fakeBookingRepo{}, &fakeShopRepo{}, &fakeBagSvc{})

	_, err := svc.Confirm(context.Background(), "u1", structs.ConfirmBooking{})
	if err != structs.ErrEmptyBag {
		t.Fatalf("Confirm on empty bag = %v, want ErrEmptyBag", err)
	}
}

func TestConfirmBuildsOneLinkPerShop(t *testing.T) {
	bagRepo := &fakeBagRepo{items: []structs.BagItem{
		{ItemID: "i1", ItemName: "Rice", ShopID: "s1", ShopName: "Sharma Store", Quantity: 2, Unit: "kg"},
		{ItemID: "i2", ItemName: "Soap", ShopID: "s2", ShopName: "Gupta Mart", Quantity: 1},
		{ItemID: "i3", ItemName: "Sugar", ShopID: "s1", ShopName: "Sharma Store", Quantity: 3, Unit: "kg"},
	}}
	shopRepo := &fakeShopRepo{shops: map[string]structs.Shop{
		"s1": {ID: "s1", Name: "Sharma Store", Whatsapp: "+919876543210"},
		"s2": {ID: "s2", Name: "Gupta Mart", Phone: "+911234567890"},
	}}
	bookingRepo := &fakeBookingRepo{}
	bagSvc := &fakeBagSvc{}

	svc := newTestService(bagRepo, bookingRepo, shopRepo, bagSvc)

	conf, err := svc.Confirm(context.Background(), "u1", structs.ConfirmBooking{
		UserName:  "Ravi",
		UserPhone: "+919999999999",
	})
	if err != nil {
		t.Fatal(err)
	}

	if !conf.Success || conf.BookingID == "" {
		t.Errorf("unexpected confirmation %+v", conf)
	}
	if conf.TotalShops != 2 {
		t.Errorf("TotalShops = %d, want 2", conf.TotalShops)
	}
	if len(conf.Links) != 2 {
		t.Fatalf("got %d links, want 2", len(conf.Links))
	}
	if conf.Links[0].ShopID != "s1" || conf.Links[1].ShopID != "s2" {
		t.Errorf("links out of shop insertion order: %+v", conf.Links)
	}
	if conf.Links[0].ItemCount != 2 || conf.Links[0].TotalQuantity != 5 {
		t.Errorf("s1 link totals wrong: %+v", conf.Links[0])
	}
	if !strings.Contains(conf.Links[1].WhatsappLink, "wa.me/911234567890") {
		t.Errorf("s2 should fall back to the voice phone: %s", conf.Links[1].WhatsappLink)
	}

	if bookingRepo.created == nil {
		t.Fatal("booking was not persisted")
	}
	if bookingRepo.created.TotalItems != 6 || bookingRepo.created.TotalShops != 2 {
		t.Errorf("persisted booking totals wrong: %+v", bookingRepo.created)
	}
	if len(bagSvc.invalidated) != 1 || bagSvc.invalidated[0] != "u1" {
		t.Errorf("bag cache was not invalidated for u1: %v", bagSvc.invalidated)
	}
}

func TestConfirmSkipsShopsWithoutPhone(t *testing.T) {
	bagRepo := &fakeBagRepo{items: []structs.BagItem{
		{ItemID: "i1", ItemName: "Rice", ShopID: "s1", ShopName: "Sharma Store", Quantity: 1},
		{ItemID: "i2", ItemName: "Soap", ShopID: "s2", ShopName: "No Phone Shop", Quantity: 1},
	}}
	shopRepo := &fakeShopRepo{shops: map[string]structs.Shop{
		"s1": {ID: "s1", Name: "Sharma Store", Whatsapp: "+919876543210"},
		"s2": {ID: "s2", Name: "No Phone Shop"},
	}}

	svc := newTestService(bagRepo, &fakeBookingRepo{}, shopRepo, &fakeBagSvc{})

	conf, err := svc.Confirm(context.Background(), "u1", structs.ConfirmBooking{})
	if err != nil {
		t.Fatal(err)
	}

	if len(conf.Links) != 1 {
		t.Fatalf("got %d links, want 1", len(conf.Links))
	}
	if !strings.Contains(conf.Message, "no WhatsApp contact") {
		t.Errorf("message should mention the skipped shop: %q", conf.Message)
	}
}

func TestConfirmSkipsUnknownShop(t *testing.T) {
	bagRepo := &fakeBagRepo{items: []structs.BagItem{
		{ItemID: "i1", ItemName: "Rice", ShopID: "gone", ShopName: "Closed Shop", Quantity: 1},
	}}

	svc := newTestService(bagRepo, &fakeBookingRepo{}, &fakeShopRepo{shops: map[string]structs.Shop{}}, &fakeBagSvc{})

	conf, err := svc.Confirm(context.Background(), "u1", structs.ConfirmBooking{})
	if err != nil {
		t.Fatal(err)
	}
	if len(conf.Links) != 0 {
		t.Errorf("unknown shop must not yield a link, got %+v", conf.Links)
	}
	if !conf.Success {
		t.Error("booking should still be recorded")
	}
}
