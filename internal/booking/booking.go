package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/AmirH031/SamanKhojo-sub003/internal/bag"
	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/internal/wamsg"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"
	bagrepo "github.com/AmirH031/SamanKhojo-sub003/pkg/repository/postgres/bag_repo"
	bookingrepo "github.com/AmirH031/SamanKhojo-sub003/pkg/repository/postgres/booking_repo"
	shoprepo "github.com/AmirH031/SamanKhojo-sub003/pkg/repository/postgres/shop_repo"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	// Notifier pushes a confirmed booking to the admin channel. Best
	// effort; failures never affect the confirmation.
	Notifier interface {
		BookingConfirmed(ctx context.Context, n structs.BookingNotification)
	}

	Params struct {
		fx.In
		BagRepo     bagrepo.Repo
		BookingRepo bookingrepo.Repo
		ShopRepo    shoprepo.Repo
		BagSvc      bag.Service
		Notifier    Notifier `optional:"true"`
		Logger      logger.Logger
	}

	Service interface {
		Confirm(ctx context.Context, uid string, req structs.ConfirmBooking) (structs.BookingConfirmation, error)
		GetList(ctx context.Context, req structs.GetListBookingRequest) (structs.GetListBookingResponse, error)
	}

	service struct {
		bagRepo     bagrepo.Repo
		bookingRepo bookingrepo.Repo
		shopRepo    shoprepo.Repo
		bagSvc      bag.Service
		notifier    Notifier
		logger      logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		bagRepo:     p.BagRepo,
		bookingRepo: p.BookingRepo,
		shopRepo:    p.ShopRepo,
		bagSvc:      p.BagSvc,
		notifier:    p.Notifier,
		logger:      p.Logger,
	}
}

// Confirm turns the user's bag into one WhatsApp deep link per shop,
// records the booking and empties the bag. Empty userName/userPhone are
// accepted: the shop message simply omits the customer block.
func (s *service) Confirm(ctx context.Context, uid string, req structs.ConfirmBooking) (structs.BookingConfirmation, error) {
	var res structs.BookingConfirmation

	items, err := s.bagRepo.GetByUID(ctx, uid)
	if err != nil {
		s.logger.Error(ctx, "->bagRepo.GetByUID", zap.Error(err))
		return res, err
	}
	if len(items) == 0 {
		return res, structs.ErrEmptyBag
	}

	data := structs.BuildBagData(items)
	bookingID := uuid.NewString()

	links := make([]structs.WhatsAppLink, 0, len(data.ShopGroups))
	shopNames := make([]string, 0, len(data.ShopGroups))
	skipped := 0

	for _, group := range data.ShopGroups {
		shopNames = append(shopNames, group.ShopName)

		shop, err := s.shopRepo.GetByID(ctx, group.ShopID)
		if err != nil {
			if !errors.Is(err, structs.ErrNotFound) {
				s.logger.Error(ctx, "->shopRepo.GetByID", zap.Error(err))
				return res, err
			}
			s.logger.Warn(ctx, "bag references unknown shop, skipping link",
				zap.String("shop_id", group.ShopID))
			skipped++
			continue
		}

		phone := shop.Whatsapp
		if phone == "" {
			phone = shop.Phone
		}

		var totalQty int64
		for _, item := range group.Items {
			totalQty += item.Quantity
		}

		text := wamsg.Build(wamsg.ShopMessage{
			ShopName:  group.ShopName,
			UserName:  req.UserName,
			UserPhone: req.UserPhone,
			BookingID: bookingID,
			Items:     group.Items,
		})

		link := wamsg.BuildLink(phone, text)
		if link == "" {
			s.logger.Warn(ctx, "shop has no usable whatsapp phone, skipping link",
				zap.String("shop_id", group.ShopID))
			skipped++
			continue
		}

		links = append(links, structs.WhatsAppLink{
			ShopID:        group.ShopID,
			ShopName:      group.ShopName,
			ShopPhone:     phone,
			WhatsappLink:  link,
			ItemCount:     int64(len(group.Items)),
			TotalQuantity: totalQty,
		})
	}

	err = s.bookingRepo.CreateAndClearBag(ctx, structs.Booking{
		ID:         bookingID,
		UID:        uid,
		UserName:   req.UserName,
		UserPhone:  req.UserPhone,
		TotalShops: data.TotalShops,
		TotalItems: data.TotalItems,
		Items:      items,
	})
	if err != nil {
		s.logger.Error(ctx, "->bookingRepo.CreateAndClearBag", zap.Error(err))
		return res, err
	}

	s.bagSvc.Invalidate(ctx, uid)

	if s.notifier != nil {
		go s.notifier.BookingConfirmed(context.WithoutCancel(ctx), structs.BookingNotification{
			BookingID:  bookingID,
			UID:        uid,
			UserName:   req.UserName,
			UserPhone:  req.UserPhone,
			TotalShops: data.TotalShops,
			TotalItems: data.TotalItems,
			ShopNames:  shopNames,
		})
	}

	message := fmt.Sprintf("Booking confirmed for %d shop(s)", data.TotalShops)
	if skipped > 0 {
		message = fmt.Sprintf("%s; %d shop(s) had no WhatsApp contact", message, skipped)
	}

	return structs.BookingConfirmation{
		Success:    true,
		BookingID:  bookingID,
		Message:    message,
		Links:      links,
		TotalShops: data.TotalShops,
	}, nil
}

func (s *service) GetList(ctx context.Context, req structs.GetListBookingRequest) (structs.GetListBookingResponse, error) {
	resp, err := s.bookingRepo.GetList(ctx, req)
	if err != nil {
		s.logger.Error(ctx, "->bookingRepo.GetList", zap.Error(err))
		return resp, err
	}
	return resp, nil
}
