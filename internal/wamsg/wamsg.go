package wamsg

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/utils"
)

// ShopMessage is everything needed to render one shop's booking message.
type ShopMessage struct {
	ShopName  string
	UserName  string
	UserPhone string
	BookingID string
	Items     []structs.BagItem
}

// Build renders the prefilled WhatsApp text sent to one shop. The
// customer block is dropped entirely when both name and phone are empty,
// so a profile-service outage still produces a usable message.
func Build(m ShopMessage) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Namaste %s! New booking via SamanKhojo.\n\n", m.ShopName)

	if m.UserName != "" || m.UserPhone != "" {
		b.WriteString("Customer:")
		if m.UserName != "" {
			b.WriteString(" " + m.UserName)
		}
		if m.UserPhone != "" {
			b.WriteString(" (" + m.UserPhone + ")")
		}
		b.WriteString("\n\n")
	}

	b.WriteString("Items:\n")
	for i, item := range m.Items {
		unit := item.Unit
		if unit == "" {
			unit = structs.DefaultUnit
		}
		fmt.Fprintf(&b, "%d. %s × %d %s\n", i+1, item.ItemName, item.Quantity, unit)
	}

	fmt.Fprintf(&b, "\nBooking ref: %s", m.BookingID)
	return b.String()
}

// BuildLink produces the wa.me deep link that opens a prefilled chat.
// Returns an empty string when the phone has no digits at all.
func BuildLink(phone, text string) string {
	digits := utils.NormalizePhone(phone)
	if digits == "" {
		return ""
	}

	q := url.Values{}
	q.Set("text", text)

	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + digits,
		RawQuery: q.Encode(),
	}
	return u.String()
}
