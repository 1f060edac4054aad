package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/idir2023/argan-project/internal/domain"
)

// Payment method labels as rendered in confirmation messages.
const (
	labelCashOnDelivery = "الدفع عند الاستلام"
	labelCard           = "بطاقة بنكية"
)

// OrderMessage renders the fixed-format plaintext order summary used
// for both confirmation channels.
func OrderMessage(o domain.Order) string {
	var items strings.Builder
	for _, it := range o.Items {
		fmt.Fprintf(&items, "- %s (%d)\n", it.Name, it.Quantity)
	}

	label := labelCashOnDelivery
	if o.PaymentMethod == "card" {
		label = labelCard
	}

	return fmt.Sprintf(`طلب جديد من متجر أرغانيا
------------------
العميل: %s %s
العنوان: %s, %s
الهاتف: %s
البريد: %s
------------------
المنتجات:
%s------------------
طريقة الدفع: %s
المجموع: %d درهم`,
		o.FirstName, o.LastName,
		o.City, o.Address,
		o.Phone,
		o.Email,
		items.String(),
		label,
		o.Total)
}

// FastOrderMessage renders the single-product summary used by the
// quick-order form, which skips the cart entirely. Quick orders are
// always cash on delivery.
func FastOrderMessage(o domain.Order) string {
	var name string
	var price int64
	if len(o.Items) > 0 {
		name = o.Items[0].Name
		price = o.Items[0].Price
	}

	return fmt.Sprintf(`طلب جديد من متجر أرغانيا (طلب سريع)
------------------
المنتج: %s
السعر: %d درهم
------------------
العميل: %s
العنوان: %s, %s
الهاتف: %s
------------------
طريقة الدفع: %s`,
		name,
		price,
		o.FirstName,
		o.City, o.Address,
		o.Phone,
		labelCashOnDelivery)
}

// FastOrderWhatsAppLink builds the quick-order messaging deep link.
func FastOrderWhatsAppLink(o domain.Order, phone string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(FastOrderMessage(o)))
}

// FastOrderMailtoLink builds the quick-order email compose deep link,
// with the product name in the subject.
func FastOrderMailtoLink(o domain.Order, to string) string {
	var name string
	if len(o.Items) > 0 {
		name = o.Items[0].Name
	}
	subject := fmt.Sprintf("طلب جديد - %s", name)
	body := strings.ReplaceAll(FastOrderMessage(o), "\n", "\r\n")
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", to, url.QueryEscape(subject), url.QueryEscape(body))
}

// WhatsAppLink builds the messaging deep link carrying the order
// summary, URL-escaped.
func WhatsAppLink(o domain.Order, phone string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(OrderMessage(o)))
}

// MailtoLink builds the email compose deep link. Newlines become CRLF
// before escaping so email clients keep the line structure.
func MailtoLink(o domain.Order, to string) string {
	subject := fmt.Sprintf("طلب جديد من متجر أرغانيا - %s %s", o.FirstName, o.LastName)
	body := strings.ReplaceAll(OrderMessage(o), "\n", "\r\n")
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", to, url.QueryEscape(subject), url.QueryEscape(body))
}
