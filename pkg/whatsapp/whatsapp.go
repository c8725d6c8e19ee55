// Package whatsapp builds the wa.me deep links the storefront uses in
// place of a payment gateway: the order is rendered as a text message
// and handed to WhatsApp addressed at the shop's business number.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"fashionworld/internal/models"
)

// OrderLink renders the order as a WhatsApp message and returns the
// wa.me URL that opens a chat with the given number, message prefilled.
func OrderLink(number string, order *models.Order) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(OrderMessage(order)))
}

// OrderMessage renders the order request text. The layout matches what
// the shop staff expect to see in their WhatsApp inbox.
func OrderMessage(order *models.Order) string {
	var b strings.Builder

	b.WriteString("🛍️ *New Order Request*\n\n")

	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf(
			"📦 *%s*\n   Size: %s | Qty: %d\n   Price: ₹%s × %d = ₹%s\n   Image: %s",
			item.ProductName,
			item.Size,
			item.Quantity,
			formatAmount(item.Price),
			item.Quantity,
			formatAmount(item.Price*item.Quantity),
			item.Image,
		))
	}
	b.WriteString(strings.Join(lines, "\n\n"))

	b.WriteString("\n\n━━━━━━━━━━━━━━\n")
	b.WriteString("👤 *Customer Details*\n")
	b.WriteString(fmt.Sprintf("Name: %s\n", orDefault(order.CustomerName)))
	b.WriteString(fmt.Sprintf("Phone: %s\n", orDefault(order.CustomerPhone)))
	b.WriteString(fmt.Sprintf("Email: %s\n", orDefault(order.CustomerEmail)))
	b.WriteString(fmt.Sprintf("Address: %s\n\n", orDefault(order.Address)))
	b.WriteString(fmt.Sprintf("💰 *Total: ₹%s*", formatAmount(order.Total)))

	return b.String()
}

func orDefault(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}

// formatAmount groups digits with commas, e.g. 12999 -> "12,999".
func formatAmount(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
