package impl

import (
	"fmt"
	"html"
	"strings"

	"storefront/internal/domain/entity"
)

// renderCustomerEmail builds the HTML body for the customer confirmation.
func renderCustomerEmail(confirmation *entity.OrderConfirmation) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">`)
	b.WriteString(`<h1>Thank you for your order!</h1>`)
	if confirmation.CustomerName != "" {
		fmt.Fprintf(&b, `<p>Hi %s,</p>`, html.EscapeString(confirmation.CustomerName))
	}
	fmt.Fprintf(&b, `<p>Your order <strong>%s</strong> has been received and is being prepared.</p>`,
		html.EscapeString(confirmation.OrderNumber))

	writeOrderLines(&b, confirmation)

	if confirmation.Address != nil {
		b.WriteString(`<h2>Shipping to</h2>`)
		writeAddress(&b, confirmation.Address)
	}

	b.WriteString(`<p>We will let you know as soon as your order ships.</p>`)
	b.WriteString(`</div>`)

	return b.String()
}

// renderOwnerEmail builds the HTML body for the owner notification.
func renderOwnerEmail(confirmation *entity.OrderConfirmation) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">`)
	fmt.Fprintf(&b, `<h1>New order %s</h1>`, html.EscapeString(confirmation.OrderNumber))
	fmt.Fprintf(&b, `<p><strong>Customer:</strong> %s &lt;%s&gt;</p>`,
		html.EscapeString(confirmation.CustomerName),
		html.EscapeString(confirmation.CustomerEmail))
	fmt.Fprintf(&b, `<p><strong>Session:</strong> %s</p>`, html.EscapeString(confirmation.SessionID))

	writeOrderLines(&b, confirmation)

	if confirmation.Address != nil {
		b.WriteString(`<h2>Ship to</h2>`)
		writeAddress(&b, confirmation.Address)
	} else {
		b.WriteString(`<p><strong>No shipping address on the session.</strong></p>`)
	}

	b.WriteString(`</div>`)

	return b.String()
}

func writeOrderLines(b *strings.Builder, confirmation *entity.OrderConfirmation) {
	b.WriteString(`<table style="width:100%;border-collapse:collapse">`)
	b.WriteString(`<tr><th align="left">Item</th><th align="right">Qty</th><th align="right">Total</th></tr>`)
	for _, line := range confirmation.Lines {
		fmt.Fprintf(b, `<tr><td>%s</td><td align="right">%d</td><td align="right">%s</td></tr>`,
			html.EscapeString(line.Name), line.Quantity, entity.FormatAmount(line.AmountTotal))
	}
	if confirmation.ShippingAmount > 0 {
		fmt.Fprintf(b, `<tr><td>Shipping</td><td></td><td align="right">%s</td></tr>`,
			entity.FormatAmount(confirmation.ShippingAmount))
	} else {
		b.WriteString(`<tr><td>Shipping</td><td></td><td align="right">Free</td></tr>`)
	}
	fmt.Fprintf(b, `<tr><td><strong>Total</strong></td><td></td><td align="right"><strong>%s</strong></td></tr>`,
		entity.FormatAmount(confirmation.AmountTotal))
	b.WriteString(`</table>`)
}

func writeAddress(b *strings.Builder, addr *entity.ShippingAddress) {
	b.WriteString(`<p>`)
	if addr.Name != "" {
		fmt.Fprintf(b, "%s<br>", html.EscapeString(addr.Name))
	}
	fmt.Fprintf(b, "%s<br>", html.EscapeString(addr.Line1))
	if addr.Line2 != "" {
		fmt.Fprintf(b, "%s<br>", html.EscapeString(addr.Line2))
	}
	fmt.Fprintf(b, "%s, %s %s<br>%s",
		html.EscapeString(addr.City),
		html.EscapeString(addr.State),
		html.EscapeString(addr.PostalCode),
		html.EscapeString(addr.Country))
	b.WriteString(`</p>`)
}
