package payment

import (
	"net/url"
	"strconv"
)

// Swish payment request parameters. The URI is consumed by the customer's
// wallet app when the QR code is scanned; payment happens entirely outside
// this system and is never verified here.
const (
	baseURL  = "https://app.swish.nu/1/p/sw/"
	Currency = "SEK"
)

// UnitPrice is the price of one copy in SEK, tax and shipping included.
const UnitPrice = 285

// Total returns the order total in SEK.
func Total(unitPrice, copies int) int {
	return unitPrice * copies
}

// RequestURI builds the Swish payment request for an order: merchant number,
// amount, currency and a message naming the product and customer.
func RequestURI(merchant string, unitPrice, copies int, name string) string {
	q := url.Values{}
	q.Set("sw", merchant)
	q.Set("amt", strconv.Itoa(Total(unitPrice, copies)))
	q.Set("cur", Currency)
	q.Set("msg", "Vargar&Vatten från "+name)
	q.Set("src", "qr")
	return baseURL + "?" + q.Encode()
}
