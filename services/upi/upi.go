// Package upi builds UPI payment intents and renders them as scannable
// QR images.
package upi

import (
	"encoding/base64"
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

// BuildURI encodes a payment request as a upi:// URI.
func BuildURI(upiID, payeeName string, amount float64, orderRef string) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%.2f&cu=INR&tn=Order%s",
		upiID, url.QueryEscape(payeeName), amount, orderRef)
}

// QRDataURL renders the content as a 256px PNG QR code wrapped in a
// base64 data URL, ready for an <img> tag.
func QRDataURL(content string) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
