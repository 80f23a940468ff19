package mailer

import (
	"fmt"
	"strings"
	"time"

	"mystorx-api/models"
)

// wrapWithTheme puts rendered body rows inside the branded card layout.
func wrapWithTheme(theme Theme, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;background:%s;margin:0;padding:30px 0;">
<table align="center" cellpadding="0" cellspacing="0" style="background:%s;border-radius:16px;padding:40px 30px;width:100%%;max-width:650px;border:1px solid %s;">
<tr>
  <td align="center" style="padding:20px 0 30px;border-bottom:2px solid %s;">
    <img src="%s" width="50" style="display:inline-block;vertical-align:middle;" />
    <h1 style="margin:0;display:inline-block;vertical-align:middle;font-size:28px;color:%s;">%s</h1>
    <p style="margin:5px 0 0;font-size:12px;color:%s;letter-spacing:1px;">%s</p>
  </td>
</tr>
%s
<tr>
  <td align="center" style="padding:30px 0 10px;border-top:1px solid %s;">
    <p style="margin:0;font-size:13px;color:%s;">&copy; %d <strong>%s</strong>. All rights reserved.</p>
  </td>
</tr>
</table>
</body>
</html>`,
		theme.Background, theme.CardBackground, theme.BorderColor,
		theme.BrandColor, theme.LogoURL, theme.BrandColor, theme.BrandName,
		theme.TextLight, theme.Tagline,
		body,
		theme.BorderColor, theme.TextLight, time.Now().Year(), theme.BrandName)
}

func otpBox(theme Theme, otp string) string {
	return fmt.Sprintf(`<tr>
  <td align="center" style="padding:20px 0;">
    <div style="font-size:28px;font-weight:bold;letter-spacing:6px;padding:15px 30px;background:#f1f5ff;color:%s;border-radius:10px;display:inline-block;">%s</div>
    <p style="font-size:14px;color:%s;margin-top:10px;">This OTP is valid for <b>5 minutes</b></p>
  </td>
</tr>`, theme.BrandColor, otp, theme.TextLight)
}

func itemRows(items []models.OrderItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, `<li style="padding:4px 0;">%s &times; %d &mdash; &#8377;%.2f</li>`,
			item.Name, item.Qty, item.Price*float64(item.Qty))
	}
	return b.String()
}

// WelcomeHTML greets a newly verified account.
func WelcomeHTML(theme Theme, name string) string {
	body := fmt.Sprintf(`<tr>
  <td align="center">
    <h3 style="color:%s;">Welcome to %s!</h3>
    <p style="font-size:15px;color:#444;">Hi <b>%s</b>, we're excited to have you on board.</p>
    <p style="font-size:13px;color:#999;">We're here to help you with anything you need. Happy shopping!</p>
  </td>
</tr>`, theme.BrandColor, theme.BrandName, name)
	return wrapWithTheme(theme, body)
}

// DeliveryWelcomeHTML greets a new delivery partner.
func DeliveryWelcomeHTML(theme Theme, name string) string {
	body := fmt.Sprintf(`<tr>
  <td align="center">
    <h3 style="color:%s;">Welcome to the %s Delivery Team!</h3>
    <p style="font-size:15px;color:#444;">Hi <b>%s</b>, your delivery partner account is ready.</p>
    <p style="font-size:13px;color:#999;">Sign in to the delivery console to see orders assigned to you.</p>
  </td>
</tr>`, theme.BrandColor, theme.BrandName, name)
	return wrapWithTheme(theme, body)
}

// VerifyOtpHTML carries the registration code.
func VerifyOtpHTML(theme Theme, name, otp string) string {
	body := fmt.Sprintf(`<tr>
  <td align="center">
    <h3 style="color:%s;">Verify Your Email</h3>
    <p style="font-size:15px;color:#444;">Hi <b>%s</b>, use the OTP below to verify your email address.</p>
  </td>
</tr>
%s
<tr>
  <td align="center">
    <p style="font-size:13px;color:#999;">If you didn't create an account, you can safely ignore this email.</p>
  </td>
</tr>`, theme.BrandColor, name, otpBox(theme, otp))
	return wrapWithTheme(theme, body)
}

// ResetPasswordOtpHTML carries the password reset code.
func ResetPasswordOtpHTML(theme Theme, name, otp string) string {
	if name == "" {
		name = "Customer"
	}
	body := fmt.Sprintf(`<tr>
  <td align="center">
    <h3 style="color:%s;">Reset Your Password</h3>
    <p style="font-size:15px;color:#444;">Hi <b>%s</b>, use the OTP below to reset your password.</p>
  </td>
</tr>
%s
<tr>
  <td align="center">
    <p style="font-size:13px;color:#999;">If you didn't request a reset, you can safely ignore this email.</p>
  </td>
</tr>`, theme.DangerColor, name, otpBox(theme, otp))
	return wrapWithTheme(theme, body)
}

// OrderConfirmedHTML summarizes a freshly placed order.
func OrderConfirmedHTML(theme Theme, customerName string, order *models.Order) string {
	if customerName == "" {
		customerName = "Customer"
	}
	body := fmt.Sprintf(`<tr>
  <td>
    <h3 style="color:%s;text-align:center;">Order Confirmed</h3>
    <p style="font-size:15px;color:#444;">Hi <b>%s</b>, your order <b>#%s</b> has been placed.</p>
    <ul style="list-style:none;padding:0;font-size:14px;color:#444;">%s</ul>
    <p style="font-size:14px;color:#444;"><b>Items:</b> &#8377;%.2f &nbsp; <b>Shipping:</b> &#8377;%.2f</p>
    <p style="font-size:15px;color:%s;"><b>Total: &#8377;%.2f</b></p>
  </td>
</tr>`, theme.BrandColor, customerName, order.ShortID(), itemRows(order.Items),
		order.ItemsPrice, order.ShippingPrice, theme.TextDark, order.TotalPrice)
	return wrapWithTheme(theme, body)
}

// OrderDeliveredHTML confirms delivery.
func OrderDeliveredHTML(theme Theme, customerName string, order *models.Order) string {
	if customerName == "" {
		customerName = "Customer"
	}
	body := fmt.Sprintf(`<tr>
  <td>
    <h3 style="color:%s;text-align:center;">Order Delivered Successfully</h3>
    <p style="font-size:15px;color:#444;">Hi <b>%s</b>, your order <b>#%s</b> has been delivered.</p>
    <ul style="list-style:none;padding:0;font-size:14px;color:#444;">%s</ul>
    <p style="font-size:15px;color:%s;"><b>Total Paid: &#8377;%.2f</b></p>
    <p style="font-size:13px;color:#666;">Thank you for shopping with <b>%s</b>!</p>
  </td>
</tr>`, theme.SecondaryColor, customerName, order.ShortID(), itemRows(order.Items),
		theme.TextDark, order.TotalPrice, theme.BrandName)
	return wrapWithTheme(theme, body)
}

// OrderCancelledHTML confirms a cancellation and names the reason.
func OrderCancelledHTML(theme Theme, customerName string, order *models.Order) string {
	if customerName == "" {
		customerName = "Customer"
	}
	reason := order.CancelReason
	if reason == "" {
		reason = "User requested cancellation"
	}
	body := fmt.Sprintf(`<tr>
  <td>
    <h3 style="color:%s;text-align:center;">Order Cancelled</h3>
    <p style="font-size:15px;color:#444;">Hi <b>%s</b>, your order <b>#%s</b> has been cancelled.</p>
    <p style="font-size:14px;color:#444;"><b>Reason:</b> %s</p>
    <ul style="list-style:none;padding:0;font-size:14px;color:#444;">%s</ul>
    <p style="font-size:13px;color:#666;">If this was a mistake, place a new order any time.</p>
  </td>
</tr>`, theme.DangerColor, customerName, order.ShortID(), reason, itemRows(order.Items))
	return wrapWithTheme(theme, body)
}
