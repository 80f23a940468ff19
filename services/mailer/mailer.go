// Package mailer dispatches transactional email through the Brevo API.
// Sends are queued and processed off the request path: handlers enqueue and
// move on, the worker retries with backoff, and every attempt outcome lands
// in the emaillogs collection. A send failure never surfaces to a handler.
package mailer

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"mystorx-api/configs"
	"mystorx-api/models"

	"github.com/go-resty/resty/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var emailLogCollection *mongo.Collection = configs.GetCollection(configs.DB, "emaillogs")

const (
	brevoEndpoint = "https://api.brevo.com/v3/smtp/email"
	maxAttempts   = 3
	queueSize     = 64
)

type job struct {
	To      string
	Subject string
	HTML    string
	OrderID *primitive.ObjectID
}

type brevoAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoMessage struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

type brevoResult struct {
	MessageID string `json:"messageId"`
}

var (
	client = resty.New().SetTimeout(15 * time.Second)

	jobs       = make(chan job, queueSize)
	workerOnce sync.Once
)

func enqueue(j job) {
	if j.To == "" {
		return
	}
	workerOnce.Do(func() {
		go worker()
	})
	select {
	case jobs <- j:
	default:
		// Queue full; drop rather than block the request path.
		log.Printf("mailer: queue full, dropping email to %s (%s)", j.To, j.Subject)
	}
}

func worker() {
	for j := range jobs {
		deliver(j)
	}
}

// deliver tries up to maxAttempts with exponential backoff (1s, 2s, 4s).
func deliver(j job) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		messageID, err := send(j)
		if err == nil {
			logOutcome(j, models.EmailSent, messageID, "")
			return
		}

		log.Printf("mailer: send failed (attempt %d/%d) to %s: %v", attempt, maxAttempts, j.To, err)
		logOutcome(j, models.EmailFailed, "", err.Error())

		if attempt < maxAttempts {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}
}

func send(j job) (string, error) {
	msg := brevoMessage{
		Sender:      brevoAddress{Name: DefaultTheme().BrandName, Email: configs.EnvFromEmail()},
		To:          []brevoAddress{{Email: j.To}},
		Subject:     j.Subject,
		HTMLContent: j.HTML,
	}

	var result brevoResult
	resp, err := client.R().
		SetHeader("api-key", configs.EnvBrevoAPIKey()).
		SetBody(msg).
		SetResult(&result).
		Post(brevoEndpoint)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", &apiError{status: resp.StatusCode(), body: string(resp.Body())}
	}
	return result.MessageID, nil
}

type apiError struct {
	status int
	body   string
}

func (e *apiError) Error() string {
	return "brevo: status " + strconv.Itoa(e.status) + ": " + e.body
}

func logOutcome(j job, status, messageID, errMsg string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entry := models.EmailLog{
		To:        j.To,
		Subject:   j.Subject,
		OrderID:   j.OrderID,
		Status:    status,
		MessageID: messageID,
		Error:     errMsg,
		CreatedAt: time.Now(),
	}
	if _, err := emailLogCollection.InsertOne(ctx, entry); err != nil {
		log.Printf("mailer: email log write failed: %v", err)
	}
}

/* ================= PUBLIC APIS ================= */

func SendWelcomeEmail(to, name string) {
	theme := DefaultTheme()
	enqueue(job{
		To:      to,
		Subject: "Welcome to " + theme.BrandName,
		HTML:    WelcomeHTML(theme, name),
	})
}

func SendDeliveryWelcomeEmail(to, name string) {
	theme := DefaultTheme()
	enqueue(job{
		To:      to,
		Subject: "Welcome to " + theme.BrandName + " Delivery Team",
		HTML:    DeliveryWelcomeHTML(theme, name),
	})
}

func SendVerifyOtpEmail(to, name, otp string) {
	theme := DefaultTheme()
	enqueue(job{
		To:      to,
		Subject: "Verify your email • " + theme.BrandName,
		HTML:    VerifyOtpHTML(theme, name, otp),
	})
}

func ResendVerifyOtpEmail(to, otp string) {
	theme := DefaultTheme()
	enqueue(job{
		To:      to,
		Subject: "Resend: Verify your email • " + theme.BrandName,
		HTML:    VerifyOtpHTML(theme, "there", otp),
	})
}

func SendResetPasswordOtpEmail(to, name, otp string) {
	theme := DefaultTheme()
	enqueue(job{
		To:      to,
		Subject: "Reset password OTP • " + theme.BrandName,
		HTML:    ResetPasswordOtpHTML(theme, name, otp),
	})
}

func SendOrderConfirmationEmail(to, customerName string, order *models.Order) {
	enqueue(job{
		To:      to,
		Subject: "Order Confirmed • #" + order.ShortID(),
		HTML:    OrderConfirmedHTML(DefaultTheme(), customerName, order),
		OrderID: &order.ID,
	})
}

func SendDeliveryEmail(to, customerName string, order *models.Order) {
	enqueue(job{
		To:      to,
		Subject: "Order Delivered • #" + order.ShortID(),
		HTML:    OrderDeliveredHTML(DefaultTheme(), customerName, order),
		OrderID: &order.ID,
	})
}

func SendOrderCancelledEmail(to, customerName string, order *models.Order) {
	enqueue(job{
		To:      to,
		Subject: "Order Cancelled • #" + order.ShortID(),
		HTML:    OrderCancelledHTML(DefaultTheme(), customerName, order),
		OrderID: &order.ID,
	})
}
