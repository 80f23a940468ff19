// Package cloudinary talks to the image host: request signing for
// client-side uploads and asset deletion on avatar swap.
package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var client = resty.New().SetTimeout(15 * time.Second)

// Credentials identifies the Cloudinary account requests are signed for.
type Credentials struct {
	CloudName string
	APIKey    string
	APISecret string
}

// SignParams produces the hex SHA-1 request signature Cloudinary expects:
// the params serialized as key=value pairs, sorted by key, joined with "&",
// with the API secret appended.
func SignParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}

// Destroy deletes an uploaded asset by its public id. Used when an avatar is
// replaced or cleared; callers treat failures as best-effort.
func Destroy(ctx context.Context, creds Credentials, publicID string) error {
	if creds.CloudName == "" || publicID == "" {
		return nil
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}

	resp, err := client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"public_id": publicID,
			"timestamp": timestamp,
			"api_key":   creds.APIKey,
			"signature": SignParams(params, creds.APISecret),
		}).
		Post(fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/destroy", creds.CloudName))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("cloudinary: status %d", resp.StatusCode())
	}
	return nil
}
