// Package mlservice proxies the external recommendation service. Callers
// treat failures as "no recommendations" and fall back to catalog queries.
package mlservice

import (
	"context"
	"fmt"
	"time"

	"mystorx-api/configs"

	"github.com/go-resty/resty/v2"
)

var client = resty.New().SetTimeout(10 * time.Second)

// Recommendation names a catalog product by its external identifier.
type Recommendation struct {
	ExternalID string  `json:"externalId"`
	Score      float64 `json:"score,omitempty"`
}

type recommendationList struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// GetHomeRecommendations fetches the storefront landing-page picks.
func GetHomeRecommendations(ctx context.Context, seed string, limit int) ([]Recommendation, error) {
	base := configs.EnvMLServiceURL()
	if base == "" {
		return nil, nil
	}

	var out recommendationList
	resp, err := client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"seed":  seed,
			"limit": fmt.Sprintf("%d", limit),
		}).
		SetResult(&out).
		Get(base + "/recommend/home")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("ml service: status %d", resp.StatusCode())
	}
	return out.Recommendations, nil
}

// GetProductRecommendations fetches similar products for a product page.
func GetProductRecommendations(ctx context.Context, externalID string) ([]Recommendation, error) {
	base := configs.EnvMLServiceURL()
	if base == "" {
		return nil, nil
	}

	var out []Recommendation
	resp, err := client.R().
		SetContext(ctx).
		SetResult(&out).
		Get(base + "/recommend/product/" + externalID)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("ml service: status %d", resp.StatusCode())
	}
	return out, nil
}

// GetCartRecommendations fetches cross-sell picks for the cart page.
func GetCartRecommendations(ctx context.Context, cartExternalIDs []string) ([]Recommendation, error) {
	base := configs.EnvMLServiceURL()
	if base == "" {
		return nil, nil
	}

	var out recommendationList
	resp, err := client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{"cartItems": cartExternalIDs}).
		SetResult(&out).
		Post(base + "/recommend/cart")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("ml service: status %d", resp.StatusCode())
	}
	return out.Recommendations, nil
}

// Retrain kicks off model retraining, forwarding the caller's bearer token.
func Retrain(ctx context.Context, authorization string) error {
	url := configs.EnvMLRetrainURL()
	if url == "" {
		return fmt.Errorf("ml service: retrain URL not configured")
	}

	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Authorization", authorization).
		Post(url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("ml service: status %d", resp.StatusCode())
	}
	return nil
}
