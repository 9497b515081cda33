package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/macromate/macromate-backend/domain"
)

type (
	// Client looks up a product by barcode in the Open Food Facts
	// database and reports its per-100g nutrient values.
	Client interface {
		GetProduct(ctx context.Context, barcode string) (*Product, error)
	}

	// Product carries nutrient values on the per-100g basis.
	Product struct {
		Name         string
		Protein100g  float64
		Carbs100g    float64
		Fats100g     float64
		Calories100g float64
	}

	openFoodFactsClient struct {
		baseURL    string
		httpClient *http.Client
	}

	offResponse struct {
		Status  int `json:"status"`
		Product struct {
			ProductName string                 `json:"product_name"`
			GenericName string                 `json:"generic_name"`
			Brands      string                 `json:"brands"`
			BrandOwner  string                 `json:"brand_owner"`
			Nutriments  map[string]interface{} `json:"nutriments"`
		} `json:"product"`
	}
)

func NewClient() Client {
	return NewClientWithBaseURL("https://world.openfoodfacts.org")
}

func NewClientWithBaseURL(baseURL string) Client {
	return &openFoodFactsClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *openFoodFactsClient) GetProduct(ctx context.Context, barcode string) (*Product, error) {
	url := fmt.Sprintf("%s/api/v2/product/%s.json?cc=gb&lc=en", c.baseURL, barcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "MacroMateApp/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrUpstreamUnavailable
	}

	var data offResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, domain.ErrUpstreamUnavailable
	}

	if data.Status != 1 {
		return nil, domain.ErrProductNotFound
	}

	nutriments := data.Product.Nutriments

	// Per-100g entries are preferred; _serving is the fallback basis.
	calories := nutrimentValue(nutriments, "energy-kcal_100g", "energy-kcal_serving", "energy_kcal")
	if calories == 0 {
		if kj := nutrimentValue(nutriments, "energy-kj_100g", "energy-kj_serving", "energy_kj"); kj > 0 {
			calories = kj / 4.184
		}
	}

	name := productName(&data, barcode)

	return &Product{
		Name:         name,
		Protein100g:  nutrimentValue(nutriments, "proteins_100g", "proteins_serving"),
		Carbs100g:    nutrimentValue(nutriments, "carbohydrates_100g", "carbohydrates_serving"),
		Fats100g:     nutrimentValue(nutriments, "fat_100g", "fat_serving"),
		Calories100g: calories,
	}, nil
}

func productName(data *offResponse, barcode string) string {
	brand := data.Product.BrandOwner
	if brand == "" {
		brand = data.Product.Brands
	}
	name := data.Product.ProductName
	if name == "" {
		name = data.Product.GenericName
	}

	switch {
	case brand != "" && name != "":
		return brand + " - " + name
	case brand != "":
		return brand
	case name != "":
		return name
	default:
		return "Barcode " + barcode
	}
}

// nutrimentValue returns the first present key coerced to a float.
// Open Food Facts reports numbers as either JSON numbers or strings.
func nutrimentValue(nutriments map[string]interface{}, keys ...string) float64 {
	for _, key := range keys {
		raw, ok := nutriments[key]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case float64:
			return v
		case string:
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				return parsed
			}
		}
	}
	return 0
}
