package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bundle-invoice-demo/internal/config"

	"github.com/shopspring/decimal"
)

type StripeClient interface {
	FindOrCreateCustomer(ctx context.Context, email, name string) (string, error)
	CreateDraftInvoice(ctx context.Context, customerID string) (string, error)
	AddInvoiceItem(ctx context.Context, customerID, invoiceID, priceID string) error
	CreateCoupon(ctx context.Context, percentOff int) (string, error)
	AttachDiscount(ctx context.Context, invoiceID, couponID string) error
	FinalizeInvoice(ctx context.Context, invoiceID string) (*FinalizedInvoice, error)
}

type FinalizedInvoice struct {
	ID        string
	HostedURL string
	Total     string // formatted, e.g. "19.00"
}

type stripeClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	secretKey  string
}

func NewStripeClient(stripeCfg *config.Stripe) StripeClient {
	return &stripeClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: stripeCfg.BaseApiURL,
		secretKey:  stripeCfg.SecretKey,
	}
}

type stripeCustomer struct {
	ID string `json:"id"`
}

type stripeCustomerList struct {
	Data []stripeCustomer `json:"data"`
}

type stripeInvoice struct {
	ID               string `json:"id"`
	HostedInvoiceURL string `json:"hosted_invoice_url"`
	Total            int64  `json:"total"` // cents
}

type stripeCoupon struct {
	ID string `json:"id"`
}

type stripeErrorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// do sends a form-encoded request to the Stripe API and decodes the JSON
// response into out. Non-2xx responses surface Stripe's error message.
func (c *stripeClientImpl) do(ctx context.Context, method, path string, form url.Values, out interface{}) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseApiURL+path, body)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		var envelope stripeErrorEnvelope
		if json.Unmarshal(b, &envelope) == nil && envelope.Error.Message != "" {
			return fmt.Errorf("stripe error: %s", envelope.Error.Message)
		}
		return fmt.Errorf("stripe error %d: %s", resp.StatusCode, string(b))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode stripe response: %w", err)
		}
	}
	return nil
}

func (c *stripeClientImpl) FindOrCreateCustomer(ctx context.Context, email, name string) (string, error) {
	query := url.Values{}
	query.Set("email", email)
	query.Set("limit", "1")

	var list stripeCustomerList
	if err := c.do(ctx, http.MethodGet, "/v1/customers?"+query.Encode(), nil, &list); err != nil {
		return "", fmt.Errorf("list customers: %w", err)
	}
	if len(list.Data) > 0 {
		return list.Data[0].ID, nil
	}

	form := url.Values{}
	form.Set("email", email)
	form.Set("name", name)

	var customer stripeCustomer
	if err := c.do(ctx, http.MethodPost, "/v1/customers", form, &customer); err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}
	return customer.ID, nil
}

func (c *stripeClientImpl) CreateDraftInvoice(ctx context.Context, customerID string) (string, error) {
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("collection_method", "send_invoice")
	form.Set("days_until_due", "30")
	form.Set("auto_advance", "false")

	var invoice stripeInvoice
	if err := c.do(ctx, http.MethodPost, "/v1/invoices", form, &invoice); err != nil {
		return "", fmt.Errorf("create invoice: %w", err)
	}
	return invoice.ID, nil
}

func (c *stripeClientImpl) AddInvoiceItem(ctx context.Context, customerID, invoiceID, priceID string) error {
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("invoice", invoiceID)
	form.Set("price", priceID)
	form.Set("quantity", "1")

	if err := c.do(ctx, http.MethodPost, "/v1/invoiceitems", form, nil); err != nil {
		return fmt.Errorf("create invoice item: %w", err)
	}
	return nil
}

func (c *stripeClientImpl) CreateCoupon(ctx context.Context, percentOff int) (string, error) {
	form := url.Values{}
	form.Set("percent_off", strconv.Itoa(percentOff))
	form.Set("duration", "once")
	form.Set("name", fmt.Sprintf("Bundle Discount %d%%", percentOff))
	form.Set("max_redemptions", "1")

	var coupon stripeCoupon
	if err := c.do(ctx, http.MethodPost, "/v1/coupons", form, &coupon); err != nil {
		return "", fmt.Errorf("create coupon: %w", err)
	}
	return coupon.ID, nil
}

func (c *stripeClientImpl) AttachDiscount(ctx context.Context, invoiceID, couponID string) error {
	form := url.Values{}
	form.Set("discounts[0][coupon]", couponID)

	if err := c.do(ctx, http.MethodPost, "/v1/invoices/"+invoiceID, form, nil); err != nil {
		return fmt.Errorf("update invoice discounts: %w", err)
	}
	return nil
}

func (c *stripeClientImpl) FinalizeInvoice(ctx context.Context, invoiceID string) (*FinalizedInvoice, error) {
	var invoice stripeInvoice
	if err := c.do(ctx, http.MethodPost, "/v1/invoices/"+invoiceID+"/finalize", nil, &invoice); err != nil {
		return nil, fmt.Errorf("finalize invoice: %w", err)
	}

	total := decimal.NewFromInt(invoice.Total).Div(decimal.NewFromInt(100)).StringFixed(2)

	return &FinalizedInvoice{
		ID:        invoice.ID,
		HostedURL: invoice.HostedInvoiceURL,
		Total:     total,
	}, nil
}
