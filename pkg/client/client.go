// Package client es la capa de datos en Go del API de la tienda: el espejo
// tipado del wrapper HTTP que usan las páginas del browser. Toda llamada se
// normaliza a (valor, error); una respuesta con success:false o status:"ERROR"
// se convierte en *APIError, nunca en un JSON crudo.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jhoicas/shopping-api/internal/application/dto"
)

// APIError falla normalizada del API: status HTTP más el mensaje del envelope.
type APIError struct {
	Status  int
	Message string
	Details map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client cliente HTTP del API. El token, si se configura, viaja como Bearer en
// cada petición (el contrato de interceptor del cliente web).
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// Option configura el cliente.
type Option func(*Client)

// WithToken fija el bearer token a enviar en Authorization.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient reemplaza el *http.Client por defecto.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// New construye el cliente contra baseURL (ej. http://localhost:3000).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope forma uniforme de toda respuesta del API: los endpoints de negocio
// usan success/data, el boundary global usa status/message.
type envelope struct {
	Success *bool             `json:"success"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
	Data    json.RawMessage   `json:"data"`
}

// do ejecuta la petición y decodifica el envelope en out (out puede ser nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	failed := resp.StatusCode >= 400 ||
		(env.Success != nil && !*env.Success) ||
		env.Status == "ERROR"
	if failed {
		return &APIError{Status: resp.StatusCode, Message: env.Message, Details: env.Details}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// ListProducts devuelve todos los productos.
func (c *Client) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	var items []dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetProduct obtiene un producto por id.
func (c *Client) GetProduct(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	var item dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateProduct crea un producto y devuelve el recién creado.
func (c *Client) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var item dto.ProductResponse
	if err := c.do(ctx, http.MethodPost, "/api/products", in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateProduct aplica una actualización parcial.
func (c *Client) UpdateProduct(ctx context.Context, id int64, in dto.UpdateProductRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), in, nil)
}

// DeleteProduct elimina un producto por id.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil)
}

// LowStockProducts lista productos bajo el umbral (0 usa el default del servidor).
func (c *Client) LowStockProducts(ctx context.Context, threshold int) ([]dto.ProductResponse, error) {
	path := "/api/products/low-stock"
	if threshold > 0 {
		path = fmt.Sprintf("%s?threshold=%d", path, threshold)
	}
	var items []dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ProductsByCategory lista los productos de una categoría.
func (c *Client) ProductsByCategory(ctx context.Context, categoryID int64) ([]dto.ProductResponse, error) {
	var items []dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/category/%d", categoryID), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AdjustStock aplica un delta atómico al stock del producto.
func (c *Client) AdjustStock(ctx context.Context, id int64, delta int) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/products/%d/stock", id),
		dto.AdjustStockRequest{Delta: &delta}, nil)
}

// CheckStock consulta la disponibilidad para una cantidad requerida.
func (c *Client) CheckStock(ctx context.Context, id int64, required int) (*dto.StockCheckResponse, error) {
	var out dto.StockCheckResponse
	path := fmt.Sprintf("/api/products/%d/stock?required=%d", id, required)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCategories devuelve todas las categorías.
func (c *Client) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	var items []dto.CategoryResponse
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Health verifica la sonda de vida del API.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}
