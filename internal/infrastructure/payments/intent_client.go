// Package payments implementa el puerto PaymentIntentService contra el
// procesador de pagos externo. El core solo necesita una referencia opaca del
// intento; la conciliación de webhooks queda fuera de este servicio.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nomina-api/internal/application/payroll"
)

var _ payroll.PaymentIntentService = (*IntentClient)(nil)

// IntentClient crea intentos de pago vía HTTP. Sin API key opera en modo
// simulado: genera una referencia local sin tocar la red (entorno de desarrollo).
type IntentClient struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

// NewIntentClient construye el cliente. El timeout de red es generoso (30 s)
// porque el procesador puede tardar en confirmar el intento.
func NewIntentClient(apiURL, apiKey string) *IntentClient {
	return &IntentClient{
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type intentRequest struct {
	Amount      string `json:"amount"` // unidades menores no: decimal como string
	Currency    string `json:"currency"`
	ReceiptMail string `json:"receipt_email"`
	Description string `json:"description"`
}

type intentResponse struct {
	ID string `json:"id"`
}

// CreateIntent crea el intento de pago y devuelve su ID opaco.
func (c *IntentClient) CreateIntent(ctx context.Context, email string, amount decimal.Decimal, description string) (string, error) {
	if c.apiKey == "" || c.apiURL == "" {
		// Modo simulado: referencia local reconocible en los registros.
		return "sim_" + uuid.New().String(), nil
	}

	body, err := json.Marshal(intentRequest{
		Amount:      amount.StringFixed(2),
		Currency:    "usd",
		ReceiptMail: email,
		Description: description,
	})
	if err != nil {
		return "", fmt.Errorf("payments: serializar intento: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/v1/payment_intents", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("payments: construir petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("payments: llamar al procesador: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("payments: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("payments: el procesador respondió %d", resp.StatusCode)
	}

	var out intentResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("payments: decodificar respuesta: %w", err)
	}
	if out.ID == "" {
		return "", fmt.Errorf("payments: respuesta sin id de intento")
	}
	return out.ID, nil
}
