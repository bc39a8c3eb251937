package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

// Client клиент REST бэкенда салона
// Один клиент обслуживает все семейства записей, путь и форма ответа берутся из domain.Family
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	observer   Observer
}

// NewClient создает новый экземпляр клиента бэкенда
// timeout = 0 оставляет таймаут транспорта по умолчанию
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:      log,
		observer: noopObserver{},
	}
}

// WithObserver подключает сбор метрик запросов
func (c *Client) WithObserver(observer Observer) *Client {
	if observer != nil {
		c.observer = observer
	}
	return c
}

// List получает полный снимок коллекции
func (c *Client) List(ctx context.Context, family domain.Family) ([]domain.Record, error) {
	body, err := c.do(ctx, family, domain.OperationList, http.MethodGet, c.collectionURL(family), nil)
	if err != nil {
		return nil, err
	}

	records, err := decodeList(family, body)
	if err != nil {
		c.log.Error("List: invalid response for family=%s: %v", family.Name, err)
		return nil, err
	}

	c.log.Info("List: fetched %d records for family=%s", len(records), family.Name)
	return records, nil
}

// Create создает запись (POST /{family}) и возвращает запись с назначенным бэкендом идентификатором
func (c *Client) Create(ctx context.Context, family domain.Family, fields domain.Fields) (domain.Record, error) {
	body, err := c.do(ctx, family, domain.OperationCreate, http.MethodPost, c.collectionURL(family), fields)
	if err != nil {
		return domain.Record{}, err
	}

	rec, found, err := decodeItem(family, body)
	if err != nil {
		c.log.Error("Create: invalid response for family=%s: %v", family.Name, err)
		return domain.Record{}, err
	}
	if !found {
		c.log.Error("Create: response for family=%s has no %s", family.Name, family.IDField)
		return domain.Record{}, fmt.Errorf("%w: create %s: response has no %s", ErrInvalidResponse, family.Name, family.IDField)
	}

	c.log.Info("Create: created record id=%s family=%s", rec.ID, family.Name)
	return rec, nil
}

// Update обновляет запись (PATCH или PUT /{family}/{id})
// Если бэкенд не вернул запись, результатом считаются отправленные поля
func (c *Client) Update(ctx context.Context, family domain.Family, id string, fields domain.Fields) (domain.Record, error) {
	body, err := c.do(ctx, family, domain.OperationUpdate, family.UpdateHTTPMethod(), c.itemURL(family, id), fields)
	if err != nil {
		return domain.Record{}, err
	}

	rec, found, err := decodeItem(family, body)
	if err != nil {
		c.log.Error("Update: invalid response for id=%s family=%s: %v", id, family.Name, err)
		return domain.Record{}, err
	}
	if !found {
		c.log.Warn("Update: response for id=%s family=%s has no record, using submitted fields", id, family.Name)
		return domain.Record{ID: id, Fields: fields.Clone()}, nil
	}
	if rec.ID != id {
		c.log.Error("Update: response id=%s does not match requested id=%s family=%s", rec.ID, id, family.Name)
		return domain.Record{}, fmt.Errorf("%w: update %s: response id %s, expected %s", ErrInvalidResponse, family.Name, rec.ID, id)
	}

	c.log.Info("Update: updated record id=%s family=%s", id, family.Name)
	return rec, nil
}

// Delete удаляет запись (DELETE /{family}/{id}); тело ответа игнорируется
func (c *Client) Delete(ctx context.Context, family domain.Family, id string) error {
	if _, err := c.do(ctx, family, domain.OperationDelete, http.MethodDelete, c.itemURL(family, id), nil); err != nil {
		return err
	}

	c.log.Info("Delete: deleted record id=%s family=%s", id, family.Name)
	return nil
}

// do выполняет запрос и возвращает тело успешного ответа
func (c *Client) do(
	ctx context.Context,
	family domain.Family,
	op domain.Operation,
	method string,
	target string,
	payload domain.Fields,
) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(map[string]interface{}(payload))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(family, op, outcomeNetworkError, time.Since(started))
		c.log.Error("%s %s: request failed: %v", method, target, err)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(family, op, outcomeNetworkError, time.Since(started))
		c.log.Error("%s %s: failed to read response: %v", method, target, err)
		return nil, fmt.Errorf("%w: %s %s: read body: %v", ErrNetwork, method, target, err)
	}

	// Обработка статус-кодов
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.observe(family, op, outcomeServerError, time.Since(started))
		serverErr := &ServerError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
		c.log.Warn("%s %s: unexpected status %d: %s", method, target, resp.StatusCode, serverErr.Message)
		return nil, serverErr
	}

	c.observe(family, op, outcomeOK, time.Since(started))
	return body, nil
}

func (c *Client) observe(family domain.Family, op domain.Operation, outcome string, duration time.Duration) {
	c.observer.ObserveBackend(string(family.Name), string(op), outcome, duration)
}

func (c *Client) collectionURL(family domain.Family) string {
	return c.baseURL + family.Path
}

func (c *Client) itemURL(family domain.Family, id string) string {
	return c.baseURL + family.Path + "/" + url.PathEscape(id)
}
