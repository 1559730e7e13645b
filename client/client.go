// Package client - типизированный Go-клиент API поиска котов: обертка над
// REST-эндпоинтами с кэшем запросов и realtime-подпиской на события.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const apiPrefix = "/api/v1"

// fetch повторяется не более maxFetchAttempts раз при сетевых ошибках и 5xx
const maxFetchAttempts = 3

// User - публичные данные пользователя
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Phone string    `json:"phone,omitempty"`
}

// Auth - результат регистрации или входа
type Auth struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// CatSummary - элемент списка котов
type CatSummary struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Position     [2]float64 `json:"position"`
	Status       string     `json:"status"`
	LastSeen     time.Time  `json:"lastSeen"`
	ThumbnailURL string     `json:"thumbnailUrl,omitempty"`
}

// Pagination - параметры страницы в ответе списка
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// CatList - страница списка котов
type CatList struct {
	Cats       []*CatSummary `json:"cats"`
	Pagination Pagination    `json:"pagination"`
}

// Reporter - автор репорта
type Reporter struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Report - репорт о встрече кота
type Report struct {
	ID          uuid.UUID  `json:"id"`
	CatID       uuid.UUID  `json:"catId"`
	Location    [2]float64 `json:"location"`
	Description string     `json:"description"`
	Timestamp   time.Time  `json:"timestamp"`
	Photos      []string   `json:"photos"`
	Reporter    *Reporter  `json:"reporter"`
}

// CatDetail - полная карточка кота с репортами
type CatDetail struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Position    [2]float64 `json:"position"`
	Status      string     `json:"status"`
	LastSeen    time.Time  `json:"lastSeen"`
	Description string     `json:"description"`
	Photos      []string   `json:"photos"`
	Reports     []*Report  `json:"reports"`
}

// Profile - профиль пользователя с его котами и репортами
type Profile struct {
	ID      uuid.UUID     `json:"id"`
	Email   string        `json:"email"`
	Name    string        `json:"name"`
	Phone   string        `json:"phone,omitempty"`
	Cats    []*CatSummary `json:"cats"`
	Reports []*Report     `json:"reports"`
}

// APIError - ошибка, возвращенная сервером
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Photo - фотография для multipart-загрузки
type Photo struct {
	Name string
	Data []byte
}

// RegisterParams - параметры регистрации
type RegisterParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
}

// UpdateProfileParams - параметры частичного обновления профиля
type UpdateProfileParams struct {
	Name            string `json:"name,omitempty"`
	Phone           string `json:"phone,omitempty"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// ListCatsParams - параметры гео-фильтра и пагинации списка котов
type ListCatsParams struct {
	Lat      *float64
	Lng      *float64
	RadiusKm float64
	Page     int
	Limit    int
}

// CreateCatParams - параметры создания кота
type CreateCatParams struct {
	Name        string
	Description string
	Status      string
	Latitude    float64
	Longitude   float64
	Photos      []Photo
}

// AddReportParams - параметры добавления репорта
type AddReportParams struct {
	Description string
	Latitude    float64
	Longitude   float64
	Photos      []Photo
}

// Client - клиент API. Повторное использование одного клиента дает общий
// кэш запросов и общую realtime-подписку.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
	cache   *queryCache
	logger  *logrus.Logger
}

// NewClient создает клиент API. baseURL - адрес сервера без пути,
// например "http://localhost:8080".
func NewClient(baseURL string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		cache:   newQueryCache(),
		logger:  logger,
	}
}

// SetToken устанавливает bearer-токен для последующих запросов
func (c *Client) SetToken(token string) {
	c.token = token
}

// Register регистрирует пользователя и запоминает выданный токен
func (c *Client) Register(ctx context.Context, params RegisterParams) (*Auth, error) {
	var auth Auth
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", params, &auth); err != nil {
		return nil, err
	}
	c.token = auth.Token
	return &auth, nil
}

// Login выполняет вход и запоминает выданный токен
func (c *Client) Login(ctx context.Context, email, password string) (*Auth, error) {
	body := map[string]string{"email": email, "password": password}
	var auth Auth
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &auth); err != nil {
		return nil, err
	}
	c.token = auth.Token
	return &auth, nil
}

// GetProfile возвращает профиль текущего пользователя
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.doJSON(ctx, http.MethodGet, "/auth/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile частично обновляет профиль текущего пользователя
func (c *Client) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPatch, "/auth/profile", params, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListCats возвращает страницу списка котов. Ответы кэшируются по
// комбинации параметров и протухают через staleAfter.
func (c *Client) ListCats(ctx context.Context, params ListCatsParams) (*CatList, error) {
	query := url.Values{}
	if params.Lat != nil && params.Lng != nil {
		query.Set("lat", strconv.FormatFloat(*params.Lat, 'f', -1, 64))
		query.Set("lng", strconv.FormatFloat(*params.Lng, 'f', -1, 64))
	}
	if params.RadiusKm > 0 {
		query.Set("radius", strconv.FormatFloat(params.RadiusKm, 'f', -1, 64))
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	path := "/cats"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	if cached, ok := c.cache.get(path); ok {
		return cached.(*CatList), nil
	}

	var list CatList
	if err := c.fetchJSON(ctx, path, &list); err != nil {
		return nil, err
	}
	c.cache.set(path, &list)
	return &list, nil
}

// GetCat возвращает карточку кота. Свежий закэшированный ответ отдается
// без обращения к серверу.
func (c *Client) GetCat(ctx context.Context, catID uuid.UUID) (*CatDetail, error) {
	path := "/cats/" + catID.String()
	if cached, ok := c.cache.get(path); ok {
		return cached.(*CatDetail), nil
	}

	var detail CatDetail
	if err := c.fetchJSON(ctx, path, &detail); err != nil {
		return nil, err
	}
	c.cache.set(path, &detail)
	return &detail, nil
}

// CreateCat создает запись о коте с загрузкой фотографий
func (c *Client) CreateCat(ctx context.Context, params CreateCatParams) (*CatDetail, error) {
	fields := map[string]string{
		"name":        params.Name,
		"description": params.Description,
		"status":      params.Status,
		"location":    fmt.Sprintf("[%g, %g]", params.Latitude, params.Longitude),
	}

	var detail CatDetail
	if err := c.doMultipart(ctx, "/cats", fields, params.Photos, &detail); err != nil {
		return nil, err
	}
	c.cache.invalidatePrefix("/cats")
	return &detail, nil
}

// AddReport добавляет репорт о встрече кота
func (c *Client) AddReport(ctx context.Context, catID uuid.UUID, params AddReportParams) (*Report, error) {
	fields := map[string]string{
		"description": params.Description,
		"location":    fmt.Sprintf("[%g, %g]", params.Latitude, params.Longitude),
	}

	var report Report
	path := "/cats/" + catID.String() + "/reports"
	if err := c.doMultipart(ctx, path, fields, params.Photos, &report); err != nil {
		return nil, err
	}
	c.cache.invalidatePrefix("/cats")
	return &report, nil
}

// UpdateCatStatus меняет статус кота. Доступно только владельцу.
func (c *Client) UpdateCatStatus(ctx context.Context, catID uuid.UUID, status string) (*CatDetail, error) {
	body := map[string]string{"status": status}
	var detail CatDetail
	path := "/cats/" + catID.String() + "/status"
	if err := c.doJSON(ctx, http.MethodPatch, path, body, &detail); err != nil {
		return nil, err
	}
	c.cache.invalidatePrefix("/cats")
	return &detail, nil
}

// DeleteCat удаляет запись о коте вместе с репортами. Доступно только владельцу.
func (c *Client) DeleteCat(ctx context.Context, catID uuid.UUID) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/cats/"+catID.String(), nil, nil); err != nil {
		return err
	}
	c.cache.invalidatePrefix("/cats")
	return nil
}

// fetchJSON выполняет GET с ограниченным числом повторов: повторяются
// только сетевые ошибки и 5xx, ошибки клиента возвращаются сразу
func (c *Client) fetchJSON(ctx context.Context, path string, out any) error {
	delay := 200 * time.Millisecond

	var lastErr error
	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		err := c.doJSON(ctx, http.MethodGet, path, nil, out)
		if err == nil {
			return nil
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
			return err
		}
		lastErr = err

		if attempt == maxFetchAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return fmt.Errorf("fetch %s: %w", path, lastErr)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *Client) doMultipart(ctx context.Context, path string, fields map[string]string, photos []Photo, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}
	for _, photo := range photos {
		part, err := writer.CreateFormFile("photos", photo.Name)
		if err != nil {
			return fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(photo.Data); err != nil {
			return fmt.Errorf("failed to write photo: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return parseAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
