package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/cat_finder_system/internal/config"
	"github.com/shenikar/cat_finder_system/internal/models"
	"github.com/shenikar/cat_finder_system/internal/realtime"
	"github.com/shenikar/cat_finder_system/internal/service"
	"github.com/shenikar/cat_finder_system/internal/service/mocks"
	"github.com/shenikar/cat_finder_system/pkg/token"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *mocks.MockAuthService, *mocks.MockCatService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	authMock := mocks.NewMockAuthService(ctrl)
	catMock := mocks.NewMockCatService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	tokens, err := token.NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	cfg := &config.Config{
		WSPingInterval: 30 * time.Second,
	}

	hub := realtime.NewHub(logger)
	t.Cleanup(hub.Close)

	handler := NewHandler(authMock, catMock, hub, tokens, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, authMock, catMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// bearerHeader выдает валидный токен для пользователя и оборачивает его в заголовок
func bearerHeader(t *testing.T, h *Handler, userID uuid.UUID) map[string]string {
	signed, err := h.tokens.Generate(userID)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + signed}
}

// multipartBody собирает multipart-форму с полями и необязательными фотографиями
func multipartBody(t *testing.T, fields map[string]string, photos map[string][]byte) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for name, data := range photos {
		part, err := writer.CreateFormFile("photos", name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestRegister_Success(t *testing.T) {
	_, authMock, _, router := newTestHandler(t)
	reqBody := RegisterRequest{
		Email:    "ivan@example.com",
		Password: "secret123",
		Name:     "Иван",
	}
	expectedUser := &models.User{
		ID:    uuid.New(),
		Email: reqBody.Email,
		Name:  reqBody.Name,
	}

	authMock.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(expectedUser, "signed-token", nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AuthResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expectedUser.ID, resp.User.ID)
	assert.Equal(t, "signed-token", resp.Token)
}

func TestRegister_EmailTaken(t *testing.T) {
	_, authMock, _, router := newTestHandler(t)
	reqBody := RegisterRequest{
		Email:    "taken@example.com",
		Password: "secret123",
		Name:     "Иван",
	}

	authMock.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, "", service.ErrEmailTaken).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestRegister_ValidationError(t *testing.T) {
	_, authMock, _, router := newTestHandler(t)
	reqBody := RegisterRequest{ // Отсутствует Email
		Password: "secret123",
		Name:     "Иван",
	}

	authMock.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Email' failed on the 'required' tag")
}

func TestLogin_Success(t *testing.T) {
	_, authMock, _, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "ivan@example.com", Password: "secret123"}
	expectedUser := &models.User{ID: uuid.New(), Email: reqBody.Email}

	authMock.EXPECT().
		Login(gomock.Any(), reqBody.Email, reqBody.Password).
		Return(expectedUser, "signed-token", nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	_, authMock, _, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "ivan@example.com", Password: "wrong"}

	authMock.EXPECT().
		Login(gomock.Any(), reqBody.Email, reqBody.Password).
		Return(nil, "", service.ErrInvalidCredentials).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestGetProfile_Success(t *testing.T) {
	h, authMock, _, router := newTestHandler(t)
	userID := uuid.New()
	profile := &service.Profile{
		User: &models.User{ID: userID, Email: "ivan@example.com", Name: "Иван"},
	}

	authMock.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/auth/profile", nil, bearerHeader(t, h, userID))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ProfileResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, userID, resp.ID)
}

func TestGetProfile_Unauthorized(t *testing.T) {
	_, authMock, _, router := newTestHandler(t)

	authMock.EXPECT().GetProfile(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/auth/profile", nil) // Нет токена

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestGetProfile_InvalidToken(t *testing.T) {
	_, authMock, _, router := newTestHandler(t)

	authMock.EXPECT().GetProfile(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/auth/profile", nil, map[string]string{"Authorization": "Bearer not-a-token"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestUpdateProfile_PasswordPairRequired(t *testing.T) {
	h, authMock, _, router := newTestHandler(t)
	userID := uuid.New()
	// Передан только новый пароль без текущего
	reqBody := UpdateProfileRequest{NewPassword: "new-password"}

	authMock.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", "/api/v1/auth/profile", bytes.NewBuffer(bodyBytes), bearerHeader(t, h, userID))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "both currentPassword and newPassword are required")
}

func TestUpdateProfile_WrongPassword(t *testing.T) {
	h, authMock, _, router := newTestHandler(t)
	userID := uuid.New()
	reqBody := UpdateProfileRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-password",
	}

	authMock.EXPECT().
		UpdateProfile(gomock.Any(), userID, gomock.Any()).
		Return(nil, service.ErrWrongPassword).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", "/api/v1/auth/profile", bytes.NewBuffer(bodyBytes), bearerHeader(t, h, userID))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "current password is incorrect")
}

func TestListCats_Success(t *testing.T) {
	_, _, catMock, router := newTestHandler(t)
	expectedCats := []*models.Cat{
		{ID: uuid.New(), Name: "Барсик", Status: models.StatusLost},
		{ID: uuid.New(), Name: "Мурка", Status: models.StatusFound},
	}

	catMock.EXPECT().
		ListCats(gomock.Any(), gomock.Any()).
		Return(expectedCats, 2, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/cats?page=1&limit=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp CatListResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp.Cats, 2)
	assert.Equal(t, 2, resp.Pagination.Total)
}

func TestListCats_GeoFilterPassthrough(t *testing.T) {
	_, _, catMock, router := newTestHandler(t)

	catMock.EXPECT().
		ListCats(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, filter service.CatFilter) {
			require.NotNil(t, filter.Lat)
			require.NotNil(t, filter.Lng)
			assert.Equal(t, 55.75, *filter.Lat)
			assert.Equal(t, 37.61, *filter.Lng)
			assert.Equal(t, float64(5), filter.RadiusKm)
		}).
		Return(nil, 0, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/cats?lat=55.75&lng=37.61&radius=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListCats_ZeroCoordinates(t *testing.T) {
	_, _, catMock, router := newTestHandler(t)

	// Нулевой остров - валидная точка, а не отсутствие координат
	catMock.EXPECT().
		ListCats(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, filter service.CatFilter) {
			require.NotNil(t, filter.Lat)
			require.NotNil(t, filter.Lng)
			assert.Equal(t, float64(0), *filter.Lat)
			assert.Equal(t, float64(0), *filter.Lng)
		}).
		Return(nil, 0, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/cats?lat=0&lng=0", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListCats_InvalidRadius(t *testing.T) {
	_, _, catMock, router := newTestHandler(t)

	catMock.EXPECT().ListCats(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/cats?radius=-1", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "radius must be between 0 and 1000")
}

func TestListCats_InvalidLatitude(t *testing.T) {
	_, _, catMock, router := newTestHandler(t)

	catMock.EXPECT().ListCats(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/cats?lat=91&lng=10", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid latitude")
}

func TestGetCat_Success(t *testing.T) {
	_, _, catMock, router := newTestHandler(t)
	catID := uuid.New()
	details := &service.CatDetails{
		Cat: &models.Cat{ID: catID, Name: "Барсик", Status: models.StatusLost},
		Reports: []*models.Report{
			{ID: uuid.New(), CatID: catID, Description: "Видел у подъезда"},
		},
	}

	catMock.EXPECT().GetCatDetails(gomock.Any(), catID).Return(details, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/cats/%s", catID.String()), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp CatDetailResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, catID, resp.ID)
	assert.Len(t, resp.Reports, 1)
}

func TestGetCat_InvalidID(t *testing.T) {
	_, _, catMock, router := newTestHandler(t)

	catMock.EXPECT().GetCatDetails(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/cats/invalid-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid cat ID")
}

func TestGetCat_NotFound(t *testing.T) {
	_, _, catMock, router := newTestHandler(t)
	catID := uuid.New()

	catMock.EXPECT().GetCatDetails(gomock.Any(), catID).Return(nil, service.ErrNotFound).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/cats/%s", catID.String()), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "cat not found")
}

func TestCreateCat_Success(t *testing.T) {
	_, _, catMock, router := newTestHandler(t)
	createdCat := &models.Cat{
		ID:     uuid.New(),
		Name:   "Барсик",
		Status: models.StatusLost,
	}

	catMock.EXPECT().
		CreateCat(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, input service.CreateCatInput) {
			assert.Equal(t, "Барсик", input.Name)
			assert.Equal(t, 55.75, input.Latitude)
			assert.Equal(t, 37.61, input.Longitude)
			assert.Nil(t, input.OwnerID) // Анонимное создание
			assert.Len(t, input.Photos, 1)
		}).
		Return(createdCat, nil).
		Times(1)

	body, contentType := multipartBody(t, map[string]string{
		"name":        "Барсик",
		"description": "Рыжий, пугливый",
		"status":      "lost",
		"location":    "[55.75, 37.61]",
	}, map[string][]byte{"cat.jpg": []byte("fake-image-data")})

	w := makeRequest(router, "POST", "/api/v1/cats", body, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp CatDetailResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, createdCat.ID, resp.ID)
}

func TestCreateCat_WithOwner(t *testing.T) {
	h, _, catMock, router := newTestHandler(t)
	userID := uuid.New()

	catMock.EXPECT().
		CreateCat(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, input service.CreateCatInput) {
			require.NotNil(t, input.OwnerID)
			assert.Equal(t, userID, *input.OwnerID)
		}).
		Return(&models.Cat{ID: uuid.New(), OwnerID: &userID}, nil).
		Times(1)

	body, contentType := multipartBody(t, map[string]string{
		"name":        "Барсик",
		"description": "Домашний",
		"status":      "lost",
		"location":    "[55.75, 37.61]",
	}, nil)

	headers := bearerHeader(t, h, userID)
	headers["Content-Type"] = contentType
	w := makeRequest(router, "POST", "/api/v1/cats", body, headers)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateCat_InvalidLocation(t *testing.T) {
	_, _, catMock, router := newTestHandler(t)

	catMock.EXPECT().CreateCat(gomock.Any(), gomock.Any()).Times(0)

	body, contentType := multipartBody(t, map[string]string{
		"name":        "Барсик",
		"description": "Рыжий",
		"status":      "lost",
		"location":    "[55.75]", // Только одна координата
	}, nil)

	w := makeRequest(router, "POST", "/api/v1/cats", body, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid location format")
}

func TestCreateCat_InvalidStatus(t *testing.T) {
	_, _, catMock, router := newTestHandler(t)

	catMock.EXPECT().CreateCat(gomock.Any(), gomock.Any()).Times(0)

	// Статус home допустим только через смену статуса владельцем
	body, contentType := multipartBody(t, map[string]string{
		"name":        "Барсик",
		"description": "Рыжий",
		"status":      "home",
		"location":    "[55.75, 37.61]",
	}, nil)

	w := makeRequest(router, "POST", "/api/v1/cats", body, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Status' failed on the 'oneof' tag")
}

func TestAddReport_Success(t *testing.T) {
	_, _, catMock, router := newTestHandler(t)
	catID := uuid.New()
	createdReport := &models.Report{
		ID:          uuid.New(),
		CatID:       catID,
		Description: "Видел у подъезда",
	}

	catMock.EXPECT().
		AddReport(gomock.Any(), catID, gomock.Any()).
		Return(createdReport, nil).
		Times(1)

	body, contentType := multipartBody(t, map[string]string{
		"description": "Видел у подъезда",
		"location":    "[55.76, 37.62]",
	}, nil)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/cats/%s/reports", catID.String()), body, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp ReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, createdReport.ID, resp.ID)
}

func TestAddReport_UnknownCat(t *testing.T) {
	_, _, catMock, router := newTestHandler(t)
	catID := uuid.New()

	catMock.EXPECT().
		AddReport(gomock.Any(), catID, gomock.Any()).
		Return(nil, service.ErrNotFound).
		Times(1)

	body, contentType := multipartBody(t, map[string]string{
		"description": "Видел",
		"location":    "[55.76, 37.62]",
	}, nil)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/cats/%s/reports", catID.String()), body, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "cat not found")
}

func TestUpdateCatStatus_Success(t *testing.T) {
	h, _, catMock, router := newTestHandler(t)
	catID := uuid.New()
	userID := uuid.New()
	updatedCat := &models.Cat{ID: catID, Status: models.StatusHome, OwnerID: &userID}

	catMock.EXPECT().
		UpdateCatStatus(gomock.Any(), catID, models.StatusHome, userID).
		Return(updatedCat, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(UpdateStatusRequest{Status: "home"})
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/cats/%s/status", catID.String()), bytes.NewBuffer(bodyBytes), bearerHeader(t, h, userID))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp CatDetailResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, models.StatusHome, resp.Status)
}

func TestUpdateCatStatus_Unauthorized(t *testing.T) {
	_, _, catMock, router := newTestHandler(t)
	catID := uuid.New()

	catMock.EXPECT().UpdateCatStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(UpdateStatusRequest{Status: "home"})
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/cats/%s/status", catID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateCatStatus_Forbidden(t *testing.T) {
	h, _, catMock, router := newTestHandler(t)
	catID := uuid.New()
	userID := uuid.New()

	catMock.EXPECT().
		UpdateCatStatus(gomock.Any(), catID, models.StatusHome, userID).
		Return(nil, service.ErrForbidden).
		Times(1)

	bodyBytes, _ := json.Marshal(UpdateStatusRequest{Status: "home"})
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/cats/%s/status", catID.String()), bytes.NewBuffer(bodyBytes), bearerHeader(t, h, userID))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "only the owner can change cat status")
}

func TestUpdateCatStatus_InvalidStatus(t *testing.T) {
	h, _, catMock, router := newTestHandler(t)
	catID := uuid.New()
	userID := uuid.New()

	catMock.EXPECT().UpdateCatStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(UpdateStatusRequest{Status: "on_vacation"})
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/cats/%s/status", catID.String()), bytes.NewBuffer(bodyBytes), bearerHeader(t, h, userID))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Status' failed on the 'oneof' tag")
}

func TestDeleteCat_Success(t *testing.T) {
	h, _, catMock, router := newTestHandler(t)
	catID := uuid.New()
	userID := uuid.New()

	catMock.EXPECT().DeleteCat(gomock.Any(), catID, userID).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/cats/%s", catID.String()), nil, bearerHeader(t, h, userID))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteCat_Forbidden(t *testing.T) {
	h, _, catMock, router := newTestHandler(t)
	catID := uuid.New()
	userID := uuid.New()

	catMock.EXPECT().DeleteCat(gomock.Any(), catID, userID).Return(service.ErrForbidden).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/cats/%s", catID.String()), nil, bearerHeader(t, h, userID))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "only the owner can delete the cat")
}

func TestDeleteCat_NotFound(t *testing.T) {
	h, _, catMock, router := newTestHandler(t)
	catID := uuid.New()
	userID := uuid.New()

	catMock.EXPECT().DeleteCat(gomock.Any(), catID, userID).Return(service.ErrNotFound).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/cats/%s", catID.String()), nil, bearerHeader(t, h, userID))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "cat not found")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
