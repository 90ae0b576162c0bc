package handler

import (
	"net/http"
	"testing"

	"hostelhub/internal/microservices/http-api/dto"
	"hostelhub/internal/microservices/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDishHandler_Suggest(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "queued", body: `{"name":"Poha","mealType":"Breakfast","category":"Main","tags":["veg"]}`, wantStatus: http.StatusCreated},
		{name: "missing name", body: `{"mealType":"Breakfast","category":"Main"}`, wantStatus: http.StatusBadRequest},
		{name: "limit reached", body: `{"name":"Poha","mealType":"Breakfast","category":"Main"}`, err: service.ErrSuggestionLimit, wantStatus: http.StatusTooManyRequests},
		{name: "duplicate", body: `{"name":"Poha","mealType":"Breakfast","category":"Main"}`, err: service.ErrDishExists, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockDishService)
			router := setupRouterWithAuth(studentClaims(), NewDishHandler(svc).RegisterRoutes)
			if tt.err != nil {
				svc.On("SuggestDish", mock.Anything, testHostelID, "student-1", mock.Anything).Return(nil, tt.err)
			} else {
				svc.On("SuggestDish", mock.Anything, testHostelID, "student-1", mock.Anything).
					Return(&dto.DishResponse{ID: "d-1", Name: "Poha", Status: "UNDER_REVIEW"}, nil)
			}

			w := performRequest(router, http.MethodPost, "/api/dishes/suggest", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestDishHandler_AdminQueue(t *testing.T) {
	svc := new(MockDishService)
	router := setupRouterWithAuth(adminClaims(), NewDishHandler(svc).RegisterRoutes)

	svc.On("ListDishes", mock.Anything, testHostelID, "UNDER_REVIEW").
		Return([]dto.DishResponse{{ID: "d-1", Name: "Poha", Status: "UNDER_REVIEW"}}, nil)
	svc.On("ApproveDish", mock.Anything, testHostelID, "d-1", "admin-1", 3, 4).
		Return(&dto.DishResponse{ID: "d-1", Status: "ACTIVE"}, nil)
	svc.On("ApproveDish", mock.Anything, testHostelID, "d-2", "admin-1", 3, 4).
		Return(nil, service.ErrDishNotFound)
	svc.On("RejectDish", mock.Anything, testHostelID, "d-3", "admin-1", "duplicate of Upma").
		Return(&dto.DishResponse{ID: "d-3", Status: "INACTIVE"}, nil)

	w := performRequest(router, http.MethodGet, "/api/admin/dishes?status=UNDER_REVIEW", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)

	w = performRequest(router, http.MethodPost, "/api/admin/dishes/d-1/approve", `{"priceScore":3,"healthScore":4}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ACTIVE"`)

	w = performRequest(router, http.MethodPost, "/api/admin/dishes/d-2/approve", `{"priceScore":3,"healthScore":4}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, http.MethodPost, "/api/admin/dishes/d-3/reject", `{"reason":"duplicate of Upma"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodPost, "/api/admin/dishes/d-3/reject", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertExpectations(t)
}

func TestDishHandler_StudentCannotReview(t *testing.T) {
	svc := new(MockDishService)
	router := setupRouterWithAuth(studentClaims(), NewDishHandler(svc).RegisterRoutes)

	w := performRequest(router, http.MethodGet, "/api/admin/dishes", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}
