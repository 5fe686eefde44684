package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gamevault/backend/internal/domain"
	"github.com/gamevault/backend/internal/lootbox"
)

type mockLootboxService struct {
	mock.Mock
}

func (m *mockLootboxService) Open(ctx context.Context, userID string, boxID int) (*domain.DrawResult, error) {
	args := m.Called(ctx, userID, boxID)
	if result := args.Get(0); result != nil {
		return result.(*domain.DrawResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLootboxService) List(ctx context.Context, userID string) (*lootbox.ListResult, error) {
	args := m.Called(ctx, userID)
	if result := args.Get(0); result != nil {
		return result.(*lootbox.ListResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func openRequest(t *testing.T, body interface{}, userID string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lootboxes/open", &buf)
	if userID != "" {
		req.Header.Set(UserIDHeader, userID)
	}
	return req
}

func TestHandleOpenLootbox(t *testing.T) {
	next := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		userID         string
		reqBody        interface{}
		setupMock      func(*mockLootboxService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			userID:  "user-1",
			reqBody: OpenLootboxRequest{LootboxID: 1},
			setupMock: func(m *mockLootboxService) {
				m.On("Open", mock.Anything, "user-1", 1).Return(&domain.DrawResult{
					Item: domain.LootBoxItem{
						ItemType: domain.ItemTypeDiscount,
						ItemName: "5% Voucher",
						Value:    50,
					},
					NextAvailable: next,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"5% Voucher"`,
		},
		{
			name:    "On Cooldown",
			userID:  "user-1",
			reqBody: OpenLootboxRequest{LootboxID: 1},
			setupMock: func(m *mockLootboxService) {
				m.On("Open", mock.Anything, "user-1", 1).
					Return(nil, domain.ErrBoxOnCooldown{LootBoxID: 1, NextAvailable: next})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"next_available"`,
		},
		{
			name:           "Missing User Header",
			userID:         "",
			reqBody:        OpenLootboxRequest{LootboxID: 1},
			setupMock:      func(m *mockLootboxService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgMissingUserHeader,
		},
		{
			name:           "Invalid JSON",
			userID:         "user-1",
			reqBody:        "not json",
			setupMock:      func(m *mockLootboxService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Missing Lootbox ID",
			userID:         "user-1",
			reqBody:        map[string]interface{}{},
			setupMock:      func(m *mockLootboxService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:    "Box Not Found",
			userID:  "user-1",
			reqBody: OpenLootboxRequest{LootboxID: 99},
			setupMock: func(m *mockLootboxService) {
				m.On("Open", mock.Anything, "user-1", 99).Return(nil, domain.ErrBoxNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgBoxNotFoundError,
		},
		{
			name:    "Empty Box",
			userID:  "user-1",
			reqBody: OpenLootboxRequest{LootboxID: 2},
			setupMock: func(m *mockLootboxService) {
				m.On("Open", mock.Anything, "user-1", 2).Return(nil, domain.ErrBoxEmpty)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgBoxEmptyError,
		},
		{
			name:    "Service Error",
			userID:  "user-1",
			reqBody: OpenLootboxRequest{LootboxID: 1},
			setupMock: func(m *mockLootboxService) {
				m.On("Open", mock.Anything, "user-1", 1).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockLootboxService)
			tt.setupMock(svc)
			h := NewLootboxHandler(svc)

			rec := httptest.NewRecorder()
			h.HandleOpenLootbox(rec, openRequest(t, tt.reqBody, tt.userID))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleOpenLootbox_CooldownPayloadCarriesTime(t *testing.T) {
	next := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	svc := new(mockLootboxService)
	svc.On("Open", mock.Anything, "user-1", 1).
		Return(nil, domain.ErrBoxOnCooldown{LootBoxID: 1, NextAvailable: next})
	h := NewLootboxHandler(svc)

	rec := httptest.NewRecorder()
	h.HandleOpenLootbox(rec, openRequest(t, OpenLootboxRequest{LootboxID: 1}, "user-1"))

	var resp CooldownResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, next, resp.NextAvailable.UTC())
}

func TestHandleListLootboxes(t *testing.T) {
	svc := new(mockLootboxService)
	svc.On("List", mock.Anything, "user-1").Return(&lootbox.ListResult{
		Lootboxes: []domain.LootBoxListing{
			{LootBox: domain.LootBox{ID: 1, Name: "Bronze Crate"}, IsAvailable: true},
		},
		History: []domain.LootBoxHistoryEntry{
			{ID: 1, LootBoxID: 1, ItemWonType: domain.ItemTypeDiscount, ItemWonName: "Voucher"},
		},
	}, nil)
	h := NewLootboxHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lootboxes", nil)
	req.Header.Set(UserIDHeader, "user-1")

	rec := httptest.NewRecorder()
	h.HandleListLootboxes(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Bronze Crate"`)
	assert.Contains(t, rec.Body.String(), `"is_available":true`)
	assert.Contains(t, rec.Body.String(), `"history"`)
}

func TestHandleListLootboxes_MissingHeader(t *testing.T) {
	h := NewLootboxHandler(new(mockLootboxService))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lootboxes", nil)
	rec := httptest.NewRecorder()
	h.HandleListLootboxes(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
