package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/JosephJoshua/posad/internal/api/v1"
	"github.com/JosephJoshua/posad/internal/auth"
	httperr "github.com/JosephJoshua/posad/internal/core/errors"
	storagemocks "github.com/JosephJoshua/posad/internal/mocks/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandleWentBad_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		uid            string
		expectedStatus int
		expectedType   string
		configure      func(store *storagemocks.ProductStore)
	}{
		{
			name:           "default timeframe returns 200",
			query:          "",
			uid:            "uid-1",
			expectedStatus: http.StatusOK,
			configure: func(store *storagemocks.ProductStore) {
				store.EXPECT().ListProducts(mock.Anything, mock.Anything).Return([]v1.Product{}, nil).Once()
			},
		},
		{
			name:           "invalid timeframe returns 400",
			query:          "timeframe=decade",
			uid:            "uid-1",
			expectedStatus: http.StatusBadRequest,
			expectedType:   httperr.HttpInvalidQueryError,
			configure:      func(*storagemocks.ProductStore) {},
		},
		{
			name:           "store error returns 500",
			query:          "timeframe=month",
			uid:            "uid-1",
			expectedStatus: http.StatusInternalServerError,
			expectedType:   httperr.HttpInternalError,
			configure: func(store *storagemocks.ProductStore) {
				store.EXPECT().ListProducts(mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
		},
		{
			name:           "missing user returns 401",
			query:          "timeframe=week",
			expectedStatus: http.StatusUnauthorized,
			expectedType:   httperr.HttpUnauthorizedError,
			configure:      func(*storagemocks.ProductStore) {},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := storagemocks.NewProductStore(t)
			tc.configure(store)

			svc := NewService(store, time.UTC)
			svc.nowFn = func() time.Time { return time.Date(2023, 3, 22, 12, 0, 0, 0, time.UTC) }

			r := gin.New()
			r.Use(func(c *gin.Context) {
				if tc.uid != "" {
					auth.SetUserID(c, tc.uid)
				}
			})
			svc.RegisterRoutes(r)

			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/went-bad?"+tc.query, nil)
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)

			require.Equal(t, tc.expectedStatus, resp.Code)
			if tc.expectedType != "" {
				var body httperr.ErrorResponse
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
				require.Equal(t, tc.expectedType, body.ErrorType)
				return
			}

			var body WentBadResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			require.Equal(t, TimeframeWeek, body.Timeframe)
			require.Len(t, body.Points, 7)
		})
	}
}

func TestHandleExpiringSoon_RejectsBadLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := NewService(storagemocks.NewProductStore(t), time.UTC)

	r := gin.New()
	r.Use(func(c *gin.Context) { auth.SetUserID(c, "uid-1") })
	svc.RegisterRoutes(r)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/v1/dashboard/expiring-soon?limit=1000", nil))

	require.Equal(t, http.StatusBadRequest, resp.Code)
}
