package products

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/JosephJoshua/posad/internal/api/v1"
	"github.com/JosephJoshua/posad/internal/auth"
	httperr "github.com/JosephJoshua/posad/internal/core/errors"
	"github.com/JosephJoshua/posad/internal/core/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestRouter authenticates every request as uid unless uid is empty.
func newTestRouter(svc *Service, uid string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if uid != "" {
			auth.SetUserID(c, uid)
		}
		c.Next()
	})
	svc.RegisterRoutes(r)
	return r
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestHandlers_RequireUser(t *testing.T) {
	svc, _ := newTestService(t)
	r := newTestRouter(svc, "")

	resp := doJSON(r, http.MethodGet, "/v1/sections", nil)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHandleRegisterUser(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		configure  func(st stores)
		wantStatus int
		wantType   string
	}{
		{
			name: "created",
			body: v1.RegisterUserRequest{Name: "Ana", Email: "ana@example.com", AuthProvider: "email"},
			configure: func(st stores) {
				st.users.EXPECT().CreateUser(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid provider rejected by binding",
			body:       v1.RegisterUserRequest{Name: "Ana", Email: "ana@example.com", AuthProvider: "facebook"},
			configure:  func(stores) {},
			wantStatus: http.StatusBadRequest,
			wantType:   httperr.HttpInvalidJsonError,
		},
		{
			name: "already registered",
			body: v1.RegisterUserRequest{Name: "Ana", Email: "ana@example.com", AuthProvider: "google"},
			configure: func(st stores) {
				st.users.EXPECT().CreateUser(mock.Anything, mock.Anything, mock.Anything).Return(storage.ErrDuplicate).Once()
			},
			wantStatus: http.StatusConflict,
			wantType:   httperr.HttpDuplicateError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, st := newTestService(t)
			tc.configure(st)

			resp := doJSON(newTestRouter(svc, "uid-1"), http.MethodPost, "/v1/users", tc.body)
			require.Equal(t, tc.wantStatus, resp.Code)

			if tc.wantType != "" {
				var body httperr.ErrorResponse
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
				require.Equal(t, tc.wantType, body.ErrorType)
			}
		})
	}
}

func TestHandleAddMessagingToken(t *testing.T) {
	svc, st := newTestService(t)
	st.users.EXPECT().AddMessagingToken(mock.Anything, "uid-1", "tok-1").Return(nil).Once()

	r := newTestRouter(svc, "uid-1")

	resp := doJSON(r, http.MethodPost, "/v1/users/me/messaging-tokens", v1.MessagingTokenRequest{Token: "tok-1"})
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doJSON(r, http.MethodPost, "/v1/users/me/messaging-tokens", map[string]string{})
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleListSections(t *testing.T) {
	svc, st := newTestService(t)

	st.sections.EXPECT().ListSections(mock.Anything, "uid-1").Return([]v1.Section{{ID: "sec-f", Name: "Fridge"}}, nil).Once()
	st.products.EXPECT().ListProducts(mock.Anything, storage.ProductFilter{UserID: "uid-1"}).
		Return([]v1.Product{{ID: "p1", SectionID: "sec-f", Name: "Milk"}}, nil).Once()

	resp := doJSON(newTestRouter(svc, "uid-1"), http.MethodGet, "/v1/sections", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Sections []v1.SectionWithProducts `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Sections, 1)
	require.Equal(t, "Milk", body.Sections[0].Products[0].Name)
}

func TestHandleSectionMutations(t *testing.T) {
	svc, st := newTestService(t)
	r := newTestRouter(svc, "uid-1")

	st.sections.EXPECT().AddSection(mock.Anything, mock.Anything, "").Return(nil).Once()
	resp := doJSON(r, http.MethodPost, "/v1/sections", v1.AddSectionRequest{Name: "Freezer"})
	require.Equal(t, http.StatusCreated, resp.Code)

	st.sections.EXPECT().RenameSection(mock.Anything, "uid-1", "sec-f", "Chiller").Return(nil).Once()
	resp = doJSON(r, http.MethodPatch, "/v1/sections/sec-f", v1.EditSectionRequest{Name: "Chiller"})
	require.Equal(t, http.StatusNoContent, resp.Code)

	st.sections.EXPECT().DeleteSection(mock.Anything, "uid-1", "sec-x").Return(storage.ErrNotFound).Once()
	resp = doJSON(r, http.MethodDelete, "/v1/sections/sec-x", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleAddProduct(t *testing.T) {
	svc, st := newTestService(t)
	r := newTestRouter(svc, "uid-1")
	exp := time.Date(2023, 3, 20, 0, 0, 0, 0, time.UTC)

	st.products.EXPECT().AddProduct(mock.Anything, mock.MatchedBy(func(p *v1.Product) bool {
		return p.UserID == "uid-1" && p.SectionID == "sec-f" && p.ExpirationDate.Equal(exp)
	})).Return(nil).Once()

	resp := doJSON(r, http.MethodPost, "/v1/sections/sec-f/products", v1.AddProductRequest{Name: "Milk", ExpirationDate: exp})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created v1.Product
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	require.Equal(t, "id-1", created.ID)

	resp = doJSON(r, http.MethodPost, "/v1/sections/sec-f/products", map[string]string{"name": "Milk"})
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleCompleteProduct(t *testing.T) {
	svc, st := newTestService(t)
	r := newTestRouter(svc, "uid-1")
	key := v1.ProductKey{UserID: "uid-1", SectionID: "sec-f", ProductID: "p1"}
	exp := time.Date(2023, 3, 17, 0, 0, 0, 0, time.UTC)

	st.products.EXPECT().GetProduct(mock.Anything, key).Return(&v1.Product{ID: "p1", ExpirationDate: exp}, nil).Once()
	st.products.EXPECT().CompleteProduct(mock.Anything, key, fixedNow, false).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/v1/sections/sec-f/products/p1/complete", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var body v1.Product
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.False(t, body.IsOnTime)
	require.NotNil(t, body.ConsumedAt)
}

func TestHandleDeleteProduct_NotFound(t *testing.T) {
	svc, st := newTestService(t)
	key := v1.ProductKey{UserID: "uid-1", SectionID: "sec-f", ProductID: "p404"}

	st.products.EXPECT().DeleteProduct(mock.Anything, key).Return(storage.ErrNotFound).Once()

	resp := doJSON(newTestRouter(svc, "uid-1"), http.MethodDelete, "/v1/sections/sec-f/products/p404", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
}
