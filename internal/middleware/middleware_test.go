package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/domain"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/middleware"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testSecret = "test-secret"

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetJWTSecret(testSecret)
}

func TestAuthMiddleware(t *testing.T) {
	newRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/me", middleware.AuthMiddleware(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"company_id":  c.GetString("company_id"),
				"employee_id": c.GetString("employee_id"),
			})
		})
		return r
	}

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "UNAUTHORIZED", decode(t, w).Error.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id":     "u-1",
			"employee_id": "e-1",
			"company_id":  "c-1",
			"role":        "admin",
			"exp":         time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "c-1")
		assert.Contains(t, w.Body.String(), "e-1")
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id":     "u-1",
			"employee_id": "e-1",
			"company_id":  "c-1",
			"exp":         time.Now().Add(-time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, middleware.ErrTokenExpired.Message, decode(t, w).Error.Message)
	})

	t.Run("missing company claim", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": "u-1", "employee_id": "e-1"})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, middleware.ErrMissingClaim.Message, decode(t, w).Error.Message)
	})
}

type fakeEnforcer struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func TestRBACAuthorize(t *testing.T) {
	newRouter := func(enf *fakeEnforcer, withAuth bool) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if withAuth {
				c.Set("employee_id", "e-1")
				c.Set("company_id", "c-1")
			}
			c.Next()
		})
		r.POST("/payrolls/:id/approve", middleware.RBACAuthorize(enf, "payroll", "approve"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		return r
	}

	t.Run("allowed", func(t *testing.T) {
		enf := &fakeEnforcer{allowed: true}
		w := httptest.NewRecorder()
		newRouter(enf, true).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payrolls/1/approve", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "payroll", enf.got.Resource)
		assert.Equal(t, "approve", enf.got.Action)
		assert.Equal(t, "c-1", enf.got.CompanyID)
	})

	t.Run("forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(&fakeEnforcer{}, true).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payrolls/1/approve", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "FORBIDDEN", decode(t, w).Error.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(&fakeEnforcer{err: errors.New("boom")}, true).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payrolls/1/approve", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("missing auth context", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(&fakeEnforcer{allowed: true}, false).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payrolls/1/approve", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestIdempotency(t *testing.T) {
	const cacheKey = "idemp:/payrolls:u-1:key-1"

	t.Run("replays cached response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).SetVal(`{"id":"p-1"}`)

		called := false
		r := gin.New()
		r.Use(func(c *gin.Context) { c.Set("user_id_validated", "u-1"); c.Next() })
		r.POST("/payrolls", middleware.Idempotency(rdb), func(c *gin.Context) { called = true })

		req := httptest.NewRequest(http.MethodPost, "/payrolls", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "p-1")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects concurrent duplicate", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		r := gin.New()
		r.Use(func(c *gin.Context) { c.Set("user_id_validated", "u-1"); c.Next() })
		r.POST("/payrolls", middleware.Idempotency(rdb), func(c *gin.Context) { c.Status(http.StatusCreated) })

		req := httptest.NewRequest(http.MethodPost, "/payrolls", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request acquires lock", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

		var gotCache, gotLock string
		r := gin.New()
		r.Use(func(c *gin.Context) { c.Set("user_id_validated", "u-1"); c.Next() })
		r.POST("/payrolls", middleware.Idempotency(rdb), func(c *gin.Context) {
			gotCache = c.GetString(middleware.IdempotencyCacheKey)
			gotLock = c.GetString(middleware.IdempotencyLockKey)
			c.Status(http.StatusCreated)
		})

		req := httptest.NewRequest(http.MethodPost, "/payrolls", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, cacheKey, gotCache)
		assert.Equal(t, cacheKey+":lock", gotLock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRateLimitByUser(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "u-1"); c.Next() })
	r.GET("/x", middleware.RateLimitByUser(0.001, 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/x", nil))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, http.StatusTooManyRequests, w2.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	tests := []struct {
		name    string
		inbound string
		keep    bool
	}{
		{"propagated", "req-123", true},
		{"minted when absent", "", false},
		{"replaced when too long", strings.Repeat("a", 65), false},
		{"replaced with control characters", "abc\tdef", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.inbound != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.inbound)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(middleware.RequestIDHeader)
			assert.Equal(t, got, w.Body.String())
			if tt.keep {
				assert.Equal(t, tt.inbound, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestContextLogger_TagsRequestAndCaller(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ContextLogger(zap.New(core)))
	r.GET("/x", middleware.AuthMiddleware(), func(c *gin.Context) {
		contextutil.GetLogger(c.Request.Context(), nil).Info("handled")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{
		"user_id":     "u-1",
		"employee_id": "e-1",
		"company_id":  "c-1",
		"exp":         time.Now().Add(time.Hour).Unix(),
	}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	entries := logs.FilterMessage("handled").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, "u-1", fields["user_id"])
	assert.Equal(t, "c-1", fields["company_id"])
}
