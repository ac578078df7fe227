package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestError_Envelope(t *testing.T) {
	c, w := newContext("/")

	Abort(c, http.StatusConflict, "CONFLICT", "Payroll already exists for this period", nil)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t,
		`{"ok":false,"error":{"code":"CONFLICT","message":"Payroll already exists for this period","details":null}}`,
		w.Body.String(),
	)
}

func TestSuccess_OmitsEmptyMeta(t *testing.T) {
	c, w := newContext("/")

	Success(c, http.StatusOK, map[string]string{"status": "DRAFT"}, nil)

	assert.JSONEq(t, `{"ok":true,"data":{"status":"DRAFT"}}`, w.Body.String())
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name     string
		target   string
		want     []int
		wantMeta PaginationMeta
	}{
		{"defaults", "/", items, PaginationMeta{Total: 7, TotalPages: 1, Page: 1, PageSize: 10}},
		{"second page", "/?page=2&page_size=3", []int{4, 5, 6}, PaginationMeta{Total: 7, TotalPages: 3, Page: 2, PageSize: 3}},
		{"past the end", "/?page=5&page_size=3", []int{}, PaginationMeta{Total: 7, TotalPages: 3, Page: 5, PageSize: 3}},
		{"invalid values", "/?page=-1&page_size=abc", items, PaginationMeta{Total: 7, TotalPages: 1, Page: 1, PageSize: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(tt.target)

			got, meta := Paginate(c, items)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMeta, meta)
		})
	}
}
