package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		want     Pagination
	}{
		{name: "exact", page: 2, pageSize: 10, total: 20, want: Pagination{Page: 2, PageSize: 10, Total: 20, TotalPage: 2}},
		{name: "round_up", page: 1, pageSize: 12, total: 25, want: Pagination{Page: 1, PageSize: 12, Total: 25, TotalPage: 3}},
		{name: "zero_page", page: 0, pageSize: 12, total: 0, want: Pagination{Page: 1, PageSize: 12}},
		{name: "zero_size", page: 3, pageSize: 0, total: 9, want: Pagination{Page: 3, Total: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildPagination(tt.page, tt.pageSize, tt.total))
		})
	}
}

func TestErrorAttachesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/cart", nil)
	c.Set("request_id", "req-1")

	Error(c, CodeConflict, "Insufficient stock")

	require.Equal(t, http.StatusOK, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CodeConflict, resp.StatusCode)
	assert.Equal(t, "Insufficient stock", resp.Msg)
	assert.Equal(t, map[string]interface{}{"request_id": "req-1"}, resp.Data)
}
