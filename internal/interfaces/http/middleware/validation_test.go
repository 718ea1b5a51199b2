package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingFieldErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	SetupValidator()

	type createRequest struct {
		Description string `json:"description" binding:"required"`
		AssigneeID  string `json:"assignee_id" binding:"required,uuid"`
		Status      string `json:"status" binding:"omitempty,oneof=active on_hold dropped"`
	}

	bind := func(t *testing.T, body string) error {
		t.Helper()
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		var req createRequest
		return c.ShouldBindJSON(&req)
	}

	t.Run("reports every failing field by its json name", func(t *testing.T) {
		err := bind(t, `{"assignee_id":"not-a-uuid","status":"live"}`)
		require.Error(t, err)

		fields, ok := BindingFieldErrors(err)
		require.True(t, ok)
		assert.Equal(t, "This field is required", fields["description"])
		assert.Equal(t, "Invalid UUID format", fields["assignee_id"])
		assert.Equal(t, "Must be one of: active on_hold dropped", fields["status"])
	})

	t.Run("valid payload binds cleanly", func(t *testing.T) {
		err := bind(t, `{"description":"Chase landlord","assignee_id":"7cb9891e-6c0c-4f33-8f7a-94dbb5e0a801"}`)
		require.NoError(t, err)
	})

	t.Run("non-validator errors are passed over", func(t *testing.T) {
		_, ok := BindingFieldErrors(io.ErrUnexpectedEOF)
		assert.False(t, ok)
	})
}
