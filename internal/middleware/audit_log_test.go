package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/mocks"
)

// auditTestContext builds a gin context carrying a request, so the audit
// helpers can read method, path and headers from it.
func auditTestContext(t *testing.T) *gin.Context {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPut, "/api/stock", nil)
	req.Header.Set("User-Agent", "test-agent")
	c.Request = req
	return c
}

// waitForEntry blocks until the async audit goroutine delivers the entry
// to the mock, or fails the test after a timeout.
func waitForEntry(t *testing.T, ch <-chan *model.LogEntry) *model.LogEntry {
	t.Helper()
	select {
	case entry := <-ch:
		return entry
	case <-time.After(2 * time.Second):
		t.Fatal("audit entry was never written")
		return nil
	}
}

func TestAuditLog(t *testing.T) {
	mockLogging := new(mocks.MockLoggingService)
	captured := make(chan *model.LogEntry, 1)
	mockLogging.On("CreateLog", mock.Anything, mock.AnythingOfType("*model.LogEntry")).
		Run(func(args mock.Arguments) {
			captured <- args.Get(1).(*model.LogEntry)
		}).
		Return(nil)

	c := auditTestContext(t)
	c.Set("user_email", "ops@example.com")

	AuditLog(mockLogging, c, "upsert_stock", "Stock snapshot updated", map[string]interface{}{
		"rows": 3,
	})

	entry := waitForEntry(t, captured)
	assert.Equal(t, "info", entry.Level)
	assert.Equal(t, "upsert_stock", entry.ActionType)
	assert.Equal(t, "Stock snapshot updated", entry.Message)
	assert.Equal(t, http.MethodPut, entry.Method)
	assert.Equal(t, "/api/stock", entry.Path)
	assert.Equal(t, "test-agent", entry.UserAgent)
	assert.Equal(t, "ops@example.com", entry.UserEmail)
	require.NotNil(t, entry.Fields)
	assert.Equal(t, 3, entry.Fields["rows"])
	assert.Empty(t, entry.Error)
}

func TestAuditLogError(t *testing.T) {
	mockLogging := new(mocks.MockLoggingService)
	captured := make(chan *model.LogEntry, 1)
	mockLogging.On("CreateLog", mock.Anything, mock.AnythingOfType("*model.LogEntry")).
		Run(func(args mock.Arguments) {
			captured <- args.Get(1).(*model.LogEntry)
		}).
		Return(nil)

	c := auditTestContext(t)

	AuditLogError(mockLogging, c, "login_failed", "Login failed", errors.New("invalid credentials"), nil)

	entry := waitForEntry(t, captured)
	assert.Equal(t, "error", entry.Level)
	assert.Equal(t, "login_failed", entry.ActionType)
	assert.Equal(t, "invalid credentials", entry.Error)
	assert.Empty(t, entry.UserEmail)
}

func TestAuditLog_NilService(t *testing.T) {
	c := auditTestContext(t)

	// Must be a no-op, not a panic.
	AuditLog(nil, c, "optimize", "Optimization requested", nil)
	AuditLogError(nil, c, "optimize", "Optimization failed", errors.New("boom"), nil)
}

func TestAuditLog_StoreFailureIsSwallowed(t *testing.T) {
	mockLogging := new(mocks.MockLoggingService)
	done := make(chan struct{}, 1)
	mockLogging.On("CreateLog", mock.Anything, mock.AnythingOfType("*model.LogEntry")).
		Run(func(args mock.Arguments) {
			done <- struct{}{}
		}).
		Return(errors.New("mongo down"))

	c := auditTestContext(t)
	AuditLog(mockLogging, c, "update_package_types", "Package types updated", nil)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("audit entry was never attempted")
	}
	mockLogging.AssertExpectations(t)
}
