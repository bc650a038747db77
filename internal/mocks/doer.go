package mocks

import (
	"net/http"

	"github.com/gokudu/kudu"
	"github.com/stretchr/testify/mock"
)

// MockDoer implements kudu.Doer for testing across packages
type MockDoer struct {
	mock.Mock
}

func (m *MockDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)

	// Handle function return types (for tests that inspect the request)
	if fn, ok := args.Get(0).(func(*http.Request) *http.Response); ok {
		return fn(req), args.Error(1)
	}

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

var _ kudu.Doer = (*MockDoer)(nil)
