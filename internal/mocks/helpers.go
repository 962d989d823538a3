package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockFetcherForTest creates a MockFetcher whose controller is finished
// when the test ends.
func NewMockFetcherForTest(t *testing.T) *MockFetcher {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockFetcher(ctrl)
}
