package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockNotifier is a mock for the completion notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyFastComplete(chatID int64) error {
	args := m.Called(chatID)
	return args.Error(0)
}
