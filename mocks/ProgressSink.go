package mocks

import "github.com/stretchr/testify/mock"

type ProgressSink struct {
	mock.Mock
}

func (_m *ProgressSink) Start(total int64) {
	_m.Called(total)
}

func (_m *ProgressSink) Add(n int64) {
	_m.Called(n)
}

func (_m *ProgressSink) Finish() {
	_m.Called()
}
