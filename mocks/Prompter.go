package mocks

import "github.com/stretchr/testify/mock"

type Prompter struct {
	mock.Mock
}

func (_m *Prompter) Ask(message string) (string, error) {
	args := _m.Called(message)
	return args.String(0), args.Error(1)
}

func (_m *Prompter) Select(message string, options []string) (int, error) {
	args := _m.Called(message, options)
	return args.Int(0), args.Error(1)
}
