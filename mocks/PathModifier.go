package mocks

import "github.com/stretchr/testify/mock"

type PathModifier struct {
	mock.Mock
}

func (_m *PathModifier) AbsPath(pth string) (string, error) {
	args := _m.Called(pth)
	return args.String(0), args.Error(1)
}
