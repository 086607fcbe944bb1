package mocks

import "github.com/stretchr/testify/mock"

// PathChecker expects both return values to be set, like Return(true, nil).
type PathChecker struct {
	mock.Mock
}

func (_m *PathChecker) IsPathExists(pth string) (bool, error) {
	args := _m.Called(pth)
	return args.Bool(0), args.Error(1)
}

func (_m *PathChecker) IsDirExists(pth string) (bool, error) {
	args := _m.Called(pth)
	return args.Bool(0), args.Error(1)
}
