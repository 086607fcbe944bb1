package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/bitrise-steplib/steps-store-upload/fastlane"
)

type Runner struct {
	mock.Mock
}

func (_m *Runner) Run(action fastlane.Action, args ...string) (fastlane.Result, error) {
	ret := _m.Called(action, args)
	var result fastlane.Result
	if r := ret.Get(0); r != nil {
		result = r.(fastlane.Result)
	}
	return result, ret.Error(1)
}
