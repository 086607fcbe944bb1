package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/bitrise-steplib/steps-store-upload/project"
)

type ProjectReader struct {
	mock.Mock
}

func (_m *ProjectReader) Read(projectDir string) (project.Config, error) {
	args := _m.Called(projectDir)
	return args.Get(0).(project.Config), args.Error(1)
}
