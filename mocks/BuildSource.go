package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bitrise-steplib/steps-store-upload/buildinfo"
)

type BuildSource struct {
	mock.Mock
}

func (_m *BuildSource) Builds(ctx context.Context, projectDir string, opts buildinfo.QueryOptions) ([]buildinfo.Build, error) {
	args := _m.Called(ctx, projectDir, opts)
	var builds []buildinfo.Build
	if b := args.Get(0); b != nil {
		builds = b.([]buildinfo.Build)
	}
	return builds, args.Error(1)
}
