package upload

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bitrise-steplib/steps-store-upload/artifact"
	"github.com/bitrise-steplib/steps-store-upload/platform"
	"github.com/bitrise-steplib/steps-store-upload/project"
)

type mockUploader struct {
	mock.Mock
	platform platform.Platform
}

func (m *mockUploader) Platform() platform.Platform {
	return m.platform
}

func (m *mockUploader) ValidateOptions(opts Options) error {
	return m.Called(opts).Error(0)
}

func (m *mockUploader) CollectMetadata(opts Options) (PlatformMetadata, error) {
	args := m.Called(opts)
	return args.Get(0).(PlatformMetadata), args.Error(1)
}

func (m *mockUploader) Upload(cfg project.Config, metadata PlatformMetadata, artifactPath string) error {
	return m.Called(cfg, metadata, artifactPath).Error(0)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(ctx context.Context, projectDir string, sel artifact.Selection) (artifact.Source, error) {
	args := m.Called(ctx, projectDir, sel)
	return args.Get(0).(artifact.Source), args.Error(1)
}

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Materialize(ctx context.Context, src artifact.Source) (string, error) {
	args := m.Called(ctx, src)
	return args.String(0), args.Error(1)
}
