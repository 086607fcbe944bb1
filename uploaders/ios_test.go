package uploaders

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bitrise-steplib/steps-store-upload/fastlane"
	"github.com/bitrise-steplib/steps-store-upload/mocks"
	"github.com/bitrise-steplib/steps-store-upload/platform"
	"github.com/bitrise-steplib/steps-store-upload/upload"
)

func newIOS(runner Runner, prompter *mocks.Prompter, logger Logger) IOS {
	uploader := NewIOS(runner, prompter, nil, logger)
	uploader.goos = "darwin"
	return uploader
}

func TestIOS_CollectMetadata(t *testing.T) {
	t.Run("given Apple ID", func(t *testing.T) {
		prompter := new(mocks.Prompter)
		uploader := newIOS(new(mocks.Runner), prompter, newLogger())

		metadata, err := uploader.CollectMetadata(upload.Options{AppleID: "dev@example.com"})

		require.NoError(t, err)
		assert.Equal(t, upload.PlatformMetadata{AppleID: "dev@example.com"}, metadata)
		prompter.AssertNotCalled(t, "Ask", mock.Anything)
	})

	t.Run("prompted Apple ID", func(t *testing.T) {
		logger := newLogger()
		prompter := new(mocks.Prompter)
		prompter.On("Ask", "Your Apple ID Username: ").Return("dev@example.com", nil)
		uploader := newIOS(new(mocks.Runner), prompter, logger)

		metadata, err := uploader.CollectMetadata(upload.Options{})

		require.NoError(t, err)
		assert.Equal(t, upload.PlatformMetadata{AppleID: "dev@example.com"}, metadata)
		logger.AssertCalled(t, "Printf", "You can specify your Apple ID using --apple-id option")
	})
}

func TestIOS_Upload(t *testing.T) {
	metadata := upload.PlatformMetadata{AppleID: "dev@example.com"}
	produceArgs := []string{"com.example.sample", "Sample", "dev@example.com"}
	deliverArgs := []string{"build.ipa", "dev@example.com"}

	t.Run("login and upload succeed", func(t *testing.T) {
		logger := newLogger()
		runner := new(mocks.Runner)
		runner.On("Run", fastlane.Produce, produceArgs).Return(result(t, `{"result":"success"}`), nil).Once()
		runner.On("Run", fastlane.Deliver, deliverArgs).Return(result(t, `{"result":"success"}`), nil).Once()

		err := newIOS(runner, new(mocks.Prompter), logger).Upload(sampleConfig, metadata, "build.ipa")

		require.NoError(t, err)
		runner.AssertExpectations(t)
		logger.AssertNotCalled(t, "Warnf", mock.Anything)
	})

	t.Run("failed login skips upload", func(t *testing.T) {
		logger := newLogger()
		logger.On("Warnf", "bad id").Once()
		runner := new(mocks.Runner)
		runner.On("Run", fastlane.Produce, produceArgs).
			Return(result(t, `{"result":"error","rawDump":{"message":"bad id"}}`), nil).Once()

		err := newIOS(runner, new(mocks.Prompter), logger).Upload(sampleConfig, metadata, "build.ipa")

		require.NoError(t, err)
		runner.AssertNotCalled(t, "Run", fastlane.Deliver, mock.Anything)
		logger.AssertExpectations(t)
	})

	t.Run("failed upload is reported", func(t *testing.T) {
		logger := newLogger()
		logger.On("Warnf", "Returned json: {\"errors\":[\"invalid binary\"]}").Once()
		runner := new(mocks.Runner)
		runner.On("Run", fastlane.Produce, produceArgs).Return(result(t, `{"result":"success"}`), nil)
		runner.On("Run", fastlane.Deliver, deliverArgs).
			Return(result(t, `{"result":"error","rawDump":{"errors":["invalid binary"]}}`), nil)

		err := newIOS(runner, new(mocks.Prompter), logger).Upload(sampleConfig, metadata, "build.ipa")

		require.NoError(t, err)
		logger.AssertExpectations(t)
	})

	t.Run("login cannot be run", func(t *testing.T) {
		runner := new(mocks.Runner)
		runner.On("Run", fastlane.Produce, produceArgs).Return(fastlane.Result{}, errors.New("failed to run app_produce: executable file not found"))

		err := newIOS(runner, new(mocks.Prompter), newLogger()).Upload(sampleConfig, metadata, "build.ipa")

		require.EqualError(t, err, "failed to run app_produce: executable file not found")
		runner.AssertNotCalled(t, "Run", fastlane.Deliver, mock.Anything)
	})
}

func TestIOS_Upload_WarnsOutsideMacOS(t *testing.T) {
	logger := newLogger()
	logger.On("Warnf", "Uploading to the App Store is only supported on macOS, the publishing tool may fail on linux").Once()
	runner := new(mocks.Runner)
	runner.On("Run", mock.Anything, mock.Anything).Return(result(t, `{"result":"success"}`), nil)

	uploader := NewIOS(runner, new(mocks.Prompter), nil, logger)
	uploader.goos = "linux"

	require.NoError(t, uploader.Upload(sampleConfig, upload.PlatformMetadata{AppleID: "dev@example.com"}, "build.ipa"))
	logger.AssertExpectations(t)
}

func TestIOS_Platform(t *testing.T) {
	assert.Equal(t, platform.IOS, NewIOS(nil, nil, nil, nil).Platform())
}
