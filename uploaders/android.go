package uploaders

import (
	"fmt"

	"github.com/bitrise-io/go-utils/v2/pathutil"

	"github.com/bitrise-steplib/steps-store-upload/errs"
	"github.com/bitrise-steplib/steps-store-upload/fastlane"
	"github.com/bitrise-steplib/steps-store-upload/platform"
	"github.com/bitrise-steplib/steps-store-upload/project"
	"github.com/bitrise-steplib/steps-store-upload/prompt"
	"github.com/bitrise-steplib/steps-store-upload/upload"
)

// Android uploads apk files to Google Play.
type Android struct {
	runner      Runner
	prompter    prompt.Prompter
	pathChecker pathutil.PathChecker
	inspect     InspectFunc
	logger      Logger
}

// NewAndroid ...
func NewAndroid(runner Runner, prompter prompt.Prompter, pathChecker pathutil.PathChecker, inspect InspectFunc, logger Logger) Android {
	return Android{
		runner:      runner,
		prompter:    prompter,
		pathChecker: pathChecker,
		inspect:     inspect,
		logger:      logger,
	}
}

// Platform ...
func (a Android) Platform() platform.Platform {
	return platform.Android
}

// ValidateOptions checks that the service account key, if given, exists.
func (a Android) ValidateOptions(opts upload.Options) error {
	if opts.Key == "" {
		return nil
	}

	exists, err := a.pathChecker.IsPathExists(opts.Key)
	if err != nil {
		return fmt.Errorf("failed to check if %s exists: %w", opts.Key, err)
	}
	if !exists {
		return errs.Validationf("No such file: %s", opts.Key)
	}
	return nil
}

// CollectMetadata returns the service account key, asking for it if it was not given.
func (a Android) CollectMetadata(opts upload.Options) (upload.PlatformMetadata, error) {
	if opts.Key != "" {
		return upload.PlatformMetadata{Key: opts.Key}, nil
	}

	a.logger.Printf("You can specify json file ID using --key option")
	key, err := a.prompter.Ask("The service account json file used to authenticate with Google Play Store: ")
	if err != nil {
		return upload.PlatformMetadata{}, fmt.Errorf("failed to read service account key: %w", err)
	}
	return upload.PlatformMetadata{Key: key}, nil
}

// Upload submits the apk with the supply action.
func (a Android) Upload(cfg project.Config, metadata upload.PlatformMetadata, artifactPath string) error {
	packageName := cfg.Identifier(platform.Android)
	checkIdentity(a.logger, a.inspect, platform.Android, artifactPath, packageName)

	result, err := a.runner.Run(fastlane.Supply, packageName, artifactPath, metadata.Key)
	if err != nil {
		return err
	}
	if !result.Succeeded() {
		reportFailure(a.logger, "supply", result)
	}
	return nil
}
