// Package upload drives the upload of a build artifact to an app store.
package upload

import (
	"context"
	"fmt"

	"github.com/bitrise-io/go-utils/v2/pathutil"

	"github.com/bitrise-steplib/steps-store-upload/artifact"
	"github.com/bitrise-steplib/steps-store-upload/errs"
	"github.com/bitrise-steplib/steps-store-upload/platform"
	"github.com/bitrise-steplib/steps-store-upload/project"
)

// PlatformUploader is the store specific part of an upload.
type PlatformUploader interface {
	Platform() platform.Platform
	ValidateOptions(opts Options) error
	CollectMetadata(opts Options) (PlatformMetadata, error)
	Upload(cfg project.Config, metadata PlatformMetadata, artifactPath string) error
}

// SourceResolver ...
type SourceResolver interface {
	Resolve(ctx context.Context, projectDir string, sel artifact.Selection) (artifact.Source, error)
}

// ArtifactFetcher ...
type ArtifactFetcher interface {
	Materialize(ctx context.Context, src artifact.Source) (string, error)
}

// ProjectReader ...
type ProjectReader interface {
	Read(projectDir string) (project.Config, error)
}

// Logger ...
type Logger interface {
	Infof(format string, v ...interface{})
	Printf(format string, v ...interface{})
	Donef(format string, v ...interface{})
	Debugf(format string, v ...interface{})
}

// Orchestrator ...
type Orchestrator struct {
	uploader     PlatformUploader
	resolver     SourceResolver
	fetcher      ArtifactFetcher
	projects     ProjectReader
	pathChecker  pathutil.PathChecker
	pathModifier pathutil.PathModifier
	logger       Logger
}

// NewOrchestrator ...
func NewOrchestrator(
	uploader PlatformUploader,
	resolver SourceResolver,
	fetcher ArtifactFetcher,
	projects ProjectReader,
	pathChecker pathutil.PathChecker,
	pathModifier pathutil.PathModifier,
	logger Logger,
) Orchestrator {
	return Orchestrator{
		uploader:     uploader,
		resolver:     resolver,
		fetcher:      fetcher,
		projects:     projects,
		pathChecker:  pathChecker,
		pathModifier: pathModifier,
		logger:       logger,
	}
}

// Upload submits the artifact picked by opts to the store of the uploader's platform.
// The first failing step aborts the upload.
func (o Orchestrator) Upload(ctx context.Context, projectDir string, opts Options) error {
	p := o.uploader.Platform()

	absProjectDir, err := o.pathModifier.AbsPath(projectDir)
	if err != nil {
		return fmt.Errorf("failed to expand project dir (%s): %w", projectDir, err)
	}

	if err := o.validate(opts); err != nil {
		return err
	}

	o.logger.Infof("Resolving %s build", p.DisplayName())
	source, err := o.resolver.Resolve(ctx, absProjectDir, opts.selection())
	if err != nil {
		return err
	}
	if source.BuildID != "" {
		o.logger.Printf("Selected build: %s", source.BuildID)
	}

	cfg, err := o.projects.Read(absProjectDir)
	if err != nil {
		return err
	}
	if err := project.Validate(cfg, p); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	artifactPath, err := o.fetcher.Materialize(ctx, source)
	if err != nil {
		return err
	}
	o.logger.Debugf("Artifact: %s", artifactPath)

	metadata, err := o.uploader.CollectMetadata(opts)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	o.logger.Infof("Uploading %s to the %s store", artifactPath, p.DisplayName())
	if err := o.uploader.Upload(cfg, metadata, artifactPath); err != nil {
		return err
	}

	o.logger.Donef("Upload finished")
	return nil
}

func (o Orchestrator) validate(opts Options) error {
	if opts.sourceCount() > 1 {
		return errs.Validationf("You have to choose only one of --path, --id, --latest")
	}

	if opts.Path != "" {
		exists, err := o.pathChecker.IsPathExists(opts.Path)
		if err != nil {
			return fmt.Errorf("failed to check if %s exists: %w", opts.Path, err)
		}
		if !exists {
			return errs.Validationf("File %s doesn't exist", opts.Path)
		}

		p := o.uploader.Platform()
		if !p.HasExtension(opts.Path) {
			return errs.Validationf("File %s isn't %s file", opts.Path, p.Extension())
		}
	}

	return o.uploader.ValidateOptions(opts)
}
