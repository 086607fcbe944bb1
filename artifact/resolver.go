package artifact

import (
	"context"
	"fmt"

	"github.com/bitrise-steplib/steps-store-upload/buildinfo"
	"github.com/bitrise-steplib/steps-store-upload/errs"
	"github.com/bitrise-steplib/steps-store-upload/platform"
	"github.com/bitrise-steplib/steps-store-upload/prompt"
)

const (
	latestBuildChoice = "Latest build"
	otherBuildChoice  = "Other build"

	chooserLimit = 10
)

// BuildSource lists the builds of a project. An empty result means no build was found,
// an error means the project itself could not be read.
type BuildSource interface {
	Builds(ctx context.Context, projectDir string, opts buildinfo.QueryOptions) ([]buildinfo.Build, error)
}

// Resolver decides which artifact to upload.
type Resolver struct {
	platform   platform.Platform
	builds     BuildSource
	prompter   prompt.Prompter
	websiteURL string
}

// NewResolver ...
func NewResolver(p platform.Platform, builds BuildSource, prompter prompt.Prompter, websiteURL string) Resolver {
	return Resolver{
		platform:   p,
		builds:     builds,
		prompter:   prompter,
		websiteURL: websiteURL,
	}
}

// Resolve returns the source of the artifact picked by sel.
// A local path is returned unchanged, its existence is checked by the caller.
func (r Resolver) Resolve(ctx context.Context, projectDir string, sel Selection) (Source, error) {
	switch {
	case sel.Path != "":
		return Source{LocalPath: sel.Path, Platform: r.platform}, nil
	case sel.Latest:
		return r.latest(ctx, projectDir)
	case sel.ID != "":
		return r.byID(ctx, projectDir, sel.ID)
	default:
		return r.interactive(ctx, projectDir)
	}
}

func (r Resolver) byID(ctx context.Context, projectDir, id string) (Source, error) {
	builds, err := r.builds.Builds(ctx, projectDir, buildinfo.QueryOptions{ID: id, Platform: r.platform})
	if err != nil {
		return Source{}, err
	}
	if len(builds) == 0 {
		return Source{}, errs.NotFoundf("There is no compiled build with id: %s", id)
	}

	source := r.remoteSource(builds[0])
	source.BuildID = id
	return source, nil
}

func (r Resolver) latest(ctx context.Context, projectDir string) (Source, error) {
	builds, err := r.builds.Builds(ctx, projectDir, buildinfo.QueryOptions{Platform: r.platform, Limit: 1})
	if err != nil {
		return Source{}, err
	}
	if len(builds) == 0 {
		return Source{}, errs.NotFoundf("There is no compiled builds for %s", r.platform)
	}

	source := r.remoteSource(builds[0])
	source.Platform = r.platform
	return source, nil
}

func (r Resolver) interactive(ctx context.Context, projectDir string) (Source, error) {
	choice, err := r.prompter.Select("Which build do you want to upload?", []string{latestBuildChoice, otherBuildChoice})
	if err != nil {
		return Source{}, fmt.Errorf("failed to select build source: %w", err)
	}

	if choice == 0 {
		return r.latest(ctx, projectDir)
	}
	return r.chooseBuild(ctx, projectDir)
}

func (r Resolver) chooseBuild(ctx context.Context, projectDir string) (Source, error) {
	builds, err := r.builds.Builds(ctx, projectDir, buildinfo.QueryOptions{Platform: r.platform, Limit: chooserLimit})
	if err != nil {
		return Source{}, err
	}
	if len(builds) == 0 {
		return Source{}, errs.NotFoundf("There is no compiled builds for %s", r.platform.DisplayName())
	}
	if len(builds) > chooserLimit {
		builds = builds[:chooserLimit]
	}

	labels := make([]string, len(builds))
	for i, build := range builds {
		labels[i] = r.buildLabel(build)
	}

	idx, err := r.prompter.Select("Choose build to upload", labels)
	if err != nil {
		return Source{}, fmt.Errorf("failed to choose build: %w", err)
	}
	if idx < 0 || idx >= len(builds) {
		return Source{}, fmt.Errorf("invalid build selection: %d", idx)
	}

	return r.remoteSource(builds[idx]), nil
}

func (r Resolver) buildLabel(build buildinfo.Build) string {
	p := build.Platform
	if p != platform.IOS {
		p = platform.Android
	}
	return fmt.Sprintf("### %s | %s ###", p.DisplayName(), buildinfo.BuildLogsURL(r.websiteURL, build.ID))
}

func (r Resolver) remoteSource(build buildinfo.Build) Source {
	p := build.Platform
	if p == "" {
		p = r.platform
	}
	return Source{
		RemoteURL: build.Artifacts.URL,
		BuildID:   build.ID,
		Platform:  p,
	}
}
