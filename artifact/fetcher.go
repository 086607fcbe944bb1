package artifact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/docker/go-units"

	"github.com/bitrise-steplib/steps-store-upload/errs"
	"github.com/bitrise-steplib/steps-store-upload/platform"
)

// HTTPClient ...
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Logger ...
type Logger interface {
	Printf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Debugf(format string, v ...interface{})
}

// Fetcher materializes an artifact Source as a local file.
type Fetcher struct {
	platform    platform.Platform
	httpClient  HTTPClient
	fileManager fileutil.FileManager
	pathChecker pathutil.PathChecker
	progress    ProgressSink
	logger      Logger
	// workDir is where remote artifacts are stored
	workDir string
}

// NewFetcher ...
func NewFetcher(
	p platform.Platform,
	httpClient HTTPClient,
	fileManager fileutil.FileManager,
	pathChecker pathutil.PathChecker,
	progress ProgressSink,
	logger Logger,
) Fetcher {
	return Fetcher{
		platform:    p,
		httpClient:  httpClient,
		fileManager: fileManager,
		pathChecker: pathChecker,
		progress:    progress,
		logger:      logger,
		workDir:     ".",
	}
}

// Materialize returns the path of a local file holding the artifact of src.
func (f Fetcher) Materialize(ctx context.Context, src Source) (string, error) {
	if src.IsLocal() {
		if !f.platform.HasExtension(src.LocalPath) {
			return "", errs.Validationf("File %s isn't %s file", src.LocalPath, f.platform.Extension())
		}
		return src.LocalPath, nil
	}

	if !isHTTPURL(src.RemoteURL) {
		return f.copyFile(src.RemoteURL)
	}
	return f.download(ctx, src.RemoteURL)
}

func (f Fetcher) copyFile(pth string) (string, error) {
	exists, err := f.pathChecker.IsPathExists(pth)
	if err != nil {
		return "", fmt.Errorf("failed to check if %s exists: %w", pth, err)
	}
	if !exists {
		return "", errs.NotFoundf("File %s doesn't exist", pth)
	}

	dest := filepath.Join(f.workDir, "build."+f.platform.Extension())

	source, err := f.fileManager.Open(pth)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", pth, err)
	}
	defer func() {
		if err := source.Close(); err != nil {
			f.logger.Warnf("Failed to close file: %s", err)
		}
	}()

	destination, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dest, err)
	}
	if _, err := io.Copy(destination, source); err != nil {
		_ = destination.Close()
		return "", fmt.Errorf("failed to copy %s to %s: %w", pth, dest, err)
	}
	if err := destination.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", dest, err)
	}

	return dest, nil
}

func (f Fetcher) download(ctx context.Context, remoteURL string) (string, error) {
	dest := filepath.Join(f.workDir, f.destinationName(remoteURL))

	exists, err := f.pathChecker.IsPathExists(dest)
	if err != nil {
		return "", fmt.Errorf("failed to check if %s exists: %w", dest, err)
	}
	if exists {
		f.logger.Warnf("File %s exists. If it's not %s you want to upload change its name", dest, f.platform.Extension())
		return dest, nil
	}

	f.logger.Printf("Downloading build from %s", remoteURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return "", errs.Download(err, "failed to create download request")
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", errs.Download(err, "failed to download build from %s", remoteURL)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			f.logger.Warnf("Failed to close response body: %s", err)
		}
	}()

	if resp.StatusCode < 200 || 299 < resp.StatusCode {
		return "", errs.Download(fmt.Errorf("unsuccessful status code: %d", resp.StatusCode), "failed to download build from %s", remoteURL)
	}

	if err := f.writeStream(dest, resp.Body, resp.ContentLength); err != nil {
		if rmErr := f.fileManager.Remove(dest); rmErr != nil && !os.IsNotExist(rmErr) {
			f.logger.Warnf("Failed to remove partial download (%s): %s", dest, rmErr)
		}
		return "", errs.Download(err, "failed to download build from %s", remoteURL)
	}

	if info, err := os.Stat(dest); err == nil {
		f.logger.Printf("Downloaded %s (%s)", dest, units.HumanSize(float64(info.Size())))
	}

	return dest, nil
}

func (f Fetcher) writeStream(dest string, body io.Reader, contentLength int64) error {
	file, err := os.Create(dest)
	if err != nil {
		return err
	}

	f.progress.Start(contentLength)
	_, copyErr := io.Copy(file, io.TeeReader(body, progressWriter{sink: f.progress}))
	f.progress.Finish()

	closeErr := file.Close()
	if copyErr != nil {
		return copyErr
	}
	return closeErr
}

// destinationName is the last path segment of the url.
func (f Fetcher) destinationName(remoteURL string) string {
	fallback := "build." + f.platform.Extension()

	u, err := url.Parse(remoteURL)
	if err != nil {
		return fallback
	}

	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return fallback
	}
	return name
}

func isHTTPURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
