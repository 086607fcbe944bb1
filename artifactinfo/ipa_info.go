package artifactinfo

import (
	"archive/zip"
	"fmt"
	"io"
	"regexp"

	"howett.net/plist"
)

var infoPlistPattern = regexp.MustCompile(`^Payload/[^/]+\.app/Info\.plist$`)

type infoPlist struct {
	BundleName       string `plist:"CFBundleName"`
	BundleIdentifier string `plist:"CFBundleIdentifier"`
	ShortVersion     string `plist:"CFBundleShortVersionString"`
	BundleVersion    string `plist:"CFBundleVersion"`
}

// ParseIPA reads the bundle identifier and version from the Info.plist of the app embedded in an IPA.
func ParseIPA(pth string) (Info, error) {
	reader, err := zip.OpenReader(pth)
	if err != nil {
		return Info{}, fmt.Errorf("failed to unzip the IPA, error: %s", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	for _, file := range reader.File {
		if !infoPlistPattern.MatchString(file.Name) {
			continue
		}

		content, err := readZipFile(file)
		if err != nil {
			return Info{}, fmt.Errorf("failed to read %s, error: %s", file.Name, err)
		}
		return parseInfoPlist(content)
	}

	return Info{}, fmt.Errorf("no Info.plist found in %s", pth)
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rc.Close()
	}()

	return io.ReadAll(rc)
}

func parseInfoPlist(content []byte) (Info, error) {
	var info infoPlist
	if _, err := plist.Unmarshal(content, &info); err != nil {
		return Info{}, fmt.Errorf("failed to parse Info.plist, error: %s", err)
	}

	return Info{
		AppName:     info.BundleName,
		Identifier:  info.BundleIdentifier,
		VersionName: info.ShortVersion,
		VersionCode: info.BundleVersion,
	}, nil
}
