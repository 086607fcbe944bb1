package artifactinfo

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/avast/apkparser"
)

type manifest struct {
	XMLName     xml.Name    `xml:"manifest"`
	VersionCode string      `xml:"versionCode,attr"`
	VersionName string      `xml:"versionName,attr"`
	PackageName string      `xml:"package,attr"`
	Application application `xml:"application"`
}

type application struct {
	AppName string `xml:"label,attr"`
}

// ParseAPK reads the package name and version from the AndroidManifest.xml of an APK.
func ParseAPK(pth string) (Info, error) {
	var manifestContent bytes.Buffer
	enc := xml.NewEncoder(&manifestContent)

	zipErr, resErr, manErr := apkparser.ParseApk(pth, enc)
	if zipErr != nil {
		return Info{}, fmt.Errorf("failed to unzip the APK, error: %s", zipErr)
	}
	if resErr != nil {
		return Info{}, fmt.Errorf("failed to parse resources, error: %s", resErr)
	}
	if manErr != nil {
		return Info{}, fmt.Errorf("failed to parse AndroidManifest.xml, error: %s", manErr)
	}
	if err := enc.Flush(); err != nil {
		return Info{}, fmt.Errorf("failed to flush AndroidManifest.xml, error: %s", err)
	}

	return parseManifest(manifestContent.Bytes())
}

func parseManifest(content []byte) (Info, error) {
	var m manifest
	if err := xml.Unmarshal(content, &m); err != nil {
		return Info{}, fmt.Errorf("failed to unmarshal AndroidManifest.xml, error: %s", err)
	}

	return Info{
		AppName:     m.Application.AppName,
		Identifier:  m.PackageName,
		VersionName: m.VersionName,
		VersionCode: m.VersionCode,
	}, nil
}
