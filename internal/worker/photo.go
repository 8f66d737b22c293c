package worker

import (
	"bytes"
	"encoding/base64"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"cvmaker/internal/cv"
)

// dropInvalidPhoto clears the record's photo when it is not a decodable
// image, returning the dropped reference for the warning notification.
// External URLs are left alone; only inline data URIs can be checked here.
func dropInvalidPhoto(record *cv.CVRecord) (missingKeys []string, dropped bool) {
	photo := strings.TrimSpace(record.PersonalInfo.Photo)
	if photo == "" || !strings.HasPrefix(photo, "data:") {
		return nil, false
	}

	if decodableImage(photo) {
		return nil, false
	}

	record.PersonalInfo.Photo = ""
	return []string{"personalInfo.photo"}, true
}

func decodableImage(dataURI string) bool {
	comma := strings.IndexByte(dataURI, ',')
	if comma < 0 {
		return false
	}
	header, encoded := dataURI[:comma], dataURI[comma+1:]
	if !strings.Contains(header, ";base64") {
		return false
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return false
	}
	_, _, err = image.DecodeConfig(bytes.NewReader(raw))
	return err == nil
}
