package gostamp

import (
	"errors"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// exifTimeLayout is the timestamp format EXIF stores, e.g. "2023:05:17 10:00:00".
const exifTimeLayout = "2006:01:02 15:04:05"

// dateLayout is the watermark text format.
const dateLayout = "2006-01-02"

var errNoTimestampTag = errors.New("no usable timestamp tag")

// CaptureDate returns the capture date of the image at path as "YYYY-MM-DD".
// It prefers the embedded EXIF timestamp, falls back to the file's
// modification time in local time, and finally to the current date. It never
// fails; callers always get a usable watermark text.
func CaptureDate(path string) string {
	for _, attempt := range []func(string) (time.Time, error){exifTime, modTime} {
		if t, err := attempt(path); err == nil {
			return t.Format(dateLayout)
		}
	}
	return time.Now().Format(dateLayout)
}

// exifTime reads the embedded capture timestamp. DateTimeOriginal is what
// the camera wrote at capture; DateTime may have been rewritten by later
// edits, so it is only consulted second.
func exifTime(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}

	for _, field := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTime} {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		value, err := tag.StringVal()
		if err != nil {
			continue
		}
		if t, err := parseExifTime(value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errNoTimestampTag
}

// parseExifTime parses an EXIF "YYYY:MM:DD HH:MM:SS" timestamp.
func parseExifTime(value string) (time.Time, error) {
	return time.Parse(exifTimeLayout, value)
}

func modTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
