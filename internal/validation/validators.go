package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// MaxFileSize is the upper bound for uploaded image files (10MB)
const MaxFileSize = 10 * 1024 * 1024

// MaxTags is the maximum number of theme tags on a content item
const MaxTags = 5

// Geographic coverage cardinality bounds
const (
	MinGeographicAreas = 1
	MaxGeographicAreas = 6
)

var hexColorPattern = regexp.MustCompile(`(?i)^#[0-9A-F]{6}$`)

// HexColor validates the #RRGGBB hex color format, case-insensitively
func HexColor(value string) error {
	if !hexColorPattern.MatchString(value) {
		return fmt.Errorf("color must be in hex format #RRGGBB")
	}
	return nil
}

// PastDate validates that the date is not in the future. The reference
// date is passed in rather than read from the system clock.
func PastDate(value, today time.Time) error {
	if value.After(today) {
		return fmt.Errorf("date cannot be in the future")
	}
	return nil
}

// NotTooOld validates that the date is no older than 10 years before the
// reference date (365-day year approximation).
func NotTooOld(value, today time.Time) error {
	tenYearsAgo := today.AddDate(0, 0, -365*10)
	if value.Before(tenYearsAgo) {
		return fmt.Errorf("date cannot be older than 10 years")
	}
	return nil
}

// MaxTagCount validates that at most MaxTags theme tags are present
func MaxTagCount(tags []string) error {
	if len(tags) > MaxTags {
		return fmt.Errorf("maximum %d tags allowed", MaxTags)
	}
	return nil
}

// GeographicCoverage validates the 1-6 cardinality of covered areas
func GeographicCoverage(areas []string) error {
	if len(areas) < MinGeographicAreas {
		return fmt.Errorf("at least %d geographic area required", MinGeographicAreas)
	}
	if len(areas) > MaxGeographicAreas {
		return fmt.Errorf("maximum %d geographic areas allowed", MaxGeographicAreas)
	}
	return nil
}

// FileSize validates that a file does not exceed MaxFileSize bytes
func FileSize(size int64) error {
	if size > MaxFileSize {
		return fmt.Errorf("file too large, size should not exceed 10 MB")
	}
	return nil
}

// FileExtension validates that the file name carries one of the allowed
// extensions (compared without the leading dot, case-insensitively).
func FileExtension(fileName string, allowed []string) error {
	idx := strings.LastIndex(fileName, ".")
	if idx < 0 || idx == len(fileName)-1 {
		return fmt.Errorf("file has no extension, allowed: %s", strings.Join(allowed, ", "))
	}
	ext := strings.ToLower(fileName[idx+1:])
	for _, a := range allowed {
		if ext == a {
			return nil
		}
	}
	return fmt.Errorf("file extension %q not allowed, allowed: %s", ext, strings.Join(allowed, ", "))
}

// StringLength validates that the rune length of value is within [min, max]
func StringLength(value string, min, max int) error {
	n := len([]rune(value))
	if n < min {
		return fmt.Errorf("must be at least %d characters", min)
	}
	if n > max {
		return fmt.Errorf("must be at most %d characters", max)
	}
	return nil
}
