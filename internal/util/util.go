package util

import (
	"math"

	"github.com/guregu/null/v6"
)

func StringPtr(s string) *string {
	return &s
}

func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// VolumePtr rounds a volume to whole shares for BIGINT columns.
func VolumePtr(f null.Float) *int64 {
	if !f.Valid {
		return nil
	}
	v := int64(math.Round(f.Float64))
	return &v
}
