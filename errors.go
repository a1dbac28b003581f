// errors.go: structured configuration errors
//
// This engine's hot path (Get/Put) is infallible by design — the only
// place construction can fail is New, when the caller hands it a
// Capacity or TotalWeightLimit that can't be defaulted sanely.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package s3lfu

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for s3lfu configuration failures.
const (
	ErrCodeInvalidCapacity    errors.ErrorCode = "S3LFU_INVALID_CAPACITY"
	ErrCodeInvalidWeightLimit errors.ErrorCode = "S3LFU_INVALID_WEIGHT_LIMIT"
)

const (
	msgInvalidCapacity    = "invalid capacity: must be greater than 0"
	msgInvalidWeightLimit = "invalid total weight limit: must be greater than 0"
)

// NewErrInvalidCapacity creates an error for a non-positive Capacity.
func NewErrInvalidCapacity(capacity int) error {
	return errors.NewWithField(ErrCodeInvalidCapacity, msgInvalidCapacity, "capacity", capacity)
}

// NewErrInvalidWeightLimit creates an error for a zero TotalWeightLimit.
func NewErrInvalidWeightLimit(limit uint64) error {
	return errors.NewWithField(ErrCodeInvalidWeightLimit, msgInvalidWeightLimit, "total_weight_limit", limit)
}

// GetErrorCode extracts the error code from an error, or "" if err is
// nil or isn't one of ours.
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// IsInvalidConfig reports whether err is a configuration validation
// failure from New.
func IsInvalidConfig(err error) bool {
	code := GetErrorCode(err)
	return code == ErrCodeInvalidCapacity || code == ErrCodeInvalidWeightLimit
}
