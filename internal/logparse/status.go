package logparse

import "github.com/tinytelemetry/clover/internal/model"

// ClassifyStatus buckets an HTTP status code by its leading digit.
// It is total over integers: anything outside [200,600) is StatusOther.
func ClassifyStatus(status int) model.StatusGroup {
	switch {
	case status >= 200 && status < 300:
		return model.Status2xx
	case status >= 300 && status < 400:
		return model.Status3xx
	case status >= 400 && status < 500:
		return model.Status4xx
	case status >= 500 && status < 600:
		return model.Status5xx
	default:
		return model.StatusOther
	}
}

// IsErrorGroup reports whether a group counts toward the error rate.
// StatusOther is never an error.
func IsErrorGroup(g model.StatusGroup) bool {
	return g == model.Status4xx || g == model.Status5xx
}
