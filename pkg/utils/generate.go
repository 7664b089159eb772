package utils

import (
	"github.com/segmentio/ksuid"
)

// GenKSUID returns a sortable unique key; used for bag line keys so that
// retried adds stay idempotent.
func GenKSUID() string {
	return ksuid.New().String()
}
