package ds

import (
	"encoding/json"
	"fmt"
)

// DumpJSON is meant for log and error messages: it never fails, a marshalling
// error becomes the returned text instead.
func DumpJSON[T any](t T) string {
	tBytes, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("DumpJSON error %w", err).Error()
	}

	return string(tBytes)
}
