//go:build !unix

package hwinfo

import (
	"fmt"
	"runtime"
)

func unamePlatform() (Platform, error) {
	return Platform{}, fmt.Errorf("uname on %s: %w", runtime.GOOS, ErrUnsupportedPlatform)
}
