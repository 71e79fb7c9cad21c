//go:build unix

package hwinfo

import (
	"fmt"
	"strconv"

	"golang.org/x/sys/unix"
)

// unamePlatform reads the kernel name and version with uname(2).
func unamePlatform() (Platform, error) {
	var utsname unix.Utsname
	if err := unix.Uname(&utsname); err != nil {
		return Platform{}, fmt.Errorf("uname: %w", err)
	}

	return Platform{
		System:       unix.ByteSliceToString(utsname.Sysname[:]),
		Version:      unix.ByteSliceToString(utsname.Version[:]),
		Architecture: wordSize(),
	}, nil
}

func wordSize() string {
	return strconv.Itoa(strconv.IntSize) + "bit"
}
