//go:build !(linux || darwin || freebsd)

package collect

import "errors"

func statfs(string) (Usage, error) {
	return Usage{}, errors.New("statfs not supported on this platform")
}
