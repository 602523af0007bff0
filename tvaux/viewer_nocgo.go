//go:build tinygo || !cgo

package tvaux

import (
	"errors"

	"github.com/soypat/geometry/ms3"
)

var errNoCGO = errors.New("interactive viewer requires CGo and is not supported on TinyGo")

func view(model []ms3.Triangle, cfg UIConfig) error {
	return errNoCGO
}
