package emulator

import (
	"errors"

	"github.com/ezrec/assembunny/translate"
)

var f = translate.From

var (
	ErrPresetSyntax   = errors.New(f("preset syntax is REG=VALUE"))
	ErrPresetRegister = errors.New(f("preset register invalid"))
	ErrPresetValue    = errors.New(f("preset value invalid"))
)

// ErrPreset indicates which register preset could not be applied.
type ErrPreset struct {
	Preset string
	Err    error
}

func (err *ErrPreset) Error() string {
	return f("preset '%v' %v", err.Preset, err.Err)
}

func (err *ErrPreset) Unwrap() error {
	return err.Err
}
