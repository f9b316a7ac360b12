package engine

import (
	"errors"
	"fmt"
)

// Stage names the step of Load that failed.
type Stage string

const (
	StageRead        Stage = "read"
	StageCompile     Stage = "compile"
	StageInstantiate Stage = "instantiate"
	StageInitialize  Stage = "initialize"
)

// LoadError reports which stage of loading a version failed.
type LoadError struct {
	Version string
	Stage   Stage
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("engine %s: %s: %v", e.Version, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// missingExportError signals a module that lacks a required export.
type missingExportError struct{ name string }

func (e missingExportError) Error() string { return "missing export: " + e.name }

// IsMissingExport reports whether err indicates a module without the named
// operation or ABI export.
func IsMissingExport(err error) bool {
	var me missingExportError
	return errors.As(err, &me)
}

// GuestError is an error message reported by the module itself, such as an
// invalid regex.
type GuestError struct{ Msg string }

func (e *GuestError) Error() string { return e.Msg }

// IsGuestError reports whether err originated inside the module.
func IsGuestError(err error) bool {
	var ge *GuestError
	return errors.As(err, &ge)
}

// ErrClosed is returned by calls on a closed module or engine.
var ErrClosed = errors.New("engine: closed")
