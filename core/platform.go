package core

import "runtime"

// OS identifies the host platform class for scaling purposes. Anything
// that is not web, Android or iOS is OSOther.
type OS int

const (
	OSOther OS = iota
	OSWeb
	OSAndroid
	OSIOS
)

func (o OS) String() string {
	switch o {
	case OSWeb:
		return "web"
	case OSAndroid:
		return "android"
	case OSIOS:
		return "ios"
	default:
		return "other"
	}
}

// Platform identifies the host platform. Hosts may supply their own
// implementation; the default uses build-time runtime identification,
// which is safe under browser execution (no filesystem probing).
type Platform interface {
	OS() OS
}

// RuntimePlatform identifies the platform from the Go runtime.
type RuntimePlatform struct{}

func (RuntimePlatform) OS() OS {
	switch {
	case runtime.GOOS == "js" || runtime.GOARCH == "wasm":
		return OSWeb
	case runtime.GOOS == "android":
		return OSAndroid
	case runtime.GOOS == "ios":
		return OSIOS
	}
	return OSOther
}

// StaticPlatform reports a fixed OS, useful for tests and hosts that
// already know where they run.
type StaticPlatform OS

func (p StaticPlatform) OS() OS { return OS(p) }
