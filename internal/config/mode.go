package config

var (
	// DEV is set for development builds of the compiler
	DEV bool
	// DEBUG_MODE prints every intermediate stage of a build
	DEBUG_MODE bool
)

func SetDevMode(dev bool) {
	DEV = dev
}

func SetDebugMode(debug bool) {
	DEBUG_MODE = debug
}
