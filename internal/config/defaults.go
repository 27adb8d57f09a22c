package config

// Default returns the options used when neither flags nor environment set them
func Default() Options {
	return Options{
		Folder:   ".",
		LogLevel: "info",
	}
}
