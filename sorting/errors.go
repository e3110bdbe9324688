package sorting

// ConfigError reports invalid command-line configuration. The message is
// shown to the user as is.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}
