package config

type ConfigError struct {
	Field string
	msg   string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return e.msg
	}
	return e.Field + ": " + e.msg
}
