package constants

const (
	Version        = `0.1.0`
	AppName        = `binders`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.choir-binder-manager/`
	DatabaseFile   = `binders.sqlite`
	LogFile        = `binders.log`

	// DirectorNumber marks the binder holding the master song list.
	DirectorNumber = 0
)
