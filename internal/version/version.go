package version

const AppName = "mcstatus-bot"

// Version is overridden at build time with -ldflags "-X ...version.Version=v1.2.3".
var Version = "dev"

// UserAgent identifies the bot to third-party HTTP APIs.
func UserAgent() string {
	return AppName + "/" + Version
}
