package version

var version = "dev"

func GetVersion() string {
	return version
}
