package config

import "os"

func IsDebug() bool {
	return os.Getenv("CALC_DEBUG") == "1"
}
