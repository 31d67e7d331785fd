// config/logger.go
package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

func InitLogger() {
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	Logger.SetLevel(logrus.InfoLevel)
	if os.Getenv("PROPALYST_DEBUG") != "" {
		Logger.SetLevel(logrus.DebugLevel)
	}
}
