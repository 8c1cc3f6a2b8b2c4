package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// Init builds the process logger once. Development gets the console
// encoder, everything else the production JSON config.
func Init(env string) *zap.Logger {
	once.Do(func() {
		var err error
		if env == "development" {
			instance, err = zap.NewDevelopment()
		} else {
			cfg := zap.NewProductionConfig()
			cfg.OutputPaths = []string{"stdout"}
			instance, err = cfg.Build()
		}
		if err != nil {
			panic(err)
		}
	})
	return instance
}

func Get() *zap.Logger {
	if instance == nil {
		return Init("development")
	}
	return instance
}
