package main

import (
	"hotelops/config"
	"hotelops/di"
	"hotelops/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
