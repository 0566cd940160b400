package main

import (
	"github.com/RationSeva/ration_service/config"
	"github.com/RationSeva/ration_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
