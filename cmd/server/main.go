package main

import (
	"github.com/citenet/backend/internal/server"
	"github.com/citenet/backend/internal/util"
	"github.com/citenet/backend/pkg/logger"
	"github.com/citenet/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.EnvBool("DEBUG", false)

	logger.Init(console.New(console.Options{
		Debug: debug,
	}))

	server.Init()
}
