package server

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/logmycode/logmycode/internal/config"
	"github.com/logmycode/logmycode/internal/infrastructure/database"
)

type Server struct {
	*gin.Engine

	Config *config.Config
	DB     *database.Database
}

func New() *Server {
	// Get config path from environment or use default
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		panic(err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Server{
		Engine: gin.New(),
		Config: cfg,
		DB:     db,
	}
}
