package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/smart-home-service/pkg/common"
	"liyu1981.xyz/smart-home-service/pkg/db"
	"liyu1981.xyz/smart-home-service/pkg/home"
	homeHttp "liyu1981.xyz/smart-home-service/pkg/http"
	"liyu1981.xyz/smart-home-service/pkg/llm"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	homeDbType := os.Getenv(common.EnvKeyHomeDBType)
	switch homeDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown HOME_DB_TYPE: " + homeDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyHomeHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyHomeDefaultRate), 64); err != nil {
		log.Fatal("Invalid HOME_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyHomeDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid HOME_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	var generator home.Generator
	if gemini, err := llm.NewGemini(context.Background()); err != nil {
		logger.Warn("Gemini not configured, assistant commands will be rejected", zap.Error(err))
	} else {
		generator = gemini
	}

	homeCore := home.Home{
		Db: *dbInstance,
	}
	homeCore.WithServices(home.ServiceOpts{
		Device:      homeCore.GetIDevice(),
		Action:      homeCore.GetIAction(),
		Audit:       homeCore.GetIAudit(),
		User:        homeCore.GetIUser(),
		Interpreter: home.NewInterpreter(generator),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &homeHttp.RestfulServer{
		Server:           gin.Default(),
		Home:             &homeCore,
		RateLimiterStore: home.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
