package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ridayanti/sensor-monitor/internal/broker"
	"github.com/ridayanti/sensor-monitor/internal/config"
	"github.com/ridayanti/sensor-monitor/internal/database"
	httpHandlers "github.com/ridayanti/sensor-monitor/internal/http"
	"github.com/ridayanti/sensor-monitor/internal/relay"
	"github.com/ridayanti/sensor-monitor/internal/repository"
	"github.com/ridayanti/sensor-monitor/internal/summary"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	if lvl, err := zerolog.ParseLevel(config.LogLevel()); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()
	if err := database.EnsureSchema(db); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	mq, err := broker.Connect(config.MQTTBroker(), config.MQTTClientID())
	if err != nil {
		log.Fatal().Err(err).Msg("mqtt connect failed")
	}
	defer mq.Close()

	repos := repository.New(db)
	engine := summary.New(repos)
	dispatcher := relay.NewDispatcher(mq, config.RelayTopic())

	app := fiber.New()
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	httpHandlers.Register(app, repos, engine, dispatcher)

	addr := config.APIAddr()
	log.Info().Str("addr", addr).Msg("api listening")
	log.Fatal().Err(app.Listen(addr)).Msg("server exit")
}
