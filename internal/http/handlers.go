package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/ridayanti/sensor-monitor/internal/domain"
	"github.com/ridayanti/sensor-monitor/internal/metrics"
	"github.com/ridayanti/sensor-monitor/internal/relay"
)

// recentLimit is the dashboard page size.
const recentLimit = 20

type ReadingStore interface {
	Recent(limit int) ([]domain.Reading, error)
}

type Summarizer interface {
	Summarize() (domain.Summary, error)
}

type CommandSender interface {
	Send(token string) (domain.RelayCommand, error)
}

type readingItem struct {
	ID        int64   `json:"id"`
	Suhu      float64 `json:"suhu"`
	Humidity  float64 `json:"humidity"`
	Lux       float64 `json:"lux"`
	Timestamp string  `json:"timestamp"`
}

func Register(app *fiber.App, store ReadingStore, sum Summarizer, dispatcher CommandSender) {
	app.Get("/api/data", func(c *fiber.Ctx) error {
		readings, err := store.Recent(recentLimit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status": "error", "message": "store unavailable",
			})
		}
		items := make([]readingItem, 0, len(readings))
		for _, r := range readings {
			items = append(items, readingItem{
				ID:        r.ID,
				Suhu:      r.Temperature,
				Humidity:  r.Humidity,
				Lux:       r.Lux,
				Timestamp: r.CapturedAt.Format(domain.TimeLayout),
			})
		}
		return c.JSON(items)
	})

	app.Get("/api/summary", func(c *fiber.Ctx) error {
		s, err := sum.Summarize()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status": "error", "message": "store unavailable",
			})
		}
		return c.JSON(s)
	})

	app.Post("/api/relay", func(c *fiber.Ctx) error {
		var body struct {
			Command string `json:"command"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": "error", "message": "invalid request body",
			})
		}
		cmd, err := dispatcher.Send(body.Command)
		switch {
		case errors.Is(err, relay.ErrInvalidCommand):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": "error", "message": "invalid command, use ON or OFF",
			})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status": "error", "message": "relay dispatch failed",
			})
		}
		return c.JSON(fiber.Map{
			"status": "success", "message": "relay turned " + string(cmd),
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}
