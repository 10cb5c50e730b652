package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/rs/zerolog/log"

	"github.com/ridayanti/sensor-monitor/internal/broker"
	"github.com/ridayanti/sensor-monitor/internal/config"
)

type flatPayload struct {
	Suhu     float64 `json:"suhu"`
	Humidity float64 `json:"humidity"`
	Lux      float64 `json:"lux"`
}

type nestedPayload struct {
	Data struct {
		Temp   float64 `json:"temp"`
		Sensor string  `json:"sensor"`
	} `json:"data"`
}

func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	mq, err := broker.Connect(config.MQTTBroker(), fmt.Sprintf("simulator-%d", time.Now().Unix()))
	if err != nil {
		log.Fatal().Err(err).Msg("mqtt connect failed")
	}
	defer mq.Close()

	topic := config.DataTopic()
	for i := 0; i < 100; i++ {
		var payload []byte
		// Every fifth message uses the nested firmware shape.
		if i%5 == 4 {
			var p nestedPayload
			p.Data.Temp = gofakeit.Float64Range(20, 35)
			p.Data.Sensor = gofakeit.AppName()
			payload, _ = json.Marshal(p)
		} else {
			payload, _ = json.Marshal(flatPayload{
				Suhu:     gofakeit.Float64Range(20, 35),
				Humidity: gofakeit.Float64Range(40, 90),
				Lux:      gofakeit.Float64Range(0, 1000),
			})
		}
		if err := mq.Publish(topic, payload); err != nil {
			log.Error().Err(err).Msg("publish failed")
		}
		time.Sleep(500 * time.Millisecond)
	}
	log.Info().Msg("simulation done")
}
