package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ridayanti/sensor-monitor/internal/broker"
	"github.com/ridayanti/sensor-monitor/internal/config"
	"github.com/ridayanti/sensor-monitor/internal/relay"
)

// relayctl is the interactive console for relay control. It reads one
// token per line and dispatches it until "exit".
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	mq, err := broker.Connect(config.MQTTBroker(), config.MQTTClientID())
	if err != nil {
		log.Fatal().Err(err).Msg("mqtt connect failed")
	}
	defer mq.Close()

	dispatcher := relay.NewDispatcher(mq, config.RelayTopic())

	fmt.Println("relay console: ON / OFF / exit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.EqualFold(strings.TrimSpace(line), "exit") {
			break
		}
		cmd, err := dispatcher.Send(line)
		switch {
		case errors.Is(err, relay.ErrInvalidCommand):
			fmt.Println("invalid command, use ON or OFF")
		case err != nil:
			fmt.Println("dispatch failed:", err)
		default:
			fmt.Printf("relay turned %s\n", cmd)
		}
	}
}
