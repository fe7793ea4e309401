package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

type ConnectionLogger struct {
	zerolog zerolog.Logger
}

func GetConnectionLogger(ip string, connectionID string) ConnectionLogger {
	return ConnectionLogger{log.With().Str("ip", ip).Str("connection-id", connectionID).Logger()}
}

func (l ConnectionLogger) CreatedRoom(roomID string) {
	l.zerolog.Info().Str("room-id", roomID).Msg("Created room")
}

func (l ConnectionLogger) JoinedRoom(roomID string) {
	l.zerolog.Info().Str("room-id", roomID).Msg("Joined room")
}

func (l ConnectionLogger) JoinRejected(roomID string) {
	l.zerolog.Info().Str("room-id", roomID).Msg("Join rejected")
}

func (l ConnectionLogger) Disconnected() {
	l.zerolog.Info().Msg("Disconnected")
}

func (l ConnectionLogger) StartGameWithoutRoom() {
	l.zerolog.Warn().Msg("startGame from a connection outside any room")
}

func (l ConnectionLogger) InvalidNumber(roomID string, input string) {
	l.zerolog.Warn().Str("room-id", roomID).Str("input", input).Msg("Rejected unparseable number")
}

func (l ConnectionLogger) SubmittedNumber(roomID string, value float64, average float64) {
	l.zerolog.Info().Str("room-id", roomID).Float64("value", value).Float64("average", average).Msg("Number submitted")
}

func LogRoundStarted(roomID string) {
	log.Info().Str("room-id", roomID).Msg("Round started")
}

func LogStartedServer(port string) {
	log.Info().Msgf("Starting server on port %v", port)
}

func LogErrorWhileUpgradingHTTP(err error) {
	log.Error().Err(err).Msg("Error while upgrading HTTP")
}
