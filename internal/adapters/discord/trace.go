package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func (r *Router) step(label string) func() {
	start := time.Now()
	return func() { r.log.Debug("trace", zap.String("step", label), zap.Duration("took", time.Since(start))) }
}

// BridgeLogger manda los logs internos de discordgo a zap.
func BridgeLogger(log *zap.Logger) {
	l := log.Named("discordgo").WithOptions(zap.AddCallerSkip(2))
	discordgo.Logger = func(msgL, _ int, format string, a ...interface{}) {
		msg := fmt.Sprintf(format, a...)
		switch msgL {
		case discordgo.LogError:
			l.Error(msg)
		case discordgo.LogWarning:
			l.Warn(msg)
		case discordgo.LogInformational:
			l.Info(msg)
		default:
			l.Debug(msg)
		}
	}
}
