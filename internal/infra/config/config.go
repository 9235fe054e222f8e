package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DiscordToken string
	DiscordGuild string // vacío = comandos globales

	GLAPIURL     string // vacío = producción
	GLStatusURL  string
	GLStaffToken string // sin token /ban y /unban fallan
	GLAPIRPS     float64

	AllowedUserIDs   []string // nil = allow-list por defecto
	PaginatorTimeout time.Duration
	HTTPAddr         string // opcional, default :8080
	LogLevel         string
}

// StatusWatch es la config de la lambda que avisa caídas de servidores.
type StatusWatch struct {
	GLStatusURL  string
	WebhookID    string
	WebhookToken string
	LogLevel     string
}

var ErrMissingEnv = errors.New("missing env")

func get(k string, req bool) (string, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" && req {
		return "", fmt.Errorf("%w %s", ErrMissingEnv, k)
	}
	return v, nil
}

func Load() (Config, error) {
	token, err := get("DISCORD_BOT_TOKEN", true)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DiscordToken:     token,
		DiscordGuild:     os.Getenv("DISCORD_GUILD_ID"),
		GLAPIURL:         os.Getenv("GL_API_URL"),
		GLStatusURL:      os.Getenv("GL_STATUS_URL"),
		GLStaffToken:     os.Getenv("GL_STAFF_TOKEN"),
		GLAPIRPS:         5,
		AllowedUserIDs:   splitIDs(os.Getenv("ALLOWED_USER_IDS")),
		PaginatorTimeout: 30 * time.Minute,
		HTTPAddr:         os.Getenv("HTTP_ADDR"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if v := os.Getenv("GL_API_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps < 0 {
			return Config{}, fmt.Errorf("GL_API_RPS: invalid value %q", v)
		}
		cfg.GLAPIRPS = rps
	}
	if v := os.Getenv("PAGINATOR_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("PAGINATOR_TIMEOUT: invalid duration %q", v)
		}
		cfg.PaginatorTimeout = d
	}
	return cfg, nil
}

func LoadStatusWatch() (StatusWatch, error) {
	id, err := get("STATUS_WEBHOOK_ID", true)
	if err != nil {
		return StatusWatch{}, err
	}
	tok, err := get("STATUS_WEBHOOK_TOKEN", true)
	if err != nil {
		return StatusWatch{}, err
	}
	return StatusWatch{
		GLStatusURL:  os.Getenv("GL_STATUS_URL"),
		WebhookID:    id,
		WebhookToken: tok,
		LogLevel:     os.Getenv("LOG_LEVEL"),
	}, nil
}

// splitIDs: "1, 2,,3" -> [1 2 3]. Vacío devuelve nil.
func splitIDs(raw string) []string {
	var ids []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
