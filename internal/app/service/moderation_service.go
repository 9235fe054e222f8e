package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ModerationService hace ban/unban en el juego. El permiso lo valida el router (allow-list).
type ModerationService struct {
	gl  StaffAPI
	log *zap.Logger
}

func NewModerationService(gl StaffAPI, log *zap.Logger) *ModerationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ModerationService{gl: gl, log: log.Named("moderation")}
}

func (s *ModerationService) Ban(ctx context.Context, input, reason string, who Requester) (string, error) {
	u, err := resolveUser(ctx, s.gl, input, who)
	if err != nil {
		return "", err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "No reason given"
	}

	ok, err := s.gl.BanUser(ctx, u.ID, reason)
	if err != nil {
		return "", err
	}
	s.log.Info("ban",
		zap.String("target", u.ID),
		zap.String("by", who.ID),
		zap.String("reason", reason),
		zap.Bool("applied", ok))
	if !ok {
		return fmt.Sprintf("⚠️ Failed to ban **%s** (%s).", u.Name, u.ID), nil
	}
	return fmt.Sprintf("🔨 **%s** (%s) has been banned. Reason: %s", u.Name, u.ID, reason), nil
}

func (s *ModerationService) Unban(ctx context.Context, input string, who Requester) (string, error) {
	u, err := resolveUser(ctx, s.gl, input, who)
	if err != nil {
		return "", err
	}

	ok, err := s.gl.UnbanUser(ctx, u.ID)
	if err != nil {
		return "", err
	}
	s.log.Info("unban", zap.String("target", u.ID), zap.String("by", who.ID), zap.Bool("applied", ok))
	if !ok {
		return fmt.Sprintf("⚠️ Failed to unban **%s** (%s).", u.Name, u.ID), nil
	}
	return fmt.Sprintf("✅ **%s** (%s) has been unbanned.", u.Name, u.ID), nil
}
