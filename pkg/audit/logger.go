package audit

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger records auth-related events (logins, lockouts, password changes) as
// structured entries separate from the application log, so they can be shipped
// to a different sink.
type Logger struct {
	zl *zap.Logger
}

func NewLogger(production bool) (*Logger, error) {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl, err := cfg.Build(zap.Fields(zap.String("component", "audit")))
	if err != nil {
		return nil, err
	}
	return &Logger{zl: zl}, nil
}

func (l *Logger) LoginSucceeded(userID, email, ip string) {
	l.zl.Info("login succeeded",
		zap.String("user_id", userID),
		zap.String("email", email),
		zap.String("ip", ip),
	)
}

func (l *Logger) LoginFailed(email, ip, reason string) {
	l.zl.Warn("login failed",
		zap.String("email", email),
		zap.String("ip", ip),
		zap.String("reason", reason),
	)
}

func (l *Logger) LoginBlocked(email, ip string) {
	l.zl.Warn("login blocked by lockout",
		zap.String("email", email),
		zap.String("ip", ip),
	)
}

func (l *Logger) PasswordChanged(userID string) {
	l.zl.Info("password changed", zap.String("user_id", userID))
}

func (l *Logger) Sync() {
	_ = l.zl.Sync()
}
