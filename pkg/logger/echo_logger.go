package logger

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	apperrors "github.com/rdinit/hackathonService/pkg/errors"
)

// 접근 로그에서 제외할 경로
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// NewEchoRequestLogger는 Echo 서버를 위한 Request Logger를 생성합니다.
// 4xx는 Warn, 5xx와 핸들러 에러는 Error, 나머지는 Info로 기록합니다.
func NewEchoRequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return quietPaths[c.Request().URL.Path]
		},
		HandleError: true,

		LogLatency:      true,
		LogRemoteIP:     true,
		LogMethod:       true,
		LogURI:          true,
		LogRoutePath:    true,
		LogRequestID:    true,
		LogUserAgent:    true,
		LogStatus:       true,
		LogError:        true,
		LogResponseSize: true,
		LogHeaders:      []string{"Authorization"},

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request.id", v.RequestID),
				zap.String("request.remote_ip", v.RemoteIP),
				zap.String("request.method", v.Method),
				zap.String("request.uri", v.URI),
				zap.String("request.route", v.RoutePath),
				zap.String("request.user_agent", v.UserAgent),
				zap.Int("response.status", v.Status),
				zap.Duration("response.latency", v.Latency),
				zap.Int64("response.size", v.ResponseSize),
			}
			if values := v.Headers["Authorization"]; len(values) > 0 {
				fields = append(fields, zap.String("request.authorization", MaskToken(values[0])))
			}

			switch {
			case v.Error != nil && v.Status >= http.StatusInternalServerError:
				logger.Error("Request failed", append(fields, zap.Error(v.Error))...)
			case v.Status >= http.StatusInternalServerError:
				logger.Error("Server error", fields...)
			case v.Status >= http.StatusBadRequest:
				if v.Error != nil {
					fields = append(fields, zap.Error(v.Error))
				}
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request completed", fields...)
			}
			return nil
		},
	})
}

// MaskToken은 토큰의 앞뒤 일부만 남기고 가립니다. 예: "Bearer eyJh...x9Q"
func MaskToken(value string) string {
	if len(value) <= 15 {
		return "[MASKED]"
	}
	return value[:10] + "..." + value[len(value)-5:]
}

// WithEchoLogger는 Echo의 Logger와 에러 핸들러를 zap 기반으로 교체합니다.
// 모든 에러 응답은 {"error": ..., "code": ...} 형식으로 통일됩니다.
func WithEchoLogger(e *echo.Echo, logger *zap.Logger) {
	e.Logger = NewEchoZapLogger(logger)

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := apperrors.ToErrorResponse(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Unhandled error",
				zap.Error(err),
				zap.Int("status", status),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.Error("Failed to send error response", zap.Error(err))
		}
	}
}

// EchoZapLogger는 echo.Logger 인터페이스를 구현한 zap 로거 래퍼입니다.
type EchoZapLogger struct {
	sugar  *zap.SugaredLogger
	level  zap.AtomicLevel
	prefix string
}

// NewEchoZapLogger는 Echo의 Logger 인터페이스를 구현한 zap 로거 래퍼를 생성합니다.
// 레벨은 래퍼 안에서 별도로 관리되며 SetLevel로 조정할 수 있습니다.
func NewEchoZapLogger(logger *zap.Logger) *EchoZapLogger {
	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	filtered := logger.WithOptions(zap.IncreaseLevel(level))
	return &EchoZapLogger{
		sugar: filtered.Named("echo").Sugar(),
		level: level,
	}
}

var echoToZapLevel = map[log.Lvl]zapcore.Level{
	log.DEBUG: zapcore.DebugLevel,
	log.INFO:  zapcore.InfoLevel,
	log.WARN:  zapcore.WarnLevel,
	log.ERROR: zapcore.ErrorLevel,
	log.OFF:   zapcore.FatalLevel,
}

func (l *EchoZapLogger) Output() io.Writer {
	return &zapWriter{sugar: l.sugar}
}

// SetOutput은 무시됩니다. 출력 대상은 zap 코어가 결정합니다.
func (l *EchoZapLogger) SetOutput(w io.Writer) {}

func (l *EchoZapLogger) Prefix() string {
	return l.prefix
}

func (l *EchoZapLogger) SetPrefix(p string) {
	l.prefix = p
}

func (l *EchoZapLogger) Level() log.Lvl {
	current := l.level.Level()
	for lvl, zl := range echoToZapLevel {
		if zl == current {
			return lvl
		}
	}
	return log.INFO
}

func (l *EchoZapLogger) SetLevel(v log.Lvl) {
	if zl, ok := echoToZapLevel[v]; ok {
		l.level.SetLevel(zl)
	}
}

// SetHeader는 무시됩니다.
func (l *EchoZapLogger) SetHeader(h string) {}

func (l *EchoZapLogger) Print(i ...interface{}) { l.sugar.Info(i...) }
func (l *EchoZapLogger) Printf(format string, args ...interface{}) { l.sugar.Infof(format, args...) }
func (l *EchoZapLogger) Printj(j log.JSON) { l.sugar.Infow("json", "json", j) }
func (l *EchoZapLogger) Debug(i ...interface{}) { l.sugar.Debug(i...) }
func (l *EchoZapLogger) Debugf(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *EchoZapLogger) Debugj(j log.JSON) { l.sugar.Debugw("json", "json", j) }
func (l *EchoZapLogger) Info(i ...interface{}) { l.sugar.Info(i...) }
func (l *EchoZapLogger) Infof(format string, args ...interface{}) { l.sugar.Infof(format, args...) }
func (l *EchoZapLogger) Infoj(j log.JSON) { l.sugar.Infow("json", "json", j) }
func (l *EchoZapLogger) Warn(i ...interface{}) { l.sugar.Warn(i...) }
func (l *EchoZapLogger) Warnf(format string, args ...interface{}) { l.sugar.Warnf(format, args...) }
func (l *EchoZapLogger) Warnj(j log.JSON) { l.sugar.Warnw("json", "json", j) }
func (l *EchoZapLogger) Error(i ...interface{}) { l.sugar.Error(i...) }
func (l *EchoZapLogger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }
func (l *EchoZapLogger) Errorj(j log.JSON) { l.sugar.Errorw("json", "json", j) }
func (l *EchoZapLogger) Fatal(i ...interface{}) { l.sugar.Fatal(i...) }
func (l *EchoZapLogger) Fatalf(format string, args ...interface{}) { l.sugar.Fatalf(format, args...) }
func (l *EchoZapLogger) Fatalj(j log.JSON) { l.sugar.Fatalw("json", "json", j) }
func (l *EchoZapLogger) Panic(i ...interface{}) { l.sugar.Panic(i...) }
func (l *EchoZapLogger) Panicf(format string, args ...interface{}) { l.sugar.Panicf(format, args...) }
func (l *EchoZapLogger) Panicj(j log.JSON) { l.sugar.Panicw("json", "json", j) }

// zapWriter는 Echo가 직접 쓰는 출력(배너 등)을 Info 로그로 전달합니다.
type zapWriter struct {
	sugar *zap.SugaredLogger
}

func (w *zapWriter) Write(p []byte) (n int, err error) {
	w.sugar.Info(string(p))
	return len(p), nil
}
