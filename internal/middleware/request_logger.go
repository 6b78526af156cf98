package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		attrs := []logger.Attr{
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
		}
		if id, ok := c.Get("request_id"); ok {
			attrs = append(attrs, logger.Any("request_id", id))
		}
		if errMsg, ok := c.Get("error"); ok {
			attrs = append(attrs, logger.Any("error", errMsg))
		}

		level := logger.InfoLevel
		if c.Writer.Status() >= 500 {
			level = logger.ErrorLevel
		}
		log.LogAttrs(c.Request.Context(), level, "request completed", attrs...)
	}
}
