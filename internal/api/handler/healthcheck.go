package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger verifica a dependência de armazenamento; nil quando o backend é o sistema de arquivos
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(storage Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if storage != nil {
			if err := storage.Ping(r.Context()); err != nil {
				logrus.WithError(err).Warn("Healthcheck: armazenamento indisponível")
				http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
				return
			}
		}

		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
