package handler

import (
	"net/http"
	"time"
)

// HealthcheckHandler inclui o nível de uso do armazenamento na resposta
func HealthcheckHandler(reporter UsageReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}

		if usage, err := reporter.Usage(); err != nil {
			body["storage"] = "unavailable"
		} else {
			body["storage"] = string(usage.Level)
		}

		writeJSON(w, http.StatusOK, body)
	})
}
