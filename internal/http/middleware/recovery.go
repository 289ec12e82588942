package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/logger"
	"go.uber.org/zap"
)

// Recoverer turns a panic in a handler into a 500 envelope and logs the stack.
// When exposeErrors is set the panic value is placed in the error field.
func Recoverer(log *zap.Logger, exposeErrors bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.ForRequest(log, r).Error("panic recovered",
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
				)

				resp := domain.Response{
					Status:  domain.StatusError,
					Message: "Internal server error",
				}
				if exposeErrors {
					resp.Error = fmt.Sprint(rec)
				}
				writeEnvelope(w, http.StatusInternalServerError, resp)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func writeEnvelope(w http.ResponseWriter, status int, resp domain.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
