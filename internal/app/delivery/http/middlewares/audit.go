package middlewares

import (
	"bytes"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/utils"
	"net/http"
	"time"
)

type auditRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (rec *auditRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *auditRecorder) Write(b []byte) (int, error) {
	rec.body.Write(b)
	return rec.ResponseWriter.Write(b)
}

// AuditTrail records successful mutations on a module. The record id is
// recovered from the response body, so handlers do not have to thread audit
// metadata through explicitly. The sink call is fire-and-forget.
func (m *Middlewares) AuditTrail(module models.Module, action models.Action, description string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.IdentityFromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			rec := &auditRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status < 200 || rec.status >= 300 {
				return
			}

			m.AuditSink.Log(models.AuditLog{
				ID:          utils.GenerateUUID(),
				OrgID:       identity.OrgID,
				UserID:      identity.UserID,
				Module:      string(module),
				Action:      string(action),
				RecordID:    utils.ExtractRecordID(rec.body.Bytes()),
				Description: description,
				CreatedAt:   time.Now().UTC(),
			})
		})
	}
}
