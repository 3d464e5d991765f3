package utils

import (
	"net/http"
	"strconv"

	"github.com/tidwall/gjson"
)

// ExtractRecordID pulls the application-level id out of a JSON payload.
// Used by the audit trail when the handler did not name a record explicitly.
func ExtractRecordID(body []byte) string {
	if id := gjson.GetBytes(body, "data.id").String(); id != "" {
		return id
	}
	return gjson.GetBytes(body, "id").String()
}

func ParsePagination(r *http.Request) (page, pageSize int) {
	page = 1
	pageSize = 20

	if v := r.URL.Query().Get("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if v := r.URL.Query().Get("pageSize"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 100 {
			pageSize = parsed
		}
	}
	return page, pageSize
}
