package utils

import (
	"log"
	"strings"
)

// LogEvent prints one structured line per domain event. Keep message to a
// short key=value summary; booking payloads never belong in the log.
func LogEvent(requestID, module, action, message string) {
	rid := strings.TrimSpace(requestID)
	if rid == "" {
		rid = "-"
	}
	log.Printf("event=%s.%s rid=%s %s", module, action, rid, message)
}
