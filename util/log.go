package util

import (
	"crypto/rand"
	"fmt"
	"log"
	"net/http"
)

// Severity is a syslog-style message severity
type Severity string

// Severities, most to least urgent
const (
	FATAL  Severity = "Fatal"
	ERROR  Severity = "Error"
	ALERT  Severity = "Alert"
	NOTICE Severity = "Notice"
	INFO   Severity = "Info"
	DEBUG  Severity = "Debug"
)

// LogContext is the context for log messages: which component is logging,
// under which session
type LogContext interface {
	AppName() string
	SessionID() string
	LogRootDir() string
}

// BasicLogContext is a minimal LogContext for callers without their own
type BasicLogContext struct {
	sessionID string
}

// AppName returns the application name
func (c *BasicLogContext) AppName() string {
	return "landsat-archive"
}

// SessionID returns a session ID, creating one if needed
func (c *BasicLogContext) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *BasicLogContext) LogRootDir() string {
	return ""
}

// LogAuditInput is the set of fields for an audit log message
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity Severity
}

func logMessage(ctx LogContext, severity Severity, message string) {
	log.Printf("[%s] %s %s: %s", severity, ctx.AppName(), ctx.SessionID(), message)
}

// LogInfo logs an informational message
func LogInfo(ctx LogContext, message string) {
	logMessage(ctx, INFO, message)
}

// LogAlert logs a message that needs operator attention
func LogAlert(ctx LogContext, message string) {
	logMessage(ctx, ALERT, message)
}

// LogSimpleErr logs a message together with its causing error
func LogSimpleErr(ctx LogContext, message string, err error) {
	logMessage(ctx, ERROR, fmt.Sprintf("%s %v", message, err))
}

// LogAudit logs an auditable actor/action/actee event
func LogAudit(ctx LogContext, input LogAuditInput) {
	logMessage(ctx, input.Severity, fmt.Sprintf("%s %s %s: %s", input.Actor, input.Action, input.Actee, input.Message))
}

// HTTPError writes an error message and status code to the response and logs it
func HTTPError(r *http.Request, w http.ResponseWriter, ctx LogContext, message string, code int) {
	logMessage(ctx, ERROR, fmt.Sprintf("%s %s -> %d: %s", r.Method, r.URL.Path, code, message))
	http.Error(w, message, code)
}

// PsuUUID generates a pseudo-random UUID-shaped string
func PsuUUID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%X-%X-%X-%X-%X", b[0:4], b[4:6], b[6:8], b[8:10], b[10:]), nil
}
