package workflow

import (
	"strconv"
	"strings"
)

// resolveExpr substitutes $stepId.field and $prev tokens in an expression
// with values from earlier step results. Unknown references resolve to the
// empty string.
func resolveExpr(expr string, results map[string]*StepResult, prevID string) string {
	return stepRefRe.ReplaceAllStringFunc(expr, func(token string) string {
		match := stepRefRe.FindStringSubmatch(token)
		ref, field := match[1], match[2]
		if ref == "prev" {
			ref = prevID
		}
		result, ok := results[ref]
		if !ok {
			return ""
		}
		if field == "" {
			field = "output"
		}
		switch field {
		case "output":
			return result.Output
		case "approved":
			if result.Approved == nil {
				return ""
			}
			return strconv.FormatBool(*result.Approved)
		case "status":
			return result.Status
		case "sessionId":
			return result.SessionID
		default:
			return ""
		}
	})
}

// truthy implements condition semantics: empty, "false", "0", and "null"
// are falsy, everything else is truthy.
func truthy(s string) bool {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "", "false", "0", "null":
		return false
	}
	return true
}
