package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// placeholderPattern matches {identifier} substitution points.
// Braces that don't wrap a valid identifier are passed through untouched.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// UnboundVariableError is returned when a template references a name
// that is not present in the namespace.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("template references unbound variable %q", e.Name)
}

// Substitute replaces every {name} placeholder in the template with the
// literal form of the namespace value bound to that name.
// An unbound name aborts the whole operation - no partial rendering is returned.
func Substitute(template string, namespace *Namespace) (string, error) {
	var unbound *UnboundVariableError

	rendered := placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		if unbound != nil {
			return token
		}

		name := token[1 : len(token)-1]
		val, ok := namespace.Get(name)
		if !ok {
			unbound = &UnboundVariableError{Name: name}
			return token
		}

		return renderLiteral(val)
	})
	if unbound != nil {
		return "", unbound
	}

	return rendered, nil
}

// renderLiteral converts a bound value to its SQL literal form.
// The set of rules is closed: strings are quoted with doubled-up
// internal quotes, numerics and bools are rendered bare and anything
// else falls back to the default textual conversion.
func renderLiteral(val any) string {
	switch v := val.(type) {
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// ParseLiteral is the inverse of renderLiteral for host input:
// it coerces a raw string to the closest typed value
// (int, float, bool or a possibly quoted string).
func ParseLiteral(raw string) any {
	raw = strings.TrimSpace(raw)

	if i, err := strconv.Atoi(raw); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}

	// strip matching quotes
	if len(raw) >= 2 {
		if (raw[0] == '\'' && raw[len(raw)-1] == '\'') ||
			(raw[0] == '"' && raw[len(raw)-1] == '"') {
			return raw[1 : len(raw)-1]
		}
	}

	return raw
}
