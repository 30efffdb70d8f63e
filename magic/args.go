package magic

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultTargetVariable receives the result when no name is given.
const DefaultTargetVariable = "_df"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Args are the parsed magic invocation arguments.
type Args struct {
	// TargetVariable is the namespace variable the result is bound to.
	TargetVariable string
	// NoDisplay suppresses the result preview.
	NoDisplay bool
}

// ParseArgs parses the argument line of a magic invocation:
// an optional target variable name and an optional suppression flag
// (--no-display or -q). Anything else is an *ArgumentError.
func ParseArgs(line string) (*Args, error) {
	args := &Args{
		TargetVariable: DefaultTargetVariable,
	}

	haveVariable := false
	for _, field := range strings.Fields(line) {
		switch {
		case field == "--no-display" || field == "-q":
			args.NoDisplay = true
		case strings.HasPrefix(field, "-"):
			return nil, &ArgumentError{Reason: fmt.Sprintf("unrecognized flag %q", field)}
		case haveVariable:
			return nil, &ArgumentError{Reason: fmt.Sprintf("unexpected argument %q", field)}
		case !identifierPattern.MatchString(field):
			return nil, &ArgumentError{Reason: fmt.Sprintf("invalid variable name %q", field)}
		default:
			args.TargetVariable = field
			haveVariable = true
		}
	}

	return args, nil
}

// SplitAssignment recognizes the 'variable = SELECT ...' form of a line
// invocation. It reports ok only when the left side of the first '=' is
// a valid identifier, so conditions like 'WHERE x = 1' stay untouched.
func SplitAssignment(line string) (variable, query string, ok bool) {
	before, after, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	variable = strings.TrimSpace(before)
	if !identifierPattern.MatchString(variable) {
		return "", "", false
	}

	return variable, strings.TrimSpace(after), true
}
