package main

import (
	"strings"

	"github.com/spf13/pflag"
)

// normalizeArgs moves operands behind a "--" so that negative numbers such
// as -1, -.5 or -inf reach the planner instead of being parsed as
// shorthand flags. Flags keep their relative order, and so do operands.
// The value of a flag that takes one stays next to it: in "-s -1 5" the
// "-1" is the separator, not an operand.
//
// The result is never nil, so cobra does not fall back to os.Args.
func normalizeArgs(flags *pflag.FlagSet, args []string) []string {
	opts := []string{}
	var operands []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			operands = append(operands, args[i+1:]...)
			break
		}
		if !isFlag(arg) {
			operands = append(operands, arg)
			continue
		}
		opts = append(opts, arg)
		if takesValue(flags, arg) && i+1 < len(args) {
			i++
			opts = append(opts, args[i])
		}
	}
	if len(operands) == 0 {
		return opts
	}
	return append(append(opts, "--"), operands...)
}

// isFlag reports whether arg should be handed to the flag parser.
func isFlag(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	return !looksNumeric(arg[1:])
}

// looksNumeric reports whether s, the text after a leading '-', starts like
// a number rather than a flag name.
func looksNumeric(s string) bool {
	if s[0] == '.' || (s[0] >= '0' && s[0] <= '9') {
		return true
	}
	for _, word := range []string{"inf", "infinity", "nan"} {
		if strings.EqualFold(s, word) {
			return true
		}
	}
	return false
}

// takesValue reports whether arg is a flag whose value is the next
// argument, as opposed to inline ("--separator=,", "-s,") or absent.
func takesValue(flags *pflag.FlagSet, arg string) bool {
	if strings.HasPrefix(arg, "--") {
		name := arg[2:]
		if strings.Contains(name, "=") {
			return false
		}
		f := flags.Lookup(name)
		return f != nil && f.NoOptDefVal == ""
	}

	shorthands := arg[1:]
	for i := 0; i < len(shorthands); i++ {
		c := shorthands[i]
		if c >= 0x80 || c == '=' {
			return false
		}
		f := flags.ShorthandLookup(string(c))
		if f == nil {
			return false
		}
		if f.NoOptDefVal == "" {
			// The rest of the group, if any, is the value.
			return i == len(shorthands)-1
		}
	}
	return false
}
