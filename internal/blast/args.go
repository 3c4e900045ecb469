package blast

import (
	"fmt"
	"regexp"
)

// Arg is one validated BLAST flag/value pair, eg {-evalue, 1e-5}.
type Arg struct {
	Flag  string
	Value string
}

var (
	// BLAST flags start with '-', followed by lower case letters and '_'
	reFlag = regexp.MustCompile(`^-[a-z_]+$`)

	// flag values may contain letters, numbers, '-' and '.'
	reValue = regexp.MustCompile(`^[a-zA-Z0-9\-.]+$`)

	// flags and values are separated by spaces or '='
	reArgSep = regexp.MustCompile(`[ =]`)
)

// ParseArgString splits a user supplied string like "-evalue 1e-5
// -max_target_seqs 5" into flag/value pairs and validates each against
// the allow-lists. An empty string yields no args.
func ParseArgString(s string) ([]Arg, error) {
	if s == "" {
		return nil, nil
	}

	tokens := reArgSep.Split(s, -1)
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("one argument is missing a value: %s", s)
	}

	args := make([]Arg, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		args = append(args, Arg{Flag: tokens[i], Value: tokens[i+1]})
	}

	return CleanArgs(args)
}

// CleanArgs ensures the args contain no dangerous characters. Everything
// outside the allow-lists is rejected: paths, quotes, '$', blanks, flags
// without the leading dash. The args pass through unchanged.
func CleanArgs(args []Arg) ([]Arg, error) {
	for _, arg := range args {
		if !reFlag.MatchString(arg.Flag) {
			return nil, fmt.Errorf("invalid parameter: %s", arg.Flag)
		}
		if !reValue.MatchString(arg.Value) {
			return nil, fmt.Errorf("invalid parameter: %s", arg.Value)
		}
	}

	return args, nil
}

// argList flattens args into argv order: -a 0 -b 1.
func argList(args []Arg) []string {
	list := make([]string, 0, 2*len(args))
	for _, arg := range args {
		list = append(list, arg.Flag, arg.Value)
	}

	return list
}
