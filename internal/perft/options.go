package perft

import (
	"runtime"
	"strconv"
	"strings"

	. "github.com/cricklet/variantboard/internal/helpers"
)

type Options struct {
	Fen      string
	Depth    int
	Parallel int
	Divide   bool
	Progress bool
}

var DefaultOptions = Options{
	Fen:      "",
	Depth:    3,
	Parallel: runtime.NumCPU(),
	Divide:   false,
	Progress: false,
}

var AllOptions = []string{
	"fen=<layout> [w|b] [half moves]",
	"depth=<n>",
	"parallel=<n>",
	"divide",
	"progress",
}

func parseCount(arg string) (int, Error) {
	n, err := strconv.Atoi(strings.SplitN(arg, "=", 2)[1])
	if err != nil {
		return 0, Wrap(err)
	}
	if n < 0 {
		return 0, Errorf("negative value in %v", arg)
	}
	return n, NilError
}

// fenFieldsAfter counts the unquoted turn and half-move fields that follow a
// fen= argument, e.g. `fen=8/8 w 0`.
func fenFieldsAfter(args []string) int {
	n := 0
	if n < len(args) && (args[n] == "w" || args[n] == "b") {
		n++
	}
	if n < len(args) && args[n] != "" && strings.Trim(args[n], "0123456789") == "" {
		n++
	}
	return n
}

func OptionsFromArgs(args ...string) (Options, Error) {
	options := DefaultOptions

	for i := 0; i < len(args); i++ {
		arg := args[i]
		var err Error
		if strings.HasPrefix(arg, "fen=") {
			fields := fenFieldsAfter(args[i+1:])
			options.Fen = strings.Join(append([]string{strings.TrimPrefix(arg, "fen=")}, args[i+1:i+1+fields]...), " ")
			i += fields
		} else if strings.HasPrefix(arg, "depth=") {
			options.Depth, err = parseCount(arg)
		} else if strings.HasPrefix(arg, "parallel=") {
			options.Parallel, err = parseCount(arg)
		} else if arg == "divide" {
			options.Divide = true
		} else if arg == "progress" {
			options.Progress = true
		} else {
			return options, Errorf("unknown option: %s", arg)
		}
		if !IsNil(err) {
			return options, err
		}
	}

	return options, NilError
}

func (o Options) RunnerOptions(logger Logger) []RunnerOption {
	result := []RunnerOption{
		WithLogger(logger),
		WithParallel(o.Parallel),
	}
	if o.Divide {
		result = append(result, WithDivide())
	}
	if o.Progress {
		result = append(result, WithProgress())
	}
	return result
}
