package misc

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type OptionKind int

const (
	INT OptionKind = iota
	STRING
)

type option struct {
	kind          OptionKind
	name          string
	default_value string
	help_msg      string
	value         string
	is_set        bool
}

// CommandLineParser is a flat --key value option registry. Options are
// declared up front with AddOption; Parse then overwrites defaults with
// whatever the command line supplies. Unknown keys and malformed values
// panic, matching the validator policy for CLI misuse.
type CommandLineParser struct {
	options        map[string]*option
	order          []string
	help_requested bool
}

func (this *CommandLineParser) Init() {
	this.options = make(map[string]*option)
	this.order = nil
	this.help_requested = false
}

func (this *CommandLineParser) AddOption(
	kind OptionKind,
	name string,
	default_value string,
	help_msg string,
) {
	if _, ok := this.options[name]; ok {
		err := fmt.Errorf("option %s is already registered", name)
		panic(err)
	}

	this.options[name] = &option{
		kind:          kind,
		name:          name,
		default_value: default_value,
		help_msg:      help_msg,
		value:         default_value,
	}
	this.order = append(this.order, name)
}

func (this *CommandLineParser) Parse(args []string) {
	i := 1
	for i < len(args) {
		arg := args[i]

		name := strings.TrimLeft(arg, "-")
		value := ""
		has_value := false
		if pos := strings.Index(name, "="); pos >= 0 {
			value = name[pos+1:]
			name = name[:pos]
			has_value = true
		}

		if name == "help" {
			this.help_requested = true
			i++
			continue
		}

		option_, ok := this.options[name]
		if !ok {
			err := fmt.Errorf("unknown option: %s", arg)
			panic(err)
		}

		if !has_value {
			if i+1 >= len(args) {
				err := fmt.Errorf("option %s is missing a value", arg)
				panic(err)
			}
			value = args[i+1]
			i++
		}

		if option_.kind == INT {
			if _, err := strconv.ParseInt(value, 10, 64); err != nil {
				panic(fmt.Errorf("option %s expects an integer, got %q", name, value))
			}
		}

		option_.value = value
		option_.is_set = true
		i++
	}
}

func (this *CommandLineParser) IsArgSet(name string) bool {
	if name == "help" {
		return this.help_requested
	}

	option_, ok := this.options[name]
	return ok && option_.is_set
}

func (this *CommandLineParser) IntParameter(name string) int64 {
	option_, ok := this.options[name]
	if !ok {
		err := fmt.Errorf("unknown int option: %s", name)
		panic(err)
	}
	if option_.kind != INT {
		err := fmt.Errorf("option %s is not an int option", name)
		panic(err)
	}

	value, err := strconv.ParseInt(option_.value, 10, 64)
	if err != nil {
		panic(err)
	}
	return value
}

func (this *CommandLineParser) StringParameter(name string) string {
	option_, ok := this.options[name]
	if !ok {
		err := fmt.Errorf("unknown string option: %s", name)
		panic(err)
	}
	return option_.value
}

func (this *CommandLineParser) StringifyHelpMsgs() string {
	var builder strings.Builder
	for _, name := range this.order {
		option_ := this.options[name]
		builder.WriteString(fmt.Sprintf("--%s (default: %s)\n    %s\n",
			option_.name, option_.default_value, option_.help_msg))
	}
	return builder.String()
}

func (this *CommandLineParser) StringifyArgs() string {
	names := make([]string, 0, len(this.options))
	for name, option_ := range this.options {
		if option_.is_set {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	words := make([]string, 0, len(names))
	for _, name := range names {
		words = append(words, fmt.Sprintf("--%s %s", name, this.options[name].value))
	}
	return strings.Join(words, " ")
}

func (this *CommandLineParser) StringifyOptions() string {
	var builder strings.Builder
	for _, name := range this.order {
		option_ := this.options[name]
		builder.WriteString(fmt.Sprintf("%s: %s\n", option_.name, option_.value))
	}
	return builder.String()
}
