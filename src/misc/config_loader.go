package misc

import (
	"errors"
	"fmt"
)

type ConfigLoader struct{}

type runtimeConfig struct {
	depth        int64
	dataWidth    int
	numTicks     int64
	seed         int64
	writeDensity int
	readDensity  int
	traceEnabled bool
	logDirpath   string
	verbose      int
}

var globalConfig = runtimeConfig{
	depth:        8,
	dataWidth:    8,
	numTicks:     1024,
	seed:         1,
	writeDensity: 60,
	readDensity:  40,
	traceEnabled: false,
	logDirpath:   "log",
	verbose:      0,
}

// ConfigureRuntime snapshots the parsed command line into the global runtime
// config before any simulator component is constructed.
func ConfigureRuntime(parser *CommandLineParser) {
	if parser == nil {
		return
	}

	if mode, ok := StimulusModeFromString(parser.StringParameter("stimulus_mode")); ok {
		SetRuntimeStimulusMode(mode)
	}

	globalConfig.depth = parser.IntParameter("depth")
	globalConfig.dataWidth = int(parser.IntParameter("data_width"))
	globalConfig.numTicks = parser.IntParameter("num_ticks")
	globalConfig.seed = parser.IntParameter("seed")
	globalConfig.writeDensity = int(parser.IntParameter("write_density"))
	globalConfig.readDensity = int(parser.IntParameter("read_density"))
	globalConfig.traceEnabled = parser.IntParameter("trace") != 0
	globalConfig.logDirpath = parser.StringParameter("log_dirpath")
	globalConfig.verbose = int(parser.IntParameter("verbose"))
}

func (this *ConfigLoader) Init() {
}

func (this *ConfigLoader) Depth() int64 {
	return globalConfig.depth
}

func (this *ConfigLoader) DataWidth() int {
	return globalConfig.dataWidth
}

func (this *ConfigLoader) NumTicks() int64 {
	return globalConfig.numTicks
}

func (this *ConfigLoader) Seed() int64 {
	return globalConfig.seed
}

func (this *ConfigLoader) WriteDensity() int {
	return globalConfig.writeDensity
}

func (this *ConfigLoader) ReadDensity() int {
	return globalConfig.readDensity
}

func (this *ConfigLoader) TraceEnabled() bool {
	return globalConfig.traceEnabled
}

func (this *ConfigLoader) LogDirpath() string {
	return globalConfig.logDirpath
}

func (this *ConfigLoader) Verbose() int {
	return globalConfig.verbose
}

type ConfigValidator struct {
	config_loader *ConfigLoader
}

func (this *ConfigValidator) Init(config_loader *ConfigLoader) {
	this.config_loader = config_loader
}

func (this *ConfigValidator) Validate() {
	depth := this.config_loader.Depth()
	if depth <= 0 {
		err := errors.New("depth <= 0")
		panic(err)
	}
	if depth&(depth-1) != 0 {
		err := fmt.Errorf("depth %d is not a power of two", depth)
		panic(err)
	}

	data_width := this.config_loader.DataWidth()
	if data_width < 1 || data_width > 64 {
		err := fmt.Errorf("data_width %d is out of range [1, 64]", data_width)
		panic(err)
	}

	if this.config_loader.NumTicks() <= 0 {
		err := errors.New("num_ticks <= 0")
		panic(err)
	}

	write_density := this.config_loader.WriteDensity()
	if write_density < 0 || write_density > 100 {
		err := fmt.Errorf("write_density %d is out of range [0, 100]", write_density)
		panic(err)
	}

	read_density := this.config_loader.ReadDensity()
	if read_density < 0 || read_density > 100 {
		err := fmt.Errorf("read_density %d is out of range [0, 100]", read_density)
		panic(err)
	}
}
