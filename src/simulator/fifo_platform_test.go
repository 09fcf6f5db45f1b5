package simulator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syncfifo/src/misc"
)

// newTestParser registers the simulator's option table with test overrides
// applied on top of the defaults.
func newTestParser(overrides map[string]string) *misc.CommandLineParser {
	parser := new(misc.CommandLineParser)
	parser.Init()

	parser.AddOption(misc.INT, "verbose", "0", "")
	parser.AddOption(misc.INT, "depth", "8", "")
	parser.AddOption(misc.INT, "data_width", "8", "")
	parser.AddOption(misc.STRING, "stimulus_mode", string(misc.DefaultStimulusMode()), "")
	parser.AddOption(misc.INT, "num_ticks", "1024", "")
	parser.AddOption(misc.INT, "seed", "1", "")
	parser.AddOption(misc.INT, "write_density", "60", "")
	parser.AddOption(misc.INT, "read_density", "40", "")
	parser.AddOption(misc.INT, "trace", "0", "")
	parser.AddOption(misc.STRING, "log_dirpath", "log", "")

	args := []string{"test"}
	for name, value := range overrides {
		args = append(args, "--"+name, value)
	}
	parser.Parse(args)

	return parser
}

func runPlatform(t *testing.T, overrides map[string]string) *FifoPlatform {
	t.Helper()

	parser := newTestParser(overrides)
	misc.ConfigureRuntime(parser)

	platform := new(FifoPlatform)
	platform.Init(parser)
	for !platform.IsFinished() {
		platform.Cycle()
	}
	platform.Dump()
	platform.Fini()

	return platform
}

func TestFifoPlatformDirectedRunIsClean(t *testing.T) {
	log_dirpath := t.TempDir()
	platform := runPlatform(t, map[string]string{
		"stimulus_mode": "directed",
		"trace":         "1",
		"log_dirpath":   log_dirpath,
	})

	require.NoError(t, platform.CheckError())

	summary, err := os.ReadFile(filepath.Join(log_dirpath, "fifo_summary.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(summary), "scoreboard_error: none")
	assert.Contains(t, string(summary), "writes_dropped_full: 1")
	assert.Contains(t, string(summary), "resets: 1")

	trace, err := os.ReadFile(filepath.Join(log_dirpath, "fifo_trace.txt"))
	require.NoError(t, err)
	assert.Equal(t, int(platform.Ticks()), len(splitLines(string(trace))))
}

func TestFifoPlatformRandomRunIsClean(t *testing.T) {
	platform := runPlatform(t, map[string]string{
		"stimulus_mode": "random",
		"num_ticks":     "5000",
		"seed":          "42",
		"depth":         "16",
		"log_dirpath":   t.TempDir(),
	})

	require.NoError(t, platform.CheckError())
	assert.Equal(t, int64(5000), platform.Ticks())
}

func TestFifoPlatformSoakRunIsClean(t *testing.T) {
	platform := runPlatform(t, map[string]string{
		"stimulus_mode": "soak",
		"num_ticks":     "2000",
		"depth":         "4",
		"log_dirpath":   t.TempDir(),
	})

	require.NoError(t, platform.CheckError())
	assert.Equal(t, int64(2000), platform.Ticks())
}

func splitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, content[start:i])
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}
