package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// FileDumper writes line-oriented result and log files. The parent directory
// is created on demand so callers can point log_dirpath anywhere.
type FileDumper struct {
	filepath string
}

func (this *FileDumper) Init(filepath_ string) {
	this.filepath = filepath_
}

func (this *FileDumper) Filepath() string {
	return this.filepath
}

func (this *FileDumper) WriteLines(lines []string) {
	if err := os.MkdirAll(filepath.Dir(this.filepath), 0o755); err != nil {
		panic(err)
	}

	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}

	if err := os.WriteFile(this.filepath, []byte(content), 0o644); err != nil {
		panic(err)
	}
}

func (this *FileDumper) AppendLines(lines []string) {
	if err := os.MkdirAll(filepath.Dir(this.filepath), 0o755); err != nil {
		panic(err)
	}

	file, err := os.OpenFile(this.filepath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	for _, line := range lines {
		if _, err := file.WriteString(line + "\n"); err != nil {
			panic(err)
		}
	}
}
