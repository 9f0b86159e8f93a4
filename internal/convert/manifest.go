package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"termcast/pkg/capture"
	"termcast/pkg/events"
)

// Manifest describes a batch of capture conversions.
type Manifest struct {
	Jobs []Job `yaml:"jobs"`
}

// Job describes one capture to convert.
type Job struct {
	Name   string `yaml:"name"`   // optional label for logs and errors
	Format string `yaml:"format"` // "timing" or "ttyrec"
	Timing string `yaml:"timing"` // timing log path (timing format)
	Output string `yaml:"output"` // raw output path (timing format)
	TTYRec string `yaml:"ttyrec"` // capture path (ttyrec format)
	Dest   string `yaml:"dest"`   // where the JSON event stream is written
}

// LoadManifest reads and validates a YAML manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if len(m.Jobs) == 0 {
		return nil, errors.New("manifest: at least one job is required")
	}
	for i := range m.Jobs {
		if err := m.Jobs[i].validate(); err != nil {
			return nil, fmt.Errorf("manifest job %d (%s): %w", i, m.Jobs[i].label(), err)
		}
	}
	return &m, nil
}

func (j *Job) validate() error {
	switch capture.Format(j.Format) {
	case capture.FormatTiming:
		if j.Timing == "" || j.Output == "" {
			return errors.New("timing jobs need both timing and output paths")
		}
	case capture.FormatTTYRec:
		if j.TTYRec == "" {
			return errors.New("ttyrec jobs need a ttyrec path")
		}
	default:
		return fmt.Errorf("invalid format %q (must be timing or ttyrec)", j.Format)
	}
	if j.Dest == "" {
		return errors.New("dest is required")
	}
	return nil
}

func (j *Job) decode() (events.Stream, error) {
	if capture.Format(j.Format) == capture.FormatTiming {
		return Timing(j.Timing, j.Output)
	}
	return TTYRec(j.TTYRec)
}

// label returns a human-readable name for the job.
func (j *Job) label() string {
	if j.Name != "" {
		return j.Name
	}
	if j.TTYRec != "" {
		return j.TTYRec
	}
	return j.Timing
}

// Run converts every job in order, stopping at the first failure. Jobs share
// no state, so a failed job leaves earlier results in place.
func (m *Manifest) Run() error {
	for i := range m.Jobs {
		job := &m.Jobs[i]
		stream, err := job.decode()
		if err != nil {
			return fmt.Errorf("job %d (%s): %w", i, job.label(), err)
		}
		if err := WriteFile(job.Dest, stream); err != nil {
			return fmt.Errorf("job %d (%s): %w", i, job.label(), err)
		}
		slog.Info("Converted capture", "job", job.label(), "events", len(stream), "dest", job.Dest)
	}
	return nil
}
