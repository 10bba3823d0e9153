package media

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Prober derives metadata from an uploaded media file before it is stored.
type Prober interface {
	Duration(path string) (float64, error)
}

// FFProbe shells out to ffprobe to read a video's duration in seconds.
type FFProbe struct{}

func NewFFProbe() *FFProbe {
	return &FFProbe{}
}

func (p *FFProbe) Duration(path string) (float64, error) {
	cmd := exec.Command(
		"ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe output %q: %w", string(out), err)
	}

	return duration, nil
}
