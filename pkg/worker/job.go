package worker

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync/atomic"

	"github.com/rikuta/mangapress/pkg/data"
	"github.com/rikuta/mangapress/pkg/encode"
	"github.com/rikuta/mangapress/pkg/scan"
	"github.com/rikuta/mangapress/pkg/utils"
)

// Level classifies a log event for display.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Event is one milestone of a conversion run. Events are delivered in the
// order they were emitted.
type Event struct {
	Level   Level
	Message string
}

// State of a conversion job.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateCancelled
	StateCompleted
)

// Options configure one conversion run. They are immutable after Start.
type Options struct {
	OutDir string
	Format data.Format
	Merge  bool
}

// MergedName is the filename (without extension) of a per-series omnibus.
const MergedName = "总集"

// Repository records produced artifacts. A nil repository disables recording.
type Repository interface {
	SaveArtifact(artifact *data.Artifact) error
}

// Job converts a batch of volume directories on a single background
// goroutine. Log events stream over Events in emission order; the channel
// closing is the job's terminal signal and happens exactly once, no matter
// how the run ends. Stop requests cooperative cancellation, observed at
// series and volume boundaries but never inside an in-flight encode.
type Job struct {
	volumes    []data.Volume
	opts       Options
	classifier scan.Classifier
	encoder    encode.Encoder
	repo       Repository

	stop   atomic.Bool
	state  atomic.Int32
	events chan Event
}

// NewJob prepares a conversion over volumes. repo may be nil.
func NewJob(volumes []data.Volume, opts Options, repo Repository) *Job {
	return &Job{
		volumes:    volumes,
		opts:       opts,
		classifier: scan.NewClassifier(),
		encoder:    encode.ForFormat(opts.Format),
		repo:       repo,
		events:     make(chan Event, 64),
	}
}

// Events returns the ordered event stream. The caller must drain it; the
// channel closes when the run terminates.
func (j *Job) Events() <-chan Event {
	return j.events
}

// State reports the job's current lifecycle state.
func (j *Job) State() State {
	return State(j.state.Load())
}

// Stop requests cancellation. It is safe to call at any time, from any
// goroutine, and more than once; the job stops at the next checkpoint.
func (j *Job) Stop() {
	j.stop.Store(true)
}

// Start launches the run on its own goroutine and returns immediately.
func (j *Job) Start() {
	j.state.Store(int32(StateRunning))
	go j.run()
}

func (j *Job) run() {
	defer close(j.events)
	defer func() {
		if r := recover(); r != nil {
			j.state.Store(int32(StateCompleted))
			j.emit(LevelError, fmt.Sprintf("worker failed: %v\n%s", r, debug.Stack()))
		}
	}()

	if len(j.volumes) == 0 {
		j.state.Store(int32(StateCompleted))
		j.emit(LevelInfo, "no volumes to process")
		return
	}

	for _, group := range j.classifier.Group(j.volumes) {
		if j.cancelled() {
			return
		}

		seriesDir := filepath.Join(j.opts.OutDir, utils.SafeFilename(group.Name))
		if err := os.MkdirAll(seriesDir, 0755); err != nil {
			j.emit(LevelError, fmt.Sprintf("create %s: %v", seriesDir, err))
			continue
		}

		j.emit(LevelInfo, fmt.Sprintf("processing %s (%d volumes)", group.Name, len(group.Volumes)))

		for _, volume := range group.Volumes {
			if j.cancelled() {
				return
			}
			j.convertVolume(group.Name, seriesDir, volume)
		}

		if j.opts.Merge {
			j.mergeSeries(group, seriesDir)
		}
	}

	j.state.Store(int32(StateCompleted))
	j.emit(LevelInfo, "all conversions complete")
}

// convertVolume encodes one volume. Failures are reported and isolated; the
// run continues with the next volume.
func (j *Job) convertVolume(series, seriesDir string, volume data.Volume) {
	title := volume.DisplayName()
	j.emit(LevelInfo, fmt.Sprintf("converting %s", title))

	images := scan.Gather(volume.Path)
	if len(images) == 0 {
		j.emit(LevelWarning, fmt.Sprintf("no images found in %s (check subdirectories and extensions)", volume.Path))
		return
	}

	outPath := filepath.Join(seriesDir, title+j.opts.Format.Ext())
	if err := j.encoder.Encode(images, outPath, series, title); err != nil {
		j.emit(LevelError, fmt.Sprintf("failed: %s: %v", outPath, err))
		return
	}

	j.emit(LevelSuccess, fmt.Sprintf("wrote %s", outPath))
	j.record(series, title, outPath, false, len(images))
}

// mergeSeries concatenates every volume of the group, in group order, into a
// single omnibus artifact.
func (j *Job) mergeSeries(group data.SeriesGroup, seriesDir string) {
	j.emit(LevelInfo, fmt.Sprintf("merging all volumes of %s", group.Name))

	var all []string
	for _, volume := range group.Volumes {
		all = append(all, scan.Gather(volume.Path)...)
	}
	if len(all) == 0 {
		j.emit(LevelWarning, fmt.Sprintf("nothing to merge for %s", group.Name))
		return
	}

	title := group.Name + " " + MergedName
	outPath := filepath.Join(seriesDir, MergedName+j.opts.Format.Ext())
	if err := j.encoder.Encode(all, outPath, group.Name, title); err != nil {
		j.emit(LevelError, fmt.Sprintf("merge failed: %s: %v", outPath, err))
		return
	}

	j.emit(LevelSuccess, fmt.Sprintf("wrote %s", outPath))
	j.record(group.Name, title, outPath, true, len(all))
}

// cancelled checks the stop flag at a checkpoint and emits the cancellation
// event when it fires.
func (j *Job) cancelled() bool {
	if !j.stop.Load() {
		return false
	}
	j.state.Store(int32(StateCancelled))
	j.emit(LevelWarning, "conversion cancelled")
	return true
}

func (j *Job) emit(level Level, message string) {
	j.events <- Event{Level: level, Message: message}
}

func (j *Job) record(series, title, path string, merged bool, pages int) {
	if j.repo == nil {
		return
	}
	err := j.repo.SaveArtifact(&data.Artifact{
		Series: series,
		Title:  title,
		Path:   path,
		Format: string(j.opts.Format),
		Merged: merged,
		Pages:  pages,
	})
	if err != nil {
		j.emit(LevelWarning, fmt.Sprintf("record %s: %v", path, err))
	}
}
