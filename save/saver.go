package save

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/feel-easy/unogame/game"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const Version = 1

// Snapshot is the persisted minimum needed to resume turn sequencing.
// Hands and piles are deliberately not part of it.
type Snapshot struct {
	Version            int  `json:"version"`
	CurrentPlayerIndex int  `json:"current_player_index"`
	Clockwise          bool `json:"clockwise"`
	PendingDrawCount   int  `json:"pending_draw_count"`
}

// Saver reads and writes game snapshots under one directory.
type Saver struct {
	dir    string
	logger *logrus.Logger
}

func NewSaver(dir string, logger *logrus.Logger) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save directory: %w", err)
	}
	return &Saver{dir: dir, logger: logger}, nil
}

// Save writes the state's sequencing snapshot. An empty name gets a
// timestamped one. Returns the file name used.
func (s *Saver) Save(state *game.State, name string) (string, error) {
	snapshot := Snapshot{
		Version:            Version,
		CurrentPlayerIndex: state.CurrentPlayerIndex(),
		Clockwise:          state.Clockwise(),
		PendingDrawCount:   state.PendingDrawCount(),
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	fileName := s.fileName(name)
	if err := ioutil.WriteFile(filepath.Join(s.dir, fileName), data, 0o644); err != nil {
		return "", fmt.Errorf("write save file: %w", err)
	}

	s.logger.WithField("file", fileName).Info("game saved")
	return fileName, nil
}

// Load reads a snapshot file and applies it to the state.
func (s *Saver) Load(state *game.State, fileName string) error {
	data, err := ioutil.ReadFile(filepath.Join(s.dir, fileName))
	if err != nil {
		return fmt.Errorf("read save file: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if snapshot.Version != Version {
		return fmt.Errorf("unsupported save version %d", snapshot.Version)
	}

	state.Restore(snapshot.CurrentPlayerIndex, snapshot.Clockwise, snapshot.PendingDrawCount)
	s.logger.WithField("file", fileName).Info("game loaded")
	return nil
}

// List returns the available save file names.
func (s *Saver) List() ([]string, error) {
	entries, err := ioutil.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (s *Saver) fileName(name string) string {
	if name != "" {
		return name + ".json"
	}
	return "uno_save_" + time.Now().Format("2006-01-02_15-04-05") + ".json"
}
