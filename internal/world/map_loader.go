package world

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// MapLoader reads text maps. Each non-blank line not starting with '#' is
// one row of tiles.
type MapLoader struct {
	width  int // Explicit width, 0 to take the first row's length
	height int // Explicit height, 0 to count rows
}

// NewMapLoader creates a loader. Zero dimensions are inferred from the file.
func NewMapLoader(width, height int) *MapLoader {
	return &MapLoader{width: width, height: height}
}

// LoadMap loads a map with inferred dimensions
func LoadMap(mapPath string) (*Map, error) {
	return NewMapLoader(0, 0).LoadMap(mapPath)
}

// LoadMap loads a map from the specified file path
func (ml *MapLoader) LoadMap(mapPath string) (*Map, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	m, err := ml.Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	logrus.WithFields(logrus.Fields{
		"component": "world",
		"map":       mapPath,
		"width":     m.Width(),
		"height":    m.Height(),
	}).Debug("map loaded")
	return m, nil
}

// Read parses a map from r. Rows of differing length are accepted here and
// left for Validate to report as a size mismatch.
func (ml *MapLoader) Read(r io.Reader) (*Map, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("map contains no rows")
	}

	width := ml.width
	if width == 0 {
		width = len(rows[0])
	}
	height := ml.height
	if height == 0 {
		height = len(rows)
	}

	var payload []byte
	for _, row := range rows {
		payload = append(payload, row...)
	}
	return NewMap(width, height, payload), nil
}
