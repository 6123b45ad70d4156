package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

var requiredFiles = []string{"stops.txt", "routes.txt", "trips.txt", "stop_times.txt"}

// NewFeedFromBytes parses a GTFS zip held in memory.
func NewFeedFromBytes(data []byte) (*Feed, error) {
	return NewFeedFromReader(bytes.NewReader(data), int64(len(data)))
}

// NewFeedFromFile parses a GTFS zip on disk.
func NewFeedFromFile(name string) (*Feed, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return NewFeedFromReader(f, stat.Size())
}

// NewFeedFromReader parses a GTFS zip of the given size.
func NewFeedFromReader(r io.ReaderAt, size int64) (*Feed, error) {
	archive, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open gtfs archive: %w", err)
	}

	// tolerate rows with missing trailing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})

	feed := &Feed{}
	destinations := map[string]any{
		"stops.txt":      &feed.Stops,
		"routes.txt":     &feed.Routes,
		"trips.txt":      &feed.Trips,
		"stop_times.txt": &feed.StopTimes,
	}

	seen := map[string]bool{}
	for _, zf := range archive.File {
		name := strings.ToLower(path.Base(zf.Name))
		dst, ok := destinations[name]
		if !ok {
			continue
		}
		if err := unmarshalFile(zf, dst); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		seen[name] = true
	}
	for _, name := range requiredFiles {
		if !seen[name] {
			return nil, fmt.Errorf("gtfs archive: missing %s", name)
		}
	}

	log.Debug().
		Int("stops", len(feed.Stops)).
		Int("routes", len(feed.Routes)).
		Int("trips", len(feed.Trips)).
		Int("stop_times", len(feed.StopTimes)).
		Msg("gtfs feed loaded")
	return feed, nil
}

func unmarshalFile(zf *zip.File, dst any) error {
	rc, err := zf.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return gocsv.Unmarshal(rc, dst)
}
