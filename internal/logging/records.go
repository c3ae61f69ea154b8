package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-logfmt/logfmt"
)

// Record is one decoded log line.
type Record struct {
	Time    string
	Level   string
	Message string
	Attrs   map[string]string
}

// ReadRecords decodes the logfmt records written by a logger from New.
func ReadRecords(r io.Reader) ([]Record, error) {
	var out []Record
	d := logfmt.NewDecoder(r)
	for d.ScanRecord() {
		var rec Record
		for d.ScanKeyval() {
			switch key := string(d.Key()); key {
			case "time":
				rec.Time = string(d.Value())
			case "level":
				rec.Level = strings.ToLower(string(d.Value()))
			case "msg":
				rec.Message = string(d.Value())
			case "prefix":
			default:
				if rec.Attrs == nil {
					rec.Attrs = make(map[string]string)
				}
				rec.Attrs[key] = string(d.Value())
			}
		}
		out = append(out, rec)
	}
	if err := d.Err(); err != nil {
		return out, fmt.Errorf("decoding log records: %w", err)
	}
	return out, nil
}

// FilterLevel keeps the records at or above level. Records with a missing or
// unknown level are always kept.
func FilterLevel(records []Record, level string) []Record {
	minRank, ok := levelRank[strings.ToLower(level)]
	if !ok {
		return records
	}
	out := records[:0:0]
	for _, r := range records {
		rank, known := levelRank[r.Level]
		if !known || rank >= minRank {
			out = append(out, r)
		}
	}
	return out
}

var levelRank = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
	"fatal": 4,
}
