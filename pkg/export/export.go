// Package export serializes the record archive so it can be moved between
// installations. An export followed by an import reproduces a deeply-equal
// record collection.
package export

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/0401lucky/daybook/pkg/record"
	"github.com/0401lucky/daybook/pkg/timeutil"
)

// Archive is the export file shape.
type Archive struct {
	ExportedAt timeutil.Timestamp    `json:"exportedAt"`
	Records    []*record.DailyRecord `json:"records"`
}

// Write serializes records to w, oldest data first as given.
func Write(w io.Writer, records []*record.DailyRecord) error {
	archive := Archive{
		ExportedAt: timeutil.Now(),
		Records:    records,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(archive)
}

// Read deserializes an archive and validates every record's identity. Records
// come back normalized, with seal mirrors and derived fields re-established.
func Read(r io.Reader) ([]*record.DailyRecord, error) {
	var archive Archive
	if err := json.NewDecoder(r).Decode(&archive); err != nil {
		return nil, err
	}
	for _, rec := range archive.Records {
		if rec == nil {
			return nil, errors.New("export: archive contains a null record")
		}
		if _, err := timeutil.ParseDateKey(rec.Date); err != nil {
			return nil, err
		}
		rec.Normalize()
	}
	return archive.Records, nil
}
