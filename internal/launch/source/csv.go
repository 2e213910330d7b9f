package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/louisbranch/launchboard/internal/launch"
)

// ErrMissingColumn reports a header without one of the required columns.
var ErrMissingColumn = errors.New("missing required column")

type column int

const (
	columnSite column = iota
	columnPayload
	columnCategory
	columnOutcome
	columnFlightNumber
	columnBoosterVersion
)

// columnNames maps normalized header spellings to columns. Both the original
// export headers and snake_case names are accepted.
var columnNames = map[string]column{
	"launch site":              columnSite,
	"launch_site":              columnSite,
	"payload mass (kg)":        columnPayload,
	"payload_mass_kg":          columnPayload,
	"booster version category": columnCategory,
	"booster_version_category": columnCategory,
	"class":                    columnOutcome,
	"outcome_class":            columnOutcome,
	"flight number":            columnFlightNumber,
	"flight_number":            columnFlightNumber,
	"booster version":          columnBoosterVersion,
	"booster_version":          columnBoosterVersion,
}

var requiredColumns = []struct {
	column column
	name   string
}{
	{columnSite, "Launch Site"},
	{columnPayload, "Payload Mass (kg)"},
	{columnCategory, "Booster Version Category"},
	{columnOutcome, "class"},
}

// ReadCSV parses a launch table with a header row. Unknown columns are
// ignored; any missing required column fails the whole read.
func ReadCSV(r io.Reader) ([]launch.LaunchRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read header: %w", launch.ErrEmptyDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	index, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	var records []launch.LaunchRecord
	for line := 2; ; line++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		record, err := parseRow(fields, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func indexHeader(header []string) (map[column]int, error) {
	index := make(map[column]int, len(header))
	for pos, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if col, ok := columnNames[key]; ok {
			if _, dup := index[col]; !dup {
				index[col] = pos
			}
		}
	}
	for _, required := range requiredColumns {
		if _, ok := index[required.column]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, required.name)
		}
	}
	return index, nil
}

func parseRow(fields []string, index map[column]int) (launch.LaunchRecord, error) {
	field := func(col column) string {
		pos, ok := index[col]
		if !ok || pos >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[pos])
	}

	payload, err := strconv.ParseFloat(field(columnPayload), 64)
	if err != nil {
		return launch.LaunchRecord{}, fmt.Errorf("payload mass %q: %w", field(columnPayload), err)
	}
	outcome, err := parseOutcome(field(columnOutcome))
	if err != nil {
		return launch.LaunchRecord{}, err
	}
	record := launch.LaunchRecord{
		LaunchSite:             field(columnSite),
		PayloadMassKG:          payload,
		BoosterVersion:         field(columnBoosterVersion),
		BoosterVersionCategory: field(columnCategory),
		Outcome:                outcome,
	}
	if raw := field(columnFlightNumber); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return launch.LaunchRecord{}, fmt.Errorf("flight number %q: %w", raw, err)
		}
		record.FlightNumber = n
	}
	return record, nil
}

// parseOutcome accepts integral spellings such as "1" and "1.0".
func parseOutcome(raw string) (launch.OutcomeClass, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("class %q: %w", raw, err)
	}
	class := launch.OutcomeClass(int(value))
	if float64(class) != value || !class.Valid() {
		return 0, fmt.Errorf("class %q: %w", raw, launch.ErrInvalidRecord)
	}
	return class, nil
}
