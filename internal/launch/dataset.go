package launch

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset reports a dataset without rows.
var ErrEmptyDataset = errors.New("launch dataset is empty")

// Dataset is the immutable in-memory launch table loaded at startup.
//
// A Dataset is never mutated after NewDataset returns, so it is safe to share
// across goroutines without locking.
type Dataset struct {
	records []LaunchRecord
	sites   []string
	siteSet map[string]struct{}
	bounds  PayloadRange
}

// NewDataset validates records and returns a dataset owning a private copy.
func NewDataset(records []LaunchRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	owned := make([]LaunchRecord, len(records))
	copy(owned, records)

	ds := &Dataset{
		records: owned,
		siteSet: make(map[string]struct{}),
	}
	for idx, record := range owned {
		if err := record.validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", idx+1, err)
		}
		if _, seen := ds.siteSet[record.LaunchSite]; !seen {
			ds.siteSet[record.LaunchSite] = struct{}{}
			ds.sites = append(ds.sites, record.LaunchSite)
		}
		if idx == 0 || record.PayloadMassKG < ds.bounds.Min {
			ds.bounds.Min = record.PayloadMassKG
		}
		if idx == 0 || record.PayloadMassKG > ds.bounds.Max {
			ds.bounds.Max = record.PayloadMassKG
		}
	}
	return ds, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Records returns a copy of every row in load order.
func (d *Dataset) Records() []LaunchRecord {
	if d == nil {
		return nil
	}
	out := make([]LaunchRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Sites returns the distinct launch sites in order of first appearance.
func (d *Dataset) Sites() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.sites))
	copy(out, d.sites)
	return out
}

// HasSite reports whether any row was launched from site.
func (d *Dataset) HasSite(site string) bool {
	if d == nil {
		return false
	}
	_, ok := d.siteSet[site]
	return ok
}

// PayloadBounds returns the observed payload minimum and maximum.
func (d *Dataset) PayloadBounds() PayloadRange {
	if d == nil {
		return PayloadRange{}
	}
	return d.bounds
}

func (d *Dataset) each(fn func(LaunchRecord)) {
	if d == nil {
		return
	}
	for _, record := range d.records {
		fn(record)
	}
}
