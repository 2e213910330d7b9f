package launch

import (
	"fmt"
	"sort"
)

// Segment is one slice of the proportion chart.
type Segment struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
}

// ProportionChart is the pie view model.
type ProportionChart struct {
	Site     string    `json:"site" yaml:"site"`
	Title    string    `json:"title" yaml:"title"`
	Segments []Segment `json:"segments" yaml:"segments"`
}

// Total sums every segment value.
func (c ProportionChart) Total() int {
	total := 0
	for _, segment := range c.Segments {
		total += segment.Value
	}
	return total
}

// Empty reports whether the chart has nothing to draw.
func (c ProportionChart) Empty() bool {
	return len(c.Segments) == 0 || c.Total() == 0
}

// ResolveProportion builds the pie view for site.
//
// For SiteAll each site becomes a segment valued by its success count, sites
// without successes included. For one site the segments are the outcome
// classes present among its rows, valued by occurrence. An unknown site
// yields no segments.
func ResolveProportion(ds *Dataset, site string) ProportionChart {
	if site == SiteAll {
		return ProportionChart{
			Site:     SiteAll,
			Title:    "Total Success Launches by Site",
			Segments: successesBySite(ds),
		}
	}
	return ProportionChart{
		Site:     site,
		Title:    fmt.Sprintf("Total Success Launches for site %s", site),
		Segments: outcomesForSite(ds, site),
	}
}

func successesBySite(ds *Dataset) []Segment {
	totals := make(map[string]int)
	ds.each(func(record LaunchRecord) {
		totals[record.LaunchSite] += int(record.Outcome)
	})
	sites := make([]string, 0, len(totals))
	for site := range totals {
		sites = append(sites, site)
	}
	sort.Strings(sites)

	segments := make([]Segment, 0, len(sites))
	for _, site := range sites {
		segments = append(segments, Segment{Label: site, Value: totals[site]})
	}
	return segments
}

func outcomesForSite(ds *Dataset, site string) []Segment {
	counts := make(map[OutcomeClass]int)
	ds.each(func(record LaunchRecord) {
		if record.LaunchSite == site {
			counts[record.Outcome]++
		}
	})
	classes := make([]OutcomeClass, 0, len(counts))
	for class := range counts {
		classes = append(classes, class)
	}
	// Largest count first; ties fall back to the class value.
	sort.Slice(classes, func(i, j int) bool {
		if counts[classes[i]] != counts[classes[j]] {
			return counts[classes[i]] > counts[classes[j]]
		}
		return classes[i] < classes[j]
	})

	segments := make([]Segment, 0, len(classes))
	for _, class := range classes {
		segments = append(segments, Segment{Label: class.String(), Value: counts[class]})
	}
	return segments
}
