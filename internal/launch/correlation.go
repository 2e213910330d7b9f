package launch

// Point is one launch plotted on the correlation chart.
type Point struct {
	X     float64 `json:"x" yaml:"x"`
	Y     int     `json:"y" yaml:"y"`
	Group string  `json:"group" yaml:"group"`
}

// CorrelationChart is the scatter view model.
type CorrelationChart struct {
	Site    string       `json:"site" yaml:"site"`
	Title   string       `json:"title" yaml:"title"`
	Payload PayloadRange `json:"payload" yaml:"payload"`
	Points  []Point      `json:"points" yaml:"points"`
}

// Groups returns the distinct color groups in order of first appearance.
func (c CorrelationChart) Groups() []string {
	seen := make(map[string]struct{})
	var groups []string
	for _, point := range c.Points {
		if _, ok := seen[point.Group]; ok {
			continue
		}
		seen[point.Group] = struct{}{}
		groups = append(groups, point.Group)
	}
	return groups
}

// Empty reports whether no launch survived the filters.
func (c CorrelationChart) Empty() bool {
	return len(c.Points) == 0
}

// CorrelationTitle names the site a correlation chart covers.
func CorrelationTitle(site string) string {
	if site == SiteAll {
		return "Correlation between Payload and Success for all Sites"
	}
	return "Correlation between Payload and Success for " + site
}

// ResolveCorrelation builds the scatter view: rows whose payload lies in r,
// bounds included, restricted to site unless site is SiteAll. An inverted
// range or unknown site yields no points.
func ResolveCorrelation(ds *Dataset, site string, r PayloadRange) CorrelationChart {
	chart := CorrelationChart{
		Site:    site,
		Title:   CorrelationTitle(site),
		Payload: r,
		Points:  []Point{},
	}
	ds.each(func(record LaunchRecord) {
		if !r.Contains(record.PayloadMassKG) {
			return
		}
		if site != SiteAll && record.LaunchSite != site {
			return
		}
		chart.Points = append(chart.Points, Point{
			X:     record.PayloadMassKG,
			Y:     int(record.Outcome),
			Group: record.BoosterVersionCategory,
		})
	})
	return chart
}
