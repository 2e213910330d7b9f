// Package routepath names the dashboard's HTTP routes.
package routepath

const (
	Root = "/"
	Up   = "/up"

	StaticPrefix = "/static/"

	ChartsPrefix    = "/charts/"
	ProportionChart = ChartsPrefix + "proportion.svg"
	// CorrelationChart also serves the payload-filtered scatter.
	CorrelationChart = ChartsPrefix + "correlation.svg"

	FragmentsPrefix     = "/fragments/"
	ProportionFragment  = FragmentsPrefix + "proportion"
	CorrelationFragment = FragmentsPrefix + "correlation"

	APIPrefix      = "/api/v1/"
	APIControls    = APIPrefix + "controls"
	APIProportion  = APIPrefix + "proportion"
	APICorrelation = APIPrefix + "correlation"
	APISummary     = APIPrefix + "summary"

	Live = "/live"

	ExportPrefix = "/export/"
	ExportReport = ExportPrefix + "report.pdf"
)

// Query parameter names shared by every view route.
const (
	ParamSite       = "site"
	ParamPayloadMin = "payload_min"
	ParamPayloadMax = "payload_max"
	ParamLang       = "lang"
)
