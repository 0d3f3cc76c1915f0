package readability

import (
	"slices"
	"strings"

	"github.com/verte-zerg/readgrade/internal/errs"
	"github.com/verte-zerg/readgrade/internal/locale"
)

// Metric identifies a readability formula.
type Metric string

const (
	FleschReadingEase         Metric = "flesch_reading_ease"
	FleschKincaidGrade        Metric = "flesch_kincaid_grade"
	SmogIndex                 Metric = "smog_index"
	ColemanLiauIndex          Metric = "coleman_liau_index"
	AutomatedReadabilityIndex Metric = "automated_readability_index"
	LinsearWriteFormula       Metric = "linsear_write_formula"
	DaleChall                 Metric = "dale_chall_readability_score"
	DaleChallV2               Metric = "dale_chall_readability_score_v2"
	GunningFog                Metric = "gunning_fog"
	Lix                       Metric = "lix"
	Rix                       Metric = "rix"
	McAlpineEFLAW             Metric = "mcalpine_eflaw"
	SpacheReadability         Metric = "spache_readability"
	Forcast                   Metric = "forcast"
	FernandezHuerta           Metric = "fernandez_huerta"
	SzigrisztPazos            Metric = "szigriszt_pazos"
	GutierrezPolini           Metric = "gutierrez_polini"
	Crawford                  Metric = "crawford"
	WienerSachtextformel      Metric = "wiener_sachtextformel"
	GulpeaseIndex             Metric = "gulpease_index"
	Osman                     Metric = "osman"
)

// formula describes how a metric is computed and read.
type formula struct {
	// locales lists the locales the metric is calibrated for. Empty means universal.
	locales []string
	// easier is set when higher scores mean easier text.
	easier bool
	// empty is returned for text without words.
	empty   float64
	compute func(v *view, variant int) (float64, error)
}

var metricOrder = []Metric{
	FleschReadingEase,
	FleschKincaidGrade,
	SmogIndex,
	ColemanLiauIndex,
	AutomatedReadabilityIndex,
	LinsearWriteFormula,
	DaleChall,
	DaleChallV2,
	GunningFog,
	Lix,
	Rix,
	McAlpineEFLAW,
	SpacheReadability,
	Forcast,
	FernandezHuerta,
	SzigrisztPazos,
	GutierrezPolini,
	Crawford,
	WienerSachtextformel,
	GulpeaseIndex,
	Osman,
}

var formulas = map[Metric]formula{
	FleschReadingEase:         {easier: true, compute: fleschReadingEase},
	FleschKincaidGrade:        {compute: fleschKincaidGrade},
	SmogIndex:                 {compute: smogIndex},
	ColemanLiauIndex:          {compute: colemanLiauIndex},
	AutomatedReadabilityIndex: {compute: automatedReadabilityIndex},
	LinsearWriteFormula:       {empty: -1, compute: linsearWriteFormula},
	DaleChall:                 {locales: []string{"en"}, compute: daleChall},
	DaleChallV2:               {locales: []string{"en"}, compute: daleChallV2},
	GunningFog:                {compute: gunningFog},
	Lix:                       {compute: lix},
	Rix:                       {compute: rix},
	McAlpineEFLAW:             {compute: mcalpineEFLAW},
	SpacheReadability:         {locales: []string{"en"}, compute: spache},
	Forcast:                   {compute: forcast},
	FernandezHuerta:           {locales: []string{"es"}, easier: true, compute: fernandezHuerta},
	SzigrisztPazos:            {locales: []string{"es"}, easier: true, compute: szigrisztPazos},
	GutierrezPolini:           {locales: []string{"es"}, easier: true, compute: gutierrezPolini},
	Crawford:                  {locales: []string{"es"}, compute: crawford},
	WienerSachtextformel:      {locales: []string{"de"}, compute: wienerSachtextformel},
	GulpeaseIndex:             {locales: []string{"it"}, easier: true, compute: gulpeaseIndex},
	Osman:                     {locales: []string{"ar"}, easier: true, compute: osman},
}

// Metrics lists every metric in presentation order.
func Metrics() []Metric {
	return slices.Clone(metricOrder)
}

// MetricsFor lists the metrics usable under a locale: the universal ones
// followed by those calibrated for it.
func MetricsFor(localeID string) []Metric {
	var out []Metric
	for _, m := range metricOrder {
		if m.Supports(localeID) {
			out = append(out, m)
		}
	}
	return out
}

// ParseMetric resolves a metric name. Dashes are accepted for underscores.
func ParseMetric(name string) (Metric, error) {
	m := Metric(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_"))
	if _, ok := formulas[m]; !ok {
		return "", &errs.NotFoundError{Resource: "metric", ID: name, Err: errs.ErrUnknownMetric}
	}
	return m, nil
}

func (m Metric) String() string { return string(m) }

// Locales returns the locales the metric is restricted to, or nil when universal.
func (m Metric) Locales() []string {
	return slices.Clone(formulas[m].locales)
}

// Universal reports whether the metric applies to every locale.
func (m Metric) Universal() bool {
	f, ok := formulas[m]
	return ok && len(f.locales) == 0
}

// Supports reports whether the metric may be computed under localeID.
func (m Metric) Supports(localeID string) bool {
	f, ok := formulas[m]
	if !ok {
		return false
	}
	if len(f.locales) == 0 || slices.Contains(f.locales, localeID) {
		return true
	}
	// Region overrides (es_mx) inherit the formulas of their base language.
	keys, err := locale.Candidates(localeID)
	if err != nil {
		return false
	}
	return slices.Contains(f.locales, keys[len(keys)-1])
}

// HigherIsEasier reports whether larger scores mean easier text.
func (m Metric) HigherIsEasier() bool {
	return formulas[m].easier
}
