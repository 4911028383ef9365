package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/units"
)

var (
	ErrEmptyCSV     = errors.New("CSV file is empty")
	ErrNoYearColumn = errors.New("could not find Year column in CSV")
)

const (
	FormatSPLAT   = "SPLAT"
	FormatGeneric = "Generic CSV"

	// gwhPerTJ converts terajoules of output to GWh.
	gwhPerTJ = 0.2778
	// peakHours approximates peak demand as annual generation / hours.
	peakHours = 5000.0
)

type category string

const (
	catRenewables category = "renewables"
	catFossil     category = "fossil"
	catStorage    category = "storage"
	catOther      category = "other"
)

// techPatterns is checked in order; the first category with a matching
// pattern wins. SPLAT technology codes use the LS* prefixes.
var techPatterns = []struct {
	cat      category
	patterns []*regexp.Regexp
}{
	{catRenewables, compile(`hydro`, `solar`, `wind`, `geothermal`, `biomass`, `^LSHY`, `^LSSO`, `^LSWD`, `^LSGE`, `^LSBI`)},
	{catFossil, compile(`coal`, `gas`, `diesel`, `hfo`, `oil`, `^LSCL`, `^LSNG`, `^LSDS`)},
	{catStorage, compile(`battery`, `batt`, `storage`, `pump.*storage`, `TPS`, `BESS`)},
	{catOther, compile(`nuclear`, `interconnect`, `import`, `^LSNU`, `^LSEL.*i`)},
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

// categorize maps a technology code or description to an aggregate
// category. Unknown technologies report false.
func categorize(tech string) (category, bool) {
	tech = strings.TrimSpace(tech)
	for _, tp := range techPatterns {
		for _, p := range tp.patterns {
			if p.MatchString(tech) {
				return tp.cat, true
			}
		}
	}
	if strings.Contains(strings.ToLower(tech), "re") {
		return catRenewables, true
	}
	return "", false
}

// CSVOptions controls CSV import.
type CSVOptions struct {
	// MilestoneYears to aggregate. Empty means SuggestMilestoneYears over the
	// years present in the file.
	MilestoneYears []int
	Country        string
	ScenarioName   string
	// Now stamps metadata.dateCreated; defaults to time.Now.
	Now func() time.Time
}

// ParseCSV reads a SPLAT or generic energy-model export and aggregates it
// into a scenario with one milestone per requested year. The format is
// detected from the header row.
func ParseCSV(r io.Reader, opts CSVOptions) (*domain.ScenarioInput, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyCSV
	}

	headers := rows[0]
	splat := isSPLAT(headers)
	if !splat && findColumn(headers, "year") < 0 {
		return nil, ErrNoYearColumn
	}

	years := slices.Clone(opts.MilestoneYears)
	if len(years) == 0 {
		years = SuggestMilestoneYears(yearsIn(rows[1:], findColumn(headers, "year")))
	}
	slices.Sort(years)
	years = slices.Compact(years)

	var acc *accumulator
	if splat {
		acc = parseSPLAT(rows, years)
	} else {
		acc = parseGeneric(rows, years)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	version := FormatGeneric
	if splat {
		version = FormatSPLAT
	}
	return &domain.ScenarioInput{
		Metadata: domain.ScenarioMetadata{
			Country:      opts.Country,
			ScenarioName: opts.ScenarioName,
			ModelVersion: version,
			DateCreated:  now().UTC().Format(time.RFC3339),
		},
		Milestones: acc.milestones(years, splat),
	}, nil
}

func readRows(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	out := rows[:0]
	for _, row := range rows {
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		if strings.Join(row, "") != "" {
			out = append(out, row)
		}
	}
	return out, nil
}

func isSPLAT(headers []string) bool {
	for _, col := range []string{"technology", "par/var", "year", "value"} {
		if findColumn(headers, col) < 0 {
			return false
		}
	}
	return true
}

// findColumn returns the first header containing any of names, case-insensitive.
func findColumn(headers []string, names ...string) int {
	for i, h := range headers {
		h = strings.ToLower(h)
		for _, n := range names {
			if strings.Contains(h, n) {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseYear(s string) (int, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

func parseValue(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

type yearTotals struct {
	capacity   map[category]float64
	additions  map[category]float64
	generation map[category]float64
	emissions  float64
	investment float64
	fixedOM    float64
	variableOM float64
	curtail    float64
}

type accumulator struct {
	years map[int]*yearTotals
}

func newAccumulator(years []int) *accumulator {
	a := &accumulator{years: make(map[int]*yearTotals, len(years))}
	for _, y := range years {
		a.years[y] = &yearTotals{
			capacity:   make(map[category]float64),
			additions:  make(map[category]float64),
			generation: make(map[category]float64),
		}
	}
	return a
}

func (a *accumulator) milestones(years []int, splat bool) []domain.Milestone {
	out := make([]domain.Milestone, 0, len(years))
	cumulative := 0.0
	for _, y := range years {
		t := a.years[y]
		cumulative += t.investment

		gen := domain.GenerationOutput{
			Renewables: t.generation[catRenewables],
			Fossil:     t.generation[catFossil],
			Other:      t.generation[catOther],
		}
		m := domain.Milestone{
			Year: y,
			Capacity: domain.CapacityMix{
				Total: totals(t.capacity),
				Unit:  units.MW,
			},
			Generation: domain.GenerationMix{Output: gen, Unit: units.GWh},
			REShare:    reShare(gen),
			Investment: domain.Investment{Cumulative: cumulative, Unit: units.MUSD},
			Emissions:  domain.Emissions{Total: t.emissions, Unit: units.MtCO2},
			PeakDemand: domain.UnitValue{Value: gen.Sum() / peakHours, Unit: units.MW},
		}
		if splat {
			m.CapacityAdditions = &domain.CapacityAdditions{Additions: totals(t.additions), Unit: units.MW}
			m.AnnualOMCosts = &domain.UnitValue{Value: t.fixedOM + t.variableOM, Unit: units.MUSD}
			if t.curtail > 0 {
				m.Curtailment = &domain.UnitValue{Value: t.curtail, Unit: units.GWh}
			}
		}
		out = append(out, m)
	}
	return out
}

func totals(m map[category]float64) domain.CapacityTotals {
	storage, other := m[catStorage], m[catOther]
	return domain.CapacityTotals{
		Renewables: m[catRenewables],
		Fossil:     m[catFossil],
		Storage:    &storage,
		Other:      &other,
	}
}

// reShare is the renewable share of generation in percent, 1 decimal.
func reShare(g domain.GenerationOutput) float64 {
	total := g.Sum()
	if total <= 0 {
		return 0
	}
	return math.Round(g.Renewables/total*1000) / 10
}

// SPLAT parameter names in the Par/Var column.
const (
	parTotalCapacity = "Total Capacity"
	parNewCapacity   = "New Capacity"
	parOutput        = "Output"
	parEmissions     = "CO2 Emissions"
	parLumpsum       = "Lumpsum Investment Costs"
	parFixedOM       = "Fixed O&M Costs"
	parVariable      = "Variable Costs"
	parCurtailment   = "RE Curtailment"
)

func parseSPLAT(rows [][]string, years []int) *accumulator {
	headers := rows[0]
	techIdx := findColumn(headers, "technology")
	descIdx := findColumn(headers, "tech.description")
	parIdx := findColumn(headers, "par/var")
	yearIdx := findColumn(headers, "year")
	valueIdx := findColumn(headers, "value")
	unitIdx := findColumn(headers, "unit")

	acc := newAccumulator(years)
	for _, row := range rows[1:] {
		year, ok := parseYear(cell(row, yearIdx))
		if !ok {
			continue
		}
		t, ok := acc.years[year]
		if !ok {
			continue
		}
		value, ok := parseValue(cell(row, valueIdx))
		if !ok {
			continue
		}
		name := cell(row, descIdx)
		if name == "" {
			name = cell(row, techIdx)
		}
		cat, ok := categorize(name)
		if !ok {
			continue
		}
		unit := cell(row, unitIdx)

		switch cell(row, parIdx) {
		case parTotalCapacity:
			if v, ok := power(value, unit); ok {
				t.capacity[cat] += v
			}
		case parNewCapacity:
			if v, ok := power(value, unit); ok {
				t.additions[cat] += v
			}
		case parOutput:
			if cat == catStorage {
				break
			}
			if v, ok := energy(value, unit); ok {
				t.generation[cat] += v
			}
		case parEmissions:
			if v, ok := emissions(value, unit); ok {
				t.emissions += v
			}
		case parLumpsum:
			if v, ok := money(value, unit); ok {
				t.investment += v
			}
		case parFixedOM:
			if v, ok := money(value, unit); ok {
				t.fixedOM += v
			}
		case parVariable:
			if v, ok := money(value, unit); ok {
				t.variableOM += v
			}
		case parCurtailment:
			if v, ok := energy(value, unit); ok {
				t.curtail += v
			}
		}
	}
	return acc
}

// The unit helpers match the unit column by substring, as SPLAT exports
// decorate units ("MW (el)", "Mt CO2eq").

func power(v float64, unit string) (float64, bool) {
	for _, u := range []string{"MW", "GW", "kW"} {
		if strings.Contains(unit, u) {
			return units.Power(v, u), true
		}
	}
	return 0, false
}

func energy(v float64, unit string) (float64, bool) {
	for _, u := range []string{"GWh", "TWh", "MWh"} {
		if strings.Contains(unit, u) {
			return units.Energy(v, u), true
		}
	}
	if strings.Contains(unit, "TJ") {
		return v * gwhPerTJ, true
	}
	return 0, false
}

func emissions(v float64, unit string) (float64, bool) {
	for _, u := range []string{"Mt", "kt"} {
		if strings.Contains(unit, u) {
			return units.Emissions(v, u+" CO2"), true
		}
	}
	return 0, false
}

func money(v float64, unit string) (float64, bool) {
	for _, u := range []string{"m$", "B$", "k$"} {
		if strings.Contains(unit, u) {
			return units.Money(v, u), true
		}
	}
	return 0, false
}

// parseGeneric handles pre-aggregated exports with loosely named columns.
// Values are taken as already in canonical units.
func parseGeneric(rows [][]string, years []int) *accumulator {
	headers := rows[0]
	yearIdx := findColumn(headers, "year")
	techIdx := findColumn(headers, "tech", "fuel")
	capIdx := capacityColumn(headers)
	genIdx := findColumn(headers, "generation", "output")
	emIdx := findColumn(headers, "emission", "co2")
	invIdx := findColumn(headers, "investment", "cost")

	acc := newAccumulator(years)
	for _, row := range rows[1:] {
		year, ok := parseYear(cell(row, yearIdx))
		if !ok {
			continue
		}
		t, ok := acc.years[year]
		if !ok {
			continue
		}
		tech := "unknown"
		if techIdx >= 0 {
			tech = cell(row, techIdx)
		}
		cat, ok := categorize(tech)
		if !ok {
			continue
		}

		if v, ok := parseValue(cell(row, capIdx)); ok {
			t.capacity[cat] += v
		}
		if v, ok := parseValue(cell(row, genIdx)); ok && cat != catStorage {
			t.generation[cat] += v
		}
		if v, ok := parseValue(cell(row, emIdx)); ok {
			t.emissions += v
		}
		if v, ok := parseValue(cell(row, invIdx)); ok {
			t.investment += v
		}
	}
	return acc
}

func capacityColumn(headers []string) int {
	for i, h := range headers {
		h = strings.ToLower(h)
		if strings.Contains(h, "capacity") && !strings.Contains(h, "addition") {
			return i
		}
	}
	return -1
}
