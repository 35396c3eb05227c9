package domain

import "github.com/shopspring/decimal"

// Tax stage identifiers as they appear in the gazetted tariff schedule. Each
// stage is one line item of the duty cascade with its own base value.
const (
	StageImportDuty        = "ID-01"   // ad-valorem duty applied directly to CIF
	StageAdditionalStamp   = "ASD05"   // computed off CIF + import duty
	StageSCTAdValorem      = "SCTA08"  // computed off CIF + import duty
	StageSCTSpecific       = "SCTS18"  // computed off CIF + import duty
	StageSCTFuel           = "SCTF028" // computed off CIF + import duty
	StageStandardsFee      = "SCF90"   // computed off CIF alone
	StageEnvironmentalLevy = "ENVL20"  // computed off CIF alone
	StageCAF               = "CAF"     // administration fee, always fully charged
	StageGCT               = "GCT 06"  // general consumption tax off the aggregate base
	StageExcise            = "EXC023"  // excise off the aggregate base
)

// TaxRate is one schedule entry keying a tax stage to its raw rate for an HS
// code. Raw rates keep the representation of the source data: values above 1
// are percentages, values at or below 1 are already fractional.
type TaxRate struct {
	HSCode string          `json:"hsCode"`
	TaxID  string          `json:"taxId"`
	Rate   decimal.Decimal `json:"rate"`
}

// TaxSchedule maps tax stage identifiers to raw rates for a single HS code.
// A missing stage contributes a zero charge; an empty schedule is a valid
// business state (new or ungazetted products), not a data error.
type TaxSchedule map[string]decimal.Decimal

var scheduleRateOne = decimal.NewFromInt(1)

// NormalizeScheduleRate converts a raw schedule rate to fractional form.
// Values above 1 are percentages; values in (0, 1] are already fractional;
// zero and negative values clamp to a zero rate.
func NormalizeScheduleRate(raw decimal.Decimal) decimal.Decimal {
	if raw.GreaterThan(scheduleRateOne) {
		return raw.Div(decimal.NewFromInt(100))
	}
	if raw.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return raw
}
