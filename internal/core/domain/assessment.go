package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType is the customs declaration regime for a shipment.
type TransactionType string

const (
	// TxnHousehold covers personal and household goods declarations.
	TxnHousehold TransactionType = "IMS4"
	// TxnCommercial covers commercial import declarations.
	TxnCommercial TransactionType = "IM4"
)

// NormalizeTransactionType upper-cases and trims a declaration regime string.
// Validation of emptiness is left to the CAF determination so the error
// surfaces where the policy lives.
func NormalizeTransactionType(t string) TransactionType {
	return TransactionType(strings.ToUpper(strings.TrimSpace(t)))
}

// CAF policy amounts, all in JMD, and the USD threshold separating low-value
// household shipments from those assessed at the commercial fee.
var (
	CAFMotorVehicle       = decimal.NewFromInt(57500)
	CAFHouseholdLowValue  = decimal.NewFromInt(2500)
	CAFCommercial         = decimal.NewFromInt(10000)
	CAFHouseholdThreshold = decimal.NewFromInt(5000) // USD
)

// MotorVehiclePackage is the package category charged the fixed motor-vehicle
// fee regardless of declaration regime or value. Matched case-insensitively.
const MotorVehiclePackage = "motor vehicle"

// DutyAssessment is the outcome of running the duty cascade for one shipment:
// the per-stage charges that came out strictly positive, the base values each
// charge was computed from, and the grand total across all stages (filtered
// and unfiltered alike).
type DutyAssessment struct {
	Charges    map[string]decimal.Decimal `json:"charges"`
	BaseValues map[string]decimal.Decimal `json:"baseValues"`
	Total      decimal.Decimal            `json:"totalCustomCharges"`
}
