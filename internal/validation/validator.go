// =============================================================================
// Seasonal Augmenter - Validation Engine
// =============================================================================
//
// This module checks a dataset's purchase records without changing them.
//
// CHECKS (per purchase):
//   Record level
//     - null or empty record                         warning
//     - missing / malformed timestamp                warning
//   Basket level
//     - malformed basket net / gross value           error
//     - malformed overall savings                    warning
//     - gross below net                              error
//     - net differs from the sum of line totals      warning
//   Line-item level
//     - product member null or not a list            error
//     - malformed price or quantity                  error
//
// Warnings describe records the augmenter skips or data it tolerates; errors
// describe records an augment run would fail on or corrupt further.
//
// =============================================================================

package validation

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/seasonal-augmenter/internal/types"
)

// Severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a single finding.
type ValidationError struct {
	// Severity is SeverityError or SeverityWarning.
	Severity string

	// PurchaseIndex is the record's position in the purchase list.
	PurchaseIndex int

	// ProductIndex is the line item's position, or -1 for basket-level
	// findings.
	ProductIndex int

	// Field is the JSON member the finding is about.
	Field string

	// Value is the offending value.
	Value string

	// Rule names the check that failed.
	Rule string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	location := fmt.Sprintf("Purchase %d", e.PurchaseIndex)
	if e.ProductIndex >= 0 {
		location += fmt.Sprintf(", Product %d", e.ProductIndex)
	}
	if e.Field == "" {
		return fmt.Sprintf("[%s] %s: %s", strings.ToUpper(e.Severity), location, e.Message)
	}
	return fmt.Sprintf("[%s] %s, Field '%s': %s (value: '%s')",
		strings.ToUpper(e.Severity),
		location,
		e.Field,
		e.Message,
		e.Value,
	)
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// ValidationResult contains the results of validation.
type ValidationResult struct {
	// IsValid is true if there are no errors.
	IsValid bool

	// Errors contains every finding, warnings included.
	Errors []*ValidationError

	// ErrorCount is the number of errors.
	ErrorCount int

	// WarningCount is the number of warnings.
	WarningCount int

	// PurchasesValidated is the number of records checked.
	PurchasesValidated int
}

// ValidationOptions contains options for validation.
type ValidationOptions struct {
	// SkipConsistency turns off the net versus line-total check. The
	// source data is synthetic and does not always satisfy it.
	SkipConsistency bool

	// TreatWarningsAsErrors makes IsValid false on any warning.
	TreatWarningsAsErrors bool
}

// DefaultValidationOptions returns the default validation options.
func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{}
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator checks purchase records.
type Validator struct {
	options ValidationOptions
}

// NewValidator creates a Validator with default options.
func NewValidator() *Validator {
	return NewValidatorWithOptions(DefaultValidationOptions())
}

// NewValidatorWithOptions creates a Validator with custom options.
func NewValidatorWithOptions(options ValidationOptions) *Validator {
	return &Validator{options: options}
}

// Validate checks every purchase in the dataset with default options.
func Validate(dataset *types.Dataset) (*ValidationResult, error) {
	purchases, err := dataset.Purchases()
	if err != nil {
		return nil, err
	}
	return NewValidator().ValidateAll(purchases), nil
}

// ValidateAll checks every purchase and returns a detailed result.
func (v *Validator) ValidateAll(purchases []*types.Purchase) *ValidationResult {
	result := &ValidationResult{
		IsValid:            true,
		Errors:             make([]*ValidationError, 0),
		PurchasesValidated: len(purchases),
	}

	for i, purchase := range purchases {
		for _, finding := range v.ValidatePurchase(i, purchase) {
			result.Errors = append(result.Errors, finding)

			if finding.Severity == SeverityError {
				result.ErrorCount++
				result.IsValid = false
				continue
			}

			result.WarningCount++
			if v.options.TreatWarningsAsErrors {
				result.IsValid = false
			}
		}
	}

	return result
}

// ValidatePurchase checks a single record.
func (v *Validator) ValidatePurchase(index int, purchase *types.Purchase) []*ValidationError {
	var errors []*ValidationError

	basketFinding := func(severity, field, value, rule, message string) {
		errors = append(errors, &ValidationError{
			Severity:      severity,
			PurchaseIndex: index,
			ProductIndex:  -1,
			Field:         field,
			Value:         value,
			Rule:          rule,
			Message:       message,
		})
	}

	// =========================================================================
	// RECORD LEVEL
	// =========================================================================

	if purchase.IsEmpty() {
		basketFinding(SeverityWarning, "", "", "empty_record", "Record is null or empty and will be skipped")
		return errors
	}

	if _, err := purchase.Time(); err != nil {
		basketFinding(SeverityWarning, "timeStamp", purchase.TimeStamp, "timestamp",
			fmt.Sprintf("Timestamp is not %q; record will be skipped", types.TimestampLayout))
	}

	// =========================================================================
	// BASKET LEVEL
	// =========================================================================

	net, netErr := purchase.Net()
	if netErr != nil {
		basketFinding(SeverityError, "basketValueNet", purchase.BasketValueNet, "decimal", "Basket net value is not a decimal")
	}

	gross, grossErr := purchase.Gross()
	if grossErr != nil {
		basketFinding(SeverityError, "basketValueGross", purchase.BasketValueGross, "decimal", "Basket gross value is not a decimal")
	}

	if purchase.OverallBasketSavings != "" {
		if _, err := purchase.Savings(); err != nil {
			basketFinding(SeverityWarning, "overallBasketSavings", purchase.OverallBasketSavings, "decimal", "Basket savings is not a decimal")
		}
	}

	if netErr == nil && grossErr == nil && gross.LessThan(net) {
		basketFinding(SeverityError, "basketValueGross", purchase.BasketValueGross, "gross_at_least_net",
			fmt.Sprintf("Gross value is below net value %s", purchase.BasketValueNet))
	}

	// =========================================================================
	// LINE-ITEM LEVEL
	// =========================================================================

	if !purchase.HasProductList() {
		basketFinding(SeverityError, "product", "", "product_list",
			"Product member is not a list of line items")
		return errors
	}

	sum := decimal.Zero
	linesOK := true

	for j := range purchase.Product {
		product := &purchase.Product[j]
		lineFinding := func(field, value, message string) {
			errors = append(errors, &ValidationError{
				Severity:      SeverityError,
				PurchaseIndex: index,
				ProductIndex:  j,
				Field:         field,
				Value:         value,
				Rule:          "decimal",
				Message:       message,
			})
		}

		price, err := product.UnitPrice()
		if err != nil {
			lineFinding("price", product.Price, "Price is not a decimal")
			linesOK = false
		}
		qty, err := product.Qty()
		if err != nil {
			lineFinding("quantity", product.Quantity, "Quantity is not a decimal")
			linesOK = false
		}
		sum = sum.Add(price.Mul(qty))
	}

	if !v.options.SkipConsistency && netErr == nil && linesOK && !net.Equal(sum.Round(types.MoneyPlaces)) {
		basketFinding(SeverityWarning, "basketValueNet", purchase.BasketValueNet, "net_matches_lines",
			fmt.Sprintf("Net value differs from line total %s", types.FormatMoney(sum)))
	}

	return errors
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatErrors formats findings for display or logging.
func FormatErrors(errors []*ValidationError) string {
	if len(errors) == 0 {
		return "No validation errors."
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Validation completed with %d finding(s):\n\n", len(errors)))

	for i, err := range errors {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, err.Error()))
	}

	return builder.String()
}

// WriteErrorLog writes the formatted findings to filePath.
func WriteErrorLog(errors []*ValidationError, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create error log: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(FormatErrors(errors)); err != nil {
		return fmt.Errorf("failed to write error log: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush error log: %w", err)
	}
	return nil
}
