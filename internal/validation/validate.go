package validation

import (
	"fmt"
	"strings"

	"balju/internal/models"
)

// Code classifies a submission failure.
type Code string

const (
	MissingBranch      Code = "missing_branch"
	EmptyOrder         Code = "empty_order"
	MissingProduct     Code = "missing_product"
	MissingQuantity    Code = "missing_quantity"
	NonNumericQuantity Code = "non_numeric_quantity"
)

// Failure is the first rule violation found in a draft. RowID is set for
// row-scoped failures so the form can steer focus to the offending row.
type Failure struct {
	Code  Code
	RowID string
}

func (f *Failure) Error() string {
	if f.RowID != "" {
		return fmt.Sprintf("draft not submittable: %s (row %s)", f.Code, f.RowID)
	}
	return fmt.Sprintf("draft not submittable: %s", f.Code)
}

// Message returns the Korean message shown to the user for this failure.
func (f *Failure) Message() string {
	switch f.Code {
	case MissingBranch:
		return "지점을 선택해주세요."
	case EmptyOrder:
		return "주문목록에 품목을 추가해주세요."
	case MissingProduct:
		return "품명을 선택해주세요."
	case MissingQuantity:
		return "수량 입력이 누락 되었습니다"
	case NonNumericQuantity:
		return "야채/양념/소스의 수량은 숫자만 입력할 수 있습니다."
	}
	return string(f.Code)
}

// Validate checks a draft against the submission rules and returns the
// first failure, or nil when the draft is submittable. Checks run in a
// fixed order: branch, then non-empty item list, then a product pass over
// every row, then a quantity pass. The product pass fully precedes the
// quantity pass, so a missing product anywhere is reported before a
// quantity problem even on an earlier row.
func Validate(d *models.Draft) *Failure {
	if d.Branch == "" {
		return &Failure{Code: MissingBranch}
	}
	if len(d.Items) == 0 {
		return &Failure{Code: EmptyOrder}
	}
	for _, row := range d.Items {
		if strings.TrimSpace(row.Product) == "" {
			return &Failure{Code: MissingProduct, RowID: row.ID}
		}
	}
	for _, row := range d.Items {
		if strings.TrimSpace(row.Quantity) == "" {
			return &Failure{Code: MissingQuantity, RowID: row.ID}
		}
		if row.Category != models.CategoryOther && !allDigits(row.Quantity) {
			return &Failure{Code: NonNumericQuantity, RowID: row.ID}
		}
	}
	return nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
