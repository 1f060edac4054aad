package checkout

import (
	"strconv"
	"strings"
	"time"

	"github.com/idir2023/argan-project/internal/domain"
)

// FormatCardNumber strips non-digits, truncates to 16 digits and
// regroups them in blocks of four, matching the storefront's input
// re-formatting.
func FormatCardNumber(raw string) string {
	digits := digitsOnly(raw, 16)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry strips non-digits, truncates to 4 and inserts the MM/YY
// separator once at least two digits are present.
func FormatExpiry(raw string) string {
	digits := digitsOnly(raw, 4)
	if len(digits) < 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

// ValidateCard checks a formatted card form against the reference
// time. Errors are field-scoped; all failing fields are reported in
// one pass.
func ValidateCard(card CardDetails, now time.Time) error {
	verr := domain.NewValidationError()

	if strings.TrimSpace(card.NameOnCard) == "" {
		verr.Add("nameOnCard", "الاسم مطلوب")
	}

	cleanNumber := strings.ReplaceAll(card.CardNumber, " ", "")
	if len(cleanNumber) < 16 {
		verr.Add("cardNumber", "رقم البطاقة غير صحيح (16 رقم)")
	}

	if len(card.Expiry) < 5 {
		verr.Add("expiry", "التاريخ غير مكتمل")
	} else {
		month, _ := strconv.Atoi(card.Expiry[:2])
		year, _ := strconv.Atoi(card.Expiry[3:])
		curYear := now.Year() % 100
		curMonth := int(now.Month())

		if month < 1 || month > 12 {
			verr.Add("expiry", "شهر غير صحيح")
		} else if year < curYear || (year == curYear && month < curMonth) {
			verr.Add("expiry", "البطاقة منتهية الصلاحية")
		}
	}

	if len(card.CVV) < 3 {
		verr.Add("cvv", "رمز CVV غير صحيح")
	}

	return verr.ErrOrNil()
}

func digitsOnly(raw string, max int) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == max {
				break
			}
		}
	}
	return b.String()
}
