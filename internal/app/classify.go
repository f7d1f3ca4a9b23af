package app

import "strings"

// Periods
const (
	PeriodCNY         Period = "CNY"
	PeriodChingMing   Period = "CHING_MING"
	PeriodEaster      Period = "EASTER"
	PeriodLabourDay   Period = "LABOUR_DAY"
	PeriodBuddha      Period = "BUDDHA"
	PeriodTuenNg      Period = "TUEN_NG"
	PeriodHKSARDay    Period = "HKSAR_DAY"
	PeriodNationalDay Period = "NATIONAL_DAY"
	PeriodChungYeung  Period = "CHUNG_YEUNG"
	PeriodMidAutumn   Period = "MID_AUTUMN"
	PeriodXmasNewYear Period = "XMAS_NEWYEAR"
	PeriodNewYear     Period = "NEW_YEAR"
	PeriodHoliday     Period = "HOLIDAY"
)

type periodRule struct {
	keywords []string
	period   Period
}

// periodRules is evaluated top to bottom, first match wins.
// Keep the order: "new year" must stay behind the lunar rule.
var periodRules = []periodRule{
	{[]string{"lunar new year", "chinese new year"}, PeriodCNY},
	{[]string{"ching ming"}, PeriodChingMing},
	{[]string{"good friday", "easter"}, PeriodEaster},
	{[]string{"labour day"}, PeriodLabourDay},
	{[]string{"buddha"}, PeriodBuddha},
	{[]string{"tuen ng", "dragon boat"}, PeriodTuenNg},
	{[]string{"sar establishment"}, PeriodHKSARDay},
	{[]string{"national day"}, PeriodNationalDay},
	{[]string{"chung yeung"}, PeriodChungYeung},
	{[]string{"mid-autumn"}, PeriodMidAutumn},
	{[]string{"christmas", "boxing day"}, PeriodXmasNewYear},
	{[]string{"the first day of january", "new year"}, PeriodNewYear},
}

// Classify returns the period tag for a holiday summary
func Classify(summary string) Period {
	s := strings.ToLower(summary)
	for _, rule := range periodRules {
		for _, kw := range rule.keywords {
			if strings.Contains(s, kw) {
				return rule.period
			}
		}
	}
	return PeriodHoliday
}

// Periods returns every tag Classify can produce, in rule order
func Periods() []Period {
	periods := make([]Period, 0, len(periodRules)+1)
	for _, rule := range periodRules {
		periods = append(periods, rule.period)
	}
	return append(periods, PeriodHoliday)
}
