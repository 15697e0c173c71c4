package dataprocessing

import (
	"strings"

	"crimedata/pkg/contracts/domain"
)

// Label texts as they appear in the published report templates. Several
// templates carry trailing spaces or doubled spaces that must be matched
// literally.
const (
	labelTotalR1       = "Всего коррупционных преступлений"
	labelTotalConvicts = "Всего лиц, осужденных за совершение коррупционных преступлений "
	labelMinor         = "небольшой тяжести"
	labelModerate      = "средней тяжести"
	labelGrave         = "тяжкие"
	labelEspGrave      = "особо тяжкие"

	labelEmbezzlement      = "Присвоение или растрата вверенного чужого имущества (п.2) ч.3 ст.189  УК РК)"
	labelEmbezzlementPart4 = "Присвоение или растрата вверенного чужого имущества (п.2) ч.3 ст.189, ч.4 ст.189  УК РК)"
	labelEmbezzlementShort = "Присвоение или растрата вверенного чужого имущества (п.2) ч.3 ст.189, ч.4 ст.189  УК РК"
	labelFraud             = "Мошенничество (п.2) ч.3 ст.190 УК РК)"
	labelFraudPart4        = "Мошенничество (п.2) ч.3 ст.190, ч.4 ст.190 УК РК)"
	labelFraudShort        = "Мошенничество (п.2) ч.3 ст.190, ч.4 ст.190 УК РК"
	labelLegalization      = "Легализация (отмывание) денег и (или)иного имущества, полученных преступным путем (п.1) ч.3 ст.218 УК РК)"
)

type cellRef struct {
	row, col int
}

// lookupRule reads one counter: when the label cell matches, the value cell
// is taken as the counter.
type lookupRule struct {
	counter string
	label   cellRef
	value   cellRef
	// trimmed labels are compared after trimming surrounding whitespace
	trimmed []string
	// exact labels are compared verbatim
	exact []string
	set   func(*domain.CounterSet, int64)
}

func (r lookupRule) matches(cell any) bool {
	s, ok := cell.(string)
	if !ok {
		return false
	}
	for _, label := range r.exact {
		if s == label {
			return true
		}
	}
	trimmed := strings.TrimSpace(s)
	for _, label := range r.trimmed {
		if trimmed == label {
			return true
		}
	}
	return false
}

// lookupRules run in order and a later match overwrites an earlier one, so
// the alternate layouts listed after a primary rule take precedence.
var lookupRules = []lookupRule{
	{
		counter: "total_corruption",
		label:   cellRef{6, 1},
		value:   cellRef{6, 4},
		trimmed: []string{labelTotalR1},
		set:     func(c *domain.CounterSet, v int64) { c.TotalCorruption = v },
	},
	{
		counter: "total_corruption",
		label:   cellRef{7, 0},
		value:   cellRef{7, 3},
		exact:   []string{labelTotalConvicts},
		set:     func(c *domain.CounterSet, v int64) { c.TotalCorruption = v },
	},
	{
		counter: "minor_corruption",
		label:   cellRef{7, 2},
		value:   cellRef{7, 4},
		trimmed: []string{labelMinor},
		set:     func(c *domain.CounterSet, v int64) { c.MinorCorruption = v },
	},
	{
		counter: "moderate_corruption",
		label:   cellRef{8, 2},
		value:   cellRef{8, 4},
		trimmed: []string{labelModerate},
		set:     func(c *domain.CounterSet, v int64) { c.ModerateCorruption = v },
	},
	{
		counter: "grave_crime",
		label:   cellRef{9, 2},
		value:   cellRef{9, 4},
		trimmed: []string{labelGrave},
		set:     func(c *domain.CounterSet, v int64) { c.GraveCrime = v },
	},
	{
		counter: "especially_grave_crime",
		label:   cellRef{10, 2},
		value:   cellRef{10, 4},
		trimmed: []string{labelEspGrave},
		set:     func(c *domain.CounterSet, v int64) { c.EspeciallyGraveCrime = v },
	},
	{
		counter: "embezzlement",
		label:   cellRef{11, 2},
		value:   cellRef{11, 4},
		trimmed: []string{labelEmbezzlement},
		exact:   []string{labelEmbezzlementPart4},
		set:     func(c *domain.CounterSet, v int64) { c.Embezzlement = v },
	},
	{
		counter: "embezzlement",
		label:   cellRef{8, 1},
		value:   cellRef{8, 3},
		exact:   []string{labelEmbezzlementShort},
		set:     func(c *domain.CounterSet, v int64) { c.Embezzlement = v },
	},
	{
		counter: "fraud",
		label:   cellRef{12, 2},
		value:   cellRef{12, 4},
		trimmed: []string{labelFraud, labelFraudPart4},
		set:     func(c *domain.CounterSet, v int64) { c.Fraud = v },
	},
	{
		counter: "fraud",
		label:   cellRef{9, 1},
		value:   cellRef{9, 3},
		exact:   []string{labelFraudShort},
		set:     func(c *domain.CounterSet, v int64) { c.Fraud = v },
	},
	{
		counter: "legalization_of_money",
		label:   cellRef{13, 2},
		value:   cellRef{13, 4},
		exact:   []string{labelLegalization + " ", labelLegalization + "  "},
		set:     func(c *domain.CounterSet, v int64) { c.LegalizationOfMoney = v },
	},
}
