package stats

import "droscher.com/CaffeineGargoyle/pkg/model"

// ResolveActivePeriod picks the period statistics are scoped to. A requested
// id wins even when the period is hidden; with no request the first period in
// collection order is used, and nil means "all time" mode. Absence is
// structural, not an error.
func ResolveActivePeriod(periods []*model.Period, requestedID string) *model.Period {
	if requestedID != "" {
		for _, period := range periods {
			if period.UUID.String() == requestedID {
				return period
			}
		}

		return nil
	}

	if len(periods) > 0 {
		return periods[0]
	}

	return nil
}

// VisiblePeriods filters out hidden periods, preserving collection order.
func VisiblePeriods(periods []*model.Period) []*model.Period {
	visible := make([]*model.Period, 0, len(periods))

	for _, period := range periods {
		if !period.Hidden {
			visible = append(visible, period)
		}
	}

	return visible
}
