package service

import (
	"strconv"
	"time"

	"github.com/dmarkovic/shiftbot/internal/domain"
	"github.com/dmarkovic/shiftbot/internal/domain/contract"
)

func defaultTimezone(dm contract.DataManager) (string, error) {
	return dm.Settings().Get(domain.SettingDefaultTZ, domain.DefaultTimezone)
}

func defaultLocation(dm contract.DataManager) (*time.Location, string) {
	tz, err := defaultTimezone(dm)
	if err != nil {
		return time.UTC, "UTC"
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC, "UTC"
	}
	return loc, tz
}

func fineAmount(dm contract.DataManager) float64 {
	raw, err := dm.Settings().Get(domain.SettingFineAmount, "")
	if err != nil || raw == "" {
		return domain.DefaultFineAmount
	}

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return domain.DefaultFineAmount
	}
	return amount
}
