package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/spf13/pflag"
)

// dayFlag collects repeated --day N=id,id values. Repeating a day appends
// to it, keeping the order given.
type dayFlag struct {
	days []contract.DaySelection
}

var _ pflag.Value = (*dayFlag)(nil)

func (f *dayFlag) String() string {
	parts := make([]string, len(f.days))
	for i, d := range f.days {
		parts[i] = fmt.Sprintf("%d=%s", d.Day, strings.Join(d.ActivityIDs, ","))
	}
	return strings.Join(parts, " ")
}

func (f *dayFlag) Set(value string) error {
	dayStr, idsStr, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("expected N=activity[,activity...], got %q", value)
	}
	day, err := strconv.Atoi(strings.TrimSpace(dayStr))
	if err != nil || day < 1 {
		return fmt.Errorf("invalid day %q: must be a positive number", dayStr)
	}

	var ids []string
	for _, id := range strings.Split(idsStr, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return fmt.Errorf("day %d lists no activities", day)
	}

	for i := range f.days {
		if f.days[i].Day == day {
			f.days[i].ActivityIDs = append(f.days[i].ActivityIDs, ids...)
			return nil
		}
	}
	f.days = append(f.days, contract.DaySelection{Day: day, ActivityIDs: ids})
	return nil
}

func (f *dayFlag) Type() string {
	return "day=ids"
}
