package orders

import (
	"fmt"
	"strconv"
	"time"
)

const displayIDSpace = 100000

// newOrderID derives the internal order id from the creation instant, so
// consecutive checkouts stay distinguishable.
func newOrderID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// newDisplayID renders the human-facing order number. The 5-digit random
// space means collisions are possible and accepted.
func newDisplayID(randInt func(int) int) string {
	return fmt.Sprintf("#ORD%05d", randInt(displayIDSpace))
}

// decomposeDate splits the creation instant into the compact dd/mm/yy form
// plus the full month name and 4-digit year the history screen groups by.
func decomposeDate(now time.Time) (date, monthName, year string) {
	return now.Format("02/01/06"), now.Month().String(), now.Format("2006")
}
