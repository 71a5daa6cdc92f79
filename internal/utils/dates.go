package utils

import "time"

// Age returns completed civil years between birth and asOf. The count is
// decremented when asOf's (month, day) falls before the birth (month, day),
// so a Feb 29 birth date only completes its year on Mar 1 in non-leap years.
func Age(birth, asOf time.Time) int {
	age := asOf.Year() - birth.Year()
	if asOf.Month() < birth.Month() ||
		(asOf.Month() == birth.Month() && asOf.Day() < birth.Day()) {
		age--
	}
	return age
}
