package roster

import (
	"strconv"
	"strings"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/roster"
)

// devicePrefix is the fixed prefix the terminal prepends to payroll codes when
// employees are enrolled (code "56" is enrolled as "40056").
const devicePrefix = "400"

// strategy tries to map one raw identifier onto a roster employee. Strategies
// are pure: they read the store and nothing else.
type strategy func(*Store, string) (roster.Employee, bool)

// strategies is evaluated in order, first match wins. The order is a contract:
// exact matching must run before numeric coercion, otherwise codes that are
// numeric substrings of each other collide across employees.
var strategies = []strategy{
	matchExact,
	matchPrefixStrip,
	matchNumeric,
}

// Resolver maps raw terminal identifiers onto roster employees. Resolution is
// total and deterministic: it never fails, and a given input always yields the
// same output for a fixed roster.
type Resolver struct {
	store *Store
}

func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the employee a raw identifier refers to, or false when the
// identifier is absent ("" or "0") or matches nobody.
func (r *Resolver) Resolve(raw string) (roster.Employee, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return roster.Employee{}, false
	}
	for _, match := range strategies {
		if emp, ok := match(r.store, raw); ok {
			return emp, true
		}
	}
	return roster.Employee{}, false
}

// matchExact accepts the payroll code itself, any known alias, and the
// prefix-plus-zero-padded constructions the terminal generates ("400" + code,
// with 2- and 3-digit padding variants).
func matchExact(s *Store, raw string) (roster.Employee, bool) {
	for _, emp := range s.employees {
		if emp.Code == raw {
			return emp, true
		}
		for _, alias := range emp.Aliases {
			if alias == raw {
				return emp, true
			}
		}
		if devicePrefix+emp.Code == raw ||
			devicePrefix+padCode(emp.Code, 2) == raw ||
			devicePrefix+padCode(emp.Code, 3) == raw {
			return emp, true
		}
	}
	return roster.Employee{}, false
}

// matchPrefixStrip strips the device prefix and compares the remainder to the
// payroll code, tolerating leading zeros ("400056" -> "056" -> "56").
func matchPrefixStrip(s *Store, raw string) (roster.Employee, bool) {
	if !strings.HasPrefix(raw, devicePrefix) {
		return roster.Employee{}, false
	}
	rest := raw[len(devicePrefix):]
	trimmed := strings.TrimLeft(rest, "0")
	for _, emp := range s.employees {
		if emp.Code == rest || emp.Code == trimmed {
			return emp, true
		}
	}
	return roster.Employee{}, false
}

// matchNumeric coerces the identifier to an integer and compares it against
// the internal key and the numeric value of the payroll code.
func matchNumeric(s *Store, raw string) (roster.Employee, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return roster.Employee{}, false
	}
	for _, emp := range s.employees {
		if emp.ID == n {
			return emp, true
		}
		if code, err := strconv.Atoi(emp.Code); err == nil && code == n {
			return emp, true
		}
	}
	return roster.Employee{}, false
}
