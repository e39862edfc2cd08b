package roster

// Employee is one row of the known-employee roster. The roster is loaded once
// at startup and is read-only for the process lifetime; downstream components
// reference entries, they never copy or mutate them.
type Employee struct {
	ID          int      // stable internal key (device uid)
	Code        string   // payroll code ("matricule"), e.g. "56"
	DisplayName string   // full name as shown in reports
	Aliases     []string // raw identifier strings the terminal emits for this employee, e.g. "40056"
}
