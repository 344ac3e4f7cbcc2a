package output

// DefaultAssumptions lists the modeling rules rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Monthly standard allowance: ¥5,000 (¥60,000 per year)",
	"Withholding uses the cumulative method against the annual bracket table",
	"Annual bonus is taxed separately: the monthly average is taxed without the allowance, then scaled by 12",
	"Contributions are base × employee rate; base defaults to gross salary",
	"Salary and deductions are assumed constant across the selected months",
}
