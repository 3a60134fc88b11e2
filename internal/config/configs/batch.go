package configs

import "time"

// Batch configures the reconciliation batch. Interval drives the scheduler
// (0 disables scheduled runs, leaving only the manual trigger). Timezone is
// the fixed civil timezone used to compute "today": platform spend is
// attributed by the advertiser's local calendar day, never the runtime's
// zone. UnitTimeout bounds one unit's platform and persistence calls.
type Batch struct {
	Interval    time.Duration `env:"INTERVAL" envDefault:"1h"`
	Timezone    string        `env:"TIMEZONE" envDefault:"America/Sao_Paulo"`
	UnitTimeout time.Duration `env:"UNIT_TIMEOUT" envDefault:"2m"`
}
