package metrics

import "time"

// RecordSpin records a settled spin
func RecordSpin(machineID string, bet, payout int, jackpot bool, elapsed time.Duration) {
	outcome := OutcomeLoss
	if payout > 0 {
		outcome = OutcomeWin
	}
	SpinsTotal.WithLabelValues(machineID, outcome).Inc()
	CreditsWagered.WithLabelValues(machineID).Add(float64(bet))
	if payout > 0 {
		CreditsPaid.WithLabelValues(machineID).Add(float64(payout))
	}
	if jackpot {
		JackpotsTotal.WithLabelValues(machineID).Inc()
	}
	SpinDuration.Observe(elapsed.Seconds())
}

// RecordSpinRejected records a spin that failed validation or settlement
func RecordSpinRejected(reason string) {
	SpinRejectionsTotal.WithLabelValues(reason).Inc()
}
