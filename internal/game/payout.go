package game

// PayoutInput carries everything the multiplier ladder needs to turn a bet
// into a signed point delta.
type PayoutInput struct {
	BetPoints        int64
	Correct          bool
	ZodiacMultiplier float64
	AIChallenge      bool
	DailyChallenge   bool
	CurrentStreak    int
}

// ComputePayout applies the payout steps in their fixed order:
//
//  1. base: 2x the bet on a win, the bet lost otherwise
//  2. zodiac luck multiplier
//  3. x1.1 for correctly solved AI-generated challenges
//  4. x3 for the daily challenge, on the post-AI value
//  5. additive streak bonus at streak >= 3, capped at 5 steps
//
// Each multiplicative step truncates to an integer before the next one, which
// matters for small bets; the truncation points are part of the contract.
func ComputePayout(in PayoutInput) int64 {
	base := -in.BetPoints
	if in.Correct {
		base = in.BetPoints * 2
	}

	delta := int64(float64(base) * in.ZodiacMultiplier)

	if in.AIChallenge && in.Correct {
		delta = int64(float64(delta) * 1.1)
	}

	if in.DailyChallenge && in.Correct {
		delta *= 3
	}

	if in.Correct && in.CurrentStreak >= 3 {
		steps := in.CurrentStreak / 3
		if steps > 5 {
			steps = 5
		}
		delta += int64(float64(delta) * 0.1 * float64(steps))
	}

	return delta
}
