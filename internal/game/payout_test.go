package game

import "testing"

func TestComputePayout(t *testing.T) {
	tests := []struct {
		name string
		in   PayoutInput
		want int64
	}{
		{
			name: "plain win doubles the bet",
			in:   PayoutInput{BetPoints: 10, Correct: true, ZodiacMultiplier: 1.0},
			want: 20,
		},
		{
			name: "plain loss forfeits the bet",
			in:   PayoutInput{BetPoints: 10, Correct: false, ZodiacMultiplier: 1.0},
			want: -10,
		},
		{
			name: "zodiac multiplier truncates",
			in:   PayoutInput{BetPoints: 10, Correct: true, ZodiacMultiplier: 1.15},
			want: 23, // 20 * 1.15 = 23.0
		},
		{
			name: "zodiac truncation drops fraction",
			in:   PayoutInput{BetPoints: 7, Correct: true, ZodiacMultiplier: 1.1},
			want: 15, // 14 * 1.1 = 15.4 -> 15
		},
		{
			name: "zodiac applies to losses too",
			in:   PayoutInput{BetPoints: 10, Correct: false, ZodiacMultiplier: 1.3},
			want: -13,
		},
		{
			name: "ai bonus only on correct answers",
			in:   PayoutInput{BetPoints: 10, Correct: true, ZodiacMultiplier: 1.0, AIChallenge: true},
			want: 22, // 20 * 1.1
		},
		{
			name: "ai bonus skipped on a loss",
			in:   PayoutInput{BetPoints: 10, Correct: false, ZodiacMultiplier: 1.0, AIChallenge: true},
			want: -10,
		},
		{
			name: "daily triples after the ai step",
			in:   PayoutInput{BetPoints: 10, Correct: true, ZodiacMultiplier: 1.0, AIChallenge: true, DailyChallenge: true},
			want: 66, // 20 * 1.1 = 22, * 3
		},
		{
			name: "daily skipped on a loss",
			in:   PayoutInput{BetPoints: 10, Correct: false, ZodiacMultiplier: 1.0, DailyChallenge: true},
			want: -10,
		},
		{
			name: "streak six adds two bonus steps",
			in:   PayoutInput{BetPoints: 50, Correct: true, ZodiacMultiplier: 1.0, CurrentStreak: 6},
			want: 120, // 100 + 100*0.1*2
		},
		{
			name: "streak below three adds nothing",
			in:   PayoutInput{BetPoints: 50, Correct: true, ZodiacMultiplier: 1.0, CurrentStreak: 2},
			want: 100,
		},
		{
			name: "streak bonus caps at five steps",
			in:   PayoutInput{BetPoints: 50, Correct: true, ZodiacMultiplier: 1.0, CurrentStreak: 30},
			want: 150, // 100 + 100*0.1*5
		},
		{
			name: "streak ignored on a loss",
			in:   PayoutInput{BetPoints: 50, Correct: false, ZodiacMultiplier: 1.0, CurrentStreak: 9},
			want: -50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputePayout(tt.in); got != tt.want {
				t.Fatalf("ComputePayout(%+v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestZodiacLuckMultiplier(t *testing.T) {
	tests := []struct {
		sign string
		want float64
	}{
		{"leo", 1.3},
		{"Leo", 1.3},
		{"virgo", 1.0},
		{"sagittarius", 1.25},
		{"", 1.05},
		{"ophiuchus", 1.05},
	}
	for _, tt := range tests {
		if got := ZodiacLuckMultiplier(tt.sign); got != tt.want {
			t.Fatalf("ZodiacLuckMultiplier(%q) = %v, want %v", tt.sign, got, tt.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"junior", DifficultyJunior},
		{"Senior", DifficultySenior},
		{"middle", DifficultyMiddle},
		{"", DifficultyMiddle},
		{"staff", DifficultyMiddle},
	}
	for _, tt := range tests {
		if got := ParseDifficulty(tt.in); got != tt.want {
			t.Fatalf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
