package object

import (
	"math/rand/v2"
	"testing"

	"github.com/tomz197/pong/internal/config"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestBall_TickMoves(t *testing.T) {
	b := NewBall(config.Default(), newRand(1))
	var player, cpu int

	b.Tick(&player, &cpu)

	if b.X != 647 || b.Y != 407 {
		t.Errorf("position = (%d, %d), want (647, 407)", b.X, b.Y)
	}
	if player != 0 || cpu != 0 {
		t.Errorf("scores = %d/%d, want 0/0", player, cpu)
	}
}

func TestBall_BouncesOffTopAndBottom(t *testing.T) {
	tests := []struct {
		name      string
		y, speedY int
		wantSpeed int
		wantY     int
	}{
		{"touching bottom", 780, 7, -7, 773},
		{"past bottom", 790, 7, -7, 783},
		{"touching top", 20, -7, 7, 27},
		{"mid court", 400, 7, 7, 407},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(config.Default(), newRand(1))
			b.Y = tt.y
			b.SpeedY = tt.speedY
			var player, cpu int

			b.Tick(&player, &cpu)

			if b.SpeedY != tt.wantSpeed {
				t.Errorf("SpeedY = %d, want %d", b.SpeedY, tt.wantSpeed)
			}
			if b.Y != tt.wantY {
				t.Errorf("Y = %d, want %d", b.Y, tt.wantY)
			}
		})
	}
}

func TestBall_LeftWallScoresForPlayer(t *testing.T) {
	b := NewBall(config.Default(), newRand(1))
	b.X, b.Y = 20, 400
	b.SpeedX, b.SpeedY = -7, 0
	player, cpu := 3, 5

	b.Tick(&player, &cpu)

	if player != 4 || cpu != 5 {
		t.Errorf("scores = %d/%d, want 4/5", player, cpu)
	}
	if b.X != 640 || b.Y != 400 {
		t.Errorf("ball at (%d, %d), want center (640, 400)", b.X, b.Y)
	}
}

func TestBall_RightWallScoresForCPU(t *testing.T) {
	b := NewBall(config.Default(), newRand(1))
	b.X, b.Y = 1260, 300
	var player, cpu int

	b.Tick(&player, &cpu)

	if player != 0 || cpu != 1 {
		t.Errorf("scores = %d/%d, want 0/1", player, cpu)
	}
	if b.X != 640 || b.Y != 400 {
		t.Errorf("ball at (%d, %d), want center (640, 400)", b.X, b.Y)
	}
}

func TestBall_ResetSpeedsKeepMagnitude(t *testing.T) {
	b := NewBall(config.Default(), newRand(42))
	seen := map[[2]int]bool{}

	for i := 0; i < 200; i++ {
		b.Reset()
		if abs(b.SpeedX) != 7 || abs(b.SpeedY) != 7 {
			t.Fatalf("reset speed = (%d, %d), want magnitude 7", b.SpeedX, b.SpeedY)
		}
		seen[[2]int{b.SpeedX, b.SpeedY}] = true
	}

	if len(seen) != 4 {
		t.Errorf("saw %d distinct serve directions in 200 resets, want 4", len(seen))
	}
}

func TestBall_ResetIsDeterministicForSeed(t *testing.T) {
	a := NewBall(config.Default(), newRand(7))
	b := NewBall(config.Default(), newRand(7))

	for i := 0; i < 50; i++ {
		a.Reset()
		b.Reset()
		if a.SpeedX != b.SpeedX || a.SpeedY != b.SpeedY {
			t.Fatalf("reset %d diverged: (%d, %d) vs (%d, %d)", i, a.SpeedX, a.SpeedY, b.SpeedX, b.SpeedY)
		}
	}
}

func TestBall_MagnitudeInvariantOverManyFrames(t *testing.T) {
	b := NewBall(config.Default(), newRand(3))
	var player, cpu int

	for i := 0; i < 5000; i++ {
		b.Tick(&player, &cpu)
		if abs(b.SpeedX) != 7 || abs(b.SpeedY) != 7 {
			t.Fatalf("frame %d: speed = (%d, %d)", i, b.SpeedX, b.SpeedY)
		}
	}
	if player+cpu == 0 {
		t.Error("expected at least one point without paddles")
	}
}

func TestPaddle_HumanMovement(t *testing.T) {
	s := config.Default()
	tests := []struct {
		name  string
		y     float64
		in    PaddleInput
		wantY float64
	}{
		{"up", 300, PaddleInput{Up: true}, 294},
		{"down", 300, PaddleInput{Down: true}, 306},
		{"idle", 300, PaddleInput{}, 300},
		{"both keys favor up", 300, PaddleInput{Up: true, Down: true}, 294},
		{"clamped at top", 0, PaddleInput{Up: true}, 0},
		{"clamped near top", 4, PaddleInput{Up: true}, 0},
		{"clamped at bottom", 680, PaddleInput{Down: true}, 680},
		{"ball ignored", 300, PaddleInput{BallY: 0}, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaddle(Human, 1245, tt.y, s)
			p.Tick(tt.in)
			if p.Y != tt.wantY {
				t.Errorf("Y = %v, want %v", p.Y, tt.wantY)
			}
		})
	}
}

func TestPaddle_TrackingMovement(t *testing.T) {
	s := config.Default()
	tests := []struct {
		name  string
		y     float64
		ballY float64
		wantY float64
	}{
		{"ball above", 300, 100, 294},
		{"ball below", 300, 700, 306},
		{"level with ball moves down", 300, 360, 306},
		{"keys ignored", 300, 100, 294},
		{"clamped at bottom", 680, 800, 680},
		{"clamped at top", 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaddle(Tracking, 10, tt.y, s)
			p.Tick(PaddleInput{Down: true, BallY: tt.ballY})
			if p.Y != tt.wantY {
				t.Errorf("Y = %v, want %v", p.Y, tt.wantY)
			}
		})
	}
}

func TestPaddle_StaysOnCourt(t *testing.T) {
	s := config.Default()
	p := NewPaddle(Human, 1245, 340, s)
	maxY := float64(s.ScreenHeight) - p.Height
	rng := newRand(9)

	for i := 0; i < 2000; i++ {
		p.Tick(PaddleInput{Up: rng.IntN(2) == 0, Down: rng.IntN(3) == 0})
		if p.Y < 0 || p.Y > maxY {
			t.Fatalf("tick %d: Y = %v out of [0, %v]", i, p.Y, maxY)
		}
	}
}

func TestBehavior_String(t *testing.T) {
	if Human.String() != "human" || Tracking.String() != "tracking" {
		t.Errorf("unexpected names %q, %q", Human, Tracking)
	}
}
