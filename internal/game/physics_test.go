package game

import (
	"math/rand"
	"testing"
)

func TestAvatarStaysInBounds(t *testing.T) {
	const (
		fieldH = 720.0
		size   = 60.0
	)

	rng := rand.New(rand.NewSource(99))
	a := Avatar{Y: (fieldH - size) / 2}

	for i := 0; i < 10000; i++ {
		a.Update(rng.Float64(), 0.5, 1.8, fieldH, size)

		if a.Y < 0 || a.Y > fieldH-size {
			t.Fatalf("position %v escaped [0, %v] at frame %d", a.Y, fieldH-size, i)
		}
		if a.Vel < -MaxVelocity || a.Vel > MaxVelocity {
			t.Fatalf("velocity %v escaped [-15, 15] at frame %d", a.Vel, i)
		}
	}
}

func TestAvatarGravityPullsDown(t *testing.T) {
	a := Avatar{Y: 300}
	a.Update(0, 0.5, 1.8, 720, 60)

	if a.Vel != 0.5 {
		t.Errorf("velocity after one resting frame = %v, expected 0.5", a.Vel)
	}
	if a.Y != 300.5 {
		t.Errorf("position after one resting frame = %v, expected 300.5", a.Y)
	}
}

func TestAvatarLiftOpposesGravity(t *testing.T) {
	a := Avatar{Y: 300}
	a.Update(1, 0.5, 1.8, 720, 60)

	// velocity = 0.5 - 1*1.8 = -1.3, moving up
	if a.Vel != -1.3 {
		t.Errorf("velocity = %v, expected -1.3", a.Vel)
	}
	if a.Y != 298.7 {
		t.Errorf("position = %v, expected 298.7", a.Y)
	}
}

func TestAvatarClampZeroesVelocity(t *testing.T) {
	a := Avatar{Y: 659, Vel: 14}
	a.Update(0, 0.5, 1.8, 720, 60)

	if a.Y != 660 {
		t.Errorf("floor clamp position = %v, expected 660", a.Y)
	}
	if a.Vel != 0 {
		t.Errorf("floor clamp should zero velocity, got %v", a.Vel)
	}

	a = Avatar{Y: 1, Vel: -14}
	a.Update(1, 0.12, 4.0, 720, 60)

	if a.Y != 0 {
		t.Errorf("ceiling clamp position = %v, expected 0", a.Y)
	}
	if a.Vel != 0 {
		t.Errorf("ceiling clamp should zero velocity, got %v", a.Vel)
	}
}

func TestAvatarVelocityClamp(t *testing.T) {
	a := Avatar{Y: 300, Vel: 14.9}
	a.Update(0, 1.1, 1.1, 720, 60) // hard gravity pushes past the cap

	if a.Vel != MaxVelocity {
		t.Errorf("velocity = %v, expected clamp at %v", a.Vel, MaxVelocity)
	}

	a = Avatar{Y: 300, Vel: -14.9}
	a.Update(1, 0.12, 4.0, 720, 60) // easy lift pulls past the cap

	if a.Vel != -MaxVelocity {
		t.Errorf("velocity = %v, expected clamp at %v", a.Vel, -MaxVelocity)
	}
}

func TestAvatarHitbox(t *testing.T) {
	a := Avatar{Y: 120}
	r := a.Hitbox(150, 60)

	if r.X != 150 || r.Y != 120 || r.W != 60 || r.H != 60 {
		t.Errorf("Hitbox = %+v", r)
	}
}
