package service

import (
	"context"
	"errors"
	"testing"
)

func TestSessionService_Reset_ClearsAndSeeds(t *testing.T) {
	sessions := newStubSessionStore()
	seeder := &stubSeeder{seeded: true}
	svc := NewSessionService(sessions, seeder, discardLogger)
	sessions.views["sess-1"] = 4
	sessions.users["sess-1"] = 1

	if err := svc.Reset(context.Background(), "sess-1"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if _, ok := sessions.views["sess-1"]; ok {
		t.Error("expected page views cleared")
	}
	if _, ok := sessions.users["sess-1"]; ok {
		t.Error("expected user cleared")
	}
	if seeder.calls != 1 {
		t.Errorf("expected one seed attempt, got %d", seeder.calls)
	}
}

func TestSessionService_Reset_SeedFailure(t *testing.T) {
	seeder := &stubSeeder{err: errors.New("mongo unavailable")}
	svc := NewSessionService(newStubSessionStore(), seeder, discardLogger)

	if err := svc.Reset(context.Background(), "sess-1"); err == nil {
		t.Fatal("expected seed error to surface")
	}
}
