package sim

import (
	"testing"

	"github.com/sightcast/narrator/internal/game"
)

func TestPurchaseDeductsBalance(t *testing.T) {
	g := NewGame()
	before := g.Balance()
	if err := g.Purchase("lantern"); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if g.Balance() != before-80 {
		t.Fatalf("expected balance %d, got %d", before-80, g.Balance())
	}
	if err := g.Purchase("lantern"); err == nil {
		t.Fatalf("expected already-owned error")
	}
}

func TestPurchaseRejectsUnaffordable(t *testing.T) {
	g := NewGame()
	if g.CanAfford("plough") {
		t.Fatalf("plough should exceed starting balance")
	}
	if err := g.Purchase("plough"); err == nil {
		t.Fatalf("expected affordability error")
	}
}

func TestClaimRequiresCompletedUpgrade(t *testing.T) {
	g := NewGame()
	if err := g.Claim("r-flour"); err == nil {
		t.Fatalf("expected claim rejected before upgrade")
	}
	if err := g.StartUpgrade("mill-sails"); err != nil {
		t.Fatalf("upgrade failed: %v", err)
	}
	if err := g.Claim("r-flour"); err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if err := g.Claim("r-flour"); err == nil {
		t.Fatalf("expected double claim rejected")
	}
}

func TestDemolishRemovesStructure(t *testing.T) {
	g := NewGame()
	if err := g.Demolish("barn"); err != nil {
		t.Fatalf("demolish failed: %v", err)
	}
	for _, s := range g.Structures() {
		if s.ID == "barn" {
			t.Fatalf("barn still present after demolish")
		}
	}
	if err := g.Demolish("barn"); err == nil {
		t.Fatalf("expected unknown structure error")
	}
}

func TestDialogueCallbacks(t *testing.T) {
	g := NewGame()
	var kinds []string
	g.SetDialogueListener(func(kind string, node game.Node) {
		kinds = append(kinds, kind)
	})
	g.StartTalk()
	if err := g.Continue(); err != nil {
		t.Fatalf("continue failed: %v", err)
	}
	if len(kinds) != 2 || kinds[0] != "dialogue" || kinds[1] != "branch" {
		t.Fatalf("expected dialogue then branch, got %v", kinds)
	}
	if err := g.Choose(0); err != nil {
		t.Fatalf("choose failed: %v", err)
	}
	if kinds[len(kinds)-1] != "dialogue" {
		t.Fatalf("expected farewell page after choice, got %v", kinds)
	}
}

func TestInteractStartsTalkOnOccupiedTile(t *testing.T) {
	g := NewGame()
	if err := g.Interact(0, 0); err == nil {
		t.Fatalf("expected empty tile rejection")
	}
	if err := g.Interact(3, 2); err != nil {
		t.Fatalf("interact failed: %v", err)
	}
	if _, ok := g.Current(); !ok {
		t.Fatalf("expected conversation in progress")
	}
}
